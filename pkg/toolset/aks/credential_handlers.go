package aks

import (
	"context"
	"fmt"

	"github.com/aksops/aks-mcp-server/pkg/toolset"
	"github.com/aksops/aks-mcp-server/pkg/toolset/paramutil"
)

// credentialsGetHandler handles the cluster_get_credentials tool
func credentialsGetHandler(ctx context.Context, client interface{}, params map[string]interface{}) (string, error) {
	azureClient, err := toolset.ValidateAzureClient(client)
	if err != nil {
		return "", err
	}

	resourceGroup, err := paramutil.ExtractRequiredString(params, paramutil.ParamResourceGroup)
	if err != nil {
		return "", err
	}
	clusterName, err := paramutil.ExtractRequiredString(params, paramutil.ParamClusterName)
	if err != nil {
		return "", err
	}

	if err := azureClient.GetCredentials(ctx, resourceGroup, clusterName, false); err != nil {
		return "", fmt.Errorf("error getting credentials: %w", err)
	}

	return fmt.Sprintf("Credentials for AKS cluster '%s' merged into kubeconfig.", clusterName), nil
}

// adminCredentialsGetHandler handles the cluster_get_admin_credentials tool
func adminCredentialsGetHandler(ctx context.Context, client interface{}, params map[string]interface{}) (string, error) {
	azureClient, err := toolset.ValidateAzureClient(client)
	if err != nil {
		return "", err
	}

	resourceGroup, err := paramutil.ExtractRequiredString(params, paramutil.ParamResourceGroup)
	if err != nil {
		return "", err
	}
	clusterName, err := paramutil.ExtractRequiredString(params, paramutil.ParamClusterName)
	if err != nil {
		return "", err
	}

	if err := azureClient.GetCredentials(ctx, resourceGroup, clusterName, true); err != nil {
		return "", fmt.Errorf("error getting admin credentials: %w", err)
	}

	return fmt.Sprintf("Admin credentials for AKS cluster '%s' merged into kubeconfig.", clusterName), nil
}

// certificateRotateHandler handles the cluster_rotate_certs tool
func certificateRotateHandler(ctx context.Context, client interface{}, params map[string]interface{}) (string, error) {
	azureClient, err := toolset.ValidateAzureClient(client)
	if err != nil {
		return "", err
	}

	resourceGroup, err := paramutil.ExtractRequiredString(params, paramutil.ParamResourceGroup)
	if err != nil {
		return "", err
	}
	clusterName, err := paramutil.ExtractRequiredString(params, paramutil.ParamClusterName)
	if err != nil {
		return "", err
	}

	if err := azureClient.RotateCerts(ctx, resourceGroup, clusterName); err != nil {
		return "", fmt.Errorf("error rotating certificates: %w", err)
	}

	return fmt.Sprintf("Certificate rotation initiated for AKS cluster '%s'.", clusterName), nil
}
