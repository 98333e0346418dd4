package aks

import (
	"context"
	"fmt"

	"github.com/aksops/aks-mcp-server/pkg/toolset"
	"github.com/aksops/aks-mcp-server/pkg/toolset/paramutil"
)

// addonsEnableHandler handles the cluster_enable_addons tool
func addonsEnableHandler(ctx context.Context, client interface{}, params map[string]interface{}) (string, error) {
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
	addons, err := paramutil.ExtractRequiredString(params, paramutil.ParamAddons)
	if err != nil {
		return "", err
	}

	if err := azureClient.EnableAddons(ctx, resourceGroup, clusterName, addons); err != nil {
		return "", fmt.Errorf("error enabling addons: %w", err)
	}

	return fmt.Sprintf("Addons '%s' enabled on AKS cluster '%s'.", addons, clusterName), nil
}

// addonsDisableHandler handles the cluster_disable_addons tool
func addonsDisableHandler(ctx context.Context, client interface{}, params map[string]interface{}) (string, error) {
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
	addons, err := paramutil.ExtractRequiredString(params, paramutil.ParamAddons)
	if err != nil {
		return "", err
	}

	if err := azureClient.DisableAddons(ctx, resourceGroup, clusterName, addons); err != nil {
		return "", fmt.Errorf("error disabling addons: %w", err)
	}

	return fmt.Sprintf("Addons '%s' disabled on AKS cluster '%s'.", addons, clusterName), nil
}
