package aks

import (
	"context"
	"fmt"

	"github.com/aksops/aks-mcp-server/pkg/client/azure"
	"github.com/aksops/aks-mcp-server/pkg/toolset"
	"github.com/aksops/aks-mcp-server/pkg/toolset/paramutil"
)

// clusterListHandler handles the cluster_list tool
func clusterListHandler(ctx context.Context, client interface{}, params map[string]interface{}) (string, error) {
	azureClient, err := toolset.ValidateAzureClient(client)
	if err != nil {
		return "", err
	}

	resourceGroup := paramutil.ExtractOptionalString(params, paramutil.ParamResourceGroup)

	clusters, err := azureClient.ListClusters(ctx, resourceGroup)
	if err != nil {
		return "", fmt.Errorf("error listing AKS clusters: %w", err)
	}

	return formatClusterList(clusters), nil
}

// clusterShowHandler handles the cluster_show tool
func clusterShowHandler(ctx context.Context, client interface{}, params map[string]interface{}) (string, error) {
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

	cluster, err := azureClient.ShowCluster(ctx, resourceGroup, clusterName)
	if err != nil {
		return "", fmt.Errorf("error showing AKS cluster: %w", err)
	}

	return formatClusterDetails(cluster), nil
}

// clusterCreateHandler handles the cluster_create tool
func clusterCreateHandler(ctx context.Context, client interface{}, params map[string]interface{}) (string, error) {
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

	opts := azure.CreateClusterOptions{
		NodeCount:         paramutil.ExtractInt64(params, paramutil.ParamNodeCount, 1),
		NodeVMSize:        paramutil.ExtractOptionalStringWithDefault(params, paramutil.ParamNodeVMSize, "Standard_DS2_v2"),
		KubernetesVersion: paramutil.ExtractOptionalString(params, paramutil.ParamKubernetesVersion),
	}

	if err := azureClient.CreateCluster(ctx, resourceGroup, clusterName, opts); err != nil {
		return "", fmt.Errorf("error creating AKS cluster: %w", err)
	}

	return fmt.Sprintf("AKS cluster '%s' created successfully.", clusterName), nil
}

// clusterDeleteHandler handles the cluster_delete tool
func clusterDeleteHandler(ctx context.Context, client interface{}, params map[string]interface{}) (string, error) {
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

	if err := azureClient.DeleteCluster(ctx, resourceGroup, clusterName); err != nil {
		return "", fmt.Errorf("error deleting AKS cluster: %w", err)
	}

	return fmt.Sprintf("AKS cluster '%s' deletion initiated.", clusterName), nil
}

// clusterStartHandler handles the cluster_start tool
func clusterStartHandler(ctx context.Context, client interface{}, params map[string]interface{}) (string, error) {
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

	if err := azureClient.StartCluster(ctx, resourceGroup, clusterName); err != nil {
		return "", fmt.Errorf("error starting AKS cluster: %w", err)
	}

	return fmt.Sprintf("AKS cluster '%s' is starting.", clusterName), nil
}

// clusterStopHandler handles the cluster_stop tool
func clusterStopHandler(ctx context.Context, client interface{}, params map[string]interface{}) (string, error) {
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

	if err := azureClient.StopCluster(ctx, resourceGroup, clusterName); err != nil {
		return "", fmt.Errorf("error stopping AKS cluster: %w", err)
	}

	return fmt.Sprintf("AKS cluster '%s' is stopping.", clusterName), nil
}

// clusterScaleHandler handles the cluster_scale tool
func clusterScaleHandler(ctx context.Context, client interface{}, params map[string]interface{}) (string, error) {
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
	nodeCount, err := paramutil.ExtractRequiredInt64(params, paramutil.ParamNodeCount)
	if err != nil {
		return "", err
	}

	if err := azureClient.ScaleCluster(ctx, resourceGroup, clusterName, nodeCount); err != nil {
		return "", fmt.Errorf("error scaling AKS cluster: %w", err)
	}

	return fmt.Sprintf("AKS cluster '%s' scaled to %d nodes.", clusterName, nodeCount), nil
}

// clusterUpgradeHandler handles the cluster_upgrade tool
func clusterUpgradeHandler(ctx context.Context, client interface{}, params map[string]interface{}) (string, error) {
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
	kubernetesVersion, err := paramutil.ExtractRequiredString(params, paramutil.ParamKubernetesVersion)
	if err != nil {
		return "", err
	}

	if err := azureClient.UpgradeCluster(ctx, resourceGroup, clusterName, kubernetesVersion); err != nil {
		return "", fmt.Errorf("error upgrading AKS cluster: %w", err)
	}

	return fmt.Sprintf("AKS cluster '%s' upgrade to version %s initiated.", clusterName, kubernetesVersion), nil
}

// clusterUpdateHandler handles the cluster_update tool
func clusterUpdateHandler(ctx context.Context, client interface{}, params map[string]interface{}) (string, error) {
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

	opts := azure.UpdateClusterOptions{
		KubernetesVersion:  paramutil.ExtractOptionalString(params, paramutil.ParamKubernetesVersion),
		AutoUpgradeChannel: paramutil.ExtractOptionalString(params, "auto_upgrade_channel"),
		EnableNodePublicIP: paramutil.ExtractOptionalBool(params, "enable_node_public_ip"),
		Tags:               paramutil.ExtractOptionalString(params, paramutil.ParamTags),
	}

	if err := azureClient.UpdateCluster(ctx, resourceGroup, clusterName, opts); err != nil {
		return "", fmt.Errorf("error updating AKS cluster: %w", err)
	}

	return fmt.Sprintf("AKS cluster '%s' update initiated.", clusterName), nil
}

// clusterGetVersionsHandler handles the cluster_get_versions tool
func clusterGetVersionsHandler(ctx context.Context, client interface{}, params map[string]interface{}) (string, error) {
	azureClient, err := toolset.ValidateAzureClient(client)
	if err != nil {
		return "", err
	}

	location := paramutil.ExtractOptionalString(params, paramutil.ParamLocation)

	profile, err := azureClient.GetVersions(ctx, location)
	if err != nil {
		return "", fmt.Errorf("error getting AKS versions: %w", err)
	}

	return formatVersionProfile(profile), nil
}

// clusterGetUpgradesHandler handles the cluster_get_upgrades tool
func clusterGetUpgradesHandler(ctx context.Context, client interface{}, params map[string]interface{}) (string, error) {
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

	profile, err := azureClient.GetUpgrades(ctx, resourceGroup, clusterName)
	if err != nil {
		return "", fmt.Errorf("error getting upgrade profile: %w", err)
	}

	return formatUpgradeProfile(clusterName, profile), nil
}

// clusterCheckACRHandler handles the cluster_check_acr tool
func clusterCheckACRHandler(ctx context.Context, client interface{}, params map[string]interface{}) (string, error) {
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
	acrName, err := paramutil.ExtractRequiredString(params, paramutil.ParamACRName)
	if err != nil {
		return "", err
	}

	// The CLI's own accessibility report is the result
	report, err := azureClient.CheckACR(ctx, resourceGroup, clusterName, acrName)
	if err != nil {
		return "", fmt.Errorf("error checking ACR accessibility: %w", err)
	}

	return report, nil
}

// clusterCommandInvokeHandler handles the cluster_command_invoke tool
func clusterCommandInvokeHandler(ctx context.Context, client interface{}, params map[string]interface{}) (string, error) {
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
	command, err := paramutil.ExtractRequiredString(params, paramutil.ParamCommand)
	if err != nil {
		return "", err
	}

	output, err := azureClient.CommandInvoke(ctx, resourceGroup, clusterName, command)
	if err != nil {
		return "", fmt.Errorf("error executing cluster command: %w", err)
	}

	return output, nil
}

// clusterInstallCLIHandler handles the cluster_install_cli tool
func clusterInstallCLIHandler(ctx context.Context, client interface{}, _ map[string]interface{}) (string, error) {
	azureClient, err := toolset.ValidateAzureClient(client)
	if err != nil {
		return "", err
	}

	if err := azureClient.InstallCLI(ctx); err != nil {
		return "", fmt.Errorf("error installing kubectl and kubelogin: %w", err)
	}

	return "Successfully installed kubectl and kubelogin.", nil
}
