package aks

import (
	"context"
	"fmt"

	"github.com/aksops/aks-mcp-server/pkg/client/azure"
	"github.com/aksops/aks-mcp-server/pkg/toolset"
	"github.com/aksops/aks-mcp-server/pkg/toolset/paramutil"
)

// nodepoolListHandler handles the nodepool_list tool
func nodepoolListHandler(ctx context.Context, client interface{}, params map[string]interface{}) (string, error) {
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

	pools, err := azureClient.ListNodePools(ctx, resourceGroup, clusterName)
	if err != nil {
		return "", fmt.Errorf("error listing node pools: %w", err)
	}

	return formatNodePoolList(clusterName, pools), nil
}

// nodepoolShowHandler handles the nodepool_show tool
func nodepoolShowHandler(ctx context.Context, client interface{}, params map[string]interface{}) (string, error) {
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
	nodepoolName, err := paramutil.ExtractRequiredString(params, paramutil.ParamNodepoolName)
	if err != nil {
		return "", err
	}

	pool, err := azureClient.ShowNodePool(ctx, resourceGroup, clusterName, nodepoolName)
	if err != nil {
		return "", fmt.Errorf("error showing node pool: %w", err)
	}

	return formatNodePoolDetails(nodepoolName, pool), nil
}

// nodepoolAddHandler handles the nodepool_add tool
func nodepoolAddHandler(ctx context.Context, client interface{}, params map[string]interface{}) (string, error) {
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
	nodepoolName, err := paramutil.ExtractRequiredString(params, paramutil.ParamNodepoolName)
	if err != nil {
		return "", err
	}

	opts := azure.AddNodePoolOptions{
		NodeCount:  paramutil.ExtractInt64(params, paramutil.ParamNodeCount, 1),
		NodeVMSize: paramutil.ExtractOptionalStringWithDefault(params, paramutil.ParamNodeVMSize, "Standard_DS2_v2"),
		Mode:       paramutil.ExtractOptionalStringWithDefault(params, paramutil.ParamMode, "User"),
	}

	if err := azureClient.AddNodePool(ctx, resourceGroup, clusterName, nodepoolName, opts); err != nil {
		return "", fmt.Errorf("error adding node pool: %w", err)
	}

	return fmt.Sprintf("Node pool '%s' added to AKS cluster '%s' successfully.", nodepoolName, clusterName), nil
}

// nodepoolDeleteHandler handles the nodepool_delete tool
func nodepoolDeleteHandler(ctx context.Context, client interface{}, params map[string]interface{}) (string, error) {
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
	nodepoolName, err := paramutil.ExtractRequiredString(params, paramutil.ParamNodepoolName)
	if err != nil {
		return "", err
	}

	if err := azureClient.DeleteNodePool(ctx, resourceGroup, clusterName, nodepoolName); err != nil {
		return "", fmt.Errorf("error deleting node pool: %w", err)
	}

	return fmt.Sprintf("Node pool '%s' deletion initiated in AKS cluster '%s'.", nodepoolName, clusterName), nil
}

// nodepoolScaleHandler handles the nodepool_scale tool
func nodepoolScaleHandler(ctx context.Context, client interface{}, params map[string]interface{}) (string, error) {
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
	nodepoolName, err := paramutil.ExtractRequiredString(params, paramutil.ParamNodepoolName)
	if err != nil {
		return "", err
	}
	nodeCount, err := paramutil.ExtractRequiredInt64(params, paramutil.ParamNodeCount)
	if err != nil {
		return "", err
	}

	if err := azureClient.ScaleNodePool(ctx, resourceGroup, clusterName, nodepoolName, nodeCount); err != nil {
		return "", fmt.Errorf("error scaling node pool: %w", err)
	}

	return fmt.Sprintf("Node pool '%s' scaled to %d nodes.", nodepoolName, nodeCount), nil
}

// nodepoolUpgradeHandler handles the nodepool_upgrade tool
func nodepoolUpgradeHandler(ctx context.Context, client interface{}, params map[string]interface{}) (string, error) {
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
	nodepoolName, err := paramutil.ExtractRequiredString(params, paramutil.ParamNodepoolName)
	if err != nil {
		return "", err
	}
	kubernetesVersion, err := paramutil.ExtractRequiredString(params, paramutil.ParamKubernetesVersion)
	if err != nil {
		return "", err
	}

	if err := azureClient.UpgradeNodePool(ctx, resourceGroup, clusterName, nodepoolName, kubernetesVersion); err != nil {
		return "", fmt.Errorf("error upgrading node pool: %w", err)
	}

	return fmt.Sprintf("Node pool '%s' upgrade to version %s initiated.", nodepoolName, kubernetesVersion), nil
}

// nodepoolUpdateHandler handles the nodepool_update tool.
// Enabling the cluster autoscaler without both min_count and max_count is
// rejected before any process is spawned.
func nodepoolUpdateHandler(ctx context.Context, client interface{}, params map[string]interface{}) (string, error) {
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
	nodepoolName, err := paramutil.ExtractRequiredString(params, paramutil.ParamNodepoolName)
	if err != nil {
		return "", err
	}

	opts := azure.UpdateNodePoolOptions{
		MaxPods:                  paramutil.ExtractOptionalInt64(params, "max_pods"),
		EnableNodePublicIP:       paramutil.ExtractOptionalBool(params, "enable_node_public_ip"),
		Labels:                   paramutil.ExtractOptionalString(params, paramutil.ParamLabels),
		Tags:                     paramutil.ExtractOptionalString(params, paramutil.ParamTags),
		EnableClusterAutoscaler:  paramutil.ExtractBool(params, "enable_cluster_autoscaler", false),
		DisableClusterAutoscaler: paramutil.ExtractBool(params, "disable_cluster_autoscaler", false),
		MinCount:                 paramutil.ExtractOptionalInt64(params, "min_count"),
		MaxCount:                 paramutil.ExtractOptionalInt64(params, "max_count"),
	}

	if opts.EnableClusterAutoscaler && (opts.MinCount == nil || opts.MaxCount == nil) {
		return "", fmt.Errorf("%w: min_count and max_count are required when enabling cluster autoscaler", paramutil.ErrValidation)
	}

	if err := azureClient.UpdateNodePool(ctx, resourceGroup, clusterName, nodepoolName, opts); err != nil {
		return "", fmt.Errorf("error updating node pool: %w", err)
	}

	return fmt.Sprintf("Node pool '%s' update initiated.", nodepoolName), nil
}
