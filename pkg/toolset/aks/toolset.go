package aks

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aksops/aks-mcp-server/pkg/toolset"
	"github.com/aksops/aks-mcp-server/pkg/toolset/paramutil"
)

// Toolset implements the AKS-specific toolset
type Toolset struct{}

var _ toolset.Toolset = (*Toolset)(nil)

// GetName returns the name of the toolset
func (t *Toolset) GetName() string {
	return "aks"
}

// GetDescription returns the description of the toolset
func (t *Toolset) GetDescription() string {
	return "Azure Kubernetes Service operations for managing clusters, node pools, and maintenance windows"
}

// GetTools returns the tools provided by this toolset
func (t *Toolset) GetTools() []toolset.ServerTool {
	var tools []toolset.ServerTool
	tools = append(tools, clusterTools()...)
	tools = append(tools, nodepoolTools()...)
	tools = append(tools, maintenanceTools()...)
	return tools
}

func clusterTools() []toolset.ServerTool {
	return []toolset.ServerTool{
		{
			Tool: mcp.Tool{
				Name:        "cluster_list",
				Description: "List AKS clusters in the subscription or a resource group",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"resource_group": map[string]any{
							"type":        "string",
							"description": "Resource group to scope the listing to (all groups when omitted)",
							"default":     "",
						},
					},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint: paramutil.BoolPtr(true),
			},
			Handler: clusterListHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "cluster_show",
				Description: "Show the full details of an AKS cluster",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"resource_group": map[string]any{
							"type":        "string",
							"description": "Resource group containing the cluster",
						},
						"cluster_name": map[string]any{
							"type":        "string",
							"description": "Name of the AKS cluster",
						},
					},
					Required: []string{"resource_group", "cluster_name"},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint: paramutil.BoolPtr(true),
			},
			Handler: clusterShowHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "cluster_create",
				Description: "Create a new AKS cluster",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"resource_group": map[string]any{
							"type":        "string",
							"description": "Resource group to create the cluster in",
						},
						"cluster_name": map[string]any{
							"type":        "string",
							"description": "Name of the new AKS cluster",
						},
						"node_count": map[string]any{
							"type":        "integer",
							"description": "Number of nodes in the default node pool",
							"default":     1,
						},
						"node_vm_size": map[string]any{
							"type":        "string",
							"description": "VM size for the nodes",
							"default":     "Standard_DS2_v2",
						},
						"kubernetes_version": map[string]any{
							"type":        "string",
							"description": "Kubernetes version (region default when omitted)",
							"default":     "",
						},
					},
					Required: []string{"resource_group", "cluster_name"},
				},
			},
			Handler: clusterCreateHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "cluster_delete",
				Description: "Delete an AKS cluster",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"resource_group": map[string]any{
							"type":        "string",
							"description": "Resource group containing the cluster",
						},
						"cluster_name": map[string]any{
							"type":        "string",
							"description": "Name of the AKS cluster to delete",
						},
					},
					Required: []string{"resource_group", "cluster_name"},
				},
			},
			Annotations: toolset.ToolAnnotations{
				DestructiveHint: paramutil.BoolPtr(true),
			},
			Handler: clusterDeleteHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "cluster_start",
				Description: "Start a stopped AKS cluster",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"resource_group": map[string]any{
							"type":        "string",
							"description": "Resource group containing the cluster",
						},
						"cluster_name": map[string]any{
							"type":        "string",
							"description": "Name of the AKS cluster",
						},
					},
					Required: []string{"resource_group", "cluster_name"},
				},
			},
			Handler: clusterStartHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "cluster_stop",
				Description: "Stop a running AKS cluster",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"resource_group": map[string]any{
							"type":        "string",
							"description": "Resource group containing the cluster",
						},
						"cluster_name": map[string]any{
							"type":        "string",
							"description": "Name of the AKS cluster",
						},
					},
					Required: []string{"resource_group", "cluster_name"},
				},
			},
			Handler: clusterStopHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "cluster_scale",
				Description: "Scale the default node pool of an AKS cluster",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"resource_group": map[string]any{
							"type":        "string",
							"description": "Resource group containing the cluster",
						},
						"cluster_name": map[string]any{
							"type":        "string",
							"description": "Name of the AKS cluster",
						},
						"node_count": map[string]any{
							"type":        "integer",
							"description": "Target node count",
						},
					},
					Required: []string{"resource_group", "cluster_name", "node_count"},
				},
			},
			Handler: clusterScaleHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "cluster_upgrade",
				Description: "Upgrade an AKS cluster control plane to a new Kubernetes version",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"resource_group": map[string]any{
							"type":        "string",
							"description": "Resource group containing the cluster",
						},
						"cluster_name": map[string]any{
							"type":        "string",
							"description": "Name of the AKS cluster",
						},
						"kubernetes_version": map[string]any{
							"type":        "string",
							"description": "Target Kubernetes version (use cluster_get_upgrades to see available versions)",
						},
					},
					Required: []string{"resource_group", "cluster_name", "kubernetes_version"},
				},
			},
			Handler: clusterUpgradeHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "cluster_update",
				Description: "Update properties of an AKS cluster",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"resource_group": map[string]any{
							"type":        "string",
							"description": "Resource group containing the cluster",
						},
						"cluster_name": map[string]any{
							"type":        "string",
							"description": "Name of the AKS cluster",
						},
						"kubernetes_version": map[string]any{
							"type":        "string",
							"description": "Target Kubernetes version",
							"default":     "",
						},
						"auto_upgrade_channel": map[string]any{
							"type":        "string",
							"description": "Auto-upgrade channel: none, patch, stable, rapid, or node-image",
							"default":     "",
						},
						"enable_node_public_ip": map[string]any{
							"type":        "boolean",
							"description": "Enable or disable public IPs on nodes",
						},
						"tags": map[string]any{
							"type":        "string",
							"description": "Space-separated tags in key=value form",
							"default":     "",
						},
					},
					Required: []string{"resource_group", "cluster_name"},
				},
			},
			Handler: clusterUpdateHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "cluster_get_versions",
				Description: "List the Kubernetes versions available for AKS",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"location": map[string]any{
							"type":        "string",
							"description": "Azure location to query versions for",
							"default":     "",
						},
					},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint: paramutil.BoolPtr(true),
			},
			Handler: clusterGetVersionsHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "cluster_get_upgrades",
				Description: "Show the upgrade profile of an AKS cluster",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"resource_group": map[string]any{
							"type":        "string",
							"description": "Resource group containing the cluster",
						},
						"cluster_name": map[string]any{
							"type":        "string",
							"description": "Name of the AKS cluster",
						},
					},
					Required: []string{"resource_group", "cluster_name"},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint: paramutil.BoolPtr(true),
			},
			Handler: clusterGetUpgradesHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "cluster_get_credentials",
				Description: "Merge user credentials for an AKS cluster into the local kubeconfig",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"resource_group": map[string]any{
							"type":        "string",
							"description": "Resource group containing the cluster",
						},
						"cluster_name": map[string]any{
							"type":        "string",
							"description": "Name of the AKS cluster",
						},
					},
					Required: []string{"resource_group", "cluster_name"},
				},
			},
			Handler: credentialsGetHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "cluster_get_admin_credentials",
				Description: "Merge admin credentials for an AKS cluster into the local kubeconfig",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"resource_group": map[string]any{
							"type":        "string",
							"description": "Resource group containing the cluster",
						},
						"cluster_name": map[string]any{
							"type":        "string",
							"description": "Name of the AKS cluster",
						},
					},
					Required: []string{"resource_group", "cluster_name"},
				},
			},
			Handler: adminCredentialsGetHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "cluster_rotate_certs",
				Description: "Rotate the certificates and keys of an AKS cluster",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"resource_group": map[string]any{
							"type":        "string",
							"description": "Resource group containing the cluster",
						},
						"cluster_name": map[string]any{
							"type":        "string",
							"description": "Name of the AKS cluster",
						},
					},
					Required: []string{"resource_group", "cluster_name"},
				},
			},
			Annotations: toolset.ToolAnnotations{
				DestructiveHint: paramutil.BoolPtr(true),
			},
			Handler: certificateRotateHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "cluster_check_acr",
				Description: "Check that an Azure Container Registry is reachable from an AKS cluster",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"resource_group": map[string]any{
							"type":        "string",
							"description": "Resource group containing the cluster",
						},
						"cluster_name": map[string]any{
							"type":        "string",
							"description": "Name of the AKS cluster",
						},
						"acr_name": map[string]any{
							"type":        "string",
							"description": "Name or login server of the container registry",
						},
					},
					Required: []string{"resource_group", "cluster_name", "acr_name"},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint: paramutil.BoolPtr(true),
			},
			Handler: clusterCheckACRHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "cluster_command_invoke",
				Description: "Run a shell command inside an AKS cluster through the managed command relay",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"resource_group": map[string]any{
							"type":        "string",
							"description": "Resource group containing the cluster",
						},
						"cluster_name": map[string]any{
							"type":        "string",
							"description": "Name of the AKS cluster",
						},
						"command": map[string]any{
							"type":        "string",
							"description": "Command to run, e.g. 'kubectl get pods -A'",
						},
					},
					Required: []string{"resource_group", "cluster_name", "command"},
				},
			},
			Handler: clusterCommandInvokeHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "cluster_install_cli",
				Description: "Install kubectl and kubelogin on the server host",
				InputSchema: mcp.ToolInputSchema{
					Type:       "object",
					Properties: map[string]any{},
				},
			},
			Handler: clusterInstallCLIHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "addons_enable",
				Description: "Enable add-ons on an AKS cluster",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"resource_group": map[string]any{
							"type":        "string",
							"description": "Resource group containing the cluster",
						},
						"cluster_name": map[string]any{
							"type":        "string",
							"description": "Name of the AKS cluster",
						},
						"addons": map[string]any{
							"type":        "string",
							"description": "Comma-separated add-on names, e.g. 'monitoring,azure-policy'",
						},
					},
					Required: []string{"resource_group", "cluster_name", "addons"},
				},
			},
			Handler: addonsEnableHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "addons_disable",
				Description: "Disable add-ons on an AKS cluster",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"resource_group": map[string]any{
							"type":        "string",
							"description": "Resource group containing the cluster",
						},
						"cluster_name": map[string]any{
							"type":        "string",
							"description": "Name of the AKS cluster",
						},
						"addons": map[string]any{
							"type":        "string",
							"description": "Comma-separated add-on names to disable",
						},
					},
					Required: []string{"resource_group", "cluster_name", "addons"},
				},
			},
			Handler: addonsDisableHandler,
		},
	}
}

func nodepoolTools() []toolset.ServerTool {
	return []toolset.ServerTool{
		{
			Tool: mcp.Tool{
				Name:        "nodepool_list",
				Description: "List the node pools of an AKS cluster",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"resource_group": map[string]any{
							"type":        "string",
							"description": "Resource group containing the cluster",
						},
						"cluster_name": map[string]any{
							"type":        "string",
							"description": "Name of the AKS cluster",
						},
					},
					Required: []string{"resource_group", "cluster_name"},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint: paramutil.BoolPtr(true),
			},
			Handler: nodepoolListHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "nodepool_show",
				Description: "Show the details of a node pool",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"resource_group": map[string]any{
							"type":        "string",
							"description": "Resource group containing the cluster",
						},
						"cluster_name": map[string]any{
							"type":        "string",
							"description": "Name of the AKS cluster",
						},
						"nodepool_name": map[string]any{
							"type":        "string",
							"description": "Name of the node pool",
						},
					},
					Required: []string{"resource_group", "cluster_name", "nodepool_name"},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint: paramutil.BoolPtr(true),
			},
			Handler: nodepoolShowHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "nodepool_add",
				Description: "Add a node pool to an AKS cluster",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"resource_group": map[string]any{
							"type":        "string",
							"description": "Resource group containing the cluster",
						},
						"cluster_name": map[string]any{
							"type":        "string",
							"description": "Name of the AKS cluster",
						},
						"nodepool_name": map[string]any{
							"type":        "string",
							"description": "Name of the new node pool",
						},
						"node_count": map[string]any{
							"type":        "integer",
							"description": "Number of nodes in the pool",
							"default":     1,
						},
						"node_vm_size": map[string]any{
							"type":        "string",
							"description": "VM size for the nodes",
							"default":     "Standard_DS2_v2",
						},
						"mode": map[string]any{
							"type":        "string",
							"description": "Pool mode: System or User",
							"enum":        []string{"System", "User"},
							"default":     "User",
						},
					},
					Required: []string{"resource_group", "cluster_name", "nodepool_name"},
				},
			},
			Handler: nodepoolAddHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "nodepool_delete",
				Description: "Delete a node pool from an AKS cluster",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"resource_group": map[string]any{
							"type":        "string",
							"description": "Resource group containing the cluster",
						},
						"cluster_name": map[string]any{
							"type":        "string",
							"description": "Name of the AKS cluster",
						},
						"nodepool_name": map[string]any{
							"type":        "string",
							"description": "Name of the node pool to delete",
						},
					},
					Required: []string{"resource_group", "cluster_name", "nodepool_name"},
				},
			},
			Annotations: toolset.ToolAnnotations{
				DestructiveHint: paramutil.BoolPtr(true),
			},
			Handler: nodepoolDeleteHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "nodepool_scale",
				Description: "Scale a node pool to a new node count",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"resource_group": map[string]any{
							"type":        "string",
							"description": "Resource group containing the cluster",
						},
						"cluster_name": map[string]any{
							"type":        "string",
							"description": "Name of the AKS cluster",
						},
						"nodepool_name": map[string]any{
							"type":        "string",
							"description": "Name of the node pool",
						},
						"node_count": map[string]any{
							"type":        "integer",
							"description": "Target node count",
						},
					},
					Required: []string{"resource_group", "cluster_name", "nodepool_name", "node_count"},
				},
			},
			Handler: nodepoolScaleHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "nodepool_upgrade",
				Description: "Upgrade a node pool to a new Kubernetes version",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"resource_group": map[string]any{
							"type":        "string",
							"description": "Resource group containing the cluster",
						},
						"cluster_name": map[string]any{
							"type":        "string",
							"description": "Name of the AKS cluster",
						},
						"nodepool_name": map[string]any{
							"type":        "string",
							"description": "Name of the node pool",
						},
						"kubernetes_version": map[string]any{
							"type":        "string",
							"description": "Target Kubernetes version",
						},
					},
					Required: []string{"resource_group", "cluster_name", "nodepool_name", "kubernetes_version"},
				},
			},
			Handler: nodepoolUpgradeHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "nodepool_update",
				Description: "Update node pool properties, including the cluster autoscaler",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"resource_group": map[string]any{
							"type":        "string",
							"description": "Resource group containing the cluster",
						},
						"cluster_name": map[string]any{
							"type":        "string",
							"description": "Name of the AKS cluster",
						},
						"nodepool_name": map[string]any{
							"type":        "string",
							"description": "Name of the node pool",
						},
						"max_pods": map[string]any{
							"type":        "integer",
							"description": "Maximum pods per node",
						},
						"enable_node_public_ip": map[string]any{
							"type":        "boolean",
							"description": "Enable or disable public IPs on nodes",
						},
						"labels": map[string]any{
							"type":        "string",
							"description": "Space-separated node labels in key=value form",
							"default":     "",
						},
						"tags": map[string]any{
							"type":        "string",
							"description": "Space-separated tags in key=value form",
							"default":     "",
						},
						"enable_cluster_autoscaler": map[string]any{
							"type":        "boolean",
							"description": "Enable the cluster autoscaler (requires min_count and max_count)",
							"default":     false,
						},
						"disable_cluster_autoscaler": map[string]any{
							"type":        "boolean",
							"description": "Disable the cluster autoscaler",
							"default":     false,
						},
						"min_count": map[string]any{
							"type":        "integer",
							"description": "Minimum node count for the autoscaler",
						},
						"max_count": map[string]any{
							"type":        "integer",
							"description": "Maximum node count for the autoscaler",
						},
					},
					Required: []string{"resource_group", "cluster_name", "nodepool_name"},
				},
			},
			Handler: nodepoolUpdateHandler,
		},
	}
}

func maintenanceTools() []toolset.ServerTool {
	return []toolset.ServerTool{
		{
			Tool: mcp.Tool{
				Name:        "maintenance_create",
				Description: "Create a maintenance configuration for an AKS cluster",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"resource_group": map[string]any{
							"type":        "string",
							"description": "Resource group containing the cluster",
						},
						"cluster_name": map[string]any{
							"type":        "string",
							"description": "Name of the AKS cluster",
						},
						"config_name": map[string]any{
							"type":        "string",
							"description": "Name of the maintenance configuration",
						},
						"schedule_type": map[string]any{
							"type":        "string",
							"description": "Schedule type",
							"enum":        []string{"Daily", "Weekly", "AbsoluteMonthly", "RelativeMonthly"},
						},
						"day_of_week": map[string]any{
							"type":        "string",
							"description": "Day of week for Weekly schedules, e.g. 'Saturday'",
							"default":     "",
						},
						"day_of_month": map[string]any{
							"type":        "integer",
							"description": "Day of month for AbsoluteMonthly schedules (1-28)",
						},
						"start_hour": map[string]any{
							"type":        "integer",
							"description": "Start hour of the window in UTC (0-23)",
						},
						"duration_hours": map[string]any{
							"type":        "integer",
							"description": "Length of the window in hours",
							"default":     4,
						},
					},
					Required: []string{"resource_group", "cluster_name", "config_name", "schedule_type"},
				},
			},
			Handler: maintenanceCreateHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "maintenance_list",
				Description: "List the maintenance configurations of an AKS cluster",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"resource_group": map[string]any{
							"type":        "string",
							"description": "Resource group containing the cluster",
						},
						"cluster_name": map[string]any{
							"type":        "string",
							"description": "Name of the AKS cluster",
						},
					},
					Required: []string{"resource_group", "cluster_name"},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint: paramutil.BoolPtr(true),
			},
			Handler: maintenanceListHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "maintenance_delete",
				Description: "Delete a maintenance configuration from an AKS cluster",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"resource_group": map[string]any{
							"type":        "string",
							"description": "Resource group containing the cluster",
						},
						"cluster_name": map[string]any{
							"type":        "string",
							"description": "Name of the AKS cluster",
						},
						"config_name": map[string]any{
							"type":        "string",
							"description": "Name of the maintenance configuration to delete",
						},
					},
					Required: []string{"resource_group", "cluster_name", "config_name"},
				},
			},
			Annotations: toolset.ToolAnnotations{
				DestructiveHint: paramutil.BoolPtr(true),
			},
			Handler: maintenanceDeleteHandler,
		},
	}
}
