// Package azure wraps the Azure CLI (`az aks`) behind a typed client.
// Every method builds the argument vector deterministically from its inputs
// and delegates execution to a runner.Runner, so tests can substitute a
// recording runner and assert on the exact tokens.
package azure

import (
	"context"
	"strconv"

	"github.com/aksops/aks-mcp-server/pkg/client/runner"
)

// DefaultBinary is the Azure CLI binary resolved from PATH when no explicit
// path is configured.
const DefaultBinary = "az"

// Client invokes `az aks` subcommands through a Runner.
type Client struct {
	runner runner.Runner
	binary string
}

// NewClient creates an Azure CLI client. An empty binary selects DefaultBinary.
func NewClient(r runner.Runner, binary string) *Client {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Client{runner: r, binary: binary}
}

func (c *Client) invocation(args []string, env map[string]string) runner.Invocation {
	return runner.Invocation{Program: c.binary, Args: args, Env: env}
}

func (c *Client) run(ctx context.Context, args ...string) error {
	_, err := runner.Output(ctx, c.runner, c.invocation(args, nil))
	return err
}

func (c *Client) runJSON(ctx context.Context, out interface{}, args ...string) error {
	return runner.OutputJSON(ctx, c.runner, c.invocation(args, nil), out)
}

// ListClusters lists AKS clusters, optionally scoped to a resource group.
func (c *Client) ListClusters(ctx context.Context, resourceGroup string) ([]Cluster, error) {
	args := []string{"aks", "list"}
	if resourceGroup != "" {
		args = append(args, "--resource-group", resourceGroup)
	}
	var clusters []Cluster
	if err := c.runJSON(ctx, &clusters, args...); err != nil {
		return nil, err
	}
	return clusters, nil
}

// ShowCluster returns the full cluster document as returned by the CLI.
func (c *Client) ShowCluster(ctx context.Context, resourceGroup, clusterName string) (map[string]interface{}, error) {
	var cluster map[string]interface{}
	err := c.runJSON(ctx, &cluster,
		"aks", "show",
		"--name", clusterName,
		"--resource-group", resourceGroup,
	)
	if err != nil {
		return nil, err
	}
	return cluster, nil
}

// CreateCluster creates a new AKS cluster.
func (c *Client) CreateCluster(ctx context.Context, resourceGroup, clusterName string, opts CreateClusterOptions) error {
	args := []string{
		"aks", "create",
		"--resource-group", resourceGroup,
		"--name", clusterName,
		"--node-count", strconv.FormatInt(opts.NodeCount, 10),
		"--node-vm-size", opts.NodeVMSize,
		"--generate-ssh-keys",
	}
	if opts.KubernetesVersion != "" {
		args = append(args, "--kubernetes-version", opts.KubernetesVersion)
	}
	return c.run(ctx, args...)
}

// DeleteCluster deletes an AKS cluster without interactive confirmation.
func (c *Client) DeleteCluster(ctx context.Context, resourceGroup, clusterName string) error {
	return c.run(ctx,
		"aks", "delete",
		"--resource-group", resourceGroup,
		"--name", clusterName,
		"--yes",
	)
}

// StartCluster starts a previously stopped cluster.
func (c *Client) StartCluster(ctx context.Context, resourceGroup, clusterName string) error {
	return c.run(ctx,
		"aks", "start",
		"--resource-group", resourceGroup,
		"--name", clusterName,
	)
}

// StopCluster stops a running cluster.
func (c *Client) StopCluster(ctx context.Context, resourceGroup, clusterName string) error {
	return c.run(ctx,
		"aks", "stop",
		"--resource-group", resourceGroup,
		"--name", clusterName,
	)
}

// ScaleCluster changes the node count of the default node pool.
func (c *Client) ScaleCluster(ctx context.Context, resourceGroup, clusterName string, nodeCount int64) error {
	return c.run(ctx,
		"aks", "scale",
		"--resource-group", resourceGroup,
		"--name", clusterName,
		"--node-count", strconv.FormatInt(nodeCount, 10),
	)
}

// UpgradeCluster upgrades the cluster control plane to the given version.
func (c *Client) UpgradeCluster(ctx context.Context, resourceGroup, clusterName, kubernetesVersion string) error {
	return c.run(ctx,
		"aks", "upgrade",
		"--resource-group", resourceGroup,
		"--name", clusterName,
		"--kubernetes-version", kubernetesVersion,
	)
}

// UpdateCluster updates cluster properties. Interactive prompts are disabled
// through the AZURE_CORE_NO_PROMPT environment overlay since the server runs
// detached from any terminal.
func (c *Client) UpdateCluster(ctx context.Context, resourceGroup, clusterName string, opts UpdateClusterOptions) error {
	args := []string{
		"aks", "update",
		"--resource-group", resourceGroup,
		"--name", clusterName,
		"--yes",
	}
	if opts.KubernetesVersion != "" {
		args = append(args, "--kubernetes-version", opts.KubernetesVersion)
	}
	if opts.AutoUpgradeChannel != "" {
		args = append(args, "--auto-upgrade-channel", opts.AutoUpgradeChannel)
	}
	if opts.EnableNodePublicIP != nil {
		// az update subcommands expect value-form boolean tokens
		args = append(args, "--enable-node-public-ip", strconv.FormatBool(*opts.EnableNodePublicIP))
	}
	if opts.Tags != "" {
		args = append(args, "--tags", opts.Tags)
	}

	_, err := runner.Output(ctx, c.runner, c.invocation(args, map[string]string{
		"AZURE_CORE_NO_PROMPT": "true",
	}))
	return err
}

// GetVersions returns the Kubernetes versions available for AKS, optionally
// scoped to a location.
func (c *Client) GetVersions(ctx context.Context, location string) (*VersionProfile, error) {
	args := []string{"aks", "get-versions"}
	if location != "" {
		args = append(args, "--location", location)
	}
	var profile VersionProfile
	if err := c.runJSON(ctx, &profile, args...); err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetUpgrades returns the upgrade profile of a cluster.
func (c *Client) GetUpgrades(ctx context.Context, resourceGroup, clusterName string) (*UpgradeProfile, error) {
	var profile UpgradeProfile
	err := c.runJSON(ctx, &profile,
		"aks", "get-upgrades",
		"--resource-group", resourceGroup,
		"--name", clusterName,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetCredentials merges cluster credentials into the local kubeconfig,
// overwriting existing entries. With admin set it fetches the cluster admin
// credential instead of the user one.
func (c *Client) GetCredentials(ctx context.Context, resourceGroup, clusterName string, admin bool) error {
	args := []string{
		"aks", "get-credentials",
		"--resource-group", resourceGroup,
		"--name", clusterName,
	}
	if admin {
		args = append(args, "--admin")
	}
	args = append(args, "--overwrite-existing")
	return c.run(ctx, args...)
}

// RotateCerts initiates certificate and key rotation on a cluster.
func (c *Client) RotateCerts(ctx context.Context, resourceGroup, clusterName string) error {
	return c.run(ctx,
		"aks", "rotate-certs",
		"--resource-group", resourceGroup,
		"--name", clusterName,
	)
}

// InstallCLI downloads and installs kubectl and kubelogin.
func (c *Client) InstallCLI(ctx context.Context) error {
	return c.run(ctx, "aks", "install-cli")
}

// CheckACR validates that a container registry is reachable from the cluster.
// The CLI's own report is returned verbatim.
func (c *Client) CheckACR(ctx context.Context, resourceGroup, clusterName, acrName string) (string, error) {
	return runner.Output(ctx, c.runner, c.invocation([]string{
		"aks", "check-acr",
		"--resource-group", resourceGroup,
		"--name", clusterName,
		"--acr", acrName,
	}, nil))
}

// CommandInvoke runs an administrative command inside the cluster and returns
// its output verbatim.
func (c *Client) CommandInvoke(ctx context.Context, resourceGroup, clusterName, command string) (string, error) {
	return runner.Output(ctx, c.runner, c.invocation([]string{
		"aks", "command", "invoke",
		"--resource-group", resourceGroup,
		"--name", clusterName,
		"--command", command,
	}, nil))
}

// EnableAddons enables a comma-separated set of add-ons on a cluster.
func (c *Client) EnableAddons(ctx context.Context, resourceGroup, clusterName, addons string) error {
	return c.run(ctx,
		"aks", "enable-addons",
		"--resource-group", resourceGroup,
		"--name", clusterName,
		"--addons", addons,
	)
}

// DisableAddons disables a comma-separated set of add-ons on a cluster.
func (c *Client) DisableAddons(ctx context.Context, resourceGroup, clusterName, addons string) error {
	return c.run(ctx,
		"aks", "disable-addons",
		"--resource-group", resourceGroup,
		"--name", clusterName,
		"--addons", addons,
	)
}

// ListNodePools lists the node pools of a cluster.
func (c *Client) ListNodePools(ctx context.Context, resourceGroup, clusterName string) ([]NodePool, error) {
	var pools []NodePool
	err := c.runJSON(ctx, &pools,
		"aks", "nodepool", "list",
		"--resource-group", resourceGroup,
		"--cluster-name", clusterName,
	)
	if err != nil {
		return nil, err
	}
	return pools, nil
}

// ShowNodePool returns the details of a single node pool.
func (c *Client) ShowNodePool(ctx context.Context, resourceGroup, clusterName, nodepoolName string) (*NodePool, error) {
	var pool NodePool
	err := c.runJSON(ctx, &pool,
		"aks", "nodepool", "show",
		"--resource-group", resourceGroup,
		"--cluster-name", clusterName,
		"--name", nodepoolName,
	)
	if err != nil {
		return nil, err
	}
	return &pool, nil
}

// AddNodePool adds a new node pool to a cluster.
func (c *Client) AddNodePool(ctx context.Context, resourceGroup, clusterName, nodepoolName string, opts AddNodePoolOptions) error {
	return c.run(ctx,
		"aks", "nodepool", "add",
		"--resource-group", resourceGroup,
		"--cluster-name", clusterName,
		"--name", nodepoolName,
		"--node-count", strconv.FormatInt(opts.NodeCount, 10),
		"--node-vm-size", opts.NodeVMSize,
		"--mode", opts.Mode,
	)
}

// DeleteNodePool deletes a node pool from a cluster.
func (c *Client) DeleteNodePool(ctx context.Context, resourceGroup, clusterName, nodepoolName string) error {
	return c.run(ctx,
		"aks", "nodepool", "delete",
		"--resource-group", resourceGroup,
		"--cluster-name", clusterName,
		"--name", nodepoolName,
	)
}

// ScaleNodePool changes the node count of a node pool.
func (c *Client) ScaleNodePool(ctx context.Context, resourceGroup, clusterName, nodepoolName string, nodeCount int64) error {
	return c.run(ctx,
		"aks", "nodepool", "scale",
		"--resource-group", resourceGroup,
		"--cluster-name", clusterName,
		"--name", nodepoolName,
		"--node-count", strconv.FormatInt(nodeCount, 10),
	)
}

// UpgradeNodePool upgrades a node pool to the given Kubernetes version.
func (c *Client) UpgradeNodePool(ctx context.Context, resourceGroup, clusterName, nodepoolName, kubernetesVersion string) error {
	return c.run(ctx,
		"aks", "nodepool", "upgrade",
		"--resource-group", resourceGroup,
		"--cluster-name", clusterName,
		"--name", nodepoolName,
		"--kubernetes-version", kubernetesVersion,
	)
}

// UpdateNodePool updates node pool properties. Callers enabling the cluster
// autoscaler must supply both MinCount and MaxCount; that precondition is
// enforced at the tool layer before any process is spawned.
func (c *Client) UpdateNodePool(ctx context.Context, resourceGroup, clusterName, nodepoolName string, opts UpdateNodePoolOptions) error {
	args := []string{
		"aks", "nodepool", "update",
		"--resource-group", resourceGroup,
		"--cluster-name", clusterName,
		"--name", nodepoolName,
		"--yes",
	}
	if opts.MaxPods != nil {
		args = append(args, "--max-pods", strconv.FormatInt(*opts.MaxPods, 10))
	}
	if opts.EnableNodePublicIP != nil {
		args = append(args, "--enable-node-public-ip", strconv.FormatBool(*opts.EnableNodePublicIP))
	}
	if opts.Labels != "" {
		args = append(args, "--labels", opts.Labels)
	}
	if opts.Tags != "" {
		args = append(args, "--tags", opts.Tags)
	}
	if opts.DisableClusterAutoscaler {
		args = append(args, "--disable-cluster-autoscaler")
	}
	if opts.EnableClusterAutoscaler {
		args = append(args, "--enable-cluster-autoscaler")
		if opts.MinCount != nil {
			args = append(args, "--min-count", strconv.FormatInt(*opts.MinCount, 10))
		}
		if opts.MaxCount != nil {
			args = append(args, "--max-count", strconv.FormatInt(*opts.MaxCount, 10))
		}
	}
	return c.run(ctx, args...)
}

// CreateMaintenanceConfiguration creates a maintenance window for a cluster.
func (c *Client) CreateMaintenanceConfiguration(ctx context.Context, resourceGroup, clusterName, configName string, opts MaintenanceScheduleOptions) error {
	args := []string{
		"aks", "maintenanceconfiguration", "create",
		"--resource-group", resourceGroup,
		"--cluster-name", clusterName,
		"--name", configName,
		"--schedule-type", opts.ScheduleType,
	}
	if opts.DayOfWeek != "" {
		args = append(args, "--day-of-week", opts.DayOfWeek)
	}
	if opts.DayOfMonth != nil {
		args = append(args, "--day-of-month", strconv.FormatInt(*opts.DayOfMonth, 10))
	}
	if opts.StartHour != nil {
		args = append(args, "--start-hour", strconv.FormatInt(*opts.StartHour, 10))
	}
	if opts.DurationHours != nil {
		args = append(args, "--duration-hours", strconv.FormatInt(*opts.DurationHours, 10))
	}
	return c.run(ctx, args...)
}

// ListMaintenanceConfigurations lists the maintenance windows of a cluster.
func (c *Client) ListMaintenanceConfigurations(ctx context.Context, resourceGroup, clusterName string) ([]MaintenanceConfiguration, error) {
	var configs []MaintenanceConfiguration
	err := c.runJSON(ctx, &configs,
		"aks", "maintenanceconfiguration", "list",
		"--resource-group", resourceGroup,
		"--cluster-name", clusterName,
	)
	if err != nil {
		return nil, err
	}
	return configs, nil
}

// DeleteMaintenanceConfiguration deletes a maintenance window.
func (c *Client) DeleteMaintenanceConfiguration(ctx context.Context, resourceGroup, clusterName, configName string) error {
	return c.run(ctx,
		"aks", "maintenanceconfiguration", "delete",
		"--resource-group", resourceGroup,
		"--cluster-name", clusterName,
		"--name", configName,
		"--yes",
	)
}
