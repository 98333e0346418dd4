package aks

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aksops/aks-mcp-server/pkg/client/azure"
)

const blockSeparator = "---"

// formatClusterList renders cluster summaries as labeled field blocks with a
// fixed field order, one block per cluster, separated by "---" lines.
func formatClusterList(clusters []azure.Cluster) string {
	if len(clusters) == 0 {
		return "No AKS clusters found."
	}

	var lines []string
	for _, cluster := range clusters {
		lines = append(lines,
			fmt.Sprintf("Name: %s", cluster.Name),
			fmt.Sprintf("Resource Group: %s", cluster.ResourceGroup),
			fmt.Sprintf("Location: %s", cluster.Location),
			fmt.Sprintf("Kubernetes Version: %s", cluster.KubernetesVersion),
			fmt.Sprintf("Status: %s", cluster.ProvisioningState),
			blockSeparator,
		)
	}
	return strings.Join(lines, "\n")
}

// formatClusterDetails renders the full cluster document as sorted key/value
// lines. Sorting keeps repeated reads byte-identical; Go maps have no stable
// iteration order.
func formatClusterDetails(cluster map[string]interface{}) string {
	if len(cluster) == 0 {
		return "No AKS cluster found."
	}

	keys := make([]string, 0, len(cluster))
	for key := range cluster {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var lines []string
	for _, key := range keys {
		lines = append(lines, fmt.Sprintf("%s: %v", key, cluster[key]), blockSeparator)
	}
	return strings.Join(lines, "\n")
}

// formatVersionProfile renders the available Kubernetes versions with their
// DEFAULT/PREVIEW status tags joined in parentheses.
func formatVersionProfile(profile *azure.VersionProfile) string {
	if profile == nil || len(profile.Orchestrators) == 0 {
		return "No Kubernetes versions found."
	}

	lines := []string{"Available Kubernetes versions:"}
	for _, orchestrator := range profile.Orchestrators {
		var status []string
		if orchestrator.Default {
			status = append(status, "DEFAULT")
		}
		if orchestrator.IsPreview {
			status = append(status, "PREVIEW")
		}

		statusStr := ""
		if len(status) > 0 {
			statusStr = fmt.Sprintf(" (%s)", strings.Join(status, ", "))
		}
		lines = append(lines, fmt.Sprintf("- %s%s", orchestrator.OrchestratorVersion, statusStr))
	}
	return strings.Join(lines, "\n")
}

// formatUpgradeProfile renders the current control plane version and its
// available upgrade targets.
func formatUpgradeProfile(clusterName string, profile *azure.UpgradeProfile) string {
	currentVersion := profile.ControlPlaneProfile.KubernetesVersion
	if currentVersion == "" {
		currentVersion = "Unknown"
	}

	lines := []string{
		fmt.Sprintf("AKS cluster '%s' upgrade profile:", clusterName),
		fmt.Sprintf("Current Kubernetes version: %s", currentVersion),
	}

	if len(profile.ControlPlaneProfile.Upgrades) == 0 {
		lines = append(lines, "No upgrades available.")
		return strings.Join(lines, "\n")
	}

	lines = append(lines, "Available upgrade versions:")
	for _, upgrade := range profile.ControlPlaneProfile.Upgrades {
		version := upgrade.KubernetesVersion
		if version == "" {
			version = "Unknown"
		}
		status := ""
		if upgrade.IsPreview {
			status = " (PREVIEW)"
		}
		lines = append(lines, fmt.Sprintf("- %s%s", version, status))
	}
	return strings.Join(lines, "\n")
}

// formatNodePoolList renders node pool summaries for a cluster.
func formatNodePoolList(clusterName string, pools []azure.NodePool) string {
	if len(pools) == 0 {
		return fmt.Sprintf("No node pools found in AKS cluster '%s'.", clusterName)
	}

	lines := []string{fmt.Sprintf("Node pools in AKS cluster '%s':", clusterName)}
	for _, pool := range pools {
		lines = append(lines,
			fmt.Sprintf("- Name: %s", pool.Name),
			fmt.Sprintf("  Mode: %s", pool.Mode),
			fmt.Sprintf("  VM Size: %s", pool.VMSize),
			fmt.Sprintf("  Node Count: %d", pool.Count),
			fmt.Sprintf("  OS: %s", pool.OSType),
			fmt.Sprintf("  Kubernetes Version: %s", pool.OrchestratorVersion),
			fmt.Sprintf("  Status: %s", pool.ProvisioningState),
			blockSeparator,
		)
	}
	return strings.Join(lines, "\n")
}

// formatNodePoolDetails renders a single node pool. Labels and taints are
// rendered only when present and non-empty; labels are sorted for stable
// output.
func formatNodePoolDetails(nodepoolName string, pool *azure.NodePool) string {
	lines := []string{
		fmt.Sprintf("Node pool '%s' details:", nodepoolName),
		fmt.Sprintf("Mode: %s", pool.Mode),
		fmt.Sprintf("VM Size: %s", pool.VMSize),
		fmt.Sprintf("Node Count: %d", pool.Count),
		fmt.Sprintf("OS Type: %s", pool.OSType),
		fmt.Sprintf("Kubernetes Version: %s", pool.OrchestratorVersion),
		fmt.Sprintf("Status: %s", pool.ProvisioningState),
		fmt.Sprintf("Max Pods: %d", pool.MaxPods),
	}

	if len(pool.NodeLabels) > 0 {
		lines = append(lines, "Labels:")
		keys := make([]string, 0, len(pool.NodeLabels))
		for key := range pool.NodeLabels {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			lines = append(lines, fmt.Sprintf("  %s: %s", key, pool.NodeLabels[key]))
		}
	}

	if len(pool.NodeTaints) > 0 {
		lines = append(lines, "Taints:")
		for _, taint := range pool.NodeTaints {
			lines = append(lines, fmt.Sprintf("  %s", taint))
		}
	}

	return strings.Join(lines, "\n")
}

// formatMaintenanceConfigurations renders the maintenance windows of a
// cluster. Schedule fields that the CLI did not set render as "Not set";
// day-of-week/day-of-month appear only for the schedule types that use them.
func formatMaintenanceConfigurations(clusterName string, configs []azure.MaintenanceConfiguration) string {
	if len(configs) == 0 {
		return fmt.Sprintf("No maintenance configurations found for AKS cluster '%s'.", clusterName)
	}

	lines := []string{fmt.Sprintf("Maintenance configurations for cluster '%s':", clusterName)}
	for _, config := range configs {
		schedule := config.Properties.MaintenanceWindow.Schedule

		lines = append(lines,
			fmt.Sprintf("Name: %s", config.Name),
			fmt.Sprintf("  Schedule Type: %s", schedule.ScheduleType),
		)
		if schedule.DayOfWeek != "" {
			lines = append(lines, fmt.Sprintf("  Day of Week: %s", schedule.DayOfWeek))
		}
		if schedule.DayOfMonth != nil {
			lines = append(lines, fmt.Sprintf("  Day of Month: %d", *schedule.DayOfMonth))
		}
		lines = append(lines,
			fmt.Sprintf("  Start Hour (UTC): %s", formatOptionalInt(schedule.StartHour)),
			fmt.Sprintf("  Duration (hours): %s", formatOptionalInt(schedule.DurationHours)),
			blockSeparator,
		)
	}
	return strings.Join(lines, "\n")
}

func formatOptionalInt(value *int64) string {
	if value == nil {
		return "Not set"
	}
	return fmt.Sprintf("%d", *value)
}
