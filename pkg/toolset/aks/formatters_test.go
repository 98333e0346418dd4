package aks

import (
	"strings"
	"testing"

	"github.com/aksops/aks-mcp-server/pkg/client/azure"
)

func TestFormatClusterDetailsSorted(t *testing.T) {
	if got := formatClusterDetails(nil); got != "No AKS cluster found." {
		t.Errorf("Expected empty sentence, got %q", got)
	}

	cluster := map[string]interface{}{
		"name":     "prod",
		"location": "eastus",
	}
	result := formatClusterDetails(cluster)
	if strings.Index(result, "location:") > strings.Index(result, "name:") {
		t.Errorf("Keys should be sorted, got %q", result)
	}
}

func TestFormatVersionProfile(t *testing.T) {
	if got := formatVersionProfile(nil); got != "No Kubernetes versions found." {
		t.Errorf("Expected empty sentence, got %q", got)
	}

	profile := &azure.VersionProfile{
		Orchestrators: []azure.Orchestrator{
			{OrchestratorVersion: "1.29.8"},
			{OrchestratorVersion: "1.30.3", Default: true},
			{OrchestratorVersion: "1.31.0", IsPreview: true},
		},
	}

	want := strings.Join([]string{
		"Available Kubernetes versions:",
		"- 1.29.8",
		"- 1.30.3 (DEFAULT)",
		"- 1.31.0 (PREVIEW)",
	}, "\n")
	if got := formatVersionProfile(profile); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestFormatUpgradeProfile(t *testing.T) {
	profile := &azure.UpgradeProfile{}
	profile.ControlPlaneProfile.KubernetesVersion = "1.29.8"

	result := formatUpgradeProfile("prod", profile)
	if !strings.Contains(result, "Current Kubernetes version: 1.29.8") {
		t.Errorf("Missing current version, got %q", result)
	}
	if !strings.Contains(result, "No upgrades available.") {
		t.Errorf("Missing no-upgrades sentence, got %q", result)
	}

	profile.ControlPlaneProfile.Upgrades = []azure.Upgrade{
		{KubernetesVersion: "1.30.3"},
		{KubernetesVersion: "1.31.0", IsPreview: true},
	}
	result = formatUpgradeProfile("prod", profile)
	if !strings.Contains(result, "- 1.30.3\n- 1.31.0 (PREVIEW)") {
		t.Errorf("Unexpected upgrade lines, got %q", result)
	}
}

func TestFormatUpgradeProfileUnknownVersion(t *testing.T) {
	result := formatUpgradeProfile("prod", &azure.UpgradeProfile{})
	if !strings.Contains(result, "Current Kubernetes version: Unknown") {
		t.Errorf("Empty version should render as Unknown, got %q", result)
	}
}

func TestFormatNodePoolDetails(t *testing.T) {
	pool := &azure.NodePool{
		Name:                "workers",
		Mode:                "User",
		VMSize:              "Standard_DS2_v2",
		Count:               3,
		OSType:              "Linux",
		OrchestratorVersion: "1.30.3",
		ProvisioningState:   "Succeeded",
		MaxPods:             110,
	}

	result := formatNodePoolDetails("workers", pool)
	if strings.Contains(result, "Labels:") || strings.Contains(result, "Taints:") {
		t.Errorf("Empty labels/taints should be omitted, got %q", result)
	}

	pool.NodeLabels = map[string]string{"tier": "backend", "env": "prod"}
	pool.NodeTaints = []string{"dedicated=gpu:NoSchedule"}
	result = formatNodePoolDetails("workers", pool)
	if strings.Index(result, "env: prod") > strings.Index(result, "tier: backend") {
		t.Errorf("Labels should be sorted, got %q", result)
	}
	if !strings.Contains(result, "dedicated=gpu:NoSchedule") {
		t.Errorf("Missing taint, got %q", result)
	}
}

func TestFormatMaintenanceConfigurations(t *testing.T) {
	if got := formatMaintenanceConfigurations("prod", nil); got != "No maintenance configurations found for AKS cluster 'prod'." {
		t.Errorf("Expected empty sentence, got %q", got)
	}

	day := int64(15)
	config := azure.MaintenanceConfiguration{Name: "monthly"}
	config.Properties.MaintenanceWindow.Schedule.ScheduleType = "AbsoluteMonthly"
	config.Properties.MaintenanceWindow.Schedule.DayOfMonth = &day

	result := formatMaintenanceConfigurations("prod", []azure.MaintenanceConfiguration{config})
	if !strings.Contains(result, "Day of Month: 15") {
		t.Errorf("Missing day of month, got %q", result)
	}
	if strings.Contains(result, "Day of Week:") {
		t.Errorf("Unset day of week should be omitted, got %q", result)
	}
	if !strings.Contains(result, "Start Hour (UTC): Not set") {
		t.Errorf("Unset start hour should render as Not set, got %q", result)
	}
}
