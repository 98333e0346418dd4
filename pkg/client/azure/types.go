package azure

// Cluster is the subset of `az aks list` output rendered by the server.
type Cluster struct {
	Name              string `json:"name"`
	ResourceGroup     string `json:"resourceGroup"`
	Location          string `json:"location"`
	KubernetesVersion string `json:"kubernetesVersion"`
	ProvisioningState string `json:"provisioningState"`
}

// NodePool is the subset of `az aks nodepool` output rendered by the server.
type NodePool struct {
	Name                string            `json:"name"`
	Mode                string            `json:"mode"`
	VMSize              string            `json:"vmSize"`
	Count               int64             `json:"count"`
	OSType              string            `json:"osType"`
	OrchestratorVersion string            `json:"orchestratorVersion"`
	ProvisioningState   string            `json:"provisioningState"`
	MaxPods             int64             `json:"maxPods"`
	NodeLabels          map[string]string `json:"nodeLabels"`
	NodeTaints          []string          `json:"nodeTaints"`
}

// Orchestrator is a single entry of `az aks get-versions`.
type Orchestrator struct {
	OrchestratorVersion string `json:"orchestratorVersion"`
	IsPreview           bool   `json:"isPreview"`
	Default             bool   `json:"default"`
}

// VersionProfile is the response of `az aks get-versions`.
type VersionProfile struct {
	Orchestrators []Orchestrator `json:"orchestrators"`
}

// Upgrade is an available upgrade target of a cluster.
type Upgrade struct {
	KubernetesVersion string `json:"kubernetesVersion"`
	IsPreview         bool   `json:"isPreview"`
}

// ControlPlaneProfile describes the control plane section of
// `az aks get-upgrades`.
type ControlPlaneProfile struct {
	KubernetesVersion string    `json:"kubernetesVersion"`
	Upgrades          []Upgrade `json:"upgrades"`
}

// UpgradeProfile is the response of `az aks get-upgrades`.
type UpgradeProfile struct {
	ControlPlaneProfile ControlPlaneProfile `json:"controlPlaneProfile"`
}

// MaintenanceSchedule is the schedule block of a maintenance configuration.
// Pointer fields distinguish "not set" from zero values.
type MaintenanceSchedule struct {
	ScheduleType  string `json:"scheduleType"`
	DayOfWeek     string `json:"dayOfWeek"`
	DayOfMonth    *int64 `json:"dayOfMonth"`
	StartHour     *int64 `json:"startHour"`
	DurationHours *int64 `json:"durationHours"`
}

// MaintenanceWindow wraps the schedule of a maintenance configuration.
type MaintenanceWindow struct {
	Schedule MaintenanceSchedule `json:"schedule"`
}

// MaintenanceProperties is the properties block of a maintenance configuration.
type MaintenanceProperties struct {
	MaintenanceWindow MaintenanceWindow `json:"maintenanceWindow"`
}

// MaintenanceConfiguration is a single entry of
// `az aks maintenanceconfiguration list`.
type MaintenanceConfiguration struct {
	Name       string                `json:"name"`
	Properties MaintenanceProperties `json:"properties"`
}

// CreateClusterOptions holds the optional parameters of cluster creation.
type CreateClusterOptions struct {
	NodeCount         int64
	NodeVMSize        string
	KubernetesVersion string
}

// UpdateClusterOptions holds the optional parameters of cluster update.
// Nil pointer fields are omitted from the constructed command.
type UpdateClusterOptions struct {
	KubernetesVersion  string
	AutoUpgradeChannel string
	EnableNodePublicIP *bool
	Tags               string
}

// AddNodePoolOptions holds the optional parameters of node pool creation.
type AddNodePoolOptions struct {
	NodeCount  int64
	NodeVMSize string
	Mode       string
}

// UpdateNodePoolOptions holds the optional parameters of node pool update.
// Nil pointer fields are omitted from the constructed command.
type UpdateNodePoolOptions struct {
	MaxPods                  *int64
	EnableNodePublicIP       *bool
	Labels                   string
	Tags                     string
	DisableClusterAutoscaler bool
	EnableClusterAutoscaler  bool
	MinCount                 *int64
	MaxCount                 *int64
}

// MaintenanceScheduleOptions holds the parameters of maintenance
// configuration creation.
type MaintenanceScheduleOptions struct {
	ScheduleType  string
	DayOfWeek     string
	DayOfMonth    *int64
	StartHour     *int64
	DurationHours *int64
}
