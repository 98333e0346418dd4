package paramutil

import "errors"

// Parameter name constants shared across toolsets.
const (
	ParamResourceGroup     = "resource_group"
	ParamClusterName       = "cluster_name"
	ParamNodepoolName      = "nodepool_name"
	ParamConfigName        = "config_name"
	ParamNodeCount         = "node_count"
	ParamNodeVMSize        = "node_vm_size"
	ParamKubernetesVersion = "kubernetes_version"
	ParamLocation          = "location"
	ParamAddons            = "addons"
	ParamCommand           = "command"
	ParamACRName           = "acr_name"
	ParamMode              = "mode"
	ParamTags              = "tags"
	ParamLabels            = "labels"
	ParamScheduleType      = "schedule_type"
	ParamDayOfWeek         = "day_of_week"
	ParamDayOfMonth        = "day_of_month"
	ParamStartHour         = "start_hour"
	ParamDurationHours     = "duration_hours"
	ParamOutput            = "output"
	ParamNamespace         = "namespace"
	ParamFilter            = "filter"
	ParamBackend           = "backend"
	ParamProvider          = "provider"
	ParamAPIKey            = "api_key"
	ParamArea              = "area"
	ParamLatitude          = "latitude"
	ParamLongitude         = "longitude"
	ParamFormat            = "format"
)

// Error definitions
var (
	ErrMissingParameter = errors.New("missing required parameter")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrValidation       = errors.New("validation failed")
)
