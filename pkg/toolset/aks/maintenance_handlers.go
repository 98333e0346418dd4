package aks

import (
	"context"
	"fmt"

	"github.com/aksops/aks-mcp-server/pkg/client/azure"
	"github.com/aksops/aks-mcp-server/pkg/toolset"
	"github.com/aksops/aks-mcp-server/pkg/toolset/paramutil"
)

// maintenanceCreateHandler handles the maintenance_create tool.
// Weekly schedules require day_of_week, AbsoluteMonthly schedules require
// day_of_month; both are checked before the CLI is invoked so the error
// surfaces immediately instead of after a slow failed az call.
func maintenanceCreateHandler(ctx context.Context, client interface{}, params map[string]interface{}) (string, error) {
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
	configName, err := paramutil.ExtractRequiredString(params, paramutil.ParamConfigName)
	if err != nil {
		return "", err
	}
	scheduleType, err := paramutil.ExtractRequiredString(params, paramutil.ParamScheduleType)
	if err != nil {
		return "", err
	}

	durationHours := paramutil.ExtractInt64(params, paramutil.ParamDurationHours, 4)
	opts := azure.MaintenanceScheduleOptions{
		ScheduleType:  scheduleType,
		DayOfWeek:     paramutil.ExtractOptionalString(params, paramutil.ParamDayOfWeek),
		DayOfMonth:    paramutil.ExtractOptionalInt64(params, paramutil.ParamDayOfMonth),
		StartHour:     paramutil.ExtractOptionalInt64(params, paramutil.ParamStartHour),
		DurationHours: &durationHours,
	}

	switch scheduleType {
	case "Weekly":
		if opts.DayOfWeek == "" {
			return "", fmt.Errorf("%w: day_of_week is required for Weekly schedules", paramutil.ErrValidation)
		}
	case "AbsoluteMonthly":
		if opts.DayOfMonth == nil {
			return "", fmt.Errorf("%w: day_of_month is required for AbsoluteMonthly schedules", paramutil.ErrValidation)
		}
	}

	if err := azureClient.CreateMaintenanceConfiguration(ctx, resourceGroup, clusterName, configName, opts); err != nil {
		return "", fmt.Errorf("error creating maintenance configuration: %w", err)
	}

	return fmt.Sprintf("Maintenance configuration '%s' created for AKS cluster '%s'.", configName, clusterName), nil
}

// maintenanceListHandler handles the maintenance_list tool
func maintenanceListHandler(ctx context.Context, client interface{}, params map[string]interface{}) (string, error) {
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

	configs, err := azureClient.ListMaintenanceConfigurations(ctx, resourceGroup, clusterName)
	if err != nil {
		return "", fmt.Errorf("error listing maintenance configurations: %w", err)
	}

	return formatMaintenanceConfigurations(clusterName, configs), nil
}

// maintenanceDeleteHandler handles the maintenance_delete tool
func maintenanceDeleteHandler(ctx context.Context, client interface{}, params map[string]interface{}) (string, error) {
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
	configName, err := paramutil.ExtractRequiredString(params, paramutil.ParamConfigName)
	if err != nil {
		return "", err
	}

	if err := azureClient.DeleteMaintenanceConfiguration(ctx, resourceGroup, clusterName, configName); err != nil {
		return "", fmt.Errorf("error deleting maintenance configuration: %w", err)
	}

	return fmt.Sprintf("Maintenance configuration '%s' deleted from AKS cluster '%s'.", configName, clusterName), nil
}
