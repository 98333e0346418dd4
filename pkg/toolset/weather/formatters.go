package weather

import (
	"fmt"
	"strings"

	"github.com/aksops/aks-mcp-server/pkg/client/nws"
)

// maxForecastPeriods caps the rendered forecast; the NWS returns two weeks
// of half-day periods and most of them are noise for the caller.
const maxForecastPeriods = 5

// formatAlerts renders active alerts as labeled blocks. Fields the NWS left
// empty render with explicit placeholders so blocks keep a uniform shape.
func formatAlerts(alerts *nws.AlertsResponse) string {
	features := *alerts.Features
	if len(features) == 0 {
		return "No active alerts for this state."
	}

	blocks := make([]string, 0, len(features))
	for _, feature := range features {
		props := feature.Properties

		event := props.Event
		if event == "" {
			event = "Unknown"
		}
		area := props.AreaDesc
		if area == "" {
			area = "Unknown"
		}
		severity := props.Severity
		if severity == "" {
			severity = "Unknown"
		}
		description := props.Description
		if description == "" {
			description = "No description available"
		}
		instruction := props.Instruction
		if instruction == "" {
			instruction = "No specific instructions provided"
		}

		blocks = append(blocks, strings.Join([]string{
			fmt.Sprintf("Event: %s", event),
			fmt.Sprintf("Area: %s", area),
			fmt.Sprintf("Severity: %s", severity),
			fmt.Sprintf("Description: %s", description),
			fmt.Sprintf("Instructions: %s", instruction),
		}, "\n"))
	}
	return strings.Join(blocks, "\n---\n")
}

// formatForecast renders the first maxForecastPeriods periods of a forecast.
func formatForecast(forecast *nws.ForecastResponse) string {
	periods := forecast.Properties.Periods
	if len(periods) > maxForecastPeriods {
		periods = periods[:maxForecastPeriods]
	}

	blocks := make([]string, 0, len(periods))
	for _, period := range periods {
		blocks = append(blocks, strings.Join([]string{
			fmt.Sprintf("%s:", period.Name),
			fmt.Sprintf("Temperature: %d°%s", period.Temperature, period.TemperatureUnit),
			fmt.Sprintf("Wind: %s %s", period.WindSpeed, period.WindDirection),
			fmt.Sprintf("Forecast: %s", period.DetailedForecast),
		}, "\n"))
	}
	return strings.Join(blocks, "\n---\n")
}
