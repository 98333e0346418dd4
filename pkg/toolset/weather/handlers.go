package weather

import (
	"context"

	"github.com/aksops/aks-mcp-server/pkg/toolset"
	"github.com/aksops/aks-mcp-server/pkg/toolset/paramutil"
)

// alertsHandler handles the weather_alerts tool
func alertsHandler(ctx context.Context, client interface{}, params map[string]interface{}) (string, error) {
	weatherClient, err := toolset.ValidateWeatherClient(client)
	if err != nil {
		return "", err
	}

	area, err := paramutil.ExtractRequiredString(params, paramutil.ParamArea)
	if err != nil {
		return "", err
	}

	alerts, ok := weatherClient.ActiveAlerts(ctx, area)
	if !ok || alerts.Features == nil {
		return "Unable to fetch alerts or no alerts found.", nil
	}

	return formatAlerts(alerts), nil
}

// forecastHandler handles the weather_forecast tool.
// The forecast takes two hops: the points endpoint resolves the coordinate
// to a grid-specific forecast URL, which is then fetched as-is.
func forecastHandler(ctx context.Context, client interface{}, params map[string]interface{}) (string, error) {
	weatherClient, err := toolset.ValidateWeatherClient(client)
	if err != nil {
		return "", err
	}

	latitude, err := paramutil.ExtractRequiredFloat64(params, paramutil.ParamLatitude)
	if err != nil {
		return "", err
	}
	longitude, err := paramutil.ExtractRequiredFloat64(params, paramutil.ParamLongitude)
	if err != nil {
		return "", err
	}

	points, ok := weatherClient.Points(ctx, latitude, longitude)
	if !ok {
		return "Unable to fetch forecast data for this location.", nil
	}

	forecast, ok := weatherClient.Forecast(ctx, points.Properties.Forecast)
	if !ok {
		return "Unable to fetch detailed forecast.", nil
	}

	return formatForecast(forecast), nil
}
