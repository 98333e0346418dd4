package nws

// AlertProperties holds the fields of an alert rendered by the server.
type AlertProperties struct {
	Event       string `json:"event"`
	AreaDesc    string `json:"areaDesc"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
	Instruction string `json:"instruction"`
}

// AlertFeature is a single GeoJSON feature of the alerts endpoint.
type AlertFeature struct {
	Properties AlertProperties `json:"properties"`
}

// AlertsResponse is the body of /alerts/active/area/{area}.
// Features is a pointer so a body without the key (nil) stays
// distinguishable from an explicit empty feature list.
type AlertsResponse struct {
	Features *[]AlertFeature `json:"features"`
}

// PointsProperties carries the forecast URL for a resolved grid point.
type PointsProperties struct {
	Forecast string `json:"forecast"`
}

// PointsResponse is the body of /points/{lat},{lon}.
type PointsResponse struct {
	Properties PointsProperties `json:"properties"`
}

// ForecastPeriod is a single period of a gridpoint forecast.
type ForecastPeriod struct {
	Name             string `json:"name"`
	Temperature      int    `json:"temperature"`
	TemperatureUnit  string `json:"temperatureUnit"`
	WindSpeed        string `json:"windSpeed"`
	WindDirection    string `json:"windDirection"`
	DetailedForecast string `json:"detailedForecast"`
}

// ForecastProperties holds the periods of a gridpoint forecast.
type ForecastProperties struct {
	Periods []ForecastPeriod `json:"periods"`
}

// ForecastResponse is the body of the gridpoint forecast endpoint.
type ForecastResponse struct {
	Properties ForecastProperties `json:"properties"`
}
