package weather

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aksops/aks-mcp-server/pkg/toolset"
	"github.com/aksops/aks-mcp-server/pkg/toolset/paramutil"
)

// Toolset implements the National Weather Service toolset
type Toolset struct{}

var _ toolset.Toolset = (*Toolset)(nil)

// GetName returns the name of the toolset
func (t *Toolset) GetName() string {
	return "weather"
}

// GetDescription returns the description of the toolset
func (t *Toolset) GetDescription() string {
	return "United States weather alerts and forecasts from the National Weather Service"
}

// GetTools returns the tools provided by this toolset
func (t *Toolset) GetTools() []toolset.ServerTool {
	return []toolset.ServerTool{
		{
			Tool: mcp.Tool{
				Name:        "weather_alerts",
				Description: "Get active weather alerts for a US state",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"area": map[string]any{
							"type":        "string",
							"description": "Two-letter US state or marine area code, e.g. 'CA'",
						},
					},
					Required: []string{"area"},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint: paramutil.BoolPtr(true),
			},
			Handler: alertsHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "weather_forecast",
				Description: "Get the short-term weather forecast for a US coordinate",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"latitude": map[string]any{
							"type":        "number",
							"description": "Latitude of the location",
						},
						"longitude": map[string]any{
							"type":        "number",
							"description": "Longitude of the location",
						},
					},
					Required: []string{"latitude", "longitude"},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint: paramutil.BoolPtr(true),
			},
			Handler: forecastHandler,
		},
	}
}
