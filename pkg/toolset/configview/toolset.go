package configview

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aksops/aks-mcp-server/pkg/output"
	"github.com/aksops/aks-mcp-server/pkg/toolset"
	"github.com/aksops/aks-mcp-server/pkg/toolset/paramutil"
)

// ErrConfigNotAvailable is returned when the server configuration was not
// attached to the shared client.
var ErrConfigNotAvailable = errors.New("server configuration not available")

// Toolset implements the config toolset
type Toolset struct{}

var _ toolset.Toolset = (*Toolset)(nil)

// GetName returns the name of the toolset
func (t *Toolset) GetName() string {
	return "config"
}

// GetDescription returns the description of the toolset
func (t *Toolset) GetDescription() string {
	return "View the effective server configuration"
}

// GetTools returns the tools provided by this toolset
func (t *Toolset) GetTools() []toolset.ServerTool {
	return []toolset.ServerTool{
		{
			Tool: mcp.Tool{
				Name:        "configuration_view",
				Description: "Show the configuration the server is currently running with",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"format": map[string]any{
							"type":        "string",
							"description": "Output format",
							"enum":        []string{"json", "yaml"},
							"default":     "json",
						},
					},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint: paramutil.BoolPtr(true),
			},
			Handler: configurationViewHandler,
		},
	}
}

// configurationViewHandler handles the configuration_view tool
func configurationViewHandler(_ context.Context, client interface{}, params map[string]interface{}) (string, error) {
	combined, ok := client.(*toolset.CombinedClient)
	if !ok || combined.Config == nil {
		return "", ErrConfigNotAvailable
	}

	format := paramutil.ExtractOptionalStringWithDefault(params, paramutil.ParamFormat, "json")
	formatter := output.NewFormatter()

	switch strings.ToLower(format) {
	case "json":
		return formatter.FormatJSON(combined.Config)
	case "yaml":
		return formatter.FormatYAML(combined.Config)
	default:
		return "", fmt.Errorf("%w: format must be json or yaml", paramutil.ErrInvalidParameter)
	}
}
