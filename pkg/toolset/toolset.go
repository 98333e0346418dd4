package toolset

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aksops/aks-mcp-server/pkg/client/azure"
	"github.com/aksops/aks-mcp-server/pkg/client/k8sgpt"
	"github.com/aksops/aks-mcp-server/pkg/client/nws"
	"github.com/aksops/aks-mcp-server/pkg/config"
)

// Client validation errors.
var (
	ErrAzureNotConfigured   = errors.New("azure cli client not configured")
	ErrK8sgptNotConfigured  = errors.New("k8sgpt client not configured")
	ErrWeatherNotConfigured = errors.New("weather client not configured")
)

// Toolset defines the interface for a set of MCP tools.
type Toolset interface {
	// GetName returns the name of the toolset.
	GetName() string

	// GetDescription returns the description of the toolset.
	GetDescription() string

	// GetTools returns the tools provided by this toolset.
	GetTools() []ServerTool
}

// ToolAnnotations provides additional metadata for tools.
type ToolAnnotations struct {
	// ReadOnlyHint indicates if the tool is read-only.
	ReadOnlyHint *bool

	// DestructiveHint indicates if the tool performs destructive operations.
	DestructiveHint *bool
}

// ServerTool represents an MCP tool with its metadata and handler.
// This is a wrapper around mcp.Tool that includes additional server-specific
// information.
type ServerTool struct {
	// Tool is the MCP tool definition.
	Tool mcp.Tool

	// Annotations provides additional metadata about the tool.
	Annotations ToolAnnotations

	// Handler is the function that handles tool calls.
	Handler ToolHandler
}

// ToolHandler is the function signature for handling tool calls. Handlers
// return the formatted result text; any error is converted to error text at
// the registry boundary and never propagates past it.
type ToolHandler func(ctx context.Context, client interface{}, params map[string]interface{}) (string, error)

// CombinedClient bundles the external collaborators handlers may need.
// All clients are stateless per call, so a single instance is shared by
// every concurrent invocation.
type CombinedClient struct {
	Azure   *azure.Client
	K8sgpt  *k8sgpt.Client
	Weather *nws.Client
	Config  *config.StaticConfig
}

// ValidateAzureClient extracts the Azure CLI client from the opaque client
// parameter.
func ValidateAzureClient(client interface{}) (*azure.Client, error) {
	combined, ok := client.(*CombinedClient)
	if !ok || combined.Azure == nil {
		return nil, ErrAzureNotConfigured
	}
	return combined.Azure, nil
}

// ValidateK8sgptClient extracts the k8sgpt client from the opaque client
// parameter.
func ValidateK8sgptClient(client interface{}) (*k8sgpt.Client, error) {
	combined, ok := client.(*CombinedClient)
	if !ok || combined.K8sgpt == nil {
		return nil, ErrK8sgptNotConfigured
	}
	return combined.K8sgpt, nil
}

// ValidateWeatherClient extracts the weather client from the opaque client
// parameter.
func ValidateWeatherClient(client interface{}) (*nws.Client, error) {
	combined, ok := client.(*CombinedClient)
	if !ok || combined.Weather == nil {
		return nil, ErrWeatherNotConfigured
	}
	return combined.Weather, nil
}
