package k8sgpt

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aksops/aks-mcp-server/pkg/toolset"
	"github.com/aksops/aks-mcp-server/pkg/toolset/paramutil"
)

// Toolset implements the k8sgpt cluster diagnosis toolset
type Toolset struct{}

var _ toolset.Toolset = (*Toolset)(nil)

// GetName returns the name of the toolset
func (t *Toolset) GetName() string {
	return "k8sgpt"
}

// GetDescription returns the description of the toolset
func (t *Toolset) GetDescription() string {
	return "Cluster diagnosis operations backed by the k8sgpt CLI"
}

// GetTools returns the tools provided by this toolset
func (t *Toolset) GetTools() []toolset.ServerTool {
	return []toolset.ServerTool{
		{
			Tool: mcp.Tool{
				Name:        "k8sgpt_analyze",
				Description: "Analyze the current cluster for workload issues, optionally with AI explanations",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"explain": map[string]any{
							"type":        "boolean",
							"description": "Ask the configured AI backend to explain each finding",
							"default":     true,
						},
						"filter": map[string]any{
							"type":        "string",
							"description": "Restrict the analysis to a resource filter, e.g. 'Pod' (use k8sgpt_filters_list to see available filters)",
							"default":     "",
						},
						"namespace": map[string]any{
							"type":        "string",
							"description": "Restrict the analysis to a namespace (all namespaces when omitted)",
							"default":     "",
						},
						"with_doc": map[string]any{
							"type":        "boolean",
							"description": "Include links to Kubernetes documentation in explanations",
							"default":     false,
						},
						"output": map[string]any{
							"type":        "string",
							"description": "Output format",
							"enum":        []string{"text", "json", "yaml"},
							"default":     "text",
						},
						"anonymize": map[string]any{
							"type":        "boolean",
							"description": "Mask resource names before sending them to the AI backend",
							"default":     false,
						},
						"backend": map[string]any{
							"type":        "string",
							"description": "AI backend to use for explanations (configured default when omitted)",
							"default":     "",
						},
					},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint: paramutil.BoolPtr(true),
			},
			Handler: analyzeHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "k8sgpt_auth_configure",
				Description: "Configure an AI backend credential for k8sgpt",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"provider": map[string]any{
							"type":        "string",
							"description": "Backend provider name, e.g. 'openai' or 'azureopenai'",
							"default":     "azureopenai",
						},
						"api_key": map[string]any{
							"type":        "string",
							"description": "API key for the provider (manual instructions are returned when omitted)",
							"default":     "",
						},
					},
				},
			},
			Handler: authConfigureHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "k8sgpt_filters_list",
				Description: "List the resource filters available for analysis",
				InputSchema: mcp.ToolInputSchema{
					Type:       "object",
					Properties: map[string]any{},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint: paramutil.BoolPtr(true),
			},
			Handler: filtersListHandler,
		},
	}
}
