// Package mcp wires the toolset catalogs into a Model Context Protocol
// server and exposes the stdio, SSE, and streamable HTTP transports.
package mcp

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aksops/aks-mcp-server/pkg/client/azure"
	"github.com/aksops/aks-mcp-server/pkg/client/k8sgpt"
	"github.com/aksops/aks-mcp-server/pkg/client/nws"
	"github.com/aksops/aks-mcp-server/pkg/client/runner"
	"github.com/aksops/aks-mcp-server/pkg/config"
	"github.com/aksops/aks-mcp-server/pkg/logging"
	"github.com/aksops/aks-mcp-server/pkg/toolset"
	aksToolset "github.com/aksops/aks-mcp-server/pkg/toolset/aks"
	"github.com/aksops/aks-mcp-server/pkg/toolset/configview"
	k8sgptToolset "github.com/aksops/aks-mcp-server/pkg/toolset/k8sgpt"
	weatherToolset "github.com/aksops/aks-mcp-server/pkg/toolset/weather"
	"github.com/aksops/aks-mcp-server/pkg/version"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const authorizationKey contextKey = "Authorization"

// Configuration wraps the static configuration for the MCP server.
type Configuration struct {
	*config.StaticConfig
}

// Server represents the MCP server
type Server struct {
	configuration  *Configuration
	server         *server.MCPServer
	enabledTools   []string
	combinedClient *toolset.CombinedClient
}

// NewServer creates a new MCP server with the given configuration.
// Logging is expected to be initialized by the caller before this point.
func NewServer(configuration Configuration) (*Server, error) {
	serverOptions := []server.ServerOption{
		server.WithToolCapabilities(true),
		server.WithLogging(),
	}

	execRunner := runner.ExecRunner{}

	s := &Server{
		configuration: &configuration,
		server:        server.NewMCPServer(version.BinaryName, version.Version, serverOptions...),
		combinedClient: &toolset.CombinedClient{
			Azure:   azure.NewClient(execRunner, configuration.AzPath),
			K8sgpt:  k8sgpt.NewClient(execRunner, configuration.K8sgptPath),
			Weather: nws.NewClient(),
			Config:  configuration.StaticConfig,
		},
	}

	if err := s.registerTools(); err != nil {
		return nil, err
	}

	return s, nil
}

// registerTools registers all available tools based on configuration
func (s *Server) registerTools() error {
	availableToolsets := map[string]toolset.Toolset{
		"aks":     &aksToolset.Toolset{},
		"k8sgpt":  &k8sgptToolset.Toolset{},
		"weather": &weatherToolset.Toolset{},
		"config":  &configview.Toolset{},
	}

	enabledToolsets := make([]toolset.Toolset, 0, len(availableToolsets))
	if len(s.configuration.Toolsets) > 0 {
		for _, toolsetName := range s.configuration.Toolsets {
			if ts, exists := availableToolsets[toolsetName]; exists {
				enabledToolsets = append(enabledToolsets, ts)
			}
		}
	} else {
		for _, ts := range availableToolsets {
			enabledToolsets = append(enabledToolsets, ts)
		}
	}

	for _, ts := range enabledToolsets {
		for _, tool := range ts.GetTools() {
			if !s.shouldEnableTool(tool) {
				continue
			}
			if err := s.registerTool(tool); err != nil {
				return fmt.Errorf("failed to register tool %s: %w", tool.Tool.Name, err)
			}
		}
	}

	logging.Info("MCP server initialized with %d tools", len(s.enabledTools))
	return nil
}

// shouldEnableTool determines if a tool should be enabled based on
// configuration: explicit disable wins, an explicit enable list is
// exhaustive, and the read-only/destructive policies filter on annotations.
func (s *Server) shouldEnableTool(tool toolset.ServerTool) bool {
	for _, disabledTool := range s.configuration.DisabledTools {
		if disabledTool == tool.Tool.Name {
			return false
		}
	}

	if len(s.configuration.EnabledTools) > 0 {
		found := false
		for _, enabledTool := range s.configuration.EnabledTools {
			if enabledTool == tool.Tool.Name {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if s.configuration.ReadOnly {
		if tool.Annotations.ReadOnlyHint == nil || !*tool.Annotations.ReadOnlyHint {
			return false
		}
	}

	if s.configuration.DisableDestructive {
		if tool.Annotations.DestructiveHint != nil && *tool.Annotations.DestructiveHint {
			return false
		}
	}

	return true
}

func contextFunc(ctx context.Context, r *http.Request) context.Context {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		return context.WithValue(ctx, authorizationKey, authHeader)
	}
	return ctx
}

// registerTool registers a single tool with the MCP server
func (s *Server) registerTool(tool toolset.ServerTool) error {
	toolHandler := server.ToolHandlerFunc(func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		logging.Debug("Tool %s called with params: %v", tool.Tool.Name, request.Params.Arguments)

		params := make(map[string]interface{})
		if arguments, ok := request.Params.Arguments.(map[string]interface{}); ok {
			for key, value := range arguments {
				params[key] = value
			}
		}

		result, err := tool.Handler(ctx, s.combinedClient, params)
		return NewTextResult(result, err), nil
	})

	s.server.AddTool(tool.Tool, toolHandler)
	s.enabledTools = append(s.enabledTools, tool.Tool.Name)

	logging.Info("Registered tool: %s", tool.Tool.Name)
	return nil
}

// ServeStdio starts the MCP server in stdio mode
func (s *Server) ServeStdio() error {
	logging.Info("Starting MCP server in stdio mode")
	return server.ServeStdio(s.server)
}

// ServeSse starts the MCP server in SSE mode
func (s *Server) ServeSse(baseURL string, httpServer *http.Server) *server.SSEServer {
	logging.Info("Starting MCP server in SSE mode")

	options := []server.SSEOption{
		server.WithHTTPServer(httpServer),
		server.WithSSEContextFunc(contextFunc),
	}
	if baseURL != "" {
		options = append(options, server.WithBaseURL(baseURL))
	}

	return server.NewSSEServer(s.server, options...)
}

// ServeHTTP starts the MCP server in streamable HTTP mode
func (s *Server) ServeHTTP(httpServer *http.Server) *server.StreamableHTTPServer {
	logging.Info("Starting MCP server in HTTP mode")

	options := []server.StreamableHTTPOption{
		server.WithHTTPContextFunc(contextFunc),
		server.WithStreamableHTTPServer(httpServer),
		server.WithStateLess(true),
	}

	return server.NewStreamableHTTPServer(s.server, options...)
}

// GetEnabledTools returns the list of enabled tools
func (s *Server) GetEnabledTools() []string {
	return s.enabledTools
}

// Close cleans up the server resources
func (s *Server) Close() {
	logging.Info("Closing MCP server")
}

// NewTextResult creates a standardized text result for tool responses.
// Errors never propagate past this boundary; they become error text on the
// result so the calling agent can read and react to them.
func NewTextResult(content string, err error) *mcp.CallToolResult {
	if err != nil {
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{
				mcp.TextContent{
					Type: "text",
					Text: err.Error(),
				},
			},
		}
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: content,
			},
		},
	}
}
