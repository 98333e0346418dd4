package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aksops/aks-mcp-server/pkg/config"
	pkghttp "github.com/aksops/aks-mcp-server/pkg/http"
	"github.com/aksops/aks-mcp-server/pkg/logging"
	"github.com/aksops/aks-mcp-server/pkg/mcp"
	"github.com/aksops/aks-mcp-server/pkg/version"
)

// IOStreams represents standard input, output, and error streams
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

// NewMCPServer creates a new cobra command for the AKS MCP Server
func NewMCPServer(streams IOStreams) *cobra.Command {
	cfg := config.DefaultConfig()
	configPath := ""

	cmd := &cobra.Command{
		Use:   "aks-mcp-server",
		Short: "AKS MCP Server - Model Context Protocol server for Azure Kubernetes Service",
		Long: `AKS MCP Server is a Model Context Protocol (MCP) server that manages
Azure Kubernetes Service clusters through the Azure CLI, diagnoses workloads
with k8sgpt, and serves US weather data from the National Weather Service.

This server can run in stdio mode for integration with MCP clients or in HTTP
mode for network access.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				loaded, err := config.LoadConfig(configPath)
				if err != nil {
					return err
				}
				// Flags set explicitly on the command line win over the file
				applyFlagOverrides(cmd, cfg, loaded)
				cfg = loaded
			}
			return runServer(cmd.Context(), cfg, streams)
		},
	}

	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.ErrOut)

	cmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML configuration file")
	cmd.Flags().IntVar(&cfg.Port, "port", cfg.Port, "Port to listen on for HTTP mode (0 for stdio mode)")
	cmd.Flags().StringVar(&cfg.SSEBaseURL, "sse-base-url", cfg.SSEBaseURL, "Base URL advertised to SSE clients (defaults to the request host)")
	cmd.Flags().IntVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (0-9)")
	cmd.Flags().StringVar(&cfg.AzPath, "az-path", cfg.AzPath, "Path to the Azure CLI binary")
	cmd.Flags().StringVar(&cfg.K8sgptPath, "k8sgpt-path", cfg.K8sgptPath, "Path to the k8sgpt binary")
	cmd.Flags().BoolVar(&cfg.ReadOnly, "read-only", cfg.ReadOnly, "Run in read-only mode")
	cmd.Flags().BoolVar(&cfg.DisableDestructive, "disable-destructive", cfg.DisableDestructive, "Disable destructive operations")
	cmd.Flags().StringSliceVar(&cfg.Toolsets, "toolsets", cfg.Toolsets, "Comma-separated list of toolsets to enable")
	cmd.Flags().StringSliceVar(&cfg.EnabledTools, "enabled-tools", cfg.EnabledTools, "Comma-separated list of tools to enable")
	cmd.Flags().StringSliceVar(&cfg.DisabledTools, "disabled-tools", cfg.DisabledTools, "Comma-separated list of tools to disable")

	cmd.AddCommand(newVersionCommand(streams))

	return cmd
}

// applyFlagOverrides copies values from flags the user set explicitly onto
// the file-loaded configuration.
func applyFlagOverrides(cmd *cobra.Command, flagCfg, fileCfg *config.StaticConfig) {
	if cmd.Flags().Changed("port") {
		fileCfg.Port = flagCfg.Port
	}
	if cmd.Flags().Changed("sse-base-url") {
		fileCfg.SSEBaseURL = flagCfg.SSEBaseURL
	}
	if cmd.Flags().Changed("log-level") {
		fileCfg.LogLevel = flagCfg.LogLevel
	}
	if cmd.Flags().Changed("az-path") {
		fileCfg.AzPath = flagCfg.AzPath
	}
	if cmd.Flags().Changed("k8sgpt-path") {
		fileCfg.K8sgptPath = flagCfg.K8sgptPath
	}
	if cmd.Flags().Changed("read-only") {
		fileCfg.ReadOnly = flagCfg.ReadOnly
	}
	if cmd.Flags().Changed("disable-destructive") {
		fileCfg.DisableDestructive = flagCfg.DisableDestructive
	}
	if cmd.Flags().Changed("toolsets") {
		fileCfg.Toolsets = flagCfg.Toolsets
	}
	if cmd.Flags().Changed("enabled-tools") {
		fileCfg.EnabledTools = flagCfg.EnabledTools
	}
	if cmd.Flags().Changed("disabled-tools") {
		fileCfg.DisabledTools = flagCfg.DisabledTools
	}
}

// runServer runs the MCP server with the given configuration
func runServer(ctx context.Context, cfg *config.StaticConfig, streams IOStreams) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %v", err)
	}
	defer fmt.Fprintf(streams.ErrOut, "AKS MCP Server shutting down\n")

	// Logging goes to stderr; stdout is reserved for the stdio transport
	logging.Initialize(cfg.LogLevel)

	server, err := mcp.NewServer(mcp.Configuration{StaticConfig: cfg})
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %v", err)
	}
	defer server.Close()

	if cfg.Port == 0 {
		fmt.Fprintf(streams.ErrOut, "Starting AKS MCP Server in stdio mode\n")
		fmt.Fprintf(streams.ErrOut, "Enabled tools: %v\n", server.GetEnabledTools())
		return server.ServeStdio()
	}

	fmt.Fprintf(streams.ErrOut, "Starting AKS MCP Server in HTTP mode on port %d\n", cfg.Port)
	fmt.Fprintf(streams.ErrOut, "Enabled tools: %v\n", server.GetEnabledTools())
	return pkghttp.Serve(ctx, server, cfg)
}

// newVersionCommand creates the version command
func newVersionCommand(streams IOStreams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(streams.Out, "%s\n", version.GetVersionInfo())
		},
	}

	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.ErrOut)

	return cmd
}
