package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func newTestStreams() IOStreams {
	return IOStreams{
		In:     &bytes.Buffer{},
		Out:    &bytes.Buffer{},
		ErrOut: &bytes.Buffer{},
	}
}

func TestVersionCommand(t *testing.T) {
	streams := newTestStreams()
	cmd := NewMCPServer(streams)

	cmd.SetArgs([]string{"version"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Version command failed: %v", err)
	}

	output := streams.Out.(*bytes.Buffer).String()
	if !strings.Contains(output, "aks-mcp-server") {
		t.Errorf("Version output should contain 'aks-mcp-server', got: %s", output)
	}
	if !strings.Contains(output, "Version:") {
		t.Errorf("Version output should contain 'Version:', got: %s", output)
	}
}

func TestHelpCommand(t *testing.T) {
	streams := newTestStreams()
	cmd := NewMCPServer(streams)

	cmd.SetArgs([]string{"--help"})
	_ = cmd.Execute()

	output := streams.Out.(*bytes.Buffer).String()
	if !strings.Contains(output, "AKS MCP Server") {
		t.Errorf("Help output should contain 'AKS MCP Server', got: %s", output)
	}
	for _, flag := range []string{"--port", "--sse-base-url", "--az-path", "--k8sgpt-path", "--read-only", "--disable-destructive", "--config"} {
		if !strings.Contains(output, flag) {
			t.Errorf("Help output should contain %q flag, got: %s", flag, output)
		}
	}
}

func TestCommandDefaults(t *testing.T) {
	cmd := NewMCPServer(newTestStreams())

	if cmd.Use != "aks-mcp-server" {
		t.Errorf("Expected command use to be 'aks-mcp-server', got: %s", cmd.Use)
	}

	portFlag := cmd.Flags().Lookup("port")
	if portFlag == nil || portFlag.DefValue != "0" {
		t.Errorf("Port should default to 0 (stdio mode), got %v", portFlag)
	}

	azFlag := cmd.Flags().Lookup("az-path")
	if azFlag == nil || azFlag.DefValue != "az" {
		t.Errorf("az-path should default to 'az', got %v", azFlag)
	}
}

func TestInvalidLogLevel(t *testing.T) {
	streams := newTestStreams()
	cmd := NewMCPServer(streams)

	cmd.SetArgs([]string{"--log-level", "42"})
	if err := cmd.Execute(); err == nil {
		t.Error("Expected validation error for log level out of range")
	}
}

func TestUnknownToolsetRejected(t *testing.T) {
	streams := newTestStreams()
	cmd := NewMCPServer(streams)

	cmd.SetArgs([]string{"--toolsets", "nonexistent"})
	err := cmd.Execute()
	if err == nil {
		t.Fatal("Expected validation error for unknown toolset")
	}
	if !strings.Contains(err.Error(), "unknown toolset") {
		t.Errorf("Unexpected error: %v", err)
	}
}
