package mcp

import (
	"fmt"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aksops/aks-mcp-server/pkg/config"
)

func newTestServer(t *testing.T, cfg *config.StaticConfig) *Server {
	t.Helper()
	server, err := NewServer(Configuration{StaticConfig: cfg})
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	t.Cleanup(server.Close)
	return server
}

func TestNewServerRegistersAllToolsets(t *testing.T) {
	server := newTestServer(t, config.DefaultConfig())

	tools := server.GetEnabledTools()
	if len(tools) != 35 {
		t.Errorf("Expected 35 tools across all toolsets, got %d", len(tools))
	}

	expectedTools := []string{"cluster_list", "nodepool_update", "maintenance_create", "k8sgpt_analyze", "weather_alerts", "weather_forecast", "configuration_view"}
	for _, expected := range expectedTools {
		found := false
		for _, actual := range tools {
			if actual == expected {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Expected tool '%s' not found in registered tools", expected)
		}
	}
}

func TestNewServerToolsetSelection(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Toolsets = []string{"weather"}

	server := newTestServer(t, cfg)

	tools := server.GetEnabledTools()
	if len(tools) != 2 {
		t.Errorf("Expected only the 2 weather tools, got %v", tools)
	}
}

func TestNewServerReadOnlyMode(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ReadOnly = true

	server := newTestServer(t, cfg)

	for _, name := range server.GetEnabledTools() {
		switch name {
		case "cluster_delete", "cluster_create", "nodepool_delete", "cluster_rotate_certs", "k8sgpt_auth_configure":
			t.Errorf("Mutating tool %q should not be registered in read-only mode", name)
		}
	}

	found := false
	for _, name := range server.GetEnabledTools() {
		if name == "cluster_list" {
			found = true
		}
	}
	if !found {
		t.Error("Read-only tools should remain registered in read-only mode")
	}
}

func TestNewServerDisableDestructive(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DisableDestructive = true

	server := newTestServer(t, cfg)

	tools := server.GetEnabledTools()
	for _, name := range tools {
		switch name {
		case "cluster_delete", "nodepool_delete", "maintenance_delete", "cluster_rotate_certs":
			t.Errorf("Destructive tool %q should not be registered", name)
		}
	}

	// Non-destructive mutating tools stay available
	found := false
	for _, name := range tools {
		if name == "cluster_create" {
			found = true
		}
	}
	if !found {
		t.Error("cluster_create should remain registered when only destructive tools are disabled")
	}
}

func TestNewServerEnabledDisabledLists(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.EnabledTools = []string{"cluster_list", "cluster_show"}

	server := newTestServer(t, cfg)
	if got := server.GetEnabledTools(); len(got) != 2 {
		t.Errorf("Enabled list should be exhaustive, got %v", got)
	}

	cfg = config.DefaultConfig()
	cfg.DisabledTools = []string{"cluster_delete"}

	server = newTestServer(t, cfg)
	for _, name := range server.GetEnabledTools() {
		if name == "cluster_delete" {
			t.Error("Disabled tool should not be registered")
		}
	}
}

func TestNewTextResult(t *testing.T) {
	result := NewTextResult("success message", nil)
	if result.IsError {
		t.Error("Result should not be an error")
	}

	textContent, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Content should be TextContent")
	}
	if textContent.Text != "success message" {
		t.Errorf("Expected 'success message', got '%s'", textContent.Text)
	}

	result = NewTextResult("", fmt.Errorf("test error"))
	if !result.IsError {
		t.Error("Result should be an error")
	}

	textContent, ok = result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Content should be TextContent")
	}
	if textContent.Text != "test error" {
		t.Errorf("Expected 'test error', got '%s'", textContent.Text)
	}
}
