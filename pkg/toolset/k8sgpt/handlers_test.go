package k8sgpt

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/aksops/aks-mcp-server/pkg/client/k8sgpt"
	"github.com/aksops/aks-mcp-server/pkg/client/runner"
	"github.com/aksops/aks-mcp-server/pkg/toolset"
	"github.com/aksops/aks-mcp-server/pkg/toolset/paramutil"
)

// spyRunner records invocations and replays results in order. The last
// result is repeated once the queue drains.
type spyRunner struct {
	invocations []runner.Invocation
	results     []runner.Result
}

func (s *spyRunner) Run(_ context.Context, inv runner.Invocation) (runner.Result, error) {
	s.invocations = append(s.invocations, inv)
	if len(s.results) == 0 {
		return runner.Result{}, nil
	}
	result := s.results[0]
	if len(s.results) > 1 {
		s.results = s.results[1:]
	}
	return result, nil
}

func newTestClient(results ...runner.Result) (*spyRunner, *toolset.CombinedClient) {
	spy := &spyRunner{results: results}
	return spy, &toolset.CombinedClient{K8sgpt: k8sgpt.NewClient(spy, "")}
}

func TestAnalyzeHandlerProbesVersionFirst(t *testing.T) {
	spy, client := newTestClient(
		runner.Result{Stdout: "k8sgpt version 0.3.41"},
		runner.Result{Stdout: "AI Provider: AI not used; --explain not set\n\nNo problems detected"},
	)

	_, err := analyzeHandler(context.Background(), client, map[string]interface{}{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(spy.invocations) != 2 {
		t.Fatalf("Expected version probe plus analyze, got %d invocations", len(spy.invocations))
	}
	if !reflect.DeepEqual(spy.invocations[0].Args, []string{"--version"}) {
		t.Errorf("First invocation should be the version probe, got %v", spy.invocations[0].Args)
	}
}

func TestAnalyzeHandlerDefaults(t *testing.T) {
	spy, client := newTestClient(
		runner.Result{Stdout: "k8sgpt version 0.3.41"},
		runner.Result{Stdout: "ok"},
	)

	_, err := analyzeHandler(context.Background(), client, map[string]interface{}{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// explain defaults on, output defaults to text
	want := []string{"analyze", "--explain", "--output", "text"}
	got := spy.invocations[1].Args
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected default analyze args %v, got %v", want, got)
	}
}

func TestAnalyzeHandlerArgs(t *testing.T) {
	spy, client := newTestClient(runner.Result{Stdout: "ok"})

	_, err := analyzeHandler(context.Background(), client, map[string]interface{}{
		"explain":   true,
		"filter":    "Pod",
		"namespace": "kube-system",
		"output":    "YAML",
		"anonymize": true,
		"backend":   "azureopenai",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := []string{
		"analyze",
		"--explain",
		"--filter", "Pod",
		"--namespace", "kube-system",
		"--output", "yaml",
		"--anonymize",
		"--backend", "azureopenai",
	}
	got := spy.invocations[len(spy.invocations)-1].Args
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected args %v, got %v", want, got)
	}
}

func TestAnalyzeHandlerEmptyOutput(t *testing.T) {
	_, client := newTestClient(
		runner.Result{Stdout: "k8sgpt version 0.3.41"},
		runner.Result{Stdout: "  \n"},
	)

	result, err := analyzeHandler(context.Background(), client, map[string]interface{}{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result != "No issues found in the cluster." {
		t.Errorf("Expected no-issues sentence, got %q", result)
	}
}

func TestAnalyzeHandlerReindentsJSON(t *testing.T) {
	_, client := newTestClient(
		runner.Result{Stdout: "k8sgpt version 0.3.41"},
		runner.Result{Stdout: `{"status":"OK","problems":0}`},
	)

	result, err := analyzeHandler(context.Background(), client, map[string]interface{}{
		"output": "json",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(result, "  \"status\": \"OK\"") {
		t.Errorf("JSON output should be reindented, got %q", result)
	}
}

func TestAnalyzeHandlerAuthFailureHint(t *testing.T) {
	_, client := newTestClient(
		runner.Result{Stdout: "k8sgpt version 0.3.41"},
		runner.Result{Stderr: "Error: backend authentication required", ExitCode: 1},
	)

	_, err := analyzeHandler(context.Background(), client, map[string]interface{}{})
	if err == nil {
		t.Fatal("Expected error for auth failure")
	}
	if !strings.Contains(err.Error(), "k8sgpt auth add") {
		t.Errorf("Auth failure should carry the remediation hint, got %q", err.Error())
	}
}

func TestAnalyzeHandlerNonAuthFailurePassesThrough(t *testing.T) {
	_, client := newTestClient(
		runner.Result{Stdout: "k8sgpt version 0.3.41"},
		runner.Result{Stderr: "Error: kubeconfig not found", ExitCode: 1},
	)

	_, err := analyzeHandler(context.Background(), client, map[string]interface{}{})
	if err == nil {
		t.Fatal("Expected error for nonzero exit")
	}
	if !strings.Contains(err.Error(), "kubeconfig not found") {
		t.Errorf("Non-auth failure should surface the diagnostic verbatim, got %q", err.Error())
	}
}

func TestAnalyzeHandlerRejectsBadFormat(t *testing.T) {
	spy, client := newTestClient(runner.Result{Stdout: "k8sgpt version 0.3.41"})

	_, err := analyzeHandler(context.Background(), client, map[string]interface{}{
		"output": "table",
	})
	if !errors.Is(err, paramutil.ErrInvalidParameter) {
		t.Fatalf("Expected ErrInvalidParameter, got %v", err)
	}
	for _, inv := range spy.invocations {
		if len(inv.Args) > 0 && inv.Args[0] == "analyze" {
			t.Error("Invalid format must not reach the analyze invocation")
		}
	}
}

func TestAuthConfigureHandlerWithKey(t *testing.T) {
	spy, client := newTestClient(runner.Result{})

	result, err := authConfigureHandler(context.Background(), client, map[string]interface{}{
		"provider": "openai",
		"api_key":  "sk-test",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result != "Auth backend 'openai' configured successfully." {
		t.Errorf("Unexpected result: %q", result)
	}

	want := []string{"auth", "add", "-p", "openai", "--password", "sk-test"}
	if !reflect.DeepEqual(spy.invocations[0].Args, want) {
		t.Errorf("Expected args %v, got %v", want, spy.invocations[0].Args)
	}
}

func TestAuthConfigureHandlerWithoutKey(t *testing.T) {
	spy, client := newTestClient(runner.Result{})

	result, err := authConfigureHandler(context.Background(), client, map[string]interface{}{
		"provider": "openai",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(result, "k8sgpt auth add -p openai") {
		t.Errorf("Expected manual instructions, got %q", result)
	}
	if len(spy.invocations) != 0 {
		t.Error("Missing key must not spawn a process; the CLI would block on a prompt")
	}
}

func TestFiltersListHandler(t *testing.T) {
	_, client := newTestClient(runner.Result{Stdout: "Active:\n> Pod\n> Service\n"})

	result, err := filtersListHandler(context.Background(), client, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(result, "> Pod") {
		t.Errorf("Filters output should pass through verbatim, got %q", result)
	}
}

func TestToolsetCatalog(t *testing.T) {
	ts := &Toolset{}
	tools := ts.GetTools()

	if len(tools) != 3 {
		t.Errorf("Expected 3 tools, got %d", len(tools))
	}
	for _, tool := range tools {
		if tool.Handler == nil {
			t.Errorf("Tool %q has no handler", tool.Tool.Name)
		}
	}
}
