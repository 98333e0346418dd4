package k8sgpt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aksops/aks-mcp-server/pkg/client/k8sgpt"
	"github.com/aksops/aks-mcp-server/pkg/client/runner"
	"github.com/aksops/aks-mcp-server/pkg/output"
	"github.com/aksops/aks-mcp-server/pkg/toolset"
	"github.com/aksops/aks-mcp-server/pkg/toolset/paramutil"
)

// errAuthRequired replaces the CLI's backend-auth failures with a
// remediation the caller can act on.
var errAuthRequired = errors.New("k8sgpt requires authentication setup. Please run 'k8sgpt auth add' to configure your AI provider")

// isAuthFailure reports whether a nonzero-exit diagnostic indicates a
// missing or broken AI backend credential.
func isAuthFailure(diagnostic string) bool {
	lowered := strings.ToLower(diagnostic)
	return strings.Contains(lowered, "authentication required") || strings.Contains(lowered, "auth")
}

// analyzeHandler handles the k8sgpt_analyze tool
func analyzeHandler(ctx context.Context, client interface{}, params map[string]interface{}) (string, error) {
	k8sgptClient, err := toolset.ValidateK8sgptClient(client)
	if err != nil {
		return "", err
	}

	// Probe the installation first so a missing binary produces the install
	// hint instead of a confusing analyze failure.
	if err := k8sgptClient.Version(ctx); err != nil {
		return "", err
	}

	opts := k8sgpt.AnalyzeOptions{
		Explain:   paramutil.ExtractBool(params, "explain", true),
		Filter:    paramutil.ExtractOptionalString(params, paramutil.ParamFilter),
		Namespace: paramutil.ExtractOptionalString(params, paramutil.ParamNamespace),
		WithDoc:   paramutil.ExtractBool(params, "with_doc", false),
		Output:    paramutil.ExtractOptionalStringWithDefault(params, paramutil.ParamOutput, "text"),
		Anonymize: paramutil.ExtractBool(params, "anonymize", false),
		Backend:   paramutil.ExtractOptionalString(params, paramutil.ParamBackend),
	}

	if !output.IsValidFormat(opts.Output) {
		return "", fmt.Errorf("%w: output must be one of text, json, yaml", paramutil.ErrInvalidParameter)
	}

	result, err := k8sgptClient.Analyze(ctx, opts)
	if err != nil {
		var exitErr *runner.ExitError
		if errors.As(err, &exitErr) && isAuthFailure(exitErr.Diagnostic) {
			return "", errAuthRequired
		}
		return "", fmt.Errorf("error analyzing cluster: %w", err)
	}

	if strings.EqualFold(opts.Output, "json") {
		return output.ReindentJSON(result), nil
	}
	if strings.TrimSpace(result) == "" {
		return "No issues found in the cluster.", nil
	}
	return result, nil
}

// authConfigureHandler handles the k8sgpt_auth_configure tool.
// Without an inline api_key the CLI would prompt on a terminal the server
// does not have, so that case returns manual instructions instead.
func authConfigureHandler(ctx context.Context, client interface{}, params map[string]interface{}) (string, error) {
	k8sgptClient, err := toolset.ValidateK8sgptClient(client)
	if err != nil {
		return "", err
	}

	provider := paramutil.ExtractOptionalStringWithDefault(params, paramutil.ParamProvider, "azureopenai")
	apiKey := paramutil.ExtractOptionalString(params, paramutil.ParamAPIKey)

	if apiKey == "" {
		return fmt.Sprintf(
			"No API key provided. Configure the backend manually by running:\n\n"+
				"  k8sgpt auth add -p %s\n\n"+
				"and entering the key at the prompt.", provider), nil
	}

	if err := k8sgptClient.AuthAdd(ctx, provider, apiKey); err != nil {
		return "", fmt.Errorf("error configuring auth backend: %w", err)
	}

	return fmt.Sprintf("Auth backend '%s' configured successfully.", provider), nil
}

// filtersListHandler handles the k8sgpt_filters_list tool
func filtersListHandler(ctx context.Context, client interface{}, _ map[string]interface{}) (string, error) {
	k8sgptClient, err := toolset.ValidateK8sgptClient(client)
	if err != nil {
		return "", err
	}

	result, err := k8sgptClient.Filters(ctx)
	if err != nil {
		return "", fmt.Errorf("error listing filters: %w", err)
	}

	return result, nil
}
