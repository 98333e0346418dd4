// Package k8sgpt wraps the k8sgpt CLI behind a typed client, mirroring the
// azure package: deterministic argument construction over a runner.Runner.
package k8sgpt

import (
	"context"
	"strings"

	"github.com/aksops/aks-mcp-server/pkg/client/runner"
)

// DefaultBinary is the k8sgpt binary resolved from PATH when no explicit
// path is configured.
const DefaultBinary = "k8sgpt"

// AnalyzeOptions holds the parameters of a cluster analysis pass.
type AnalyzeOptions struct {
	Explain   bool
	Filter    string
	Namespace string
	WithDoc   bool
	Output    string
	Anonymize bool
	Backend   string
}

// Client invokes k8sgpt subcommands through a Runner.
type Client struct {
	runner runner.Runner
	binary string
}

// NewClient creates a k8sgpt client. An empty binary selects DefaultBinary.
func NewClient(r runner.Runner, binary string) *Client {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Client{runner: r, binary: binary}
}

func (c *Client) output(ctx context.Context, args ...string) (string, error) {
	return runner.Output(ctx, c.runner, runner.Invocation{Program: c.binary, Args: args})
}

// Analyze runs a diagnosis pass and returns the CLI's raw output.
func (c *Client) Analyze(ctx context.Context, opts AnalyzeOptions) (string, error) {
	args := []string{"analyze"}
	if opts.Explain {
		args = append(args, "--explain")
	}
	if opts.Filter != "" {
		args = append(args, "--filter", opts.Filter)
	}
	if opts.Namespace != "" {
		args = append(args, "--namespace", opts.Namespace)
	}
	if opts.WithDoc {
		args = append(args, "--with-doc")
	}
	if opts.Output != "" {
		args = append(args, "--output", strings.ToLower(opts.Output))
	}
	if opts.Anonymize {
		args = append(args, "--anonymize")
	}
	if opts.Backend != "" {
		args = append(args, "--backend", opts.Backend)
	}
	return c.output(ctx, args...)
}

// Version probes the installation by running `k8sgpt --version`.
func (c *Client) Version(ctx context.Context) error {
	_, err := c.output(ctx, "--version")
	return err
}

// AuthAdd configures backend authentication with an inline credential. It is
// only valid with a non-empty key; without one the CLI would prompt
// interactively, which a detached server can never do.
func (c *Client) AuthAdd(ctx context.Context, provider, apiKey string) error {
	_, err := c.output(ctx, "auth", "add", "-p", provider, "--password", apiKey)
	return err
}

// Filters returns the available analysis filters verbatim.
func (c *Client) Filters(ctx context.Context) (string, error) {
	return c.output(ctx, "filters")
}
