package runner

import (
	"errors"
	"fmt"
)

// ErrParse indicates command output that was expected to be structured but
// could not be parsed.
var ErrParse = errors.New("failed to parse command output")

// installHints maps known external binaries to installation remediation,
// keyed by the binary's base name so configured absolute paths still match.
var installHints = map[string]string{
	"az":     "Install the Azure CLI from https://learn.microsoft.com/cli/azure/install-azure-cli and run 'az login'",
	"k8sgpt": "Install it with 'brew install k8sgpt' or follow the installation guide at https://github.com/k8sgpt-ai/k8sgpt",
}

// NotInstalledError indicates the external binary was not found in the
// execution path.
type NotInstalledError struct {
	Program string
	Hint    string
}

func (e *NotInstalledError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s is not installed or not found in PATH. %s", e.Program, e.Hint)
	}
	return fmt.Sprintf("%s is not installed or not found in PATH", e.Program)
}

// ExitError indicates the external command exited with a nonzero status.
// The message is the command's own diagnostic stream.
type ExitError struct {
	Code       int
	Diagnostic string
}

func (e *ExitError) Error() string {
	return e.Diagnostic
}
