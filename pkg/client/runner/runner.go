// Package runner executes external command-line tools and captures their
// output. It is the single process-spawning point for the server; callers
// build an Invocation and receive either captured output or a classified
// error (binary not installed, nonzero exit, parse failure).
package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
)

// Invocation describes an external command to run: the program, its ordered
// argument list, and an optional environment overlay applied on top of the
// parent environment.
type Invocation struct {
	Program string
	Args    []string
	Env     map[string]string
}

// Result holds the captured outcome of a completed process.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Diagnostic returns the error stream of a failed command, falling back to
// stdout when stderr is empty. Some CLIs write failure details to stdout.
func (r Result) Diagnostic() string {
	if r.Stderr != "" {
		return r.Stderr
	}
	return r.Stdout
}

// Runner runs external commands. Implementations must be safe for concurrent
// use; each call spawns an independent process.
type Runner interface {
	Run(ctx context.Context, inv Invocation) (Result, error)
}

// ExecRunner runs commands via os/exec. No timeout is imposed beyond the
// caller's context: a hung external process hangs the invocation.
type ExecRunner struct{}

var _ Runner = ExecRunner{}

// Run spawns the process synchronously and waits for completion. A nonzero
// exit is not an error at this level; it is reported through Result.ExitCode
// so callers can decide how to surface the diagnostic.
func (ExecRunner) Run(ctx context.Context, inv Invocation) (Result, error) {
	cmd := exec.CommandContext(ctx, inv.Program, inv.Args...)

	if len(inv.Env) > 0 {
		env := os.Environ()
		for key, value := range inv.Env {
			env = append(env, key+"="+value)
		}
		cmd.Env = env
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.As(err, &exitErr):
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		case errors.Is(err, exec.ErrNotFound):
			return result, &NotInstalledError{
				Program: inv.Program,
				Hint:    installHints[filepath.Base(inv.Program)],
			}
		default:
			return result, err
		}
	}

	return result, nil
}

// Output runs the invocation and returns its stdout, converting a nonzero
// exit into an ExitError carrying the external diagnostic.
func Output(ctx context.Context, r Runner, inv Invocation) (string, error) {
	result, err := r.Run(ctx, inv)
	if err != nil {
		return "", err
	}
	if result.ExitCode != 0 {
		return "", &ExitError{Code: result.ExitCode, Diagnostic: result.Diagnostic()}
	}
	return result.Stdout, nil
}

// OutputJSON runs the invocation and decodes its stdout as JSON into out.
// A decode failure is reported as ErrParse without leaking decoder internals.
func OutputJSON(ctx context.Context, r Runner, inv Invocation, out interface{}) error {
	stdout, err := Output(ctx, r, inv)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(stdout), out); err != nil {
		return ErrParse
	}
	return nil
}
