// Package shell runs external commands synchronously, either capturing
// their standard output or streaming it to the console.
package shell

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/kajvans/goreleaser-rust/internal/logger"
)

// Runner is the subprocess surface the rest of the tool depends on.
type Runner interface {
	// Output runs name with args and returns its stdout with trailing
	// line breaks removed.
	Output(ctx context.Context, name string, args ...string) (string, error)
	// Stream runs name with args, forwarding its stdout and stderr.
	Stream(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) error
}

// Exec runs real child processes. Dir, when set, is the working directory
// of every child; otherwise the current directory is used.
type Exec struct {
	Dir string
}

// Output implements Runner.
func (e *Exec) Output(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = e.Dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debug("running %s", commandLine(name, args))
	if err := cmd.Run(); err != nil {
		return "", wrap(name, args, err, stderr.String())
	}
	return strings.TrimRight(stdout.String(), "\r\n"), nil
}

// Stream implements Runner.
func (e *Exec) Stream(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = e.Dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	logger.Debug("running %s", commandLine(name, args))
	if err := cmd.Run(); err != nil {
		return wrap(name, args, err, "")
	}
	return nil
}

func wrap(name string, args []string, err error, stderr string) error {
	stderr = strings.TrimSpace(stderr)
	if stderr != "" {
		return fmt.Errorf("%s: %w: %s", commandLine(name, args), err, stderr)
	}
	return fmt.Errorf("%s: %w", commandLine(name, args), err)
}

func commandLine(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}
