// Package shelltest provides a scripted shell.Runner for tests.
package shelltest

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Result is the scripted outcome of one command line.
type Result struct {
	Stdout string
	Stderr string
	Err    error
}

// Fake answers commands from a table keyed by the space-joined command
// line and records every call it receives.
type Fake struct {
	Results map[string]Result
	Calls   []string
}

// NewFake returns a Fake with an empty result table.
func NewFake() *Fake {
	return &Fake{Results: map[string]Result{}}
}

// On registers the result for a command line.
func (f *Fake) On(line string, r Result) *Fake {
	f.Results[line] = r
	return f
}

// Output implements shell.Runner.
func (f *Fake) Output(ctx context.Context, name string, args ...string) (string, error) {
	r, err := f.lookup(name, args)
	if err != nil {
		return "", err
	}
	if r.Err != nil {
		return "", r.Err
	}
	return strings.TrimRight(r.Stdout, "\r\n"), nil
}

// Stream implements shell.Runner.
func (f *Fake) Stream(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) error {
	r, err := f.lookup(name, args)
	if err != nil {
		return err
	}
	if r.Stdout != "" {
		_, _ = io.WriteString(stdout, r.Stdout)
	}
	if r.Stderr != "" {
		_, _ = io.WriteString(stderr, r.Stderr)
	}
	return r.Err
}

// Called reports whether line was run at least once.
func (f *Fake) Called(line string) bool {
	for _, c := range f.Calls {
		if c == line {
			return true
		}
	}
	return false
}

func (f *Fake) lookup(name string, args []string) (Result, error) {
	line := strings.Join(append([]string{name}, args...), " ")
	f.Calls = append(f.Calls, line)
	r, ok := f.Results[line]
	if !ok {
		return Result{}, fmt.Errorf("%s: executable file not found in $PATH", name)
	}
	return r, nil
}
