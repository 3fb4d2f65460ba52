// Package toolchain discovers the host's default Rust target triple.
//
// rustup has no machine-readable way to report the active toolchain, so
// the triple is recovered from the sysroot path printed by rustc. The
// toolchain directory is named <channel>[-<date>]-<target>, for example
// ~/.rustup/toolchains/nightly-2020-01-01-aarch64-apple-darwin.
package toolchain

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/kajvans/goreleaser-rust/internal/shell"
)

// ErrUnrecognizedSysroot is returned when rustc's sysroot does not follow
// the rustup toolchain naming scheme.
var ErrUnrecognizedSysroot = errors.New("unrecognized rustc sysroot")

var sysrootPattern = regexp.MustCompile(`(stable|beta|nightly)(-[\d-]+)?-(?P<target>.+)`)

var targetIndex = sysrootPattern.SubexpIndex("target")

// ParseTarget extracts the target triple from a sysroot path or toolchain
// name. The match is unanchored, so a full path is accepted.
func ParseTarget(sysroot string) (string, error) {
	m := sysrootPattern.FindStringSubmatch(sysroot)
	if m == nil {
		return "", fmt.Errorf("%w: %q", ErrUnrecognizedSysroot, sysroot)
	}
	return m[targetIndex], nil
}

// MustParseTarget is like ParseTarget but panics when sysroot does not match.
func MustParseTarget(sysroot string) string {
	target, err := ParseTarget(sysroot)
	if err != nil {
		panic(err)
	}
	return target
}

// Resolver asks rustc for its sysroot.
type Resolver struct {
	Runner shell.Runner
	// Rustc is the compiler executable, "rustc" when empty.
	Rustc string
}

// Targets returns the default target triples of the active toolchain.
// Only the host default is known today, so the slice has one element.
func (r *Resolver) Targets(ctx context.Context) ([]string, error) {
	rustc := r.Rustc
	if rustc == "" {
		rustc = "rustc"
	}
	out, err := r.Runner.Output(ctx, rustc, "--print", "sysroot")
	if err != nil {
		return nil, fmt.Errorf("cannot query rustc sysroot: %w", err)
	}
	target, err := ParseTarget(out)
	if err != nil {
		return nil, err
	}
	return []string{target}, nil
}
