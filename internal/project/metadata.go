package project

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kajvans/goreleaser-rust/internal/shell"
)

// ErrNoPackages is returned when cargo reports a workspace without packages.
var ErrNoPackages = errors.New("cargo metadata lists no packages")

// metadata is the subset of `cargo metadata --format-version 1` we read.
type metadata struct {
	Packages []struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	} `json:"packages"`
}

// Inspector reads the project manifest through cargo.
type Inspector struct {
	Runner shell.Runner
	// Cargo is the cargo executable, "cargo" when empty.
	Cargo string
}

// BinaryName returns the name of the first package declared in the
// current project.
func (i *Inspector) BinaryName(ctx context.Context) (string, error) {
	cargo := i.Cargo
	if cargo == "" {
		cargo = "cargo"
	}
	out, err := i.Runner.Output(ctx, cargo, "metadata", "--format-version", "1", "--no-deps")
	if err != nil {
		return "", fmt.Errorf("cannot read cargo metadata: %w", err)
	}

	var md metadata
	if err := json.Unmarshal([]byte(out), &md); err != nil {
		return "", fmt.Errorf("cannot parse cargo metadata: %w", err)
	}
	if len(md.Packages) == 0 {
		return "", ErrNoPackages
	}
	if md.Packages[0].Name == "" {
		return "", fmt.Errorf("cannot parse cargo metadata: first package has no name")
	}
	return md.Packages[0].Name, nil
}
