// Package release drives the bootstrap flow: make sure a goreleaser
// configuration exists, then hand over to the packaging tool.
package release

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/kajvans/goreleaser-rust/internal/logger"
	"github.com/kajvans/goreleaser-rust/internal/shell"
	"github.com/kajvans/goreleaser-rust/internal/utils"
)

// InstallHint is printed when the packaging tool is not on PATH.
const InstallHint = "Get it from https://goreleaser.com/"

// ConfigGenerator produces the configuration file.
type ConfigGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// Bootstrapper holds everything the flow touches. ConfigPath is where the
// generated file lives; ConfigName is how it is called in messages.
type Bootstrapper struct {
	Packager     string
	PackagerArgs []string
	ConfigPath   string
	ConfigName   string

	HasCommand func(string) bool
	Prompter   utils.Prompter
	Generator  ConfigGenerator
	Runner     shell.Runner

	Stdout io.Writer
	Stderr io.Writer
}

// Run executes one pass of the flow. A declined prompt is not an error.
func (b *Bootstrapper) Run(ctx context.Context) error {
	if !b.HasCommand(b.Packager) {
		// Advisory only: the flow continues either way.
		logger.Warn("Cannot find %s. %s", b.Packager, InstallHint)
	}

	exists, err := fileExists(b.ConfigPath)
	if err != nil {
		return err
	}
	if !exists {
		return b.bootstrap(ctx)
	}

	logger.Debug("found %s, running %s", b.ConfigPath, b.Packager)
	if err := b.Runner.Stream(ctx, b.Stdout, b.Stderr, b.Packager, b.PackagerArgs...); err != nil {
		return fmt.Errorf("failure! is %s installed?: %w", b.Packager, err)
	}
	return nil
}

func (b *Bootstrapper) bootstrap(ctx context.Context) error {
	reply, err := b.Prompter.Ask(fmt.Sprintf("%s was not found. Shall I create one? [y/n]", b.ConfigName))
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", b.ConfigName, err)
	}
	if reply != "y" {
		logger.Debug("reply %q, leaving %s alone", reply, b.ConfigName)
		return nil
	}

	if _, err := b.Generator.Generate(ctx); err != nil {
		return fmt.Errorf("cannot create %s: %w", b.ConfigName, err)
	}
	logger.Info("Done. Please review the config file at %s and re-run the command.", b.ConfigName)
	return nil
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("cannot check %s: %w", path, err)
}
