package cmd

import (
	"context"

	"github.com/kajvans/goreleaser-rust/internal/config"
	"github.com/kajvans/goreleaser-rust/internal/project"
	"github.com/kajvans/goreleaser-rust/internal/shell"
	"github.com/kajvans/goreleaser-rust/internal/template"
	"github.com/kajvans/goreleaser-rust/internal/toolchain"
)

func newRunner() shell.Runner {
	return &shell.Exec{}
}

// newGenerator loads the template set once and wires the inspector and
// resolver to real subprocesses.
func newGenerator(cfg *config.Config) (*project.Generator, error) {
	set, err := template.Load(cfg.TemplatesDir)
	if err != nil {
		return nil, err
	}
	runner := newRunner()
	return &project.Generator{
		Templates: set,
		Template:  cfg.Template,
		Path:      cfg.ConfigFile,
		Inspector: &project.Inspector{Runner: runner, Cargo: cfg.Cargo},
		Resolver:  &toolchain.Resolver{Runner: runner, Rustc: cfg.Rustc},
	}, nil
}

// lazyGenerator defers template loading to the first Generate call, so a
// broken templates_dir only matters when a config is actually generated.
type lazyGenerator struct {
	cfg *config.Config
}

func (l *lazyGenerator) Generate(ctx context.Context) (string, error) {
	g, err := newGenerator(l.cfg)
	if err != nil {
		return "", err
	}
	return g.Generate(ctx)
}
