package project

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kajvans/goreleaser-rust/internal/logger"
	"github.com/kajvans/goreleaser-rust/internal/template"
	"github.com/kajvans/goreleaser-rust/internal/toolchain"
	"gopkg.in/yaml.v3"
)

// Generator renders the release configuration for the current project
// and writes it to Path.
type Generator struct {
	Templates *template.Set
	Template  string
	Path      string
	Inspector *Inspector
	Resolver  *toolchain.Resolver
}

// Preview renders the configuration without touching the filesystem.
func (g *Generator) Preview(ctx context.Context) (string, error) {
	binaryName, err := g.Inspector.BinaryName(ctx)
	if err != nil {
		return "", err
	}
	logger.Debug("binary name: %s", binaryName)

	targets, err := g.Resolver.Targets(ctx)
	if err != nil {
		return "", err
	}
	logger.Debug("targets: %s", strings.Join(targets, ", "))

	rendered, err := g.Templates.Render(g.Template, template.RenderContext{
		BinaryName: binaryName,
		Targets:    targets,
	})
	if err != nil {
		return "", err
	}
	if err := checkYAML(g.Path, rendered); err != nil {
		return "", err
	}
	return rendered, nil
}

// Generate renders the configuration and writes it to Path, creating or
// truncating the file. It returns the rendered text.
func (g *Generator) Generate(ctx context.Context) (string, error) {
	rendered, err := g.Preview(ctx)
	if err != nil {
		return "", err
	}
	if err := writeConfig(g.Path, rendered); err != nil {
		return "", err
	}
	return rendered, nil
}

// checkYAML rejects rendered output that is not well-formed YAML when the
// target file is a YAML document.
func checkYAML(path, content string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
	default:
		return nil
	}
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
		return fmt.Errorf("rendered %s is not valid YAML: %w", filepath.Base(path), err)
	}
	return nil
}

func writeConfig(path, content string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	if _, err := file.WriteString(content); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return file.Close()
}
