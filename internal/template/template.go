// Package template renders release configuration files from a fixed set
// of templates. The set is built once at startup and never modified.
package template

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"text/template"
)

//go:embed templates
var builtin embed.FS

// ErrNotFound is returned when a template name is not part of the set.
var ErrNotFound = errors.New("template not found")

// RenderContext is the data every template is executed with.
type RenderContext struct {
	BinaryName string
	Targets    []string
}

// Set is an immutable collection of parsed templates keyed by name.
type Set struct {
	templates map[string]*template.Template
	origin    map[string]string
}

// Load parses the built-in templates and, when overrideDir is not empty,
// every file below it. Override templates replace built-ins with the same
// name. A name is the slash-separated path relative to its root with any
// ".tmpl" suffix removed.
func Load(overrideDir string) (*Set, error) {
	s := &Set{
		templates: map[string]*template.Template{},
		origin:    map[string]string{},
	}

	root, err := fs.Sub(builtin, "templates")
	if err != nil {
		return nil, err
	}
	if err := s.parseFS(root, "built-in"); err != nil {
		return nil, err
	}

	if overrideDir != "" {
		info, err := os.Stat(overrideDir)
		if err != nil {
			return nil, fmt.Errorf("cannot read templates directory: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("templates path is not a directory: %s", overrideDir)
		}
		if err := s.parseFS(os.DirFS(overrideDir), overrideDir); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *Set) parseFS(fsys fs.FS, origin string) error {
	return fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("failed to read template %s: %w", p, err)
		}
		name := strings.TrimSuffix(path.Clean(p), ".tmpl")
		if err := ValidateName(name); err != nil {
			return err
		}
		t, err := template.New(name).Option("missingkey=error").Parse(string(content))
		if err != nil {
			return fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		s.templates[name] = t
		s.origin[name] = origin
		return nil
	})
}

// Names returns the template names in sorted order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.templates))
	for name := range s.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Origin reports where a template was loaded from: "built-in" or the
// override directory.
func (s *Set) Origin(name string) string {
	return s.origin[name]
}

// Render executes the named template with ctx.
func (s *Set) Render(name string, ctx RenderContext) (string, error) {
	t, ok := s.templates[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, ctx); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.String(), nil
}

// ValidateName checks if a template name is valid
func ValidateName(name string) error {
	if name == "" || name == "." {
		return fmt.Errorf("template name cannot be empty")
	}
	if strings.ContainsAny(name, `\:*?"<>|`) {
		return fmt.Errorf("template name %q contains invalid characters", name)
	}
	return nil
}
