package project

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/kajvans/goreleaser-rust/internal/shell/shelltest"
	"github.com/kajvans/goreleaser-rust/internal/template"
	"github.com/kajvans/goreleaser-rust/internal/toolchain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGenerator(t *testing.T, fake *shelltest.Fake, overrideDir string) *Generator {
	t.Helper()
	set, err := template.Load(overrideDir)
	require.NoError(t, err)
	return &Generator{
		Templates: set,
		Template:  "goreleaser.yml",
		Path:      filepath.Join(t.TempDir(), ".goreleaser.yml"),
		Inspector: &Inspector{Runner: fake},
		Resolver:  &toolchain.Resolver{Runner: fake},
	}
}

func rustProject() *shelltest.Fake {
	return shelltest.NewFake().
		On(metadataLine, shelltest.Result{Stdout: `{"packages":[{"name":"myapp"}]}`}).
		On("rustc --print sysroot", shelltest.Result{Stdout: "/home/dev/.rustup/toolchains/stable-x86_64-unknown-linux-gnu\n"})
}

func TestGenerateWritesConfig(t *testing.T) {
	g := newGenerator(t, rustProject(), "")

	rendered, err := g.Generate(context.Background())
	require.NoError(t, err)

	written, err := os.ReadFile(g.Path)
	require.NoError(t, err)
	assert.Equal(t, rendered, string(written))
	assert.Contains(t, rendered, "myapp")
	assert.Contains(t, rendered, "x86_64-unknown-linux-gnu")
}

func TestGenerateTruncatesExistingFile(t *testing.T) {
	g := newGenerator(t, rustProject(), "")
	require.NoError(t, os.WriteFile(g.Path, []byte("a much longer stale body that should disappear entirely\n"), 0o644))

	rendered, err := g.Generate(context.Background())
	require.NoError(t, err)

	written, err := os.ReadFile(g.Path)
	require.NoError(t, err)
	assert.Equal(t, rendered, string(written))
}

func TestPreviewDoesNotWrite(t *testing.T) {
	g := newGenerator(t, rustProject(), "")

	rendered, err := g.Preview(context.Background())
	require.NoError(t, err)
	assert.Contains(t, rendered, "project_name: myapp")

	_, err = os.Stat(g.Path)
	assert.True(t, os.IsNotExist(err))
}

func TestGenerateStopsOnResolverFailure(t *testing.T) {
	fake := shelltest.NewFake().
		On(metadataLine, shelltest.Result{Stdout: `{"packages":[{"name":"myapp"}]}`}).
		On("rustc --print sysroot", shelltest.Result{Stdout: "/usr/lib/rust"})
	g := newGenerator(t, fake, "")

	_, err := g.Generate(context.Background())
	assert.ErrorIs(t, err, toolchain.ErrUnrecognizedSysroot)

	_, statErr := os.Stat(g.Path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerateRejectsInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "goreleaser.yml.tmpl"), []byte("project_name: [{{ .BinaryName }}\n"), 0o644))
	g := newGenerator(t, rustProject(), dir)

	_, err := g.Generate(context.Background())
	assert.ErrorContains(t, err, "is not valid YAML")

	_, statErr := os.Stat(g.Path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerateUnwritablePath(t *testing.T) {
	g := newGenerator(t, rustProject(), "")
	g.Path = filepath.Join(t.TempDir(), "missing-dir", ".goreleaser.yml")

	_, err := g.Generate(context.Background())
	assert.ErrorContains(t, err, "cannot create")
}
