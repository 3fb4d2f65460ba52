package release

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kajvans/goreleaser-rust/internal/logger"
	"github.com/kajvans/goreleaser-rust/internal/project"
	"github.com/kajvans/goreleaser-rust/internal/shell/shelltest"
	"github.com/kajvans/goreleaser-rust/internal/template"
	"github.com/kajvans/goreleaser-rust/internal/toolchain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const releaseLine = "goreleaser release --clean"

type scriptedPrompter struct {
	reply    string
	err      error
	question string
	asked    int
}

func (p *scriptedPrompter) Ask(question string) (string, error) {
	p.question = question
	p.asked++
	return p.reply, p.err
}

type countingGenerator struct {
	inner ConfigGenerator
	calls int
}

func (g *countingGenerator) Generate(ctx context.Context) (string, error) {
	g.calls++
	return g.inner.Generate(ctx)
}

type fixture struct {
	dir       string
	log       *bytes.Buffer
	stdout    *bytes.Buffer
	runner    *shelltest.Fake
	prompter  *scriptedPrompter
	generator *countingGenerator
	b         *Bootstrapper
}

func newFixture(t *testing.T, reply string, packagerInstalled bool) *fixture {
	t.Helper()

	var log bytes.Buffer
	prev := logger.SetOutput(&log)
	t.Cleanup(func() { logger.SetOutput(prev) })

	dir := t.TempDir()
	runner := shelltest.NewFake().
		On("cargo metadata --format-version 1 --no-deps", shelltest.Result{Stdout: `{"packages":[{"name":"myapp"}]}`}).
		On("rustc --print sysroot", shelltest.Result{Stdout: "/home/dev/.rustup/toolchains/stable-x86_64-unknown-linux-gnu"}).
		On(releaseLine, shelltest.Result{Stdout: "release succeeded\n"})

	set, err := template.Load("")
	require.NoError(t, err)
	configPath := filepath.Join(dir, ".goreleaser.yml")
	gen := &countingGenerator{inner: &project.Generator{
		Templates: set,
		Template:  "goreleaser.yml",
		Path:      configPath,
		Inspector: &project.Inspector{Runner: runner},
		Resolver:  &toolchain.Resolver{Runner: runner},
	}}
	prompter := &scriptedPrompter{reply: reply}

	var stdout bytes.Buffer
	b := &Bootstrapper{
		Packager:     "goreleaser",
		PackagerArgs: []string{"release", "--clean"},
		ConfigPath:   configPath,
		ConfigName:   ".goreleaser.yml",
		HasCommand:   func(string) bool { return packagerInstalled },
		Prompter:     prompter,
		Generator:    gen,
		Runner:       runner,
		Stdout:       &stdout,
		Stderr:       &stdout,
	}

	return &fixture{
		dir:       dir,
		log:       &log,
		stdout:    &stdout,
		runner:    runner,
		prompter:  prompter,
		generator: gen,
		b:         b,
	}
}

func entries(t *testing.T, dir string) []string {
	t.Helper()
	list, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(list))
	for _, e := range list {
		names = append(names, e.Name())
	}
	return names
}

func TestRunCreatesConfigOnYes(t *testing.T) {
	f := newFixture(t, "y", true)

	require.NoError(t, f.b.Run(context.Background()))

	content, err := os.ReadFile(f.b.ConfigPath)
	require.NoError(t, err)
	assert.NotEmpty(t, content)
	assert.Contains(t, string(content), "myapp")
	assert.Contains(t, string(content), "x86_64-unknown-linux-gnu")

	assert.Equal(t, ".goreleaser.yml was not found. Shall I create one? [y/n]", f.prompter.question)
	assert.Contains(t, f.log.String(), "Done. Please review the config file at .goreleaser.yml and re-run the command.")
	assert.False(t, f.runner.Called(releaseLine), "packager must not run right after generating")
}

func TestRunDeclinedLeavesDirectoryUnchanged(t *testing.T) {
	for _, reply := range []string{"n", "", "Y", "yes", " y"} {
		t.Run(reply, func(t *testing.T) {
			f := newFixture(t, reply, true)

			require.NoError(t, f.b.Run(context.Background()))

			assert.Empty(t, entries(t, f.dir))
			assert.Equal(t, 0, f.generator.calls)
			assert.Empty(t, f.runner.Calls)
			assert.Equal(t, 1, f.prompter.asked)
		})
	}
}

func TestRunExistingConfigIsNeverRegenerated(t *testing.T) {
	f := newFixture(t, "y", true)
	original := []byte("project_name: handwritten\n")
	require.NoError(t, os.WriteFile(f.b.ConfigPath, original, 0o644))

	require.NoError(t, f.b.Run(context.Background()))

	content, err := os.ReadFile(f.b.ConfigPath)
	require.NoError(t, err)
	assert.Equal(t, original, content)
	assert.Equal(t, 0, f.generator.calls)
	assert.Equal(t, 0, f.prompter.asked)
	assert.Equal(t, []string{releaseLine}, f.runner.Calls)
	assert.Equal(t, "release succeeded\n", f.stdout.String())
}

func TestRunPackagerFailure(t *testing.T) {
	f := newFixture(t, "y", true)
	require.NoError(t, os.WriteFile(f.b.ConfigPath, []byte("version: 2\n"), 0o644))
	boom := errors.New("exit status 1")
	f.runner.On(releaseLine, shelltest.Result{Err: boom})

	err := f.b.Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "failure! is goreleaser installed?")
}

func TestRunMissingPackagerIsAdvisory(t *testing.T) {
	f := newFixture(t, "n", false)

	require.NoError(t, f.b.Run(context.Background()))

	assert.Contains(t, f.log.String(), "Cannot find goreleaser. Get it from https://goreleaser.com/")
	assert.Equal(t, 1, f.prompter.asked, "flow continues after the advisory")
}

func TestRunMissingPackagerStillInvokesIt(t *testing.T) {
	f := newFixture(t, "n", false)
	require.NoError(t, os.WriteFile(f.b.ConfigPath, []byte("version: 2\n"), 0o644))

	require.NoError(t, f.b.Run(context.Background()))
	assert.True(t, f.runner.Called(releaseLine))
}

func TestRunGenerationFailure(t *testing.T) {
	f := newFixture(t, "y", true)
	f.runner.On("cargo metadata --format-version 1 --no-deps", shelltest.Result{Err: errors.New("could not find `Cargo.toml`")})

	err := f.b.Run(context.Background())
	assert.ErrorContains(t, err, "cannot create .goreleaser.yml")
	assert.ErrorContains(t, err, "Cargo.toml")
	assert.Empty(t, entries(t, f.dir))
}

func TestRunPromptFailure(t *testing.T) {
	f := newFixture(t, "", true)
	f.prompter.err = errors.New("interrupt")

	err := f.b.Run(context.Background())
	assert.ErrorContains(t, err, "interrupt")
	assert.Equal(t, 0, f.generator.calls)
}

func TestRunTwiceGeneratesThenReleases(t *testing.T) {
	f := newFixture(t, "y", true)

	require.NoError(t, f.b.Run(context.Background()))
	assert.Equal(t, 1, f.generator.calls)

	require.NoError(t, f.b.Run(context.Background()))
	assert.Equal(t, 1, f.generator.calls)
	assert.True(t, f.runner.Called(releaseLine))
}
