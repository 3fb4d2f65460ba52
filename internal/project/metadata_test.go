package project

import (
	"context"
	"errors"
	"testing"

	"github.com/kajvans/goreleaser-rust/internal/shell/shelltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const metadataLine = "cargo metadata --format-version 1 --no-deps"

func TestBinaryName(t *testing.T) {
	fake := shelltest.NewFake().On(metadataLine, shelltest.Result{
		Stdout: `{"packages":[{"name":"myapp","version":"0.1.0"},{"name":"helper","version":"0.2.0"}],"version":1}`,
	})
	i := &Inspector{Runner: fake}

	name, err := i.BinaryName(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "myapp", name)
}

func TestBinaryNameCustomCargo(t *testing.T) {
	fake := shelltest.NewFake().On("/opt/rust/bin/cargo metadata --format-version 1 --no-deps", shelltest.Result{
		Stdout: `{"packages":[{"name":"pinned-app"}]}`,
	})
	i := &Inspector{Runner: fake, Cargo: "/opt/rust/bin/cargo"}

	name, err := i.BinaryName(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "pinned-app", name)
}

func TestBinaryNameNoPackages(t *testing.T) {
	fake := shelltest.NewFake().On(metadataLine, shelltest.Result{Stdout: `{"packages":[]}`})
	i := &Inspector{Runner: fake}

	_, err := i.BinaryName(context.Background())
	assert.ErrorIs(t, err, ErrNoPackages)
}

func TestBinaryNameInvalidJSON(t *testing.T) {
	fake := shelltest.NewFake().On(metadataLine, shelltest.Result{Stdout: "error: could not find `Cargo.toml`"})
	i := &Inspector{Runner: fake}

	_, err := i.BinaryName(context.Background())
	assert.ErrorContains(t, err, "cannot parse cargo metadata")
}

func TestBinaryNameRunnerError(t *testing.T) {
	boom := errors.New("exit status 101")
	fake := shelltest.NewFake().On(metadataLine, shelltest.Result{Err: boom})
	i := &Inspector{Runner: fake}

	_, err := i.BinaryName(context.Background())
	assert.ErrorIs(t, err, boom)
}
