package toolchain_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/featvet/featvet/internal/adapters/toolchain"
	"github.com/featvet/featvet/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeToolchain writes a shell script standing in for cargo. It records
// its arguments to args.txt in the project root and behaves per the
// script body.
func fakeToolchain(t *testing.T, root, body string) string {
	t.Helper()
	path := filepath.Join(root, "fake-cargo")
	script := "#!/bin/sh\necho \"$@\" > \"$(dirname \"$0\")/args.txt\"\n" + body + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func recordedArgs(t *testing.T, root string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, "args.txt"))
	require.NoError(t, err)
	return string(data)
}

func testProject(root, command string) *domain.Project {
	return &domain.Project{
		Root:     root,
		Settings: domain.Settings{Command: command},
	}
}

func TestCargo_Check_EnablesExactlyTheCombination(t *testing.T) {
	root := t.TempDir()
	cmd := fakeToolchain(t, root, "exit 0")

	outcome := toolchain.NewCargo().Check(context.Background(),
		testProject(root, cmd), domain.Combination{"serde", "zlib"})

	require.NoError(t, outcome.Err)
	assert.Empty(t, outcome.Diagnostics)
	assert.Equal(t, "check --no-default-features --features serde zlib\n", recordedArgs(t, root))
}

func TestCargo_Check_EmptyCombinationUsesDefaultFeatures(t *testing.T) {
	root := t.TempDir()
	cmd := fakeToolchain(t, root, "exit 0")

	outcome := toolchain.NewCargo().Check(context.Background(),
		testProject(root, cmd), domain.Combination{})

	require.NoError(t, outcome.Err)
	assert.Equal(t, "check\n", recordedArgs(t, root))
}

func TestCargo_Check_CapturesStderrOnFailure(t *testing.T) {
	root := t.TempDir()
	cmd := fakeToolchain(t, root, "echo 'error[E0463]: cannot find crate' >&2\nexit 101")

	outcome := toolchain.NewCargo().Check(context.Background(),
		testProject(root, cmd), domain.Combination{"serde"})

	require.Error(t, outcome.Err)
	assert.True(t, outcome.Failed())
	assert.Contains(t, outcome.Diagnostics, "error[E0463]")
}

func TestCargo_Clean(t *testing.T) {
	root := t.TempDir()
	cmd := fakeToolchain(t, root, "exit 0")

	err := toolchain.NewCargo().Clean(context.Background(), testProject(root, cmd))

	require.NoError(t, err)
	assert.Equal(t, "clean\n", recordedArgs(t, root))
}

func TestCargo_Clean_Failure(t *testing.T) {
	root := t.TempDir()
	cmd := fakeToolchain(t, root, "exit 1")

	err := toolchain.NewCargo().Clean(context.Background(), testProject(root, cmd))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCleanFailed))
}

func TestCargo_Build_AllFeatures(t *testing.T) {
	root := t.TempDir()
	cmd := fakeToolchain(t, root, "exit 0")

	err := toolchain.NewCargo().Build(context.Background(), testProject(root, cmd))

	require.NoError(t, err)
	assert.Equal(t, "build --all-features\n", recordedArgs(t, root))
}

func TestCargo_Build_Failure(t *testing.T) {
	root := t.TempDir()
	cmd := fakeToolchain(t, root, "echo 'linker not found' >&2\nexit 1")

	err := toolchain.NewCargo().Build(context.Background(), testProject(root, cmd))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBuildFailed))
}

func TestCargo_Check_MissingBinary(t *testing.T) {
	root := t.TempDir()

	outcome := toolchain.NewCargo().Check(context.Background(),
		testProject(root, filepath.Join(root, "no-such-binary")), domain.Combination{"serde"})

	require.Error(t, outcome.Err)
}
