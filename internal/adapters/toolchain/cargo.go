// Package toolchain invokes the external build toolchain that validates
// feature combinations.
package toolchain

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/featvet/featvet/internal/core/domain"
	"github.com/featvet/featvet/internal/core/ports"
	"go.trai.ch/zerr"
)

// Cargo shells out to a cargo-compatible binary. The binary name comes
// from the project settings, so any drop-in replacement (cross, a
// wrapper script) works unchanged.
type Cargo struct{}

// NewCargo creates a new Cargo toolchain adapter.
func NewCargo() *Cargo {
	return &Cargo{}
}

// Check validates one combination. A non-empty combination disables
// default features and enables exactly its entries; an empty combination
// checks the default-feature path. The validator's stderr is captured
// and kept only on failure.
func (c *Cargo) Check(ctx context.Context, project *domain.Project, combo domain.Combination) domain.CheckOutcome {
	args := []string{"check"}
	if len(combo) > 0 {
		args = append(args, "--no-default-features", "--features", combo.Key())
	}

	outcome := domain.CheckOutcome{Combination: combo}
	stderr, err := c.run(ctx, project, args)
	if err != nil {
		outcome.Err = zerr.With(zerr.Wrap(err, "check failed"), "exit_code", exitCode(err))
		outcome.Diagnostics = stderr
	}
	return outcome
}

// Clean purges the project's build artifacts.
func (c *Cargo) Clean(ctx context.Context, project *domain.Project) error {
	stderr, err := c.run(ctx, project, []string{"clean"})
	if err != nil {
		failed := zerr.With(domain.ErrCleanFailed, "exit_code", exitCode(err))
		return zerr.With(failed, "stderr", stderr)
	}
	return nil
}

// Build compiles the project with every feature enabled, fetching and
// building all dependencies once so the per-combination checks start
// from a warm target directory.
func (c *Cargo) Build(ctx context.Context, project *domain.Project) error {
	stderr, err := c.run(ctx, project, []string{"build", "--all-features"})
	if err != nil {
		failed := zerr.With(domain.ErrBuildFailed, "exit_code", exitCode(err))
		return zerr.With(failed, "stderr", stderr)
	}
	return nil
}

func (c *Cargo) run(ctx context.Context, project *domain.Project, args []string) (string, error) {
	var stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, project.Settings.Command, args...) //nolint:gosec // command is user configured
	cmd.Dir = project.Root
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stderr.String(), err
}

func exitCode(err error) int {
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode()
	}
	return -1
}

var (
	_ ports.Checker = (*Cargo)(nil)
	_ ports.Builder = (*Cargo)(nil)
)
