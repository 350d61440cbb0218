package ports

import (
	"context"

	"github.com/featvet/featvet/internal/core/domain"
)

// Checker validates a single feature combination against the project.
//
//go:generate go run go.uber.org/mock/mockgen -source=checker.go -destination=mocks/mock_checker.go -package=mocks
type Checker interface {
	// Check runs the external validator for the combination and blocks
	// until it finishes. A failing validator is reported in the outcome,
	// never as a process-level error: the outcome's Err is set and its
	// Diagnostics carry the captured error stream.
	Check(ctx context.Context, project *domain.Project, combo domain.Combination) domain.CheckOutcome
}
