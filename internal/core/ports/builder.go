package ports

import (
	"context"

	"github.com/featvet/featvet/internal/core/domain"
)

// Builder prepares the project before combination checks run.
//
//go:generate mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type Builder interface {
	// Clean purges the project's build artifacts.
	Clean(ctx context.Context, project *domain.Project) error

	// Build warms the project up with every feature enabled so that all
	// dependencies are fetched and compiled once before the checks.
	Build(ctx context.Context, project *domain.Project) error
}
