// Package ports defines the core interfaces for the application.
package ports

import "github.com/featvet/featvet/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at the given path and returns the
	// validated settings and feature declarations.
	Load(path string) (*domain.ProjectConfig, error)
}
