package ports

import "github.com/featvet/featvet/internal/core/domain"

// DependencyExtractor derives the feature dependency map from a project
// manifest.
//
//go:generate mockgen -source=extractor.go -destination=mocks/mock_extractor.go -package=mocks
type DependencyExtractor interface {
	// Extract parses the manifest's feature declarations. Entries whose
	// name is neither in known nor the "default" pseudo-feature produce a
	// warning through the extractor's diagnostic sink; extraction
	// continues. An unreadable manifest is an error.
	Extract(manifestPath string, known map[string]struct{}) (domain.DependencyMap, error)
}
