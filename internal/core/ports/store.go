package ports

import "github.com/featvet/featvet/internal/core/domain"

// CombinationStore persists generated combination sets between runs.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type CombinationStore interface {
	// Load reads the record at the given path.
	// Returns nil, nil if no record exists.
	Load(path string) (*domain.CacheRecord, error)

	// Store overwrites the record at the given path.
	Store(path string, record domain.CacheRecord) error
}
