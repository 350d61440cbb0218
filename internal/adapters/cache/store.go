// Package cache persists generated combination sets between runs.
package cache

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/featvet/featvet/internal/core/domain"
	"github.com/featvet/featvet/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.CombinationStore using a flat text file. Line 1
// is the decimal fingerprint; every further line is one space-joined
// combination. The file is replaced wholesale on write; the tool runs
// single-instance, so truncate-and-rewrite is sufficient.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads the record at the given path.
// Returns nil, nil if no record exists.
func (s *Store) Load(path string) (*domain.CacheRecord, error) {
	//nolint:gosec // Path is cleaned and provided by trusted caller
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to open combination cache"), "path", path)
	}
	defer f.Close() //nolint:errcheck // read-only file

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to read combination cache"), "path", path)
		}
		return nil, zerr.With(domain.ErrCacheCorrupt, "path", path)
	}

	fingerprint, err := strconv.ParseUint(strings.TrimSpace(scanner.Text()), 10, 64)
	if err != nil {
		corrupt := zerr.With(domain.ErrCacheCorrupt, "path", path)
		return nil, zerr.With(corrupt, "reason", "first line is not a fingerprint")
	}

	record := &domain.CacheRecord{Fingerprint: fingerprint}
	for scanner.Scan() {
		combo := domain.Combination(strings.Fields(scanner.Text()))
		if len(combo) == 0 {
			continue
		}
		record.Combinations = append(record.Combinations, combo)
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read combination cache"), "path", path)
	}

	return record, nil
}

// Store writes the record at the given path, replacing any previous
// content.
func (s *Store) Store(path string, record domain.CacheRecord) error {
	var b strings.Builder
	b.WriteString(strconv.FormatUint(record.Fingerprint, 10))
	b.WriteByte('\n')
	for _, combo := range record.Combinations {
		b.WriteString(combo.Key())
		b.WriteByte('\n')
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create cache directory"), "path", path)
		}
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write combination cache"), "path", path)
	}

	return nil
}

var _ ports.CombinationStore = (*Store)(nil)
