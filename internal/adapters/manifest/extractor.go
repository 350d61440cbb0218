// Package manifest implements the feature dependency extractor for
// Cargo-style manifests.
package manifest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/featvet/featvet/internal/core/domain"
	"github.com/featvet/featvet/internal/core/ports"
	"go.trai.ch/zerr"
)

// Extractor implements ports.DependencyExtractor. Warnings about
// untested features go to the injected logger; they never abort
// extraction.
type Extractor struct {
	logger ports.Logger
}

// NewExtractor creates a new Extractor.
func NewExtractor(logger ports.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// Extract parses the feature declarations of the manifest at the given
// path.
func (e *Extractor) Extract(manifestPath string, known map[string]struct{}) (domain.DependencyMap, error) {
	f, err := os.Open(manifestPath) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open manifest"), "path", manifestPath)
	}
	defer f.Close() //nolint:errcheck // read-only file

	deps, err := e.Parse(f, known)
	if err != nil {
		return nil, zerr.With(err, "path", manifestPath)
	}
	return deps, nil
}

// Parse reads feature declarations from r. Only the [features] section
// is consumed: parsing starts at the section header and stops at the
// next section. Each entry line has the shape
//
//	name = [ "dep1", "dep2" ]
//
// Quoting is stripped; blank entries and entries prefixed "dep:" (crate
// dependencies rather than features) are dropped. Entries keyed by a
// name that is neither known nor "default" are still recorded, with a
// warning.
func (e *Extractor) Parse(r io.Reader, known map[string]struct{}) (domain.DependencyMap, error) {
	deps := make(domain.DependencyMap)

	scanner := bufio.NewScanner(r)
	inFeatures := false
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "[features]" {
			inFeatures = true
			continue
		}
		if !inFeatures {
			continue
		}
		if strings.HasPrefix(line, "[") {
			break
		}

		pos := strings.Index(line, "=")
		if pos < 0 {
			continue
		}
		feature := strings.TrimSpace(line[:pos])
		if _, ok := known[feature]; !ok && feature != "default" {
			e.logger.Warn(fmt.Sprintf("feature %q is not in the list of tested features", feature))
		}
		deps[feature] = parseDependencyList(line[pos+1:])
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, "failed to read manifest")
	}

	return deps, nil
}

func parseDependencyList(raw string) []string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "[")
	raw = strings.TrimSuffix(raw, "]")

	var deps []string
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.Trim(strings.TrimSpace(entry), `"`)
		if entry == "" || strings.HasPrefix(entry, "dep:") {
			continue
		}
		deps = append(deps, entry)
	}
	return deps
}

var _ ports.DependencyExtractor = (*Extractor)(nil)
