package domain

import "github.com/cespare/xxhash/v2"

// Fingerprint digests the strict feature universe and its dependency
// shape. The strict list is walked in its sorted order, each name
// followed by that feature's dependency list. Extras do not contribute:
// they never change which strict subsets are generated.
//
// Identical strict features with identical dependency lists always yield
// the same value, regardless of declaration order in the sources.
func Fingerprint(strict []string, deps DependencyMap) uint64 {
	hasher := xxhash.New()

	for _, feature := range strict {
		_, _ = hasher.WriteString(feature)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0})

	for _, feature := range strict {
		for _, dep := range deps[feature] {
			_, _ = hasher.WriteString(dep)
			_, _ = hasher.Write([]byte{0})
		}
		_, _ = hasher.Write([]byte{0})
	}

	return hasher.Sum64()
}
