// Package domain contains the core types and algorithms for feature
// combination vetting.
package domain

import "sort"

// FeatureConfig classifies a single declared feature.
type FeatureConfig struct {
	// Strict marks the feature as part of the primary combinatorial
	// universe. Non-strict features are "extras", tested only additively
	// on top of each strict combination and in isolation.
	Strict bool
}

// Universe is the classified feature set of a project. Both lists are
// sorted, so identical declarations yield identical universes regardless
// of source order.
type Universe struct {
	Strict []string
	Extras []string
}

// NewUniverse categorizes declared features into the strict universe and
// the extra set.
func NewUniverse(features map[string]FeatureConfig) Universe {
	u := Universe{}
	for name, cfg := range features {
		if cfg.Strict {
			u.Strict = append(u.Strict, name)
		} else {
			u.Extras = append(u.Extras, name)
		}
	}
	sort.Strings(u.Strict)
	sort.Strings(u.Extras)
	return u
}

// Known returns the set of all declared feature names, strict and extra.
// The extractor uses it to decide which manifest entries are tested.
func (u Universe) Known() map[string]struct{} {
	known := make(map[string]struct{}, len(u.Strict)+len(u.Extras))
	for _, name := range u.Strict {
		known[name] = struct{}{}
	}
	for _, name := range u.Extras {
		known[name] = struct{}{}
	}
	return known
}

// PossibleCombinations returns the size of the unpruned search space:
// every subset of the strict universe, each paired with every extra and
// with no extra.
func (u Universe) PossibleCombinations() uint64 {
	return (uint64(1) << uint(len(u.Strict))) * uint64(len(u.Extras)+1)
}
