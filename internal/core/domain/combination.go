package domain

import "strings"

// Combination is one set of feature names to validate together. Entries
// are unique and whitespace-free; an empty combination stands for the
// project's default-feature build.
type Combination []string

// Key returns the canonical identity of the combination: its entries
// space-joined in their stored order. This is also the cache file line
// format.
func (c Combination) Key() string {
	return strings.Join(c, " ")
}

// Label returns a human-readable name for the combination.
func (c Combination) Label() string {
	if len(c) == 0 {
		return "default features"
	}
	return c.Key()
}

// GenerateCombinations enumerates the deduplicated set of feature
// combinations worth testing for the given universe.
//
// Every non-empty subset of the strict universe is visited by index.
// Walking the subset in feature order, a feature that is already in the
// exclusion set is skipped entirely; an included feature unions its
// dependency list into the exclusion set. The included sequence is then
// filtered once against the final exclusion set, so a feature implied by
// another feature in the same subset never survives. The exclusion set
// is built in a single pass per subset and is deliberately not closed
// transitively.
//
// Each surviving combination C emits C plus one augmented variant C+{E}
// per extra feature E. After the subset loop every extra is emitted on
// its own, which also covers an empty strict universe.
//
// Output preserves first-emission order with duplicates collapsed, so a
// fixed universe and dependency map always produce the same sequence.
func GenerateCombinations(universe Universe, deps DependencyMap) []Combination {
	var combos []Combination
	seen := make(map[string]struct{})

	emit := func(c Combination) {
		key := c.Key()
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		combos = append(combos, c)
	}

	n := len(universe.Strict)
	for i := 1; i < (1 << n); i++ {
		var combo []string
		exclude := make(map[string]struct{})

		for j := 0; j < n; j++ {
			if i&(1<<j) == 0 {
				continue
			}
			feature := universe.Strict[j]
			if _, excluded := exclude[feature]; excluded {
				continue
			}
			combo = append(combo, feature)
			for _, dep := range deps[feature] {
				exclude[dep] = struct{}{}
			}
		}

		filtered := make(Combination, 0, len(combo))
		for _, feature := range combo {
			if _, excluded := exclude[feature]; !excluded {
				filtered = append(filtered, feature)
			}
		}
		if len(filtered) == 0 {
			continue
		}

		for _, extra := range universe.Extras {
			augmented := make(Combination, len(filtered), len(filtered)+1)
			copy(augmented, filtered)
			emit(append(augmented, extra))
		}
		emit(filtered)
	}

	for _, extra := range universe.Extras {
		emit(Combination{extra})
	}

	return combos
}
