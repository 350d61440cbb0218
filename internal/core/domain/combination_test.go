package domain_test

import (
	"testing"

	"github.com/featvet/featvet/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keys(combos []domain.Combination) []string {
	out := make([]string, len(combos))
	for i, c := range combos {
		out[i] = c.Key()
	}
	return out
}

func TestGenerateCombinations_NoDependencies(t *testing.T) {
	universe := domain.Universe{Strict: []string{"a", "b", "c"}}

	combos := domain.GenerateCombinations(universe, domain.DependencyMap{})

	// Every non-empty subset survives untouched.
	assert.ElementsMatch(t, []string{
		"a", "b", "a b", "c", "a c", "b c", "a b c",
	}, keys(combos))
}

func TestGenerateCombinations_PrunesDependencyTargets(t *testing.T) {
	// "a" implies "b": any subset containing both must drop "b".
	universe := domain.Universe{Strict: []string{"a", "b"}}
	deps := domain.DependencyMap{"a": {"b"}}

	combos := domain.GenerateCombinations(universe, deps)

	assert.ElementsMatch(t, []string{"a", "b"}, keys(combos))
}

func TestGenerateCombinations_SinglePassExclusion(t *testing.T) {
	// a -> b -> c. In the subset {a, b, c}, "b" is excluded by "a" and
	// therefore skipped before its own dependency list is read, so "c"
	// survives. The exclusion set is not closed transitively.
	universe := domain.Universe{Strict: []string{"a", "b", "c"}}
	deps := domain.DependencyMap{"a": {"b"}, "b": {"c"}}

	combos := domain.GenerateCombinations(universe, deps)

	assert.Contains(t, keys(combos), "a c")
	assert.NotContains(t, keys(combos), "a b c")
}

func TestGenerateCombinations_DiscardsEmptyAfterPruning(t *testing.T) {
	// A feature that lists itself is filtered out of its own combination,
	// leaving nothing to test.
	universe := domain.Universe{Strict: []string{"a"}}
	deps := domain.DependencyMap{"a": {"a"}}

	combos := domain.GenerateCombinations(universe, deps)

	assert.Empty(t, combos)
}

func TestGenerateCombinations_ExtrasAugmentEachCombination(t *testing.T) {
	universe := domain.Universe{Strict: []string{"x"}, Extras: []string{"y"}}

	combos := domain.GenerateCombinations(universe, domain.DependencyMap{})

	require.Equal(t, []string{"x y", "x", "y"}, keys(combos))
}

func TestGenerateCombinations_ExtrasAloneWithEmptyStrictUniverse(t *testing.T) {
	universe := domain.Universe{Extras: []string{"y", "z"}}

	combos := domain.GenerateCombinations(universe, domain.DependencyMap{})

	assert.Equal(t, []string{"y", "z"}, keys(combos))
}

func TestGenerateCombinations_DeduplicatesPrunedSubsets(t *testing.T) {
	// Subsets {a} and {a, b} both prune to ["a"]; only one survives.
	universe := domain.Universe{Strict: []string{"a", "b"}}
	deps := domain.DependencyMap{"a": {"b"}}

	combos := domain.GenerateCombinations(universe, deps)

	seen := make(map[string]int)
	for _, c := range combos {
		seen[c.Key()]++
	}
	for key, count := range seen {
		if count != 1 {
			t.Errorf("combination %q emitted %d times", key, count)
		}
	}
}

func TestGenerateCombinations_Deterministic(t *testing.T) {
	universe := domain.Universe{
		Strict: []string{"a", "b", "c"},
		Extras: []string{"x"},
	}
	deps := domain.DependencyMap{"a": {"b"}, "c": {"serde"}}

	first := domain.GenerateCombinations(universe, deps)
	second := domain.GenerateCombinations(universe, deps)

	require.Equal(t, keys(first), keys(second))
}

func TestCombination_Label(t *testing.T) {
	assert.Equal(t, "default features", domain.Combination{}.Label())
	assert.Equal(t, "a b", domain.Combination{"a", "b"}.Label())
}
