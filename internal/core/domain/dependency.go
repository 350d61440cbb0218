package domain

// DependencyMap maps a feature name to the ordered list of entities it
// enables when switched on. Keys are the declared features plus the
// implicit "default" pseudo-feature; looking up an unknown feature yields
// an empty list.
type DependencyMap map[string][]string

// Edges returns only the entries that carry a non-empty dependency list.
// The project summary prints these.
func (m DependencyMap) Edges() map[string][]string {
	edges := make(map[string][]string)
	for feature, deps := range m {
		if len(deps) == 0 {
			continue
		}
		edges[feature] = deps
	}
	return edges
}
