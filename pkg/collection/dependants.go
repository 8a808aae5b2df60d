package collection

import "slices"

// Dependants returns, for each target, the sorted set of package names
// whose document lists the target as a direct dependency. A target with no
// dependants maps to an empty slice; an unknown target is not an error.
//
// A package file that pins its own package counts as a dependant of itself
// here; the one-hop extension is where self-references drop out.
func (ix Index) Dependants(targets []string) map[string][]string {
	out := make(map[string][]string, len(targets))
	for _, target := range targets {
		deps := []string{}
		for name, doc := range ix {
			if doc.DependsOn(target) {
				deps = append(deps, name)
			}
		}
		slices.Sort(deps)
		out[target] = deps
	}
	return out
}

// Seed flattens a per-target dependant mapping into the sorted union of
// all dependants. This union seeds the one-hop extension.
func Seed(perTarget map[string][]string) []string {
	set := make(map[string]struct{})
	for _, deps := range perTarget {
		for _, d := range deps {
			set[d] = struct{}{}
		}
	}
	seed := make([]string, 0, len(set))
	for d := range set {
		seed = append(seed, d)
	}
	slices.Sort(seed)
	return seed
}

// ExtendOneHop scans the index once more to find the direct dependants of
// every seed member, excluding self-references. The result is the dependant
// edge set: dependency → its downstream dependants.
//
// This is deliberately one scan depth beyond the seed, not a transitive
// closure: the report covers explicit dependants of the participant
// libraries and nothing further.
func (ix Index) ExtendOneHop(seed []string) map[string][]string {
	edges := make(map[string][]string, len(seed))
	for _, dep := range seed {
		libs := []string{}
		for name, doc := range ix {
			if name == dep {
				continue
			}
			if doc.DependsOn(dep) {
				libs = append(libs, name)
			}
		}
		slices.Sort(libs)
		edges[dep] = libs
	}
	return edges
}
