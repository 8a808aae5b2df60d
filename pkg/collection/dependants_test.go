package collection

import (
	"slices"
	"testing"
)

// fixtureIndex builds an in-memory index from name → direct dependencies.
func fixtureIndex(deps map[string][]string) Index {
	ix := make(Index, len(deps))
	for name, pkgs := range deps {
		repos := make(map[string]Repository, len(pkgs))
		for _, p := range pkgs {
			repos[p] = Repository{Version: p + "1"}
		}
		ix[name] = &Document{Name: name, Revision: 1, Repositories: repos}
	}
	return ix
}

func TestDependants_Chain(t *testing.T) {
	// A has no deps, B depends on A, C depends on B.
	ix := fixtureIndex(map[string][]string{
		"A": {},
		"B": {"A"},
		"C": {"B"},
	})

	perTarget := ix.Dependants([]string{"A"})
	if got := perTarget["A"]; !slices.Equal(got, []string{"B"}) {
		t.Errorf("dependants of A = %v, want [B]", got)
	}

	edges := ix.ExtendOneHop(Seed(perTarget))
	if got := edges["B"]; !slices.Equal(got, []string{"C"}) {
		t.Errorf("one-hop dependants of B = %v, want [C]", got)
	}
}

func TestDependants_UnknownTarget(t *testing.T) {
	ix := fixtureIndex(map[string][]string{"A": {}})

	perTarget := ix.Dependants([]string{"nope"})
	got, ok := perTarget["nope"]
	if !ok {
		t.Fatal("unknown target should still appear in the result")
	}
	if len(got) != 0 {
		t.Errorf("dependants of unknown target = %v, want empty", got)
	}
}

func TestDependants_MultipleTargetsUnion(t *testing.T) {
	ix := fixtureIndex(map[string][]string{
		"cmake": {},
		"math":  {"cmake"},
		"sim":   {"cmake", "math"},
		"gui":   {"math"},
	})

	perTarget := ix.Dependants([]string{"cmake", "math"})
	seed := Seed(perTarget)

	want := []string{"gui", "math", "sim"}
	if !slices.Equal(seed, want) {
		t.Errorf("Seed() = %v, want %v", seed, want)
	}
}

func TestExtendOneHop_ExcludesSelfReference(t *testing.T) {
	// sim's own package file pins sim itself, which must not create a
	// self-edge.
	ix := fixtureIndex(map[string][]string{
		"sim": {"sim", "math"},
		"gui": {"sim"},
	})

	edges := ix.ExtendOneHop([]string{"sim"})
	if got := edges["sim"]; !slices.Equal(got, []string{"gui"}) {
		t.Errorf("one-hop dependants of sim = %v, want [gui]", got)
	}
}

func TestExtendOneHop_IsNotTransitive(t *testing.T) {
	// a ← b ← c ← d: seeding with b must stop after c.
	ix := fixtureIndex(map[string][]string{
		"a": {},
		"b": {"a"},
		"c": {"b"},
		"d": {"c"},
	})

	edges := ix.ExtendOneHop([]string{"b"})
	if len(edges) != 1 {
		t.Fatalf("edge set has %d keys, want 1: %v", len(edges), edges)
	}
	if got := edges["b"]; !slices.Equal(got, []string{"c"}) {
		t.Errorf("one-hop dependants of b = %v, want [c]", got)
	}
}
