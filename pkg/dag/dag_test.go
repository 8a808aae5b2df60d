package dag

import (
	"errors"
	"slices"
	"testing"
)

func TestAddNode_Validation(t *testing.T) {
	g := New()

	if err := g.AddNode(""); !errors.Is(err, ErrInvalidNodeID) {
		t.Errorf("AddNode(\"\") = %v, want ErrInvalidNodeID", err)
	}
	if err := g.AddNode("a"); err != nil {
		t.Fatalf("AddNode(a) error: %v", err)
	}
	if err := g.AddNode("a"); !errors.Is(err, ErrDuplicateNodeID) {
		t.Errorf("AddNode(a) twice = %v, want ErrDuplicateNodeID", err)
	}
}

func TestAddEdge_UnknownEndpoints(t *testing.T) {
	g := New()
	g.AddNode("a")

	if err := g.AddEdge("missing", "a"); !errors.Is(err, ErrUnknownSourceNode) {
		t.Errorf("AddEdge(missing, a) = %v, want ErrUnknownSourceNode", err)
	}
	if err := g.AddEdge("a", "missing"); !errors.Is(err, ErrUnknownTargetNode) {
		t.Errorf("AddEdge(a, missing) = %v, want ErrUnknownTargetNode", err)
	}
}

func TestAddEdge_CollapsesParallelEdges(t *testing.T) {
	g := New()
	g.AddNode("a")
	g.AddNode("b")
	g.AddEdge("a", "b")
	g.AddEdge("a", "b")

	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
	if g.OutDegree("a") != 1 {
		t.Errorf("OutDegree(a) = %d, want 1", g.OutDegree("a"))
	}
}

func TestFromDependants(t *testing.T) {
	g := FromDependants(map[string][]string{
		"cmake": {"common", "math"},
		"math":  {"common"},
		"tools": nil, // no dependants, so no vertex
	})

	wantNodes := []string{"cmake", "common", "math"}
	if got := g.Nodes(); !slices.Equal(got, wantNodes) {
		t.Errorf("Nodes() = %v, want %v", got, wantNodes)
	}
	if g.EdgeCount() != 3 {
		t.Errorf("EdgeCount() = %d, want 3", g.EdgeCount())
	}
	if got := g.Successors("cmake"); len(got) != 2 {
		t.Errorf("Successors(cmake) = %v, want 2 entries", got)
	}
}

func TestFromDependants_SkipsSelfLoops(t *testing.T) {
	g := FromDependants(map[string][]string{
		"a": {"a", "b"},
	})

	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1 (self-loop skipped)", g.EdgeCount())
	}
	if got := g.Successors("a"); !slices.Equal(got, []string{"b"}) {
		t.Errorf("Successors(a) = %v, want [b]", got)
	}

	// A key whose only dependant is itself contributes nothing.
	empty := FromDependants(map[string][]string{"x": {"x"}})
	if empty.NodeCount() != 0 {
		t.Errorf("NodeCount() = %d, want 0", empty.NodeCount())
	}
}

func TestSourcesAndSinks(t *testing.T) {
	g := FromDependants(map[string][]string{
		"cmake": {"math"},
		"math":  {"sim"},
	})

	if got := g.Sources(); !slices.Equal(got, []string{"cmake"}) {
		t.Errorf("Sources() = %v, want [cmake]", got)
	}
	if got := g.Sinks(); !slices.Equal(got, []string{"sim"}) {
		t.Errorf("Sinks() = %v, want [sim]", got)
	}
}
