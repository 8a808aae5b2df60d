package dag

import (
	"errors"
	"maps"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is
	// empty. All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with the
	// same ID already exists in the graph.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when the From node
	// does not exist.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] when the To node
	// does not exist.
	ErrUnknownTargetNode = errors.New("unknown target node")
)

// Edge represents a directed connection between two nodes.
// In a dependant graph the edge points from a dependency to one of its
// dependants: an edge a → b means b must not merge a bump before a has.
type Edge struct {
	From string
	To   string
}

// Graph is a directed graph of package names. It makes no acyclicity
// guarantee on its own; [Levels] reports a cycle if one is reachable.
//
// The zero value is not usable - use New to create a valid instance.
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	nodes    map[string]struct{}
	edges    []Edge
	outgoing map[string][]string // nodeID -> successor IDs
	incoming map[string][]string // nodeID -> predecessor IDs
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{
		nodes:    make(map[string]struct{}),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
	}
}

// FromDependants builds a graph from a dependant edge set: each key is a
// dependency and each value lists its direct dependants. An edge
// dependency → dependant is added for every pair, skipping self-loops.
// Keys whose list holds nothing but self-references contribute no vertex:
// only names that take part in an edge enter the graph.
func FromDependants(dependants map[string][]string) *Graph {
	g := New()
	for dep, libs := range dependants {
		for _, lib := range libs {
			if lib == dep {
				continue
			}
			g.ensure(dep)
			g.ensure(lib)
			_ = g.AddEdge(dep, lib)
		}
	}
	return g
}

// AddNode adds a node to the graph.
// Returns ErrInvalidNodeID if the ID is empty, or ErrDuplicateNodeID if a
// node with the same ID already exists.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrInvalidNodeID
	}
	if _, exists := g.nodes[id]; exists {
		return ErrDuplicateNodeID
	}
	g.nodes[id] = struct{}{}
	return nil
}

// ensure adds the node if absent. Used when building from edge sets, where
// the same name legitimately appears many times.
func (g *Graph) ensure(id string) {
	if id == "" {
		return
	}
	g.nodes[id] = struct{}{}
}

// AddEdge adds a directed edge between two existing nodes.
// Returns ErrUnknownSourceNode or ErrUnknownTargetNode if either endpoint
// is missing. Parallel edges are collapsed: adding the same edge twice is
// a no-op.
func (g *Graph) AddEdge(from, to string) error {
	if _, ok := g.nodes[from]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := g.nodes[to]; !ok {
		return ErrUnknownTargetNode
	}
	if slices.Contains(g.outgoing[from], to) {
		return nil
	}
	g.edges = append(g.edges, Edge{From: from, To: to})
	g.outgoing[from] = append(g.outgoing[from], to)
	g.incoming[to] = append(g.incoming[to], from)
	return nil
}

// Nodes returns all node IDs in sorted order.
func (g *Graph) Nodes() []string {
	return slices.Sorted(maps.Keys(g.nodes))
}

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Successors returns the IDs this node has edges to.
// Returns nil if the node has no successors or doesn't exist. The returned
// slice should not be modified.
func (g *Graph) Successors(id string) []string { return g.outgoing[id] }

// Predecessors returns the IDs that have edges to this node.
// Returns nil if the node has no predecessors or doesn't exist.
func (g *Graph) Predecessors(id string) []string { return g.incoming[id] }

// OutDegree returns the number of outgoing edges from the node.
func (g *Graph) OutDegree(id string) int { return len(g.outgoing[id]) }

// InDegree returns the number of incoming edges to the node.
func (g *Graph) InDegree(id string) int { return len(g.incoming[id]) }

// Sources returns node IDs with no incoming edges, in sorted order.
// In a dependant graph these are the most upstream packages.
func (g *Graph) Sources() []string {
	var sources []string
	for id := range g.nodes {
		if len(g.incoming[id]) == 0 {
			sources = append(sources, id)
		}
	}
	slices.Sort(sources)
	return sources
}

// Sinks returns node IDs with no outgoing edges, in sorted order.
// In a dependant graph these are the most downstream packages.
func (g *Graph) Sinks() []string {
	var sinks []string
	for id := range g.nodes {
		if len(g.outgoing[id]) == 0 {
			sinks = append(sinks, id)
		}
	}
	slices.Sort(sinks)
	return sinks
}
