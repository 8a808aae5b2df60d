package dag

import (
	"fmt"
	"maps"
	"slices"
)

// ErrCycle is returned by [Levels] when the graph contains a directed cycle.
// A dependant graph with a cycle has no valid merge ordering.
type ErrCycle struct {
	Node string // a node on the detected cycle
}

func (e *ErrCycle) Error() string {
	return fmt.Sprintf("graph contains a cycle through %q", e.Node)
}

// Levels assigns every vertex its topological level: the longest directed
// path length starting from it. Sinks (and IDs that never appear as an edge
// source) get level 1; every other vertex gets one more than the maximum
// level of its successors. For every edge v → w in an acyclic graph,
// level(v) > level(w).
//
// Each vertex is computed at most once. Vertices currently on the recursion
// stack are marked in progress; reaching one again means a cycle, which is
// reported as *ErrCycle instead of recursing forever.
//
// An empty graph yields an empty, non-nil map.
func Levels(g *Graph) (map[string]int, error) {
	const (
		unvisited = iota
		inProgress
		done
	)

	levels := make(map[string]int, g.NodeCount())
	state := make(map[string]int, g.NodeCount())

	var assign func(id string) (int, error)
	assign = func(id string) (int, error) {
		switch state[id] {
		case done:
			return levels[id], nil
		case inProgress:
			return 0, &ErrCycle{Node: id}
		}

		state[id] = inProgress
		level := 1
		for _, succ := range g.Successors(id) {
			sub, err := assign(succ)
			if err != nil {
				return 0, err
			}
			if sub+1 > level {
				level = sub + 1
			}
		}
		state[id] = done
		levels[id] = level
		return level, nil
	}

	for _, id := range g.Nodes() {
		if _, err := assign(id); err != nil {
			return nil, err
		}
	}
	return levels, nil
}

// Wave is the set of packages sharing a topological level. Packages in the
// same wave have no path between them through the dependant graph and can
// be merged together.
type Wave struct {
	Level    int
	Packages []string // sorted
}

// Waves groups a level map into waves ordered by descending level.
// Merging waves in the returned order (highest level first) guarantees that
// every package lands after all of its upstream dependencies.
func Waves(levels map[string]int) []Wave {
	byLevel := make(map[int][]string)
	for id, level := range levels {
		byLevel[level] = append(byLevel[level], id)
	}

	out := make([]Wave, 0, len(byLevel))
	for _, level := range slices.Sorted(maps.Keys(byLevel)) {
		pkgs := byLevel[level]
		slices.Sort(pkgs)
		out = append(out, Wave{Level: level, Packages: pkgs})
	}
	slices.Reverse(out)
	return out
}
