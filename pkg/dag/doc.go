// Package dag models the dependant graph of a distro collection and assigns
// topological levels to its vertices.
//
// Vertices are package names. An edge points from a dependency to one of
// its direct dependants, so walking edges moves downstream. [Levels]
// computes the longest downstream path length for every vertex, and [Waves]
// buckets vertices sharing a level into merge waves, most downstream first.
//
// The leveling is sound but not minimal: a vertex is never placed at or
// below the level of anything it points to, but neighbouring waves may
// occasionally be mergeable together.
package dag
