// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin read-only facade over configuration and catalog sizes.
// Policy:
//   - No mutation and no hidden state here.

package core

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	Directed    bool // construction-time directedness
	VertexCount int  // number of vertices
	EdgeCount   int  // logical edges (undirected mirrors counted once)
	SelfLoops   int  // edges v→v
}

// Directed reports the construction-time directedness. O(1).
func (g *Graph[V, W]) Directed() bool {
	return g.directed
}

// Stats produces a snapshot of configuration and sizes.
//
// Implementation:
//   - Stage 1: Record the directedness flag and vertex count.
//   - Stage 2: Count logical edges and self-loops in one pass.
//
// Complexity:
//   - Time O(V), Space O(1).
func (g *Graph[V, W]) Stats() GraphStats {
	stats := GraphStats{
		Directed:    g.directed,
		VertexCount: len(g.order),
	}

	total := 0
	var v V
	var nbrs map[V]W
	for v, nbrs = range g.adj {
		total += len(nbrs)
		if _, ok := nbrs[v]; ok {
			stats.SelfLoops++
		}
	}
	if g.directed {
		stats.EdgeCount = total
	} else {
		stats.EdgeCount = (total-stats.SelfLoops)/2 + stats.SelfLoops
	}

	return stats
}
