// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Policy:
//   - Each clone owns a fresh rng seeded with one draw from the source's rng,
//     so a seeded source yields reproducible clones and no state is shared.
//   - Weights are copied by value (pointer or reference weights therefore
//     alias the source's targets).
//   - Clear() preserves directedness and rng but drops every vertex and edge.

package core

import "math/rand"

// CloneEmpty returns a new Graph with the same configuration and vertices
// but no edges. The clone's sampler is seeded from g's sampler, which
// advances g's random sequence by one draw.
// Complexity: O(V).
func (g *Graph[V, W]) CloneEmpty() *Graph[V, W] {
	clone := &Graph[V, W]{
		directed: g.directed,
		adj:      make(map[V]map[V]W, len(g.adj)),
		order:    make([]V, 0, len(g.order)),
		pos:      make(map[V]int, len(g.pos)),
		unit:     g.unit,
		rng:      rand.New(rand.NewSource(g.rng.Int63())),
	}
	var v V
	for _, v = range g.order {
		clone.insertVertex(v)
	}

	return clone
}

// Clone returns a deep copy of the adjacency structure: configuration,
// vertices and every stored entry (mirrors included).
// Complexity: O(V + E).
func (g *Graph[V, W]) Clone() *Graph[V, W] {
	clone := g.CloneEmpty()
	var v, w V
	var nbrs map[V]W
	var weight W
	for v, nbrs = range g.adj {
		dst := clone.adj[v]
		for w, weight = range nbrs {
			dst[w] = weight
		}
	}

	return clone
}

// Clear removes every vertex and edge, keeping directedness and rng.
// Complexity: O(1) plus garbage collection of the old maps.
func (g *Graph[V, W]) Clear() {
	g.adj = make(map[V]map[V]W)
	g.order = nil
	g.pos = make(map[V]int)
}
