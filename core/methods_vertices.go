// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() order is unspecified; treat the result as a set.
//   - RandomVertex() draws from the configured rng (WithSeed for reproducible runs).

package core

// AddVertex inserts v with an empty neighbour map if it is absent.
// Adding an existing vertex is a no-op; the call never fails.
// Complexity: O(1) amortized.
func (g *Graph[V, W]) AddVertex(v V) {
	if _, exists := g.adj[v]; exists {
		return
	}
	g.insertVertex(v)
}

// AddVertices inserts every identity in vs, in order, with AddVertex semantics.
// Complexity: O(len(vs)) amortized.
func (g *Graph[V, W]) AddVertices(vs ...V) {
	var v V
	for _, v = range vs {
		g.AddVertex(v)
	}
}

// HasVertex reports whether v is a vertex of the graph. O(1).
func (g *Graph[V, W]) HasVertex(v V) bool {
	_, ok := g.adj[v]

	return ok
}

// RemoveVertex deletes v and every edge incident to it.
//
// Implementation:
//   - Stage 1: Verify presence (ErrVertexNotFound); nothing is mutated on failure.
//   - Stage 2: Remove each outgoing edge (v,w) through the edge-removal path,
//     which also clears the mirror adj[w][v] in undirected graphs.
//   - Stage 3: Directed only: scan every vertex u and drop v from adj[u]
//     to clear incoming edges.
//   - Stage 4: Delete v from the adjacency map and the vertex index.
//
// Complexity:
//   - Undirected: O(deg(v)).
//   - Directed: O(V), dominated by the incoming-edge scan.
func (g *Graph[V, W]) RemoveVertex(v V) error {
	nbrs, ok := g.adj[v]
	if !ok {
		return missingVertex(v)
	}

	// Snapshot first: unlinkEdge mutates nbrs.
	var w V
	for _, w = range neighborKeys(nbrs) {
		g.unlinkEdge(v, w)
	}

	if g.directed {
		var in map[V]W
		for _, in = range g.adj {
			delete(in, v)
		}
	}

	g.dropVertex(v)

	return nil
}

// Vertices returns a snapshot of all vertex identities.
// The order is unspecified and may change after removals.
// Complexity: O(V).
func (g *Graph[V, W]) Vertices() []V {
	out := make([]V, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices. O(1).
func (g *Graph[V, W]) VertexCount() int {
	return len(g.order)
}

// RandomVertex returns a vertex chosen uniformly at random from the current
// vertex set, re-sampled on every call. On an empty graph it returns the
// zero V and false.
// Complexity: O(1).
func (g *Graph[V, W]) RandomVertex() (V, bool) {
	if len(g.order) == 0 {
		var zero V
		return zero, false
	}

	return g.order[g.rng.Intn(len(g.order))], true
}

// Neighbors returns the identities adjacent to v: the keys of adj[v].
// In directed graphs these are out-neighbours only. The slice is a fresh
// copy, safe to mutate independently of the graph.
// Returns ErrVertexNotFound if v is absent.
// Complexity: O(deg(v)).
func (g *Graph[V, W]) Neighbors(v V) ([]V, error) {
	nbrs, ok := g.adj[v]
	if !ok {
		return nil, missingVertex(v)
	}

	return neighborKeys(nbrs), nil
}

// Degree returns the in- and out-degree of v.
//
// Directed graphs count stored entries u→v (in, O(V) scan) and v→w (out).
// Undirected graphs report in == out == number of neighbours; a self-loop
// counts once, matching its single stored entry.
// Returns ErrVertexNotFound if v is absent.
func (g *Graph[V, W]) Degree(v V) (in, out int, err error) {
	nbrs, ok := g.adj[v]
	if !ok {
		return 0, 0, missingVertex(v)
	}
	out = len(nbrs)
	if !g.directed {
		return out, out, nil
	}

	var u map[V]W
	for _, u = range g.adj {
		if _, ok = u[v]; ok {
			in++
		}
	}

	return in, out, nil
}
