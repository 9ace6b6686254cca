// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/AddUnitEdge/RemoveEdge/AreConnected/
//       HasEdge/EdgeWeight/Edges/EdgeCount.
// Determinism:
//   - Edges() is ordered by the fmt form of From, then To.
// Policy:
//   - Endpoints are never auto-created; both must exist before AddEdge.
//   - Re-adding an edge overwrites its weight (upsert).

package core

// AddEdge sets the weight of the edge v→w, creating it if needed.
//
// Implementation:
//   - Stage 1: Verify both endpoints exist (ErrVertexNotFound).
//   - Stage 2: adj[v][w] = weight.
//   - Stage 3: Undirected and v != w: mirror adj[w][v] = weight.
//
// Behavior highlights:
//   - Upsert: an existing edge keeps its identity and takes the new weight.
//   - Self-loops are allowed and stored once.
//   - The weight is not interpreted or validated.
//
// Complexity: O(1) amortized.
func (g *Graph[V, W]) AddEdge(v, w V, weight W) error {
	if !g.HasVertex(v) {
		return missingVertex(v)
	}
	if !g.HasVertex(w) {
		return missingVertex(w)
	}

	g.adj[v][w] = weight
	if !g.directed && v != w {
		g.adj[w][v] = weight
	}

	return nil
}

// AddUnitEdge is AddEdge with the default weight: 1 for built-in numeric
// weight types, the zero value of W otherwise.
func (g *Graph[V, W]) AddUnitEdge(v, w V) error {
	return g.AddEdge(v, w, g.unit)
}

// RemoveEdge deletes the edge v→w; undirected graphs also drop the mirror w→v.
//
// Errors:
//   - ErrVertexNotFound: v or w is absent.
//   - ErrEdgeNotFound: w is not a neighbour of v.
//
// Complexity: O(1).
func (g *Graph[V, W]) RemoveEdge(v, w V) error {
	if !g.HasVertex(v) {
		return missingVertex(v)
	}
	if !g.HasVertex(w) {
		return missingVertex(w)
	}
	if _, ok := g.adj[v][w]; !ok {
		return missingEdge(v, w)
	}
	g.unlinkEdge(v, w)

	return nil
}

// AreConnected reports whether w is a neighbour of v.
// Absent vertices yield false, never an error. In directed graphs only the
// v→w direction is consulted.
// Complexity: O(1).
func (g *Graph[V, W]) AreConnected(v, w V) bool {
	if !g.HasVertex(w) {
		return false
	}
	nbrs, ok := g.adj[v]
	if !ok {
		return false
	}
	_, ok = nbrs[w]

	return ok
}

// HasEdge is an alias of AreConnected.
func (g *Graph[V, W]) HasEdge(v, w V) bool {
	return g.AreConnected(v, w)
}

// EdgeWeight returns the weight stored for v→w.
// Returns ErrEdgeNotFound whenever AreConnected(v, w) is false, including
// when either vertex is absent.
// Complexity: O(1).
func (g *Graph[V, W]) EdgeWeight(v, w V) (W, error) {
	if !g.AreConnected(v, w) {
		var zero W
		return zero, missingEdge(v, w)
	}

	return g.adj[v][w], nil
}

// Edges returns a snapshot of every logical edge.
//
// Directed graphs report each stored pair. Undirected graphs report each
// edge once, oriented as first encountered when walking vertices and then
// neighbours in label order, so the result is deterministic.
// Complexity: O(V log V + E log E).
func (g *Graph[V, W]) Edges() []Edge[V, W] {
	out := make([]Edge[V, W], 0, len(g.adj))
	g.walkEdges(func(v, w V, weight W) {
		out = append(out, Edge[V, W]{From: v, To: w, Weight: weight})
	})

	return out
}

// EdgeCount returns the number of logical edges: stored pairs in directed
// graphs, mirrored pairs counted once in undirected graphs.
// Complexity: O(V).
func (g *Graph[V, W]) EdgeCount() int {
	return g.Stats().EdgeCount
}

// walkEdges visits each logical edge once in label order.
// Undirected mirrors are suppressed with a symmetric seen check.
func (g *Graph[V, W]) walkEdges(visit func(v, w V, weight W)) {
	var seen map[vertexPair[V]]struct{}
	if !g.directed {
		seen = make(map[vertexPair[V]]struct{})
	}

	var v, w V
	for _, v = range sortedByLabel(g.order) {
		nbrs := g.adj[v]
		for _, w = range sortedByLabel(neighborKeys(nbrs)) {
			if !g.directed {
				if _, dup := seen[vertexPair[V]{w, v}]; dup {
					continue
				}
				if _, dup := seen[vertexPair[V]{v, w}]; dup {
					continue
				}
				seen[vertexPair[V]{v, w}] = struct{}{}
			}
			visit(v, w, nbrs[w])
		}
	}
}
