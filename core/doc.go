// Package core provides a minimal in-memory graph stored as an adjacency map
// of adjacency maps.
//
// A Graph[V, W] maps every vertex identity V to the map of its neighbours,
// and each neighbour to the weight W of the connecting edge:
//
//	adj[v][w] = weight
//
// V may be any comparable type (string, int, a small struct); W may be any
// type and is never interpreted by the graph.
//
// Directed vs. undirected (WithDirected):
//
//   - Directed graphs store only the v→w entry.
//   - Undirected graphs mirror every non-loop edge into adj[w][v] with the same
//     weight; self-loops are stored once.
//
// Invariants:
//
//   - Every neighbour key is itself a vertex (no dangling references):
//     AddEdge requires both endpoints to exist, RemoveVertex cascades.
//   - Undirected: adj[v][w] exists iff adj[w][v] exists, with equal weights.
//   - Failing calls leave the graph untouched: checks precede mutation.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(v V)                         // O(1), idempotent
//	AddVertices(vs ...V)                   // O(n)
//	RemoveVertex(v V) error                // O(deg) undirected, O(V) directed
//	HasVertex(v V) bool                    // O(1)
//
//	// Edge lifecycle
//	AddEdge(v, w V, weight W) error        // O(1), upsert
//	AddUnitEdge(v, w V) error              // O(1), weight 1 for numeric W
//	RemoveEdge(v, w V) error               // O(1)
//
//	// Query
//	AreConnected(v, w V) bool              // O(1), direction sensitive
//	EdgeWeight(v, w V) (W, error)          // O(1)
//	Neighbors(v V) ([]V, error)            // O(deg), fresh copy
//	Vertices() []V                         // O(V), unordered snapshot
//	RandomVertex() (V, bool)               // O(1), uniform
//	Edges() []Edge[V, W]                   // O(E log E), label order
//	Degree(v V) (in, out int, err error)
//	VertexCount() int / EdgeCount() int / Stats() GraphStats
//
//	// Copies
//	Clone() / CloneEmpty() / Clear()
//
// Errors:
//
//	ErrVertexNotFound – operation referenced an absent vertex
//	ErrEdgeNotFound   – removal or weight lookup on a missing edge
//
// Returned errors wrap these sentinels with the offending identities; test
// them with errors.Is.
//
// Concurrency:
//
// Graph has no internal locking and assumes exclusive single-writer access.
// When one instance is shared between goroutines, guard every call with an
// external sync.Mutex or sync.RWMutex.
package core
