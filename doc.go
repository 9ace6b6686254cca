// Package adjgraph is a minimal in-memory graph container: an adjacency map
// of adjacency maps for directed or undirected, weighted graphs.
//
// What is in the box?
//
//	core/    — Graph[V, W]: vertex/edge insertion and deletion, adjacency
//	           queries, edge-weight lookup, a uniform random-vertex sampler
//	           and a debug String() form
//	builder/ — deterministic fixtures (Path, Cycle, Star, Wheel, Complete,
//	           CompleteBipartite, RandomSparse) that populate a core graph
//
// What is deliberately not in the box: traversals, shortest paths,
// spanning trees, persistence, parsing, internal locking.
//
// Quick example:
//
//	g := core.NewGraph[string, int]([]string{"A", "B", "C"}, core.WithDirected(true))
//	_ = g.AddEdge("A", "B", 5)
//	_ = g.AddEdge("B", "C", 2)
//	w, _ := g.EdgeWeight("A", "B") // 5
//	g.AreConnected("B", "A")       // false
//
//	go get github.com/katalvlaran/adjgraph
package adjgraph
