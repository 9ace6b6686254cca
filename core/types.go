// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph type, sentinel errors, construction options and NewGraph.
// Policy:
//   - Graph carries no internal locking; callers own synchronization.
//   - All option application is left-to-right, later options win.

package core

import (
	"errors"
	"math/rand"
	"time"
)

// Sentinel errors for core graph operations.
// Methods wrap them with the offending identities; match with errors.Is.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Edge is a read-only snapshot of one stored adjacency entry.
//
// Edges are not stored as records; the graph keeps only the nested
// adjacency map. Edge values are produced by Edges() for inspection.
type Edge[V comparable, W any] struct {
	// From is the source vertex.
	From V

	// To is the destination vertex.
	To V

	// Weight is the value stored for the pair, uninterpreted by the graph.
	Weight W
}

// graphConfig collects construction-time settings before a Graph exists.
type graphConfig struct {
	directed bool
	rng      *rand.Rand
}

// GraphOption configures a Graph at construction time.
type GraphOption func(c *graphConfig)

// WithDirected fixes the graph's directedness
// (true = directed, false = undirected; default false).
func WithDirected(directed bool) GraphOption {
	return func(c *graphConfig) { c.directed = directed }
}

// WithRand sets the random source used by RandomVertex.
// A nil r keeps the default time-seeded source: every graph needs a sampler,
// so nil means "no preference" here (builder.BuildGraph forwards nil when
// no builder rng is configured).
func WithRand(r *rand.Rand) GraphOption {
	return func(c *graphConfig) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithSeed creates a deterministic random source for RandomVertex.
func WithSeed(seed int64) GraphOption {
	return func(c *graphConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// Graph is an adjacency map of adjacency maps: adj[v][w] holds the weight of
// the edge v→w. V is any comparable vertex identity, W any weight type.
//
// Undirected graphs mirror every non-loop edge into both endpoints' maps,
// so adj[v][w] == adj[w][v] always holds; self-loops are stored once.
// Directed graphs store only the v→w entry.
//
// A Graph is not safe for concurrent use. Every method assumes exclusive
// single-writer access; guard shared instances with an external lock.
type Graph[V comparable, W any] struct {
	directed bool // fixed at construction

	// adj[(from)V][(to)V] = weight
	adj map[V]map[V]W

	// order/pos form a dense vertex index: order[pos[v]] == v.
	// It backs O(1) uniform sampling and O(1) swap-remove.
	order []V
	pos   map[V]int

	unit W          // default weight for AddUnitEdge
	rng  *rand.Rand // RandomVertex source
}

// NewGraph creates a Graph pre-populated with the given vertices.
//
// Implementation:
//   - Stage 1: Apply options over the defaults (undirected, time-seeded rng).
//   - Stage 2: Allocate the adjacency map and vertex index.
//   - Stage 3: Insert vertices idempotently, in slice order.
//
// Inputs:
//   - vertices: initial identities; nil means empty. The slice is read once
//     and never retained, so later caller mutations do not leak in.
//   - opts: GraphOption values applied left-to-right.
//
// Complexity:
//   - Time O(len(vertices)+len(opts)), Space O(len(vertices)).
func NewGraph[V comparable, W any](vertices []V, opts ...GraphOption) *Graph[V, W] {
	cfg := graphConfig{}
	var opt GraphOption
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := &Graph[V, W]{
		directed: cfg.directed,
		adj:      make(map[V]map[V]W, len(vertices)),
		order:    make([]V, 0, len(vertices)),
		pos:      make(map[V]int, len(vertices)),
		unit:     unitWeight[W](),
		rng:      cfg.rng,
	}
	g.AddVertices(vertices...)

	return g
}
