// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for adjgraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the core test files.
//   - Provide an invariant checker used after every mutation in property tests.

package core_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adjgraph/core"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"

	VertexX = "X"
	VertexY = "Y"

	VertexMissing = "Missing"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight1 = 1
	Weight2 = 2
	Weight3 = 3
	Weight5 = 5
	Weight7 = 7
)

// TestSeed fixes the sampler so RandomVertex-based tests are reproducible.
const TestSeed int64 = 42

// NewDirected returns a directed string/int graph with the given vertices.
func NewDirected(vertices ...string) *core.Graph[string, int] {
	return core.NewGraph[string, int](vertices, core.WithDirected(true), core.WithSeed(TestSeed))
}

// NewUndirected returns an undirected string/int graph with the given vertices.
func NewUndirected(vertices ...string) *core.Graph[string, int] {
	return core.NewGraph[string, int](vertices, core.WithSeed(TestSeed))
}

// Sorted returns a sorted copy of ids so set-like results compare stably.
func Sorted(ids []string) []string {
	out := append([]string(nil), ids...)
	sort.Strings(out)

	return out
}

// RequireInvariants FAILS the test if g violates any structural invariant:
//   - every neighbour is a vertex (no dangling references);
//   - undirected graphs are symmetric with equal weights;
//   - VertexCount agrees with Vertices().
func RequireInvariants[V comparable, W comparable](t *testing.T, g *core.Graph[V, W]) {
	t.Helper()

	vs := g.Vertices()
	require.Len(t, vs, g.VertexCount(), "Vertices() length must match VertexCount()")

	seen := make(map[V]struct{}, len(vs))
	for _, v := range vs {
		_, dup := seen[v]
		require.False(t, dup, "Vertices() must not repeat %v", v)
		seen[v] = struct{}{}
	}

	for _, v := range vs {
		nbrs, err := g.Neighbors(v)
		require.NoError(t, err, "Neighbors(%v)", v)
		for _, w := range nbrs {
			require.True(t, g.HasVertex(w), "dangling neighbour %v of %v", w, v)
			if g.Directed() || v == w {
				continue
			}
			require.True(t, g.AreConnected(w, v), "missing mirror %v->%v", w, v)
			vw, err := g.EdgeWeight(v, w)
			require.NoError(t, err)
			wv, err := g.EdgeWeight(w, v)
			require.NoError(t, err)
			require.Equal(t, vw, wv, "mirror weights differ for %v<->%v", v, w)
		}
	}
}
