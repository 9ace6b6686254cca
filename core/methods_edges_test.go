// SPDX-License-Identifier: MIT
// Package core_test verifies edge lifecycle and query contracts.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adjgraph/core"
)

// TestGraph_DirectedScenario checks the directed reference scenario:
// vertices {A,B,C}, edges (A,B,5) and (B,C,2).
func TestGraph_DirectedScenario(t *testing.T) {
	g := NewDirected(VertexA, VertexB, VertexC)
	require.NoError(t, g.AddEdge(VertexA, VertexB, Weight5))
	require.NoError(t, g.AddEdge(VertexB, VertexC, Weight2))

	assert.True(t, g.AreConnected(VertexA, VertexB))
	assert.False(t, g.AreConnected(VertexB, VertexA), "directed edge must not imply the reverse")

	w, err := g.EdgeWeight(VertexA, VertexB)
	require.NoError(t, err)
	assert.Equal(t, Weight5, w)

	nbrs, err := g.Neighbors(VertexA)
	require.NoError(t, err)
	assert.Equal(t, []string{VertexB}, nbrs)

	nbrs, err = g.Neighbors(VertexC)
	require.NoError(t, err)
	assert.Empty(t, nbrs)

	RequireInvariants(t, g)
}

// TestGraph_UndirectedCascade checks the undirected reference scenario:
// vertices {X,Y}, edge (X,Y,3), then RemoveVertex(X).
func TestGraph_UndirectedCascade(t *testing.T) {
	g := NewUndirected(VertexX, VertexY)
	require.NoError(t, g.AddEdge(VertexX, VertexY, Weight3))
	require.NoError(t, g.RemoveVertex(VertexX))

	assert.Equal(t, []string{VertexY}, g.Vertices())
	nbrs, err := g.Neighbors(VertexY)
	require.NoError(t, err)
	assert.Empty(t, nbrs, "edge X-Y must be cascade-removed")

	RequireInvariants(t, g)
}

// TestGraph_AddEdgeOverwrites checks upsert semantics: weight 1 then 7 yields 7.
func TestGraph_AddEdgeOverwrites(t *testing.T) {
	for _, directed := range []bool{false, true} {
		g := core.NewGraph[string, int]([]string{VertexA, VertexB}, core.WithDirected(directed))
		require.NoError(t, g.AddEdge(VertexA, VertexB, Weight1))
		require.NoError(t, g.AddEdge(VertexA, VertexB, Weight7))

		w, err := g.EdgeWeight(VertexA, VertexB)
		require.NoError(t, err)
		assert.Equal(t, Weight7, w, "directed=%v", directed)
		assert.Equal(t, 1, g.EdgeCount(), "overwrite must not add an edge (directed=%v)", directed)
	}
}

func TestGraph_UndirectedSymmetry(t *testing.T) {
	g := NewUndirected(VertexA, VertexB)
	require.NoError(t, g.AddEdge(VertexA, VertexB, Weight3))

	assert.True(t, g.AreConnected(VertexA, VertexB))
	assert.True(t, g.AreConnected(VertexB, VertexA))

	vw, err := g.EdgeWeight(VertexA, VertexB)
	require.NoError(t, err)
	wv, err := g.EdgeWeight(VertexB, VertexA)
	require.NoError(t, err)
	assert.Equal(t, Weight3, vw)
	assert.Equal(t, vw, wv)

	// Overwrite from the mirror side updates both directions
	require.NoError(t, g.AddEdge(VertexB, VertexA, Weight7))
	vw, err = g.EdgeWeight(VertexA, VertexB)
	require.NoError(t, err)
	assert.Equal(t, Weight7, vw)
}

func TestGraph_AddEdgeMissingVertex(t *testing.T) {
	g := NewUndirected(VertexA)

	err := g.AddEdge(VertexA, VertexMissing, Weight1)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	assert.Contains(t, err.Error(), VertexMissing)

	err = g.AddEdge(VertexMissing, VertexA, Weight1)
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	// No partial mutation and no auto-created endpoint
	assert.False(t, g.HasVertex(VertexMissing))
	nbrs, err := g.Neighbors(VertexA)
	require.NoError(t, err)
	assert.Empty(t, nbrs)
}

func TestGraph_RemoveEdge(t *testing.T) {
	t.Run("undirected drops mirror", func(t *testing.T) {
		g := NewUndirected(VertexA, VertexB)
		require.NoError(t, g.AddEdge(VertexA, VertexB, Weight2))
		require.NoError(t, g.RemoveEdge(VertexB, VertexA))

		assert.False(t, g.AreConnected(VertexA, VertexB))
		assert.False(t, g.AreConnected(VertexB, VertexA))
		_, err := g.EdgeWeight(VertexA, VertexB)
		assert.ErrorIs(t, err, core.ErrEdgeNotFound)
	})

	t.Run("directed keeps reverse", func(t *testing.T) {
		g := NewDirected(VertexA, VertexB)
		require.NoError(t, g.AddEdge(VertexA, VertexB, Weight1))
		require.NoError(t, g.AddEdge(VertexB, VertexA, Weight2))
		require.NoError(t, g.RemoveEdge(VertexA, VertexB))

		assert.False(t, g.AreConnected(VertexA, VertexB))
		assert.True(t, g.AreConnected(VertexB, VertexA))
		_, err := g.EdgeWeight(VertexA, VertexB)
		assert.ErrorIs(t, err, core.ErrEdgeNotFound)
	})

	t.Run("directed reverse direction is missing", func(t *testing.T) {
		g := NewDirected(VertexA, VertexB)
		require.NoError(t, g.AddEdge(VertexA, VertexB, Weight1))
		err := g.RemoveEdge(VertexB, VertexA)
		require.ErrorIs(t, err, core.ErrEdgeNotFound)
		assert.True(t, g.AreConnected(VertexA, VertexB), "failed removal must not mutate")
	})

	t.Run("self-loop", func(t *testing.T) {
		g := NewUndirected(VertexA)
		require.NoError(t, g.AddEdge(VertexA, VertexA, Weight1))
		assert.True(t, g.AreConnected(VertexA, VertexA))
		require.NoError(t, g.RemoveEdge(VertexA, VertexA))
		assert.False(t, g.AreConnected(VertexA, VertexA))
	})

	t.Run("errors", func(t *testing.T) {
		g := NewUndirected(VertexA, VertexB)
		assert.ErrorIs(t, g.RemoveEdge(VertexA, VertexMissing), core.ErrVertexNotFound)
		assert.ErrorIs(t, g.RemoveEdge(VertexMissing, VertexA), core.ErrVertexNotFound)
		assert.ErrorIs(t, g.RemoveEdge(VertexA, VertexB), core.ErrEdgeNotFound)
	})
}

func TestGraph_AreConnectedAbsent(t *testing.T) {
	g := NewDirected(VertexA)
	assert.False(t, g.AreConnected(VertexA, VertexMissing))
	assert.False(t, g.AreConnected(VertexMissing, VertexA))
	assert.False(t, g.HasEdge(VertexMissing, VertexMissing))

	_, err := g.EdgeWeight(VertexMissing, VertexA)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound, "EdgeWeight reports a missing edge, not a missing vertex")
}

func TestGraph_AddUnitEdge(t *testing.T) {
	g := NewUndirected(VertexA, VertexB)
	require.NoError(t, g.AddUnitEdge(VertexA, VertexB))
	w, err := g.EdgeWeight(VertexB, VertexA)
	require.NoError(t, err)
	assert.Equal(t, 1, w)

	fg := core.NewGraph[int, float64]([]int{1, 2})
	require.NoError(t, fg.AddUnitEdge(1, 2))
	fw, err := fg.EdgeWeight(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, fw)

	// Non-numeric weights fall back to the zero value
	sg := core.NewGraph[int, string]([]int{1, 2})
	require.NoError(t, sg.AddUnitEdge(1, 2))
	sw, err := sg.EdgeWeight(1, 2)
	require.NoError(t, err)
	assert.Equal(t, "", sw)

	assert.ErrorIs(t, sg.AddUnitEdge(1, 3), core.ErrVertexNotFound)
}

func TestGraph_EdgesAndCount(t *testing.T) {
	t.Run("undirected reports each edge once", func(t *testing.T) {
		g := NewUndirected(VertexA, VertexB, VertexC)
		require.NoError(t, g.AddEdge(VertexA, VertexB, Weight1))
		require.NoError(t, g.AddEdge(VertexC, VertexB, Weight2))
		require.NoError(t, g.AddEdge(VertexC, VertexC, Weight3))

		want := []core.Edge[string, int]{
			{From: VertexA, To: VertexB, Weight: Weight1},
			{From: VertexB, To: VertexC, Weight: Weight2},
			{From: VertexC, To: VertexC, Weight: Weight3},
		}
		assert.Equal(t, want, g.Edges())
		assert.Equal(t, 3, g.EdgeCount())
	})

	t.Run("directed reports each stored pair", func(t *testing.T) {
		g := NewDirected(VertexA, VertexB)
		require.NoError(t, g.AddEdge(VertexB, VertexA, Weight2))
		require.NoError(t, g.AddEdge(VertexA, VertexB, Weight1))

		want := []core.Edge[string, int]{
			{From: VertexA, To: VertexB, Weight: Weight1},
			{From: VertexB, To: VertexA, Weight: Weight2},
		}
		assert.Equal(t, want, g.Edges())
		assert.Equal(t, 2, g.EdgeCount())
	})

	t.Run("empty", func(t *testing.T) {
		g := NewDirected()
		assert.Empty(t, g.Edges())
		assert.Zero(t, g.EdgeCount())
	})
}

// TestGraph_StructWeights checks that weights are stored uninterpreted.
func TestGraph_StructWeights(t *testing.T) {
	type link struct {
		Latency int
		Label   string
	}
	g := core.NewGraph[int, link]([]int{1, 2})
	require.NoError(t, g.AddEdge(1, 2, link{Latency: -5, Label: "wan"}))

	w, err := g.EdgeWeight(2, 1)
	require.NoError(t, err)
	assert.Equal(t, link{Latency: -5, Label: "wan"}, w)
}
