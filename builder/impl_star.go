// SPDX-License-Identifier: MIT
// Package: adjgraph/builder
//
// impl_star.go - Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds hub vertex with fixed ID CenterVertexID.
//   - Adds leaves via cfg.idFn in ascending index order for i = 1..n-1.
//   - Emits spokes Center → leaf[i]; directed graphs also get leaf[i] → Center
//     with the same weight, so the star reads the same in both modes.
//
// Complexity: O(n) vertices + O(n-1) edges (undirected) or O(2n-2) (directed).

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// CenterVertexID is the fixed hub ID used by Star.
const CenterVertexID = "Center"

// Star returns a Constructor that builds a star with n vertices:
// one hub CenterVertexID and n-1 leaves.
func Star(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		g.AddVertex(CenterVertexID)
		addVertices(g, cfg, 1, n)

		var (
			i      int
			w      int64
			leafID string
		)
		for i = 1; i < n; i++ {
			leafID = cfg.idFn(i)
			w = cfg.weightFn(cfg.rng)

			if err := g.AddEdge(CenterVertexID, leafID, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodStar, CenterVertexID, leafID, w, err)
			}
			if g.Directed() {
				if err := g.AddEdge(leafID, CenterVertexID, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodStar, leafID, CenterVertexID, w, err)
				}
			}
		}

		return nil
	}
}
