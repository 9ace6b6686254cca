// SPDX-License-Identifier: MIT
// Package: adjgraph/builder
//
// impl_wheel.go - Wheel(n) constructor.
//
// Contract:
//   - Wₙ = Cₙ₋₁ + CenterVertexID, so n ≥ 4 (the rim must be a valid cycle).
//   - Builds the rim with Cycle(n-1) under the same cfg.
//   - Emits spokes Center → rim[i] in index order; directed graphs also get
//     rim[i] → Center with the same weight, as Star does.
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import "fmt"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds the wheel Wₙ: a rim cycle of n-1
// vertices plus the hub CenterVertexID joined to every rim vertex.
func Wheel(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", methodWheel, n-1, err)
		}

		g.AddVertex(CenterVertexID)
		var (
			i     int
			w     int64
			rimID string
		)
		for i = 0; i < n-1; i++ {
			rimID = cfg.idFn(i)
			w = cfg.weightFn(cfg.rng)
			if err := g.AddEdge(CenterVertexID, rimID, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodWheel, CenterVertexID, rimID, w, err)
			}
			if g.Directed() {
				if err := g.AddEdge(rimID, CenterVertexID, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodWheel, rimID, CenterVertexID, w, err)
				}
			}
		}

		return nil
	}
}
