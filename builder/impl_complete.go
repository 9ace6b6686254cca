// SPDX-License-Identifier: MIT
// Package: adjgraph/builder
//
// impl_complete.go - Complete(n) constructor.
//
// Contract:
//   - n ≥ 1; K_1 is a single isolated vertex.
//   - Undirected: one edge per pair i<j. Directed: both i→j and j→i.
//   - No self-loops.
//
// Complexity: O(n) vertices + O(n²) edges.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		addVertices(g, cfg, 0, n)

		directed := g.Directed()
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if err := link(g, cfg, methodComplete, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
				if directed {
					if err := link(g, cfg, methodComplete, cfg.idFn(j), cfg.idFn(i)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
