// SPDX-License-Identifier: MIT
// Package: adjgraph/builder
//
// impl_path.go - Path(n) and Cycle(n) constructors.
//
// Contract:
//   - Path: n ≥ 2, vertices idFn(0..n-1), edges i→i+1 in ascending i.
//   - Cycle: n ≥ 3, Path edges plus the closing edge (n-1)→0.
//   - Directed graphs get exactly the listed orientation; undirected graphs mirror.
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import "fmt"

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		return chain(g, cfg, methodPath, n)
	}
}

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := chain(g, cfg, methodCycle, n); err != nil {
			return err
		}

		return link(g, cfg, methodCycle, cfg.idFn(n-1), cfg.idFn(0))
	}
}

// chain adds vertices 0..n-1 and the edges i→i+1.
func chain(g *Graph, cfg builderConfig, method string, n int) error {
	addVertices(g, cfg, 0, n)
	for i := 0; i+1 < n; i++ {
		if err := link(g, cfg, method, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
			return err
		}
	}

	return nil
}
