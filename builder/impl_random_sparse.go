// SPDX-License-Identifier: MIT
// Package: adjgraph/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi G(n,p).
//
// Contract:
//   - n ≥ 1, p ∈ [0,1]; NaN is rejected as out of range.
//   - 0 < p < 1 requires an rng (WithSeed/WithRand), else ErrNeedRandSource.
//     p = 0 and p = 1 are deterministic and need no rng.
//   - Undirected: each pair i<j is kept with probability p.
//     Directed: each ordered pair i≠j is kept independently.
//   - Pairs are visited in ascending (i, j), so a fixed seed fixes the graph.
//
// Complexity: O(n) vertices + O(n²) trials.

package builder

import (
	"fmt"
	"math"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that builds a G(n,p) random graph.
func RandomSparse(n int, p float64) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if math.IsNaN(p) || p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		addVertices(g, cfg, 0, n)

		directed := g.Directed()
		var i, j int
		for i = 0; i < n; i++ {
			j = i + 1
			if directed {
				j = 0
			}
			for ; j < n; j++ {
				if i == j || !keep(cfg, p) {
					continue
				}
				if err := link(g, cfg, methodRandomSparse, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// keep decides one Bernoulli(p) trial; the endpoints of [0,1] skip the rng.
func keep(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	}

	return cfg.rng.Float64() < p
}
