// SPDX-License-Identifier: MIT
// Package: adjgraph/builder
//
// impl_bipartite.go - CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   - n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   - Left IDs are LeftPrefix+i (i = 0..n1-1), right IDs RightPrefix+j, so
//     the partitions never collide with each other or with cfg.idFn IDs
//     from the default scheme.
//   - Emits every cross pair L_i → R_j in (i, j) order; directed graphs
//     also get R_j → L_i with the same weight.
//
// Complexity: O(n1 + n2) vertices + O(n1·n2) edges.

package builder

import "fmt"

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// Partition prefixes used by CompleteBipartite.
const (
	LeftPrefix  = "L"
	RightPrefix = "R"
)

// CompleteBipartite returns a Constructor for the complete bipartite graph K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}

		left := partition(g, LeftPrefix, n1)
		right := partition(g, RightPrefix, n2)

		var (
			u, v string
			w    int64
		)
		for _, u = range left {
			for _, v = range right {
				w = cfg.weightFn(cfg.rng)
				if err := g.AddEdge(u, v, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodCompleteBipartite, u, v, w, err)
				}
				if g.Directed() {
					if err := g.AddEdge(v, u, w); err != nil {
						return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodCompleteBipartite, v, u, w, err)
					}
				}
			}
		}

		return nil
	}
}

// partition adds prefix+0 .. prefix+(n-1) and returns their IDs in order.
func partition(g *Graph, prefix string, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("%s%d", prefix, i)
		g.AddVertex(ids[i])
	}

	return ids
}
