// SPDX-License-Identifier: MIT
// Package: adjgraph/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(directed, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Constructors add their own vertices first: core.AddEdge never auto-creates endpoints.

package builder

import (
	"fmt"

	"github.com/katalvlaran/adjgraph/core"
)

// Graph is the concrete graph type produced by builders:
// string vertex IDs and int64 weights.
type Graph = core.Graph[string, int64]

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before mutating and return
// sentinel errors; they never panic.
type Constructor func(g *Graph, cfg builderConfig) error

// BuildGraph creates a new graph (directed or undirected), resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; the partial graph is discarded.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(directed bool, bopts []BuilderOption, cons ...Constructor) (*Graph, error) {
	cfg := newBuilderConfig(bopts...)
	g := core.NewGraph[string, int64](nil, core.WithDirected(directed), core.WithRand(cfg.rng))

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices inserts cfg.idFn(from..to-1) in index order.
func addVertices(g *Graph, cfg builderConfig, from, to int) {
	for i := from; i < to; i++ {
		g.AddVertex(cfg.idFn(i))
	}
}

// link adds u–v with a weight drawn from cfg, wrapping failures with method.
func link(g *Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", method, u, v, w, err)
	}

	return nil
}
