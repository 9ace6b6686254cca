// SPDX-License-Identifier: MIT
// Package: adjgraph/builder
//
// options.go - functional options for builder configuration.
// Options validate eagerly and panic on programmer errors (nil functions),
// so misuse surfaces at the call site rather than mid-construction.

package builder

import "math/rand"

// BuilderOption mutates a builderConfig during resolution.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the index → vertex ID mapping.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand installs an explicit RNG; it is also handed to the built graph
// as its RandomVertex source. Unlike core.WithRand, nil panics: a nil
// builder rng already means "deterministic, no randomness", so passing nil
// explicitly is a caller mistake.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the edge weight generator.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
