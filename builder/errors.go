// SPDX-License-Identifier: MIT
// Package: adjgraph/builder
//
// errors.go - sentinel errors returned by constructors.
// Constructors wrap them with method context ("Cycle: n=2 < min=3: %w");
// callers branch with errors.Is.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the topology minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a generic construction failure (e.g. nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
