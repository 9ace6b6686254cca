// SPDX-License-Identifier: MIT
// Package: adjgraph/builder
//
// weight_fn.go - edge weight generators.
// Generators receive the builder rng, which may be nil; deterministic
// generators ignore it and stochastic ones fall back to DefaultEdgeWeight.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the constant weight used when no WeightFn is set.
const DefaultEdgeWeight int64 = 1

// WeightFn produces one edge weight.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always returns value.
func ConstantWeightFn(value int64) WeightFn {
	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn draws uniformly from [min,max]; it panics if max < min.
func UniformWeightFn(min, max int64) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(rng *rand.Rand) int64 {
		if max == min {
			return min
		}
		if rng == nil {
			return DefaultEdgeWeight
		}

		return min + rng.Int63n(max-min+1)
	}
}
