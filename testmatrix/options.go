// SPDX-License-Identifier: MIT
// Package: cgfixtures/testmatrix
//
// options.go — functional options.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Seeding is explicit: WithSeed or WithRand. There is no global source.

package testmatrix

import "math/rand/v2"

// Option customizes a generator call.
type Option func(*config)

// WithRand supplies the RNG used for uniform draws. The generator advances it,
// so sharing one *rand.Rand across calls yields a reproducible sequence.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("testmatrix: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a fresh PCG-backed RNG seeded with seed.
// Two calls with the same seed produce identical fixtures.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewPCG(seed, seed))
	}
}
