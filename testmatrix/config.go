// SPDX-License-Identifier: MIT
// Package: cgfixtures/testmatrix
//
// config.go — resolved generator configuration.
//
// Defaults:
//   • rng = nil (stochastic generators refuse to run without one)

package testmatrix

import "math/rand/v2"

// config aggregates the knobs used by generators. Passed by value.
type config struct {
	// RNG for uniform draws; nil means "not configured".
	rng *rand.Rand
}

// newConfig applies opts in order (later options override earlier ones).
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
