// SPDX-License-Identifier: MIT
// Package: cgfixtures/testmatrix
//
// errors.go — sentinel errors for the testmatrix package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Generators attach context as "<Method>: <detail>: %w".
//   • Generators never panic on user input; option constructors may (nil RNG).
//
// Validation priority (first failure wins):
//   size → distribution → rng.

package testmatrix

import "errors"

// ErrBadSize indicates a matrix or vector size below the generator's minimum.
var ErrBadSize = errors.New("testmatrix: invalid size")

// ErrUnsupportedDistribution indicates a Distribution name with no mask
// implementation. Only Quadratic is implemented.
var ErrUnsupportedDistribution = errors.New("testmatrix: unsupported distribution")

// ErrNeedRandSource indicates that a stochastic generator was called without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("testmatrix: rng is required")
