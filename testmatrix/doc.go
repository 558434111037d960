// SPDX-License-Identifier: MIT

// Package testmatrix generates synthetic matrices for conjugate-gradient
// solver test suites.
//
// Generators (all return a fresh *mat.Dense; none keeps state between calls):
//
//   - Diagonal:      n×n identity.
//   - ThreeDiagonal: 10 on the main diagonal, 1 on the first sub/super-diagonals.
//   - Random:        Q = Rᵀ·D·R / ln(n²) with R ~ U[0,1) and D = I, masked by
//     the sparsity pattern of the requested Distribution.
//   - RHS / Ones:    right-hand side and initial-guess vectors for a solve.
//
// Every dense generator has a *CSR twin returning a csr.View; the twins are
// plain compositions with csr.New, which callers may also apply themselves:
//
//	a, err := testmatrix.Random(200, testmatrix.Quadratic, testmatrix.WithSeed(7))
//	if err != nil { ... }
//	v := csr.New(a)
//
// Randomness is explicit. Random and RHS require WithSeed or WithRand and
// fail with ErrNeedRandSource otherwise; a fixed seed reproduces the same
// matrix bit for bit.
//
// Errors are package sentinels (ErrBadSize, ErrUnsupportedDistribution,
// ErrNeedRandSource) wrapped with the method name; match them with errors.Is.
package testmatrix
