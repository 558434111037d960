// SPDX-License-Identifier: MIT
// Package: cgfixtures/testmatrix
//
// random.go — randomized positive-definite fixtures and solve vectors.
//
// Model:
//   A = Rᵀ·D·R is symmetric positive semi-definite for any R when D is a
//   positive diagonal; with R ~ U[0,1)ⁿˣⁿ it is positive definite almost surely.
//   D = I here. The product is divided by ln(n²) to slow value growth with n,
//   then multiplied elementwise by the Distribution mask.
//
// Contract:
//   • size ≥ MinRandomSize (else ErrBadSize).
//   • dist must be supported (else ErrUnsupportedDistribution).
//   • cfg.rng must be set (else ErrNeedRandSource).
//
// Determinism:
//   • R is filled row-major (i asc, j asc) from cfg.rng; same seed → same matrix.
//
// Complexity: O(n³) for the product, O(n²) for the draws and the mask.

package testmatrix

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/cgfixtures/csr"
)

// Random returns a size×size random positive-definite matrix masked by the
// sparsity pattern of dist.
func Random(size int, dist Distribution, opts ...Option) (*mat.Dense, error) {
	if size < MinRandomSize {
		return nil, fmt.Errorf("%s: size=%d < min=%d: %w", MethodRandom, size, MinRandomSize, ErrBadSize)
	}
	mask, err := dist.mask(size)
	if err != nil {
		return nil, fmt.Errorf("%s: distribution %q: %w", MethodRandom, dist, err)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", MethodRandom, ErrNeedRandSource)
	}

	q := randomProduct(size, cfg.rng)
	q.MulElem(q, mask)

	return q, nil
}

// RandomCSR returns Random(size, dist, opts...) as a csr.View.
func RandomCSR(size int, dist Distribution, opts ...Option) (*csr.View, error) {
	return sparse(Random(size, dist, opts...))
}

// randomProduct computes the unmasked Q = Rᵀ·D·R / ln(n²).
func randomProduct(n int, rng *rand.Rand) *mat.Dense {
	r := uniformDense(n, n, rng)

	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}
	d := mat.NewDiagDense(n, ones)

	var dr, q mat.Dense
	dr.Mul(d, r)
	q.Mul(r.T(), &dr)

	scale := math.Log(float64(n * n))
	q.Apply(func(_, _ int, v float64) float64 { return v / scale }, &q)

	return &q
}

// uniformDense fills an r×c matrix with U[0,1) draws in row-major order.
func uniformDense(r, c int, rng *rand.Rand) *mat.Dense {
	u := distuv.Uniform{Min: 0, Max: 1, Src: rng}
	data := make([]float64, r*c)
	for k := range data {
		data[k] = u.Rand()
	}

	return mat.NewDense(r, c, data)
}

// RHS returns a right-hand side vector b with U[0,1) entries.
func RHS(size int, opts ...Option) (*mat.VecDense, error) {
	if size < MinSize {
		return nil, fmt.Errorf("%s: size=%d < min=%d: %w", MethodRHS, size, MinSize, ErrBadSize)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", MethodRHS, ErrNeedRandSource)
	}
	u := uniformDense(size, 1, cfg.rng)

	return mat.VecDenseCopyOf(u.ColView(0)), nil
}

// Ones returns the all-ones vector, the customary initial guess x₀.
func Ones(size int) (*mat.VecDense, error) {
	if size < MinSize {
		return nil, fmt.Errorf("%s: size=%d < min=%d: %w", MethodOnes, size, MinSize, ErrBadSize)
	}
	data := make([]float64, size)
	for i := range data {
		data[i] = 1
	}

	return mat.NewVecDense(size, data), nil
}
