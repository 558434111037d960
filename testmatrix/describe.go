// SPDX-License-Identifier: MIT
// Package: cgfixtures/testmatrix
//
// describe.go — structural summary of a fixture.
//
// Checks (in order, each O(n²) except PositiveDefinite which is O(n³)):
//   • Symmetric:          mat.EqualApprox(A, Aᵀ, DefaultEpsilon).
//   • DiagonallyDominant: |a_ii| ≥ Σ_{j≠i} |a_ij| for every row.
//   • PositiveDefinite:   Cholesky of the symmetric part succeeds; only
//     attempted when Symmetric is true.

package testmatrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/cgfixtures/csr"
)

// Summary describes the shape and structure of a matrix.
type Summary struct {
	Rows, Cols         int
	NNZ                int
	Density            float64
	Symmetric          bool
	DiagonallyDominant bool
	PositiveDefinite   bool
}

// Describe computes a Summary of m. Non-square matrices report false for
// every structural property.
func Describe(m mat.Matrix) Summary {
	v := csr.New(m)
	r, c := v.Dims()
	s := Summary{
		Rows:    r,
		Cols:    c,
		NNZ:     v.NNZ(),
		Density: v.Density(),
	}
	if r != c || r == 0 {
		return s
	}

	s.Symmetric = mat.EqualApprox(m, m.T(), DefaultEpsilon)
	s.DiagonallyDominant = diagonallyDominant(m, r)
	if s.Symmetric {
		s.PositiveDefinite = positiveDefinite(m, r)
	}

	return s
}

// String renders the summary on a single line.
func (s Summary) String() string {
	return fmt.Sprintf("%dx%d nnz=%d density=%.4f symmetric=%t diag-dominant=%t positive-definite=%t",
		s.Rows, s.Cols, s.NNZ, s.Density, s.Symmetric, s.DiagonallyDominant, s.PositiveDefinite)
}

func diagonallyDominant(m mat.Matrix, n int) bool {
	row := make([]float64, n)
	for i := 0; i < n; i++ {
		mat.Row(row, i, m)
		diag := math.Abs(row[i])
		if off := floats.Norm(row, 1) - diag; diag < off {
			return false
		}
	}

	return true
}

// positiveDefinite factorizes the upper triangle of m as a SymDense.
func positiveDefinite(m mat.Matrix, n int) bool {
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, m.At(i, j))
		}
	}
	var chol mat.Cholesky

	return chol.Factorize(sym)
}
