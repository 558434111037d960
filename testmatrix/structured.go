// SPDX-License-Identifier: MIT
// Package: cgfixtures/testmatrix
//
// structured.go — deterministic generators (Diagonal, ThreeDiagonal).
//
// Contract:
//   • size ≥ MinSize (else ErrBadSize).
//   • Fresh allocation per call; no shared state.
//
// Complexity: O(n²) zero-init + O(n) writes.

package testmatrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/cgfixtures/csr"
)

// Diagonal returns the size×size identity matrix.
func Diagonal(size int) (*mat.Dense, error) {
	if size < MinSize {
		return nil, fmt.Errorf("%s: size=%d < min=%d: %w", MethodDiagonal, size, MinSize, ErrBadSize)
	}
	m := mat.NewDense(size, size, nil)
	for i := 0; i < size; i++ {
		m.Set(i, i, diagonalValue)
	}

	return m, nil
}

// DiagonalCSR returns Diagonal(size) as a csr.View.
func DiagonalCSR(size int) (*csr.View, error) {
	return sparse(Diagonal(size))
}

// ThreeDiagonal returns a size×size tridiagonal matrix with 10 on the main
// diagonal and 1 on the first sub- and super-diagonals.
// For size ≥ 2 it has exactly 3·size−2 non-zeros.
func ThreeDiagonal(size int) (*mat.Dense, error) {
	if size < MinSize {
		return nil, fmt.Errorf("%s: size=%d < min=%d: %w", MethodThreeDiagonal, size, MinSize, ErrBadSize)
	}
	m := mat.NewDense(size, size, nil)
	for i := 0; i < size; i++ {
		m.Set(i, i, threeDiagMainValue)
		if i+1 < size {
			m.Set(i, i+1, threeDiagOffValue)
			m.Set(i+1, i, threeDiagOffValue)
		}
	}

	return m, nil
}

// ThreeDiagonalCSR returns ThreeDiagonal(size) as a csr.View.
func ThreeDiagonalCSR(size int) (*csr.View, error) {
	return sparse(ThreeDiagonal(size))
}

// sparse lifts a (matrix, error) pair into CSR form.
func sparse(m *mat.Dense, err error) (*csr.View, error) {
	if err != nil {
		return nil, err
	}

	return csr.New(m), nil
}
