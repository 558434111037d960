// SPDX-License-Identifier: MIT
// Package: cgfixtures/testmatrix
//
// mask.go — quadratic sparsity mask.
//
// The index arithmetic is fixture shape, not an algorithm: keep it exact.
// For n = size:
//   1) offset = floor(n/100) extra diagonals on each side of the main one.
//   2) per row i: (i,i), (i,⌈i/2⌉), (⌈i/2⌉,i); for i < n/2 also (n/2+i,i), (i,n/2+i);
//      for add in 1..offset: (i,i+add) and (i,i-add) when in bounds.
//   3) for splitter in [0, ⌊√n⌋): ms = 2^(splitter+1), sv = n - ⌊n/ms⌋;
//      (row,sv) and (sv,row) for row in [sv, n).
//
// Complexity: O(n²) for the zeroed buffer, O(n·(1+offset) + n·√n) writes.

package testmatrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// quadraticMask builds the n×n 0/1 mask described above. n must be ≥ 1.
func quadraticMask(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	half := n / 2
	offset := n / 100

	var i, add, half2 int
	for i = 0; i < n; i++ {
		half2 = (i + 1) / 2 // ⌈i/2⌉ for i ≥ 0
		m.Set(i, i, 1)
		m.Set(i, half2, 1)
		m.Set(half2, i, 1)
		if i < half {
			m.Set(half+i, i, 1)
			m.Set(i, half+i, 1)
		}
		for add = 1; add <= offset; add++ {
			if i < n-add {
				m.Set(i, i+add, 1)
			}
			if i >= add {
				m.Set(i, i-add, 1)
			}
		}
	}

	splitters := int(math.Sqrt(float64(n)))
	for s := 0; s < splitters; s++ {
		ms := 1 << (s + 1)
		if ms > n {
			// ⌊n/ms⌋ == 0 from here on: sv == n and the row range is empty.
			break
		}
		sv := n - n/ms
		for row := sv; row < n; row++ {
			m.Set(row, sv, 1)
			m.Set(sv, row, 1)
		}
	}

	return m
}
