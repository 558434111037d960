// SPDX-License-Identifier: MIT
// Package: cgfixtures/csr
//
// view.go — CSR storage and accessors.
//
// Layout (classic CSR):
//   - rowPtr has r+1 entries; the non-zeros of row i live in [rowPtr[i], rowPtr[i+1]).
//   - colInd[k] / values[k] hold the column and value of the k-th non-zero.
//   - Within a row, colInd is strictly increasing (row-major scan order).
//
// Determinism:
//   - Conversion scans i asc, j asc; the triplet order is therefore row-major
//     and identical for identical inputs.

package csr

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// View is an immutable CSR projection of a matrix.
type View struct {
	r, c   int       // shape of the source matrix
	rowPtr []int     // len == r+1
	colInd []int     // len == nnz
	values []float64 // len == nnz
}

// Compile-time assertion: *View is usable wherever gonum expects a matrix.
var _ mat.Matrix = (*View)(nil)

// New converts m into CSR form. Every entry different from zero is kept,
// including NaN. The returned View shares no memory with m.
//
// Dense inputs (anything implementing mat.RawMatrixer) are scanned directly
// over their backing slice; other matrices go through At.
func New(m mat.Matrix) *View {
	r, c := m.Dims()
	v := &View{
		r:      r,
		c:      c,
		rowPtr: make([]int, r+1),
	}

	if rm, ok := m.(mat.RawMatrixer); ok {
		raw := rm.RawMatrix()
		for i := 0; i < r; i++ {
			row := raw.Data[i*raw.Stride : i*raw.Stride+c]
			for j, x := range row {
				if x != 0 {
					v.colInd = append(v.colInd, j)
					v.values = append(v.values, x)
				}
			}
			v.rowPtr[i+1] = len(v.values)
		}

		return v
	}

	var x float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if x = m.At(i, j); x != 0 {
				v.colInd = append(v.colInd, j)
				v.values = append(v.values, x)
			}
		}
		v.rowPtr[i+1] = len(v.values)
	}

	return v
}

// Dims returns the shape of the source matrix.
func (v *View) Dims() (r, c int) { return v.r, v.c }

// At returns the element at (i, j). Missing entries read as zero.
// It panics with mat.ErrRowAccess / mat.ErrColAccess on out-of-range
// indices, like gonum's own matrix types.
func (v *View) At(i, j int) float64 {
	if i < 0 || i >= v.r {
		panic(mat.ErrRowAccess)
	}
	if j < 0 || j >= v.c {
		panic(mat.ErrColAccess)
	}
	start, end := v.rowPtr[i], v.rowPtr[i+1]
	k := sort.SearchInts(v.colInd[start:end], j) + start
	if k < end && v.colInd[k] == j {
		return v.values[k]
	}

	return 0
}

// T returns the implicit transpose of the view.
func (v *View) T() mat.Matrix { return mat.Transpose{Matrix: v} }

// NNZ returns the number of stored non-zero entries.
func (v *View) NNZ() int { return len(v.values) }

// RowsVector returns the row index of every non-zero, in row-major order.
// Row indices repeat once per non-zero in that row.
func (v *View) RowsVector() []int {
	rows := make([]int, 0, len(v.values))
	for i := 0; i < v.r; i++ {
		for k := v.rowPtr[i]; k < v.rowPtr[i+1]; k++ {
			rows = append(rows, i)
		}
	}

	return rows
}

// ColumnsVector returns the column index of every non-zero, aligned with RowsVector.
func (v *View) ColumnsVector() []int {
	out := make([]int, len(v.colInd))
	copy(out, v.colInd)

	return out
}

// ValuesVector returns every non-zero value, aligned with RowsVector.
func (v *View) ValuesVector() []float64 {
	out := make([]float64, len(v.values))
	copy(out, v.values)

	return out
}

// RowPtr returns a copy of the CSR row pointer (length Rows+1).
func (v *View) RowPtr() []int {
	out := make([]int, len(v.rowPtr))
	copy(out, v.rowPtr)

	return out
}

// DoNonZero calls fn for every stored entry in row-major order.
func (v *View) DoNonZero(fn func(i, j int, x float64)) {
	for i := 0; i < v.r; i++ {
		for k := v.rowPtr[i]; k < v.rowPtr[i+1]; k++ {
			fn(i, v.colInd[k], v.values[k])
		}
	}
}

// ToDense rebuilds a dense matrix from the stored triplets.
// The result equals the matrix the view was built from.
func (v *View) ToDense() *mat.Dense {
	d := mat.NewDense(v.r, v.c, nil)
	v.DoNonZero(d.Set)

	return d
}

// Density returns NNZ / (rows*cols); an empty shape reports 0.
func (v *View) Density() float64 {
	cells := v.r * v.c
	if cells == 0 {
		return 0
	}

	return float64(len(v.values)) / float64(cells)
}
