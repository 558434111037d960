// SPDX-License-Identifier: MIT
// Package csr_test contains unit tests for the CSR View.
package csr_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/cgfixtures/csr"
)

// hide wraps a matrix to mask mat.RawMatrixer and force the At-based path.
type hide struct{ mat.Matrix }

// TestNewIdentityRoundTrip checks that I₃ survives dense → CSR → dense exactly.
func TestNewIdentityRoundTrip(t *testing.T) {
	id := mat.NewDiagDense(3, []float64{1, 1, 1})
	src := mat.DenseCopyOf(id)

	v := csr.New(src)
	require.Equal(t, 3, v.NNZ())
	require.Equal(t, []int{0, 1, 2}, v.RowsVector())
	require.Equal(t, []int{0, 1, 2}, v.ColumnsVector())
	require.Equal(t, []float64{1, 1, 1}, v.ValuesVector())
	require.True(t, mat.Equal(src, v.ToDense()))
}

// TestTripletsAlignment verifies row-major order and that every triple names a non-zero.
func TestTripletsAlignment(t *testing.T) {
	src := mat.NewDense(3, 4, []float64{
		0, 2, 0, 3,
		0, 0, 0, 0,
		5, 0, 7, 0,
	})
	v := csr.New(src)

	rows, cols, vals := v.RowsVector(), v.ColumnsVector(), v.ValuesVector()
	require.Equal(t, 4, v.NNZ())
	require.Len(t, rows, v.NNZ())
	require.Len(t, cols, v.NNZ())
	require.Len(t, vals, v.NNZ())

	require.Equal(t, []int{0, 0, 2, 2}, rows)
	require.Equal(t, []int{1, 3, 0, 2}, cols)
	require.Equal(t, []float64{2, 3, 5, 7}, vals)
	require.Equal(t, []int{0, 2, 2, 4}, v.RowPtr())

	for k := range rows {
		require.Equal(t, src.At(rows[k], cols[k]), vals[k])
	}
}

// TestAtMatchesSource compares every cell of the view with the source, for both scan paths.
func TestAtMatchesSource(t *testing.T) {
	src := mat.NewDense(3, 3, []float64{
		4, 0, 1,
		0, 0, 0,
		1, 0, 4,
	})
	for name, in := range map[string]mat.Matrix{"dense": src, "generic": hide{src}} {
		v := csr.New(in)
		r, c := v.Dims()
		require.Equal(t, 3, r, name)
		require.Equal(t, 3, c, name)
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				require.Equal(t, src.At(i, j), v.At(i, j), "%s (%d,%d)", name, i, j)
			}
		}
		require.True(t, mat.Equal(v.T(), src.T()), name)
	}
}

// TestAtOutOfRangePanics mirrors gonum's panic contract for bad indices.
func TestAtOutOfRangePanics(t *testing.T) {
	v := csr.New(mat.NewDense(2, 2, []float64{1, 0, 0, 1}))
	require.PanicsWithValue(t, mat.ErrRowAccess, func() { v.At(2, 0) })
	require.PanicsWithValue(t, mat.ErrColAccess, func() { v.At(0, -1) })
}

// TestViewIsDetached ensures later mutations of the source and of returned slices do not leak in.
func TestViewIsDetached(t *testing.T) {
	src := mat.NewDense(2, 2, []float64{1, 0, 0, 2})
	v := csr.New(src)

	src.Set(0, 1, 9)
	vals := v.ValuesVector()
	vals[0] = -1

	require.Equal(t, 2, v.NNZ())
	require.Equal(t, 0.0, v.At(0, 1))
	require.Equal(t, []float64{1, 2}, v.ValuesVector())
}

// TestAllZero covers a matrix without non-zeros.
func TestAllZero(t *testing.T) {
	v := csr.New(mat.NewDense(3, 2, nil))
	require.Zero(t, v.NNZ())
	require.Empty(t, v.RowsVector())
	require.Empty(t, v.ColumnsVector())
	require.Empty(t, v.ValuesVector())
	require.Zero(t, v.Density())
	require.Equal(t, []int{0, 0, 0, 0}, v.RowPtr())
}

// TestDensity checks nnz/(r*c).
func TestDensity(t *testing.T) {
	v := csr.New(mat.NewDense(2, 2, []float64{1, 0, 0, 1}))
	require.InDelta(t, 0.5, v.Density(), 1e-15)
}

// TestDoNonZeroOrder verifies DoNonZero walks the triplets in the same order as the vectors.
func TestDoNonZeroOrder(t *testing.T) {
	v := csr.New(mat.NewDense(2, 3, []float64{0, 1, 2, 3, 0, 4}))
	var rows, cols []int
	var vals []float64
	v.DoNonZero(func(i, j int, x float64) {
		rows = append(rows, i)
		cols = append(cols, j)
		vals = append(vals, x)
	})
	require.Equal(t, v.RowsVector(), rows)
	require.Equal(t, v.ColumnsVector(), cols)
	require.Equal(t, v.ValuesVector(), vals)
}
