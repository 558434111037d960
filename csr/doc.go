// SPDX-License-Identifier: MIT

// Package csr provides View, a read-only compressed-sparse-row projection of
// any gonum matrix.
//
// A View is built once from a mat.Matrix and never changes afterwards. It
// exposes the non-zero entries as three aligned slices (row indices, column
// indices, values) plus the non-zero count:
//
//	v := csr.New(a)
//	rows, cols, vals := v.RowsVector(), v.ColumnsVector(), v.ValuesVector()
//	// rows[k], cols[k], vals[k] describe the k-th non-zero of a (row-major).
//
// View implements mat.Matrix, so it can be handed back to gonum routines
// (mat.Equal, mat.Formatted, Dense.Mul, ...) without converting to dense first.
//
// Complexity:
//   - New: O(r*c) scan of the source, O(nnz) memory.
//   - At: O(log k) where k is the number of non-zeros in the row.
//   - RowsVector/ColumnsVector/ValuesVector: O(nnz) copy.
package csr
