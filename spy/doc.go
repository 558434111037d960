// SPDX-License-Identifier: MIT

// Package spy draws the sparsity pattern of a csr.View: one square glyph per
// stored non-zero, row 0 at the top, in the manner of a classic "spy" plot.
//
// Rendering goes through gonum/plot, so any format it supports ("png",
// "svg", "pdf", "eps", ...) can be written to an io.Writer:
//
//	v, _ := testmatrix.RandomCSR(200, testmatrix.Quadratic, testmatrix.WithSeed(1))
//	err := spy.WriteTo(w, v, "png", spy.WithTitle("quadratic n=200"))
//
// The package never opens files itself.
package spy
