// Package cgfixtures is a small toolkit of synthetic matrices for exercising
// conjugate-gradient solvers.
//
// What's inside:
//
//	testmatrix/ — fixture generators: Diagonal, ThreeDiagonal, Random
//	              (Rᵀ·D·R with a quadratic sparsity mask), RHS/Ones vectors,
//	              and Describe for a quick structural summary
//	csr/        — View, a read-only compressed-sparse-row projection exposing
//	              row/column/value triplets and the non-zero count
//	spy/        — sparsity-pattern plots of a View (gonum/plot)
//	cmd/cgfixtures — command-line front end
//
// Dense algebra is gonum's (gonum.org/v1/gonum/mat); this module only
// arranges the entries.
//
// Quick example:
//
//	a, err := testmatrix.Random(100, testmatrix.Quadratic, testmatrix.WithSeed(42))
//	if err != nil { ... }
//	v := csr.New(a)
//	fmt.Println(v.NNZ(), v.RowsVector()[:5])
//
//	go get github.com/katalvlaran/cgfixtures
package cgfixtures
