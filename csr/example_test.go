package csr_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/cgfixtures/csr"
)

// ExampleNew shows the triplet vectors of a small tridiagonal block.
func ExampleNew() {
	a := mat.NewDense(3, 3, []float64{
		10, 1, 0,
		1, 10, 1,
		0, 1, 10,
	})
	v := csr.New(a)

	fmt.Println("nnz:", v.NNZ())
	fmt.Println("rows:", v.RowsVector())
	fmt.Println("cols:", v.ColumnsVector())
	fmt.Println("vals:", v.ValuesVector())
	// Output:
	// nnz: 7
	// rows: [0 0 1 1 1 2 2]
	// cols: [0 1 0 1 2 1 2]
	// vals: [10 1 1 10 1 1 10]
}
