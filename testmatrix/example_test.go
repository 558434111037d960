package testmatrix_test

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/cgfixtures/csr"
	"github.com/katalvlaran/cgfixtures/testmatrix"
)

// ExampleThreeDiagonal prints a small tridiagonal fixture.
func ExampleThreeDiagonal() {
	m, err := testmatrix.ThreeDiagonal(4)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%v\n", mat.Formatted(m))
	// Output:
	// ⎡10   1   0   0⎤
	// ⎢ 1  10   1   0⎥
	// ⎢ 0   1  10   1⎥
	// ⎣ 0   0   1  10⎦
}

// ExampleRandom builds a seeded quadratic fixture and converts it separately.
func ExampleRandom() {
	a, err := testmatrix.Random(10, testmatrix.Quadratic, testmatrix.WithSeed(1))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	v := csr.New(a)
	fmt.Println(v.NNZ() < 100, testmatrix.Describe(a).Symmetric)

	_, err = testmatrix.Random(10, "arrow", testmatrix.WithSeed(1))
	fmt.Println(errors.Is(err, testmatrix.ErrUnsupportedDistribution))
	// Output:
	// true true
	// true
}
