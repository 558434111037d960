// SPDX-License-Identifier: MIT

package testmatrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Distribution names the sparsity pattern applied to a Random matrix.
type Distribution string

// Quadratic is the banded-plus-hierarchical-block pattern built by quadraticMask.
const Quadratic Distribution = "quadratic"

// ParseDistribution maps a name to a known Distribution.
// Matching is exact; unknown names return ErrUnsupportedDistribution.
func ParseDistribution(name string) (Distribution, error) {
	if d := Distribution(name); d.supported() {
		return d, nil
	}

	return "", fmt.Errorf("ParseDistribution: %q: %w", name, ErrUnsupportedDistribution)
}

// String implements fmt.Stringer.
func (d Distribution) String() string { return string(d) }

func (d Distribution) supported() bool {
	switch d {
	case Quadratic:
		return true
	default:
		return false
	}
}

// mask returns the 0/1 sparsity mask of d for an n×n matrix.
func (d Distribution) mask(n int) (*mat.Dense, error) {
	switch d {
	case Quadratic:
		return quadraticMask(n), nil
	default:
		return nil, ErrUnsupportedDistribution
	}
}
