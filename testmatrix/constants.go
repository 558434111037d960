// SPDX-License-Identifier: MIT

package testmatrix

// Method tags used as error prefixes.
const (
	MethodDiagonal      = "Diagonal"
	MethodThreeDiagonal = "ThreeDiagonal"
	MethodRandom        = "Random"
	MethodRHS           = "RHS"
	MethodOnes          = "Ones"
)

// DefaultSize is the conventional fixture size (50×50).
const DefaultSize = 50

// MinSize is the smallest size accepted by the deterministic generators.
const MinSize = 1

// MinRandomSize is the smallest size accepted by Random: the rescale divides
// by ln(n²), which vanishes at n == 1.
const MinRandomSize = 2

// Entry values of the structured generators.
const (
	diagonalValue      = 1.0
	threeDiagMainValue = 10.0
	threeDiagOffValue  = 1.0
)

// DefaultEpsilon is the absolute/relative tolerance used by Describe.
const DefaultEpsilon = 1e-9
