// SPDX-License-Identifier: MIT

// Command cgfixtures generates a conjugate-gradient test matrix, prints its
// structural summary and, optionally, writes a spy plot of its sparsity.
//
// Usage:
//
//	cgfixtures -kind random -size 200 -dist quadratic -seed 7 -spy pattern.png
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/cgfixtures/csr"
	"github.com/katalvlaran/cgfixtures/spy"
	"github.com/katalvlaran/cgfixtures/testmatrix"
)

const (
	kindDiagonal    = "diagonal"
	kindTridiagonal = "tridiagonal"
	kindRandom      = "random"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("cgfixtures: ")

	kind := flag.String("kind", kindRandom, "matrix kind: diagonal|tridiagonal|random")
	size := flag.Int("size", testmatrix.DefaultSize, "matrix size n (n×n)")
	dist := flag.String("dist", string(testmatrix.Quadratic), "sparsity distribution for -kind random")
	seed := flag.Uint64("seed", 1, "RNG seed for -kind random")
	spyPath := flag.String("spy", "", "write a spy plot to this file (format from extension)")
	flag.Parse()

	m, err := generate(*kind, *size, *dist, *seed)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}
	fmt.Println(testmatrix.Describe(m))

	if *spyPath == "" {
		return
	}
	if err = writeSpy(*spyPath, csr.New(m), fmt.Sprintf("%s n=%d", *kind, *size)); err != nil {
		log.Fatalf("spy: %v", err)
	}
	log.Printf("wrote %s", *spyPath)
}

func generate(kind string, size int, dist string, seed uint64) (*mat.Dense, error) {
	switch kind {
	case kindDiagonal:
		return testmatrix.Diagonal(size)
	case kindTridiagonal:
		return testmatrix.ThreeDiagonal(size)
	case kindRandom:
		d, err := testmatrix.ParseDistribution(dist)
		if err != nil {
			return nil, err
		}
		return testmatrix.Random(size, d, testmatrix.WithSeed(seed))
	default:
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
}

func writeSpy(path string, v *csr.View, title string) (err error) {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if format == "" {
		format = "png"
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return spy.WriteTo(f, v, format, spy.WithTitle(title))
}
