// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tour

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// decompDim is the side length of the square matrix used by Decompositions.
const decompDim = 4

// DecompResult holds the outputs of the dense linear-algebra demonstration.
type DecompResult struct {
	Matrix    *mat.Dense    // seeded random 4×4 matrix M
	Symmetric *mat.SymDense // S = M·Mᵀ, symmetric positive semi-definite

	Eigenvalues  []float64  // eigenvalues of S, ascending
	Eigenvectors *mat.Dense // corresponding eigenvectors, column-wise

	SingularValues []float64 // singular values of M, descending

	Inverse       *mat.Dense // S⁻¹
	IdentityCheck *mat.Dense // S·S⁻¹, close to the identity

	FrobeniusNorm float64 // ‖M‖_F
}

// Decompositions generates a seeded random 4×4 matrix M, forms the
// symmetric matrix S = M·Mᵀ, and runs the advanced matrix calculations of
// the tutorial: eigendecomposition of S, singular value decomposition of M,
// inversion of S with an S·S⁻¹ identity check, and the Frobenius norm of M.
//
// The same seed always produces the same matrices.
func Decompositions(seed uint64) (*DecompResult, error) {
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(seed)}

	data := make([]float64, decompDim*decompDim)
	for i := range data {
		data[i] = normal.Rand()
	}
	m := mat.NewDense(decompDim, decompDim, data)

	// S = M·Mᵀ is symmetric and positive semi-definite, so the symmetric
	// eigendecomposition below always succeeds in exact arithmetic.
	var prod mat.Dense
	prod.Mul(m, m.T())
	sym := mat.NewSymDense(decompDim, nil)
	for i := 0; i < decompDim; i++ {
		for j := i; j < decompDim; j++ {
			sym.SetSym(i, j, prod.At(i, j))
		}
	}

	var eig mat.EigenSym
	if !eig.Factorize(sym, true) {
		return nil, fmt.Errorf("decompositions (seed=%d): symmetric eigendecomposition failed to converge", seed)
	}
	eigenvalues := eig.Values(nil)
	var eigenvectors mat.Dense
	eig.VectorsTo(&eigenvectors)

	var svd mat.SVD
	if !svd.Factorize(m, mat.SVDThin) {
		return nil, fmt.Errorf("decompositions (seed=%d): SVD failed to converge", seed)
	}
	singularValues := svd.Values(nil)

	var inverse mat.Dense
	if err := inverse.Inverse(sym); err != nil {
		return nil, fmt.Errorf("decompositions (seed=%d): invert S: %w", seed, err)
	}
	var identityCheck mat.Dense
	identityCheck.Mul(sym, &inverse)

	return &DecompResult{
		Matrix:         m,
		Symmetric:      sym,
		Eigenvalues:    eigenvalues,
		Eigenvectors:   &eigenvectors,
		SingularValues: singularValues,
		Inverse:        &inverse,
		IdentityCheck:  &identityCheck,
		FrobeniusNorm:  mat.Norm(m, 2),
	}, nil
}
