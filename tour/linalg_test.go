package tour

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecompositions_Deterministic(t *testing.T) {
	a, err := Decompositions(42)
	require.NoError(t, err)
	b, err := Decompositions(42)
	require.NoError(t, err)

	assert.Equal(t, a.Eigenvalues, b.Eigenvalues)
	assert.Equal(t, a.SingularValues, b.SingularValues)
	assert.Equal(t, a.FrobeniusNorm, b.FrobeniusNorm)
}

func TestDecompositions_Eigenvalues(t *testing.T) {
	result, err := Decompositions(42)
	require.NoError(t, err)

	require.Len(t, result.Eigenvalues, decompDim)

	// S = M·Mᵀ is positive semi-definite, and EigenSym reports ascending order.
	for i, ev := range result.Eigenvalues {
		assert.GreaterOrEqual(t, ev, -1e-10, "eigenvalue %d", i)
		if i > 0 {
			assert.LessOrEqual(t, result.Eigenvalues[i-1], ev)
		}
	}

	// The eigenvalue sum equals the trace of S.
	var trace, sum float64
	for i := 0; i < decompDim; i++ {
		trace += result.Symmetric.At(i, i)
	}
	for _, ev := range result.Eigenvalues {
		sum += ev
	}
	assert.InDelta(t, trace, sum, 1e-8)
}

func TestDecompositions_SingularValues(t *testing.T) {
	result, err := Decompositions(42)
	require.NoError(t, err)

	require.Len(t, result.SingularValues, decompDim)

	// Singular values are non-negative and descending, and their squares are
	// the eigenvalues of S = M·Mᵀ.
	for i, sv := range result.SingularValues {
		assert.GreaterOrEqual(t, sv, 0.0, "singular value %d", i)
		if i > 0 {
			assert.GreaterOrEqual(t, result.SingularValues[i-1], sv)
		}
		assert.InDelta(t, result.Eigenvalues[decompDim-1-i], sv*sv, 1e-8)
	}
}

func TestDecompositions_InverseAndNorm(t *testing.T) {
	result, err := Decompositions(42)
	require.NoError(t, err)

	for i := 0; i < decompDim; i++ {
		for j := 0; j < decompDim; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, result.IdentityCheck.At(i, j), 1e-8,
				"S·S⁻¹ at (%d,%d)", i, j)
		}
	}

	var sumSq float64
	for i := 0; i < decompDim; i++ {
		for j := 0; j < decompDim; j++ {
			v := result.Matrix.At(i, j)
			sumSq += v * v
		}
	}
	assert.InDelta(t, math.Sqrt(sumSq), result.FrobeniusNorm, 1e-10)
}
