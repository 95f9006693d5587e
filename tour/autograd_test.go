package tour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradients(t *testing.T) {
	result, err := Gradients()
	require.NoError(t, err)

	// y(2, 3) = 4 + 54 + 6 = 64
	assert.InDelta(t, 64.0, result.Value, 1e-9)

	// ∂y/∂x₁ = 2·2 + 3 = 7, ∂y/∂x₂ = 6·9 + 2 = 56
	assert.InDelta(t, 7.0, result.Gradient[0], 1e-6)
	assert.InDelta(t, 56.0, result.Gradient[1], 1e-6)

	assert.Equal(t, [2]float64{7, 56}, result.Theoretical)
	assert.Less(t, result.AbsError[0], 1e-6)
	assert.Less(t, result.AbsError[1], 1e-6)
}
