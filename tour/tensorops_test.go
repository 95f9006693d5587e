package tour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorgonia.org/tensor"
)

func TestElementwiseOps(t *testing.T) {
	ops, err := ElementwiseOps()
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{2, 3}, ops.A.Shape())
	assert.Equal(t, tensor.Shape{2, 3}, ops.B.Shape())
	assert.Equal(t, tensor.Shape{3, 2}, ops.C.Shape())

	assert.Equal(t, []float64{8, 10, 12, 14, 16, 18}, ops.Sum.Data().([]float64))
	assert.Equal(t, []float64{7, 16, 27, 40, 55, 72}, ops.Product.Data().([]float64))
}

func TestElementwiseOps_MatProd(t *testing.T) {
	ops, err := ElementwiseOps()
	require.NoError(t, err)

	// [[1 2 3] [4 5 6]] @ [[1 2] [3 4] [5 6]] = [[22 28] [49 64]]
	assert.Equal(t, tensor.Shape{2, 2}, ops.MatProd.Shape())
	assert.Equal(t, []float64{22, 28, 49, 64}, ops.MatProd.Data().([]float64))
}
