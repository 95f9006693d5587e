// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tour

import (
	"fmt"

	"gorgonia.org/tensor"
)

// OpsResult holds the inputs and outputs of the basic tensor-arithmetic
// demonstration.
type OpsResult struct {
	A *tensor.Dense // 2×3 input
	B *tensor.Dense // 2×3 input
	C *tensor.Dense // 3×2 input for the matrix product

	Sum     tensor.Tensor // A + B, element-wise
	Product tensor.Tensor // A ⊙ B, element-wise (Hadamard)
	MatProd tensor.Tensor // A · C, matrix product, 2×2
}

// ElementwiseOps builds two 2×3 tensors and a 3×2 matrix, then computes
// their element-wise sum, element-wise product, and matrix product.
//
// The inputs are the fixed values of the tutorial:
//
//	A = [[1 2 3] [4 5 6]]
//	B = [[7 8 9] [10 11 12]]
//	C = [[1 2] [3 4] [5 6]]
func ElementwiseOps() (*OpsResult, error) {
	a := tensor.New(
		tensor.WithShape(2, 3),
		tensor.WithBacking([]float64{1, 2, 3, 4, 5, 6}),
	)
	b := tensor.New(
		tensor.WithShape(2, 3),
		tensor.WithBacking([]float64{7, 8, 9, 10, 11, 12}),
	)
	c := tensor.New(
		tensor.WithShape(3, 2),
		tensor.WithBacking([]float64{1, 2, 3, 4, 5, 6}),
	)

	sum, err := tensor.Add(a, b)
	if err != nil {
		return nil, fmt.Errorf("elementwise ops: add %v + %v: %w", a.Shape(), b.Shape(), err)
	}
	product, err := tensor.Mul(a, b)
	if err != nil {
		return nil, fmt.Errorf("elementwise ops: mul %v * %v: %w", a.Shape(), b.Shape(), err)
	}
	matProd, err := tensor.MatMul(a, c)
	if err != nil {
		return nil, fmt.Errorf("elementwise ops: matmul %v @ %v: %w", a.Shape(), c.Shape(), err)
	}

	return &OpsResult{
		A:       a,
		B:       b,
		C:       c,
		Sum:     sum,
		Product: product,
		MatProd: matProd,
	}, nil
}
