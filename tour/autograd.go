// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tour

import (
	"fmt"
	"math"

	"gorgonia.org/gorgonia"
)

// GradResult holds the outputs of the automatic-differentiation
// demonstration.
type GradResult struct {
	X1, X2 float64 // evaluation point

	Value       float64    // y = x₁² + 2x₂³ + x₁x₂
	Gradient    [2]float64 // ∂y/∂x₁, ∂y/∂x₂ from the tape
	Theoretical [2]float64 // closed-form gradient
	AbsError    [2]float64 // |Gradient - Theoretical|
}

// Gradients builds the expression y = x₁² + 2x₂³ + x₁x₂ on a Gorgonia
// graph, evaluates it at (x₁, x₂) = (2, 3), and compares the gradient
// computed by reverse-mode autodiff against the closed form
// (2x₁ + x₂, 6x₂² + x₁) = (7, 56).
func Gradients() (*GradResult, error) {
	const x1Val, x2Val = 2.0, 3.0

	g := gorgonia.NewGraph()
	x1 := gorgonia.NewScalar(g, gorgonia.Float64, gorgonia.WithName("x1"))
	x2 := gorgonia.NewScalar(g, gorgonia.Float64, gorgonia.WithName("x2"))
	two := gorgonia.NewConstant(2.0)

	// y = x1² + 2·x2³ + x1·x2. Graph construction only fails on shape or
	// dtype mismatches, which are programmer errors here, hence Must.
	x1sq := gorgonia.Must(gorgonia.Mul(x1, x1))
	x2cube := gorgonia.Must(gorgonia.Mul(gorgonia.Must(gorgonia.Mul(x2, x2)), x2))
	y := gorgonia.Must(gorgonia.Add(
		gorgonia.Must(gorgonia.Add(x1sq, gorgonia.Must(gorgonia.Mul(two, x2cube)))),
		gorgonia.Must(gorgonia.Mul(x1, x2)),
	))

	grads, err := gorgonia.Grad(y, x1, x2)
	if err != nil {
		return nil, fmt.Errorf("gradients: build gradient nodes: %w", err)
	}

	machine := gorgonia.NewTapeMachine(g)
	defer machine.Close()

	if err := gorgonia.Let(x1, x1Val); err != nil {
		return nil, fmt.Errorf("gradients: bind x1=%v: %w", x1Val, err)
	}
	if err := gorgonia.Let(x2, x2Val); err != nil {
		return nil, fmt.Errorf("gradients: bind x2=%v: %w", x2Val, err)
	}
	if err := machine.RunAll(); err != nil {
		return nil, fmt.Errorf("gradients: run tape machine: %w", err)
	}

	value := y.Value().Data().(float64)
	gradient := [2]float64{
		grads[0].Value().Data().(float64),
		grads[1].Value().Data().(float64),
	}
	theoretical := [2]float64{
		2*x1Val + x2Val,
		6*x2Val*x2Val + x1Val,
	}

	return &GradResult{
		X1:          x1Val,
		X2:          x2Val,
		Value:       value,
		Gradient:    gradient,
		Theoretical: theoretical,
		AbsError: [2]float64{
			math.Abs(gradient[0] - theoretical[0]),
			math.Abs(gradient[1] - theoretical[1]),
		},
	}, nil
}
