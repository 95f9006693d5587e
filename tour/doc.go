// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tour provides the building blocks of the numerical tutorial run
// by cmd/tensor-tour.
//
// # Overview
//
// Every numerically interesting computation is delegated to external
// libraries; this package only supplies shapes, hyperparameters, input
// validation, and result structs for the tutorial's narration:
//
//   - ElementwiseOps: tensor creation and arithmetic (gorgonia.org/tensor)
//   - Decompositions: eigendecomposition, SVD, inversion, norms (gonum mat)
//   - Gradients: automatic differentiation on an expression graph (gorgonia)
//   - MLP / Train: a small multilayer perceptron fitted with Adam (gorgonia)
//
// # Basic Usage
//
//	ops, err := tour.ElementwiseOps()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(ops.Sum)
//
//	g := gorgonia.NewGraph()
//	model, err := tour.NewMLP(g, 10, 20, 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := model.Train(tour.TrainConfig{
//	    Samples:   100,
//	    Epochs:    100,
//	    LearnRate: 0.01,
//	    LogEvery:  20,
//	    Seed:      42,
//	})
//
// Results are plain structs so callers decide how to print them; the
// functions themselves never write to stdout.
package tour
