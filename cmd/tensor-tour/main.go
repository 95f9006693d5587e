// Package main is the numerical tutorial walkthrough: tensor arithmetic,
// matrix decompositions, automatic differentiation, and a small neural
// network, all delegated to Gorgonia and Gonum.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"gonum.org/v1/gonum/mat"
	"gorgonia.org/gorgonia"

	"github.com/born-ml/primer/tour"
)

const seed = 42

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "unexpected error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fmt.Println("=== Tensor Tour ===")
	fmt.Println("Libraries: Gorgonia (tensors, autodiff, NN) + Gonum (dense linear algebra)")
	fmt.Println("Device: CPU")

	if err := tensorSection(); err != nil {
		return err
	}
	if err := decompositionSection(); err != nil {
		return err
	}
	if err := autogradSection(); err != nil {
		return err
	}
	if err := trainingSection(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Program finished successfully.")
	return nil
}

func tensorSection() error {
	fmt.Println("\n=== Basic Tensor Operations ===")

	ops, err := tour.ElementwiseOps()
	if err != nil {
		return err
	}

	fmt.Printf("Tensor A:\n%v", ops.A)
	fmt.Printf("Shape of A: %v, dtype: %v\n\n", ops.A.Shape(), ops.A.Dtype())
	fmt.Printf("Tensor B:\n%v", ops.B)
	fmt.Printf("Shape of B: %v\n\n", ops.B.Shape())

	fmt.Printf("Addition (A + B):\n%v", ops.Sum)
	fmt.Printf("Element-wise product (A * B):\n%v\n", ops.Product)
	fmt.Printf("Matrix product (A @ C):\n%v", ops.MatProd)
	fmt.Printf("Shape of the matrix product: %v\n", ops.MatProd.Shape())
	return nil
}

func decompositionSection() error {
	fmt.Println("\n=== Advanced Matrix Calculations ===")

	result, err := tour.Decompositions(seed)
	if err != nil {
		return err
	}

	fmt.Printf("Symmetric matrix S = M·Mᵀ:\n%.4f\n\n", mat.Formatted(result.Symmetric, mat.Prefix("")))
	fmt.Printf("Eigenvalues of S:\n%.4f\n", result.Eigenvalues)
	fmt.Printf("Eigenvectors of S:\n%.4f\n\n", mat.Formatted(result.Eigenvectors, mat.Prefix("")))
	fmt.Printf("Singular values of M:\n%.4f\n\n", result.SingularValues)
	fmt.Printf("S·S⁻¹ (should be close to the identity):\n%.4f\n\n", mat.Formatted(result.IdentityCheck, mat.Prefix("")))
	fmt.Printf("Frobenius norm of M: %.4f\n", result.FrobeniusNorm)
	return nil
}

func autogradSection() error {
	fmt.Println("\n=== Automatic Differentiation ===")

	result, err := tour.Gradients()
	if err != nil {
		return err
	}

	fmt.Printf("Input: x₁=%.1f, x₂=%.1f\n", result.X1, result.X2)
	fmt.Printf("y = x₁² + 2x₂³ + x₁x₂ = %.4f\n", result.Value)
	fmt.Printf("Gradient ∂y/∂x: [%.4f %.4f]\n", result.Gradient[0], result.Gradient[1])
	fmt.Printf("Closed form:    [%.4f %.4f]\n", result.Theoretical[0], result.Theoretical[1])
	fmt.Printf("Absolute error: [%.2e %.2e]\n", result.AbsError[0], result.AbsError[1])
	return nil
}

func trainingSection() error {
	fmt.Println("\n=== Neural Network Training ===")

	const (
		inputSize  = 10
		hiddenSize = 20
		outputSize = 1
	)
	fmt.Printf("Creating a perceptron: %d -> %d -> %d -> %d\n",
		inputSize, hiddenSize, hiddenSize, outputSize)
	fmt.Println("Target: y = Σxᵢ² + noise, optimizer: Adam, loss: MSE")

	model, err := tour.NewMLP(gorgonia.NewGraph(), inputSize, hiddenSize, outputSize)
	if err != nil {
		return err
	}

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		TimeFormat: time.Kitchen,
	}))

	result, err := model.Train(tour.TrainConfig{
		Samples:   100,
		Epochs:    100,
		LearnRate: 0.01,
		LogEvery:  20,
		Seed:      seed,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Final loss: %.6f (first epoch: %.6f)\n", result.FinalLoss, result.InitialLoss)
	fmt.Println("\nPrediction examples:")
	for i, p := range result.Predictions {
		fmt.Printf("Sample %d: actual=%.4f, predicted=%.4f, error=%.4f\n",
			i+1, p.Actual, p.Predicted, abs(p.Actual-p.Predicted))
	}
	return nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
