// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tour

import (
	"fmt"
	"log/slog"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// MLP is a three-layer perceptron (input → hidden → hidden → output) with
// ReLU activations, built on a Gorgonia expression graph.
//
// Weights use Glorot-normal initialization; biases start at zero.
type MLP struct {
	g *gorgonia.ExprGraph

	w1, b1 *gorgonia.Node
	w2, b2 *gorgonia.Node
	w3, b3 *gorgonia.Node

	inputSize  int
	hiddenSize int
	outputSize int
}

// NewMLP creates the perceptron's weight and bias nodes on g.
// All sizes must be positive.
func NewMLP(g *gorgonia.ExprGraph, inputSize, hiddenSize, outputSize int) (*MLP, error) {
	if inputSize <= 0 || hiddenSize <= 0 || outputSize <= 0 {
		return nil, fmt.Errorf("new mlp (input=%d, hidden=%d, output=%d): sizes must be positive: %w",
			inputSize, hiddenSize, outputSize, ErrInvalidConfig)
	}

	return &MLP{
		g:          g,
		w1:         weight(g, "w1", inputSize, hiddenSize),
		b1:         bias(g, "b1", hiddenSize),
		w2:         weight(g, "w2", hiddenSize, hiddenSize),
		b2:         bias(g, "b2", hiddenSize),
		w3:         weight(g, "w3", hiddenSize, outputSize),
		b3:         bias(g, "b3", outputSize),
		inputSize:  inputSize,
		hiddenSize: hiddenSize,
		outputSize: outputSize,
	}, nil
}

func weight(g *gorgonia.ExprGraph, name string, rows, cols int) *gorgonia.Node {
	return gorgonia.NewMatrix(g, gorgonia.Float64,
		gorgonia.WithShape(rows, cols),
		gorgonia.WithName(name),
		gorgonia.WithInit(gorgonia.GlorotN(1.0)),
	)
}

func bias(g *gorgonia.ExprGraph, name string, cols int) *gorgonia.Node {
	return gorgonia.NewMatrix(g, gorgonia.Float64,
		gorgonia.WithShape(1, cols),
		gorgonia.WithName(name),
		gorgonia.WithInit(gorgonia.Zeroes()),
	)
}

// Forward wires the forward pass for a batch x of shape [n, inputSize] and
// returns the output node of shape [n, outputSize].
//
// Node construction only fails on shape or dtype mismatches, which are
// programmer errors here, hence Must.
func (m *MLP) Forward(x *gorgonia.Node) *gorgonia.Node {
	h1 := gorgonia.Must(gorgonia.Rectify(m.affine(x, m.w1, m.b1)))
	h2 := gorgonia.Must(gorgonia.Rectify(m.affine(h1, m.w2, m.b2)))
	return m.affine(h2, m.w3, m.b3)
}

// affine computes x·w + b with b broadcast across the batch dimension.
func (m *MLP) affine(x, w, b *gorgonia.Node) *gorgonia.Node {
	xw := gorgonia.Must(gorgonia.Mul(x, w))
	return gorgonia.Must(gorgonia.BroadcastAdd(xw, b, nil, []byte{0}))
}

func (m *MLP) learnables() gorgonia.Nodes {
	return gorgonia.Nodes{m.w1, m.b1, m.w2, m.b2, m.w3, m.b3}
}

// TrainConfig configures a Train run.
type TrainConfig struct {
	Samples   int          // number of synthetic samples to generate
	Epochs    int          // full-batch epochs to run
	LearnRate float64      // Adam learning rate
	LogEvery  int          // log the loss every LogEvery epochs; 0 disables
	Seed      uint64       // seed for data generation
	Logger    *slog.Logger // destination for epoch logs; nil uses slog.Default
}

func (c TrainConfig) validate() error {
	if c.Samples <= 0 {
		return fmt.Errorf("train config: samples=%d must be positive: %w", c.Samples, ErrInvalidConfig)
	}
	if c.Epochs <= 0 {
		return fmt.Errorf("train config: epochs=%d must be positive: %w", c.Epochs, ErrInvalidConfig)
	}
	if c.LearnRate <= 0 {
		return fmt.Errorf("train config: learn rate=%v must be positive: %w", c.LearnRate, ErrInvalidConfig)
	}
	if c.LogEvery < 0 {
		return fmt.Errorf("train config: log every=%d must not be negative: %w", c.LogEvery, ErrInvalidConfig)
	}
	return nil
}

// Prediction pairs a target value with the model's output for one sample.
type Prediction struct {
	Actual    float64
	Predicted float64
}

// TrainResult summarizes a Train run.
type TrainResult struct {
	InitialLoss float64      // MSE after the first epoch
	FinalLoss   float64      // MSE with the final weights
	History     []float64    // per-epoch MSE, len == Epochs
	Predictions []Prediction // up to five actual-vs-predicted examples
}

// Train fits the perceptron to the tutorial's synthetic regression problem
// y = Σᵢ xᵢ² + 0.1·ε with full-batch Adam and mean-squared-error loss,
// logging the loss every cfg.LogEvery epochs.
//
// The model must have been created with an output size of 1, since the
// synthetic target is scalar.
func (m *MLP) Train(cfg TrainConfig) (*TrainResult, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if m.outputSize != 1 {
		return nil, fmt.Errorf("train: synthetic regression needs output size 1, model has %d: %w",
			m.outputSize, ErrInvalidConfig)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	xT, yT := m.syntheticData(cfg.Samples, cfg.Seed)

	x := gorgonia.NewMatrix(m.g, gorgonia.Float64,
		gorgonia.WithShape(cfg.Samples, m.inputSize), gorgonia.WithName("x"))
	target := gorgonia.NewMatrix(m.g, gorgonia.Float64,
		gorgonia.WithShape(cfg.Samples, 1), gorgonia.WithName("target"))

	out := m.Forward(x)
	loss := gorgonia.Must(gorgonia.Mean(
		gorgonia.Must(gorgonia.Square(
			gorgonia.Must(gorgonia.Sub(out, target)),
		)),
	))

	// Read the loss and output values out of the tape on every run; the
	// machine is free to reuse intermediate buffers otherwise.
	var lossVal, outVal gorgonia.Value
	gorgonia.Read(loss, &lossVal)
	gorgonia.Read(out, &outVal)

	if _, err := gorgonia.Grad(loss, m.learnables()...); err != nil {
		return nil, fmt.Errorf("train: build gradient nodes: %w", err)
	}

	vm := gorgonia.NewTapeMachine(m.g, gorgonia.BindDualValues(m.learnables()...))
	defer vm.Close()
	solver := gorgonia.NewAdamSolver(gorgonia.WithLearnRate(cfg.LearnRate))

	if err := gorgonia.Let(x, xT); err != nil {
		return nil, fmt.Errorf("train: bind inputs: %w", err)
	}
	if err := gorgonia.Let(target, yT); err != nil {
		return nil, fmt.Errorf("train: bind targets: %w", err)
	}

	history := make([]float64, 0, cfg.Epochs)
	for epoch := 1; epoch <= cfg.Epochs; epoch++ {
		if err := vm.RunAll(); err != nil {
			return nil, fmt.Errorf("train: epoch %d/%d: %w", epoch, cfg.Epochs, err)
		}
		if err := solver.Step(gorgonia.NodesToValueGrads(m.learnables())); err != nil {
			return nil, fmt.Errorf("train: epoch %d/%d: solver step: %w", epoch, cfg.Epochs, err)
		}

		epochLoss := lossVal.Data().(float64)
		history = append(history, epochLoss)
		if cfg.LogEvery > 0 && epoch%cfg.LogEvery == 0 {
			logger.Info("epoch complete",
				"epoch", epoch,
				"epochs", cfg.Epochs,
				"loss", epochLoss,
			)
		}
		vm.Reset()
	}

	// One more forward pass with the final weights for the reported loss
	// and the prediction examples.
	if err := vm.RunAll(); err != nil {
		return nil, fmt.Errorf("train: final evaluation: %w", err)
	}
	finalLoss := lossVal.Data().(float64)
	outData := outVal.Data().([]float64)
	targetData := yT.Data().([]float64)

	n := min(5, cfg.Samples)
	predictions := make([]Prediction, n)
	for i := range predictions {
		predictions[i] = Prediction{Actual: targetData[i], Predicted: outData[i]}
	}

	return &TrainResult{
		InitialLoss: history[0],
		FinalLoss:   finalLoss,
		History:     history,
		Predictions: predictions,
	}, nil
}

// syntheticData generates samples of the regression problem
// y = Σᵢ xᵢ² + 0.1·ε with x, ε drawn from a seeded standard normal.
func (m *MLP) syntheticData(samples int, seed uint64) (xT, yT *tensor.Dense) {
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(seed)}

	xBacking := make([]float64, samples*m.inputSize)
	for i := range xBacking {
		xBacking[i] = normal.Rand()
	}
	yBacking := make([]float64, samples)
	for i := 0; i < samples; i++ {
		var sumSq float64
		for j := 0; j < m.inputSize; j++ {
			v := xBacking[i*m.inputSize+j]
			sumSq += v * v
		}
		yBacking[i] = sumSq + 0.1*normal.Rand()
	}

	xT = tensor.New(tensor.WithShape(samples, m.inputSize), tensor.WithBacking(xBacking))
	yT = tensor.New(tensor.WithShape(samples, 1), tensor.WithBacking(yBacking))
	return xT, yT
}
