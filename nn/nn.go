// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the neural network building blocks of the solver.
//
//	backend := autodiff.New(cpu.New())
//	src := rand.NewPCG(42, 42)
//	model := nn.NewMLP(1, []int{50, 50}, 1, src, backend)
//	u := model.Forward(x)
package nn

import (
	"math/rand/v2"

	"github.com/born-ml/pinn/internal/nn"
	"github.com/born-ml/pinn/internal/tensor"
)

// Module is the base interface for all neural network components.
type Module[B tensor.Backend] = nn.Module[B]

// Parameter is a trainable tensor.
type Parameter[B tensor.Backend] = nn.Parameter[B]

// Linear is a fully connected layer, y = x @ W + b.
type Linear[B tensor.Backend] = nn.Linear[B]

// Tanh is the hyperbolic tangent activation.
type Tanh[B tensor.Backend] = nn.Tanh[B]

// Sequential chains modules.
type Sequential[B tensor.Backend] = nn.Sequential[B]

// NewLinear creates a Glorot-initialized Linear layer.
func NewLinear[B tensor.Backend](in, out int, src rand.Source, backend B) *Linear[B] {
	return nn.NewLinear(in, out, src, backend)
}

// NewTanh creates a Tanh activation.
func NewTanh[B tensor.Backend]() *Tanh[B] {
	return nn.NewTanh[B]()
}

// NewSequential creates a Sequential container.
func NewSequential[B tensor.Backend](modules ...Module[B]) *Sequential[B] {
	return nn.NewSequential(modules...)
}

// NewMLP builds a tanh multilayer perceptron with a linear output layer.
func NewMLP[B tensor.Backend](in int, hidden []int, out int, src rand.Source, backend B) *Sequential[B] {
	return nn.NewMLP(in, hidden, out, src, backend)
}

// CountParameters returns the number of scalar trainable values in m.
func CountParameters[B tensor.Backend](m Module[B]) int {
	return nn.CountParameters(m)
}
