// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimizers that update nn parameters from tape gradients.
package optim

import (
	"github.com/born-ml/pinn/internal/nn"
	"github.com/born-ml/pinn/internal/optim"
	"github.com/born-ml/pinn/internal/tensor"
)

// Optimizer updates parameters in place.
type Optimizer = optim.Optimizer

// Adam is the Adam optimizer.
type Adam[B tensor.Backend] = optim.Adam[B]

// AdamConfig configures Adam.
type AdamConfig = optim.AdamConfig

// SGD is stochastic gradient descent with optional momentum.
type SGD[B tensor.Backend] = optim.SGD[B]

// SGDConfig configures SGD.
type SGDConfig = optim.SGDConfig

// ErrMissingGradient is returned when a parameter has no gradient.
var ErrMissingGradient = optim.ErrMissingGradient

// NewAdam creates an Adam optimizer over params.
func NewAdam[B tensor.Backend](params []*nn.Parameter[B], config AdamConfig) *Adam[B] {
	return optim.NewAdam(params, config)
}

// NewSGD creates an SGD optimizer over params.
func NewSGD[B tensor.Backend](params []*nn.Parameter[B], config SGDConfig) *SGD[B] {
	return optim.NewSGD(params, config)
}

// GradMap pairs params with the gradients a tape returned for them.
func GradMap[B tensor.Backend](params []*nn.Parameter[B], grads []*tensor.RawTensor) map[*tensor.RawTensor]*tensor.RawTensor {
	return optim.GradMap(params, grads)
}
