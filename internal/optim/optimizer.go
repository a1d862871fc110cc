// Package optim implements optimization algorithms for training neural networks.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//
// Example usage:
//
//	optimizer := optim.NewAdam(model.Parameters(), optim.AdamConfig{LR: 0.001})
//
//	for epoch := range epochs {
//	    tape := backend.NewTape(false)
//	    tape.Watch(nn.Raws(params)...)
//	    loss := computeLoss(model, data)
//	    tape.Stop()
//
//	    grads, err := tape.Gradient(loss.Raw(), nn.Raws(params)...)
//	    ...
//	    err = optimizer.Step(optim.GradMap(params, grads))
//	}
package optim

import (
	"github.com/pkg/errors"

	"github.com/born-ml/pinn/internal/nn"
	"github.com/born-ml/pinn/internal/tensor"
)

// ErrMissingGradient is returned by Step when a parameter has no gradient.
var ErrMissingGradient = errors.New("missing gradient for parameter")

// Optimizer is the base interface for all optimization algorithms.
//
// Optimizers update model parameters in place based on computed gradients.
type Optimizer interface {
	// Step applies one update to every parameter.
	//
	// grads maps each parameter's RawTensor to its gradient. A parameter
	// without an entry fails the step with ErrMissingGradient and leaves
	// every parameter unchanged.
	Step(grads map[*tensor.RawTensor]*tensor.RawTensor) error

	// GetLR returns the current learning rate.
	GetLR() float64

	// Name returns the optimizer name, e.g. "adam".
	Name() string
}

// GradMap pairs params with the gradients a tape returned for them, in order.
func GradMap[B tensor.Backend](params []*nn.Parameter[B], grads []*tensor.RawTensor) map[*tensor.RawTensor]*tensor.RawTensor {
	m := make(map[*tensor.RawTensor]*tensor.RawTensor, len(params))
	for i, p := range params {
		if i < len(grads) && grads[i] != nil {
			m[p.Raw()] = grads[i]
		}
	}
	return m
}

// collect looks up every parameter's gradient before anything is updated.
func collect[B tensor.Backend](params []*nn.Parameter[B], grads map[*tensor.RawTensor]*tensor.RawTensor) ([][]float64, error) {
	out := make([][]float64, len(params))
	for i, p := range params {
		g, ok := grads[p.Raw()]
		if !ok || g == nil {
			return nil, errors.Wrapf(ErrMissingGradient, "%s (%d)", p.Name(), i)
		}
		if !g.Shape().Equal(p.Tensor().Shape()) {
			return nil, errors.Errorf("gradient for %s has shape %s, want %s", p.Name(), g.Shape(), p.Tensor().Shape())
		}
		out[i] = g.Data()
	}
	return out, nil
}
