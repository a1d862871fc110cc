// Package nn implements the neural network modules the solver is built from.
//
// This package provides:
//   - Module interface: Base interface for all NN components
//   - Parameter: Trainable parameters
//   - Linear: Fully connected layer
//   - Tanh: Hyperbolic tangent activation
//   - Sequential: Container for stacking layers
//   - MLP: Sequential stack of Linear+activation layers
//
// Modules only issue tensor operations; whether those are recorded for
// differentiation depends on the backend and the tapes open on it.
package nn

import (
	"github.com/born-ml/pinn/internal/tensor"
)

// Module is the base interface for all neural network components.
//
// Modules can be composed to build complex architectures:
//
//	model := nn.NewSequential[Backend](
//	    nn.NewLinear(1, 50, src, backend),
//	    nn.NewTanh[Backend](),
//	    nn.NewLinear(50, 1, src, backend),
//	)
//
// Type parameter B must satisfy the tensor.Backend interface.
type Module[B tensor.Backend] interface {
	// Forward computes the output of the module given an input tensor.
	Forward(input *tensor.Tensor[B]) *tensor.Tensor[B]

	// Parameters returns all trainable parameters of this module.
	// Returns an empty slice for modules without trainable parameters.
	Parameters() []*Parameter[B]
}

// CountParameters returns the number of scalar trainable values in m.
func CountParameters[B tensor.Backend](m Module[B]) int {
	total := 0
	for _, p := range m.Parameters() {
		total += p.Tensor().NumElements()
	}
	return total
}

// Raws returns the raw tensors of params, in order. These are the sources a
// gradient tape is asked to differentiate with respect to.
func Raws[B tensor.Backend](params []*Parameter[B]) []*tensor.RawTensor {
	raws := make([]*tensor.RawTensor, len(params))
	for i, p := range params {
		raws[i] = p.Tensor().Raw()
	}
	return raws
}
