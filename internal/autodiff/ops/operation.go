// Package ops defines the differentiable operations recorded on gradient tapes.
//
// Each operation records its inputs and output during the forward pass and,
// during the backward pass, produces input gradients by calling back into a
// tensor.Backend. When that backend is itself recording, the backward pass is
// recorded too, which is what makes gradients of gradients possible.
//
// Supported operations:
//   - AddOp, SubOp, MulOp: element-wise arithmetic
//   - MulScalarOp, AddScalarOp: arithmetic with a constant
//   - MatMulOp, TransposeOp: matrix products (d(A@B)/dA = grad@Bᵀ, d(A@B)/dB = Aᵀ@grad)
//   - TanhOp, ExpOp: element-wise activations
//   - ExpandOp, SumToOp: broadcasting and its adjoint reduction
package ops

import "github.com/born-ml/pinn/internal/tensor"

// Operation represents a differentiable operation in the computation graph.
type Operation interface {
	// Name identifies the operation kind, e.g. "matmul".
	Name() string

	// Inputs returns the input tensors for this operation.
	Inputs() []*tensor.RawTensor

	// Output returns the output tensor produced by this operation.
	Output() *tensor.RawTensor

	// Backward computes gradients for inputs given the output gradient.
	//
	// needs[i] reports whether the caller wants the gradient of input i;
	// entries for unneeded inputs may be nil. The returned slice is aligned
	// with Inputs().
	Backward(outputGrad *tensor.RawTensor, needs []bool, backend tensor.Backend) []*tensor.RawTensor
}

// unary holds the tensors of a single-input operation.
type unary struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
}

// Inputs returns [input].
func (u unary) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{u.input}
}

// Output returns the output tensor.
func (u unary) Output() *tensor.RawTensor {
	return u.output
}

// binary holds the tensors of a two-input operation.
type binary struct {
	a, b   *tensor.RawTensor
	output *tensor.RawTensor
}

// Inputs returns [a, b].
func (o binary) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{o.a, o.b}
}

// Output returns the output tensor.
func (o binary) Output() *tensor.RawTensor {
	return o.output
}
