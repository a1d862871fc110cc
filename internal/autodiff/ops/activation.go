package ops

import "github.com/born-ml/pinn/internal/tensor"

// TanhOp represents the hyperbolic tangent activation.
type TanhOp struct{ unary }

// NewTanhOp creates a new tanh operation.
func NewTanhOp(input, output *tensor.RawTensor) *TanhOp {
	return &TanhOp{unary{input: input, output: output}}
}

// Name returns "tanh".
func (op *TanhOp) Name() string { return "tanh" }

// Backward computes the gradient for tanh.
//
// d(tanh(x))/dx = 1 - tanh²(x), and tanh(x) is the recorded output, so
// grad_input = grad_output * (1 - output²).
//
// Every step references the recorded output rather than a fresh constant:
// differentiating this gradient again needs the path back to x.
func (op *TanhOp) Backward(outputGrad *tensor.RawTensor, _ []bool, backend tensor.Backend) []*tensor.RawTensor {
	outputSquared := backend.Mul(op.output, op.output)
	derivative := backend.AddScalar(backend.MulScalar(outputSquared, -1), 1)
	return []*tensor.RawTensor{backend.Mul(outputGrad, derivative)}
}

// ExpOp represents the exponential operation: y = exp(x).
//
// Backward pass:
//   - grad_input = grad_output * output
type ExpOp struct{ unary }

// NewExpOp creates a new ExpOp.
func NewExpOp(input, output *tensor.RawTensor) *ExpOp {
	return &ExpOp{unary{input: input, output: output}}
}

// Name returns "exp".
func (op *ExpOp) Name() string { return "exp" }

// Backward computes input gradient for exp.
func (op *ExpOp) Backward(outputGrad *tensor.RawTensor, _ []bool, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Mul(outputGrad, op.output)}
}
