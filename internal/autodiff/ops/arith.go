package ops

import "github.com/born-ml/pinn/internal/tensor"

// AddOp represents an element-wise addition operation: output = a + b.
//
// Backward pass:
//   - grad_a = outputGrad
//   - grad_b = outputGrad
type AddOp struct{ binary }

// NewAddOp creates a new AddOp.
func NewAddOp(a, b, output *tensor.RawTensor) *AddOp {
	return &AddOp{binary{a: a, b: b, output: output}}
}

// Name returns "add".
func (op *AddOp) Name() string { return "add" }

// Backward passes the output gradient through to both inputs.
func (op *AddOp) Backward(outputGrad *tensor.RawTensor, _ []bool, _ tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{outputGrad, outputGrad}
}

// SubOp represents an element-wise subtraction operation: output = a - b.
//
// Backward pass:
//   - grad_a = outputGrad
//   - grad_b = -outputGrad
type SubOp struct{ binary }

// NewSubOp creates a new SubOp.
func NewSubOp(a, b, output *tensor.RawTensor) *SubOp {
	return &SubOp{binary{a: a, b: b, output: output}}
}

// Name returns "sub".
func (op *SubOp) Name() string { return "sub" }

// Backward computes input gradients for subtraction.
func (op *SubOp) Backward(outputGrad *tensor.RawTensor, needs []bool, backend tensor.Backend) []*tensor.RawTensor {
	grads := []*tensor.RawTensor{outputGrad, nil}
	if needs[1] {
		grads[1] = backend.MulScalar(outputGrad, -1)
	}
	return grads
}

// MulOp represents an element-wise multiplication operation: output = a * b.
//
// Backward pass:
//   - grad_a = outputGrad * b
//   - grad_b = outputGrad * a
type MulOp struct{ binary }

// NewMulOp creates a new MulOp.
func NewMulOp(a, b, output *tensor.RawTensor) *MulOp {
	return &MulOp{binary{a: a, b: b, output: output}}
}

// Name returns "mul".
func (op *MulOp) Name() string { return "mul" }

// Backward computes input gradients for multiplication.
func (op *MulOp) Backward(outputGrad *tensor.RawTensor, needs []bool, backend tensor.Backend) []*tensor.RawTensor {
	grads := make([]*tensor.RawTensor, 2)
	if needs[0] {
		grads[0] = backend.Mul(outputGrad, op.b)
	}
	if needs[1] {
		grads[1] = backend.Mul(outputGrad, op.a)
	}
	return grads
}

// MulScalarOp represents output = input * scalar.
type MulScalarOp struct {
	unary
	scalar float64
}

// NewMulScalarOp creates a new MulScalarOp.
func NewMulScalarOp(input, output *tensor.RawTensor, scalar float64) *MulScalarOp {
	return &MulScalarOp{unary: unary{input: input, output: output}, scalar: scalar}
}

// Name returns "mulscalar".
func (op *MulScalarOp) Name() string { return "mulscalar" }

// Backward returns outputGrad * scalar.
func (op *MulScalarOp) Backward(outputGrad *tensor.RawTensor, _ []bool, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.MulScalar(outputGrad, op.scalar)}
}

// AddScalarOp represents output = input + scalar.
type AddScalarOp struct{ unary }

// NewAddScalarOp creates a new AddScalarOp.
func NewAddScalarOp(input, output *tensor.RawTensor) *AddScalarOp {
	return &AddScalarOp{unary{input: input, output: output}}
}

// Name returns "addscalar".
func (op *AddScalarOp) Name() string { return "addscalar" }

// Backward passes the output gradient through unchanged.
func (op *AddScalarOp) Backward(outputGrad *tensor.RawTensor, _ []bool, _ tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{outputGrad}
}
