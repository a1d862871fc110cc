package ops

import "github.com/born-ml/pinn/internal/tensor"

// MatMulOp represents a matrix multiplication operation: output = a @ b.
//
// Backward pass:
//   - d(A@B)/dA = outputGrad @ B^T
//   - d(A@B)/dB = A^T @ outputGrad
//
// The transposes go through the backend as well, so a recording backend can
// route second-order gradients back to a and b.
type MatMulOp struct{ binary }

// NewMatMulOp creates a new MatMulOp.
func NewMatMulOp(a, b, output *tensor.RawTensor) *MatMulOp {
	return &MatMulOp{binary{a: a, b: b, output: output}}
}

// Name returns "matmul".
func (op *MatMulOp) Name() string { return "matmul" }

// Backward computes input gradients for matrix multiplication.
func (op *MatMulOp) Backward(outputGrad *tensor.RawTensor, needs []bool, backend tensor.Backend) []*tensor.RawTensor {
	grads := make([]*tensor.RawTensor, 2)
	if needs[0] {
		grads[0] = backend.MatMul(outputGrad, backend.Transpose(op.b))
	}
	if needs[1] {
		grads[1] = backend.MatMul(backend.Transpose(op.a), outputGrad)
	}
	return grads
}

// TransposeOp represents output = inputᵀ. Its gradient is the transposed output gradient.
type TransposeOp struct{ unary }

// NewTransposeOp creates a new TransposeOp.
func NewTransposeOp(input, output *tensor.RawTensor) *TransposeOp {
	return &TransposeOp{unary{input: input, output: output}}
}

// Name returns "transpose".
func (op *TransposeOp) Name() string { return "transpose" }

// Backward transposes the output gradient.
func (op *TransposeOp) Backward(outputGrad *tensor.RawTensor, _ []bool, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Transpose(outputGrad)}
}
