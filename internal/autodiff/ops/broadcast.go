package ops

import "github.com/born-ml/pinn/internal/tensor"

// ExpandOp represents broadcasting input to a larger shape.
//
// Backward pass:
//   - grad_input = SumTo(outputGrad, input.Shape())
type ExpandOp struct{ unary }

// NewExpandOp creates a new ExpandOp.
func NewExpandOp(input, output *tensor.RawTensor) *ExpandOp {
	return &ExpandOp{unary{input: input, output: output}}
}

// Name returns "expand".
func (op *ExpandOp) Name() string { return "expand" }

// Backward sums the output gradient over the broadcast dimensions.
func (op *ExpandOp) Backward(outputGrad *tensor.RawTensor, _ []bool, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.SumTo(outputGrad, op.input.Shape())}
}

// SumToOp represents summing input over the dimensions where the output has size 1.
// Full reductions (sum, mean) are SumTo with shape [1, 1].
//
// Backward pass:
//   - grad_input = Expand(outputGrad, input.Shape())
type SumToOp struct{ unary }

// NewSumToOp creates a new SumToOp.
func NewSumToOp(input, output *tensor.RawTensor) *SumToOp {
	return &SumToOp{unary{input: input, output: output}}
}

// Name returns "sumto".
func (op *SumToOp) Name() string { return "sumto" }

// Backward broadcasts the output gradient back to the input shape.
func (op *SumToOp) Backward(outputGrad *tensor.RawTensor, _ []bool, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Expand(outputGrad, op.input.Shape())}
}
