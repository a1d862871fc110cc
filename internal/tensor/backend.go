package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// All operations work on [rows, cols] tensors and allocate their result.
// Misuse (mismatched shapes) is a programming error and panics.
type Backend interface {
	// Element-wise binary operations on equally shaped tensors.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor

	// Matrix operations.
	MatMul(a, b *RawTensor) *RawTensor
	Transpose(x *RawTensor) *RawTensor

	// Scalar operations (element-wise with scalar).
	MulScalar(x *RawTensor, scalar float64) *RawTensor
	AddScalar(x *RawTensor, scalar float64) *RawTensor

	// Element-wise math.
	Tanh(x *RawTensor) *RawTensor
	Exp(x *RawTensor) *RawTensor

	// Broadcasting and its adjoint reduction.
	//
	// Expand repeats x along every dimension where x has size 1 so that the
	// result has the given shape. SumTo sums x along every dimension where
	// shape has size 1. Each is the other's gradient.
	Expand(x *RawTensor, shape Shape) *RawTensor
	SumTo(x *RawTensor, shape Shape) *RawTensor

	// Metadata
	Name() string
	Device() Device
}
