// Package autodiff implements automatic differentiation using the decorator pattern.
//
// AutodiffBackend wraps any Backend implementation and records every operation
// on the gradient tapes that are currently open on it.
//
// Architecture:
//   - Decorator pattern: AutodiffBackend[B] wraps any Backend implementation
//   - GradientTape: a recording scope; several can be open at once (nested)
//   - Operation interface: each op implements its backward pass through a Backend
//   - Reverse-mode AD: gradients are computed with the chain rule, walking a tape backwards
//
// A tape's backward pass runs through the AutodiffBackend itself, so the tapes
// still open around it record the gradient computation. Taking the gradient of
// that gradient from an enclosing tape yields second derivatives:
//
//	outer := backend.NewTape(true) // persistent: queried after inner closes
//	outer.Watch(x.Raw())
//	inner := backend.NewTape(false)
//	inner.Watch(x.Raw())
//	y := x.Mul(x).Mul(x) // y = x³
//	inner.Stop()
//	dy, _ := inner.Gradient(y.Raw(), x.Raw())   // 3x²
//	outer.Stop()
//	d2y, _ := outer.Gradient(dy[0], x.Raw())    // 6x
//	outer.Release()
package autodiff

import (
	"github.com/born-ml/pinn/internal/autodiff/ops"
	"github.com/born-ml/pinn/internal/tensor"
)

// AutodiffBackend wraps a Backend and adds automatic differentiation.
// It implements the tensor.Backend interface and records operations on every
// open GradientTape.
//
// Type parameter B must satisfy the tensor.Backend interface.
type AutodiffBackend[B tensor.Backend] struct {
	inner B
	tapes *tapeStack
}

// New creates a new AutodiffBackend wrapping the given backend.
func New[B tensor.Backend](backend B) *AutodiffBackend[B] {
	b := &AutodiffBackend[B]{inner: backend}
	b.tapes = &tapeStack{backend: b}
	return b
}

// NewTape opens a recording scope on this backend. Operations are recorded on
// it from now until Stop is called.
//
// A persistent tape can be queried for gradients any number of times and
// keeps its operations until Release; a non-persistent tape releases them
// after its first Gradient call.
func (b *AutodiffBackend[B]) NewTape(persistent bool) *GradientTape {
	return b.tapes.open(persistent)
}

// Recording reports whether any tape is currently open.
func (b *AutodiffBackend[B]) Recording() bool {
	return len(b.tapes.active) > 0
}

// Inner returns the wrapped backend for direct access.
func (b *AutodiffBackend[B]) Inner() B {
	return b.inner
}

// Name returns the backend name.
func (b *AutodiffBackend[B]) Name() string {
	return "Autodiff(" + b.inner.Name() + ")"
}

// Device returns the compute device.
func (b *AutodiffBackend[B]) Device() tensor.Device {
	return b.inner.Device()
}

// Add performs element-wise addition and records the operation.
func (b *AutodiffBackend[B]) Add(x, y *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.Add(x, y)
	b.tapes.record(ops.NewAddOp(x, y, result))
	return result
}

// Sub performs element-wise subtraction and records the operation.
func (b *AutodiffBackend[B]) Sub(x, y *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.Sub(x, y)
	b.tapes.record(ops.NewSubOp(x, y, result))
	return result
}

// Mul performs element-wise multiplication and records the operation.
func (b *AutodiffBackend[B]) Mul(x, y *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.Mul(x, y)
	b.tapes.record(ops.NewMulOp(x, y, result))
	return result
}

// MatMul performs matrix multiplication and records the operation.
func (b *AutodiffBackend[B]) MatMul(x, y *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.MatMul(x, y)
	b.tapes.record(ops.NewMatMulOp(x, y, result))
	return result
}

// Transpose transposes a tensor and records the operation.
//
// The CPU backend copies on transpose, so the result is a new tensor: without
// the TransposeOp, gradients reaching it would never flow back to x.
func (b *AutodiffBackend[B]) Transpose(x *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.Transpose(x)
	b.tapes.record(ops.NewTransposeOp(x, result))
	return result
}

// MulScalar multiplies by a constant and records the operation.
func (b *AutodiffBackend[B]) MulScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	result := b.inner.MulScalar(x, scalar)
	b.tapes.record(ops.NewMulScalarOp(x, result, scalar))
	return result
}

// AddScalar adds a constant and records the operation.
func (b *AutodiffBackend[B]) AddScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	result := b.inner.AddScalar(x, scalar)
	b.tapes.record(ops.NewAddScalarOp(x, result))
	return result
}

// Tanh applies hyperbolic tangent activation and records the operation.
func (b *AutodiffBackend[B]) Tanh(x *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.Tanh(x)
	b.tapes.record(ops.NewTanhOp(x, result))
	return result
}

// Exp computes element-wise exponential and records the operation.
func (b *AutodiffBackend[B]) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.Exp(x)
	b.tapes.record(ops.NewExpOp(x, result))
	return result
}

// Expand broadcasts x to shape and records the operation.
func (b *AutodiffBackend[B]) Expand(x *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	result := b.inner.Expand(x, shape)
	b.tapes.record(ops.NewExpandOp(x, result))
	return result
}

// SumTo reduces x to shape and records the operation.
func (b *AutodiffBackend[B]) SumTo(x *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	result := b.inner.SumTo(x, shape)
	b.tapes.record(ops.NewSumToOp(x, result))
	return result
}
