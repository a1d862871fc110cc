// Package tensor provides the core tensor types for the PINN solver.
package tensor

import "fmt"

// Tensor pairs a RawTensor with the backend that computes on it.
// It provides method-chained operations over [rows, cols] float64 matrices.
//
// Type Parameters:
//   - B: Computation backend (must implement Backend interface)
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros(Shape{3, 4}, backend)
//	result := t.Add(t)
type Tensor[B Backend] struct {
	raw     *RawTensor
	backend B
}

// New creates a Tensor from a RawTensor and backend.
func New[B Backend](raw *RawTensor, b B) *Tensor[B] {
	return &Tensor[B]{
		raw:     raw,
		backend: b,
	}
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[B Backend](data []float64, shape Shape, b B) (*Tensor[B], error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %s requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	raw, err := NewRaw(shape, b.Device())
	if err != nil {
		return nil, err
	}
	copy(raw.Data(), data)
	return New(raw, b), nil
}

// Shape returns the tensor's shape.
func (t *Tensor[B]) Shape() Shape {
	return t.raw.Shape()
}

// NumElements returns the total number of elements.
func (t *Tensor[B]) NumElements() int {
	return t.raw.NumElements()
}

// Raw returns the underlying RawTensor.
func (t *Tensor[B]) Raw() *RawTensor {
	return t.raw
}

// Backend returns the computation backend.
func (t *Tensor[B]) Backend() B {
	return t.backend
}

// Data returns the underlying buffer.
func (t *Tensor[B]) Data() []float64 {
	return t.raw.Data()
}

// Item returns the value of a [1, 1] tensor.
func (t *Tensor[B]) Item() float64 {
	return t.raw.Item()
}

// Detach returns a copy of t that no tape has seen, so nothing computed from it
// is differentiable back to t.
func (t *Tensor[B]) Detach() *Tensor[B] {
	return New(t.raw.Clone(), t.backend)
}

// Add returns t + other.
func (t *Tensor[B]) Add(other *Tensor[B]) *Tensor[B] {
	return New(t.backend.Add(t.raw, other.raw), t.backend)
}

// Sub returns t - other.
func (t *Tensor[B]) Sub(other *Tensor[B]) *Tensor[B] {
	return New(t.backend.Sub(t.raw, other.raw), t.backend)
}

// Mul returns the element-wise product t * other.
func (t *Tensor[B]) Mul(other *Tensor[B]) *Tensor[B] {
	return New(t.backend.Mul(t.raw, other.raw), t.backend)
}

// Square returns t * t.
func (t *Tensor[B]) Square() *Tensor[B] {
	return t.Mul(t)
}

// MatMul returns the matrix product t @ other.
func (t *Tensor[B]) MatMul(other *Tensor[B]) *Tensor[B] {
	return New(t.backend.MatMul(t.raw, other.raw), t.backend)
}

// Transpose returns tᵀ.
func (t *Tensor[B]) Transpose() *Tensor[B] {
	return New(t.backend.Transpose(t.raw), t.backend)
}

// MulScalar returns t * s.
func (t *Tensor[B]) MulScalar(s float64) *Tensor[B] {
	return New(t.backend.MulScalar(t.raw, s), t.backend)
}

// AddScalar returns t + s.
func (t *Tensor[B]) AddScalar(s float64) *Tensor[B] {
	return New(t.backend.AddScalar(t.raw, s), t.backend)
}

// Tanh returns tanh(t) element-wise.
func (t *Tensor[B]) Tanh() *Tensor[B] {
	return New(t.backend.Tanh(t.raw), t.backend)
}

// Exp returns exp(t) element-wise.
func (t *Tensor[B]) Exp() *Tensor[B] {
	return New(t.backend.Exp(t.raw), t.backend)
}

// Expand broadcasts t to shape.
func (t *Tensor[B]) Expand(shape Shape) *Tensor[B] {
	return New(t.backend.Expand(t.raw, shape), t.backend)
}

// SumTo reduces t to shape by summing over broadcast dimensions.
func (t *Tensor[B]) SumTo(shape Shape) *Tensor[B] {
	return New(t.backend.SumTo(t.raw, shape), t.backend)
}

// Sum returns the [1, 1] sum of all elements.
func (t *Tensor[B]) Sum() *Tensor[B] {
	return t.SumTo(Shape{1, 1})
}

// Mean returns the [1, 1] mean of all elements.
func (t *Tensor[B]) Mean() *Tensor[B] {
	return t.Sum().MulScalar(1 / float64(t.NumElements()))
}

// String implements fmt.Stringer.
func (t *Tensor[B]) String() string {
	return fmt.Sprintf("Tensor%s", t.Shape())
}
