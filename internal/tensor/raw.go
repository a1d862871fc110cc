package tensor

import "fmt"

// Device represents the compute device for tensor operations.
type Device int

// Supported compute devices.
const (
	CPU Device = iota
)

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "CPU"
	default:
		return "Unknown"
	}
}

// RawTensor is the low-level tensor representation: a row-major float64 buffer
// with a shape.
//
// RawTensor pointers are the identity the gradient tapes key on, so every
// backend operation returns a freshly allocated RawTensor and never writes
// into its inputs.
type RawTensor struct {
	data   []float64
	shape  Shape
	device Device
}

// NewRaw creates a new zero-filled RawTensor with the given shape.
func NewRaw(shape Shape, device Device) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &RawTensor{
		data:   make([]float64, shape.NumElements()),
		shape:  shape.Clone(),
		device: device,
	}, nil
}

// MustRaw is NewRaw for shapes known to be valid; it panics otherwise.
func MustRaw(shape Shape, device Device) *RawTensor {
	r, err := NewRaw(shape, device)
	if err != nil {
		panic(err)
	}
	return r
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Device returns the tensor's compute device.
func (r *RawTensor) Device() Device {
	return r.device
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return len(r.data)
}

// Data returns the underlying row-major buffer.
// WARNING: Direct access to underlying memory. Writing to it bypasses the tapes.
func (r *RawTensor) Data() []float64 {
	return r.data
}

// Item returns the single value of a [1, 1] tensor.
func (r *RawTensor) Item() float64 {
	if len(r.data) != 1 {
		panic(fmt.Sprintf("Item: tensor with shape %s is not a scalar", r.shape))
	}
	return r.data[0]
}

// At returns the element at row i, column j.
func (r *RawTensor) At(i, j int) float64 {
	return r.data[i*r.shape[1]+j]
}

// Clone returns a deep copy that shares nothing with r.
func (r *RawTensor) Clone() *RawTensor {
	data := make([]float64, len(r.data))
	copy(data, r.data)
	return &RawTensor{
		data:   data,
		shape:  r.shape.Clone(),
		device: r.device,
	}
}

// Fill sets every element to v.
func (r *RawTensor) Fill(v float64) {
	for i := range r.data {
		r.data[i] = v
	}
}
