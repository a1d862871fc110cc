// Package cpu implements the CPU backend, with matrix products delegated to gonum's BLAS.
package cpu

import (
	"fmt"

	"github.com/born-ml/pinn/internal/tensor"
)

// CPUBackend implements tensor operations on CPU.
type CPUBackend struct {
	device tensor.Device
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// newResult allocates a result tensor with the given shape, panicking with the op name on failure.
func (cpu *CPUBackend) newResult(op string, shape tensor.Shape) *tensor.RawTensor {
	result, err := tensor.NewRaw(shape, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", op, err))
	}
	return result
}

func checkSameShape(op string, a, b *tensor.RawTensor) {
	if !a.Shape().Equal(b.Shape()) {
		panic(fmt.Sprintf("%s: shape mismatch %s vs %s", op, a.Shape(), b.Shape()))
	}
}

// Add performs element-wise addition.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	checkSameShape("add", a, b)
	result := cpu.newResult("add", a.Shape())
	out, x, y := result.Data(), a.Data(), b.Data()
	for i := range out {
		out[i] = x[i] + y[i]
	}
	return result
}

// Sub performs element-wise subtraction.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	checkSameShape("sub", a, b)
	result := cpu.newResult("sub", a.Shape())
	out, x, y := result.Data(), a.Data(), b.Data()
	for i := range out {
		out[i] = x[i] - y[i]
	}
	return result
}

// Mul performs element-wise multiplication.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	checkSameShape("mul", a, b)
	result := cpu.newResult("mul", a.Shape())
	out, x, y := result.Data(), a.Data(), b.Data()
	for i := range out {
		out[i] = x[i] * y[i]
	}
	return result
}

// MulScalar multiplies every element by scalar.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	result := cpu.newResult("mulscalar", x.Shape())
	out, in := result.Data(), x.Data()
	for i := range out {
		out[i] = in[i] * scalar
	}
	return result
}

// AddScalar adds scalar to every element.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	result := cpu.newResult("addscalar", x.Shape())
	out, in := result.Data(), x.Data()
	for i := range out {
		out[i] = in[i] + scalar
	}
	return result
}
