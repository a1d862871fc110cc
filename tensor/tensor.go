// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides rank-2 float64 tensors and the backend interface
// that computes on them.
//
//	backend := cpu.New()
//	x := tensor.Column([]float64{0, 0.5, 1}, backend) // shape [3, 1]
//	y := x.Tanh().MulScalar(2)
package tensor

import (
	"github.com/born-ml/pinn/internal/tensor"
)

// Shape is a [rows, cols] tensor shape.
type Shape = tensor.Shape

// Device identifies where tensor memory lives.
type Device = tensor.Device

// CPU is the host device.
const CPU = tensor.CPU

// RawTensor is the untyped storage shared by backends.
type RawTensor = tensor.RawTensor

// Backend computes tensor operations.
type Backend = tensor.Backend

// Tensor pairs storage with the backend that computes on it.
type Tensor[B Backend] = tensor.Tensor[B]

// NewRaw allocates zeroed storage.
func NewRaw(shape Shape, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, device)
}

// New wraps raw storage for backend b.
func New[B Backend](raw *RawTensor, b B) *Tensor[B] {
	return tensor.New(raw, b)
}

// FromSlice copies data into a new tensor.
func FromSlice[B Backend](data []float64, shape Shape, b B) (*Tensor[B], error) {
	return tensor.FromSlice(data, shape, b)
}

// Zeros creates a zero-filled tensor.
func Zeros[B Backend](shape Shape, b B) *Tensor[B] {
	return tensor.Zeros(shape, b)
}

// Ones creates a ones-filled tensor.
func Ones[B Backend](shape Shape, b B) *Tensor[B] {
	return tensor.Ones(shape, b)
}

// Full creates a tensor with every element set to v.
func Full[B Backend](shape Shape, v float64, b B) *Tensor[B] {
	return tensor.Full(shape, v, b)
}

// Column creates a [len(values), 1] tensor.
func Column[B Backend](values []float64, b B) *Tensor[B] {
	return tensor.Column(values, b)
}
