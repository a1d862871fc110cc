// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation with
// nestable gradient tapes.
//
// Tapes opened on the same backend nest: while one tape computes a gradient,
// the others still open record that computation, so derivatives of any order
// can be taken.
//
//	backend := autodiff.New(cpu.New())
//	x := tensor.Column([]float64{2}, backend)
//
//	outer := backend.NewTape(true)
//	outer.Watch(x.Raw())
//	inner := backend.NewTape(false)
//	inner.Watch(x.Raw())
//	y := x.Mul(x).Mul(x)
//	inner.Stop()
//	dy, _ := inner.Gradient(y.Raw(), x.Raw())  // 3x² = 12
//	outer.Stop()
//	d2y, _ := outer.Gradient(dy[0], x.Raw())   // 6x = 12
//	outer.Release()
package autodiff

import (
	"github.com/born-ml/pinn/internal/autodiff"
	"github.com/born-ml/pinn/internal/tensor"
)

// Backend is the autodiff-enabled backend.
type Backend[B tensor.Backend] = autodiff.AutodiffBackend[B]

// GradientTape records operations for automatic differentiation.
type GradientTape = autodiff.GradientTape

// Errors returned by GradientTape.Gradient.
var (
	ErrNoGradient   = autodiff.ErrNoGradient
	ErrTapeUsed     = autodiff.ErrTapeUsed
	ErrTapeReleased = autodiff.ErrTapeReleased
)

// New creates a new autodiff backend wrapping the given backend.
func New[B tensor.Backend](backend B) *Backend[B] {
	return autodiff.New(backend)
}
