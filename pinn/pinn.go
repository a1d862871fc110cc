// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package pinn trains a physics-informed neural network on
//
//	ε u''(x) − u(x) = 0,  x ∈ (0, 1),  u(0) = 0,  u(1) = 1
//
// and compares it with the closed-form solution.
//
//	res, err := pinn.Run(pinn.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Evaluation.MaxAbsError)
package pinn

import (
	"io"

	"github.com/born-ml/pinn/internal/pinn"
)

// Config holds every hyperparameter of a run.
type Config = pinn.Config

// Result is everything a finished run produced.
type Result = pinn.Result

// Losses holds the loss components of one epoch.
type Losses = pinn.Losses

// Evaluation compares the network with the exact solution on a grid.
type Evaluation = pinn.Evaluation

// Trainer runs epochs one at a time.
type Trainer = pinn.Trainer

// TrainerOption configures a Trainer.
type TrainerOption = pinn.TrainerOption

// EpochHook observes every epoch's losses.
type EpochHook = pinn.EpochHook

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	return pinn.DefaultConfig()
}

// Run trains a model with cfg and evaluates it.
func Run(cfg Config, opts ...TrainerOption) (*Result, error) {
	return pinn.Run(cfg, opts...)
}

// NewTrainer validates cfg and initializes a run.
func NewTrainer(cfg Config, opts ...TrainerOption) (*Trainer, error) {
	return pinn.NewTrainer(cfg, opts...)
}

// WithOutput sets where epoch lines are written.
func WithOutput(w io.Writer) TrainerOption {
	return pinn.WithOutput(w)
}

// WithEpochHook adds an epoch observer.
func WithEpochHook(h EpochHook) TrainerOption {
	return pinn.WithEpochHook(h)
}

// ExactSolution returns the closed-form solution at x.
func ExactSolution(x, epsilon float64) float64 {
	return pinn.ExactSolution(x, epsilon)
}

// Sweep trains one model per seed concurrently.
func Sweep(base Config, seeds []uint64, workers int) ([]*Result, error) {
	return pinn.Sweep(base, seeds, workers)
}
