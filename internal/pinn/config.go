// Package pinn trains a physics-informed network on the singularly perturbed
// reaction-diffusion problem
//
//	ε u''(x) − u(x) = 0,  x ∈ (0, 1),  u(0) = 0,  u(1) = 1
//
// The loss is built from the equation residual at collocation points and the
// two boundary conditions; no labeled data is used. Second derivatives of the
// network with respect to its input come from nested gradient tapes, and a
// third tape around the whole loss differentiates it with respect to the
// network parameters.
package pinn

import (
	"github.com/pkg/errors"
)

// Optimizer names accepted by Config.Optimizer.
const (
	OptimizerAdam = "adam"
	OptimizerSGD  = "sgd"
)

// Config holds every hyperparameter of a run.
type Config struct {
	Epsilon        float64 // Perturbation parameter ε
	NumCollocation int     // N_f interior collocation points
	NumBoundary    int     // N_b samples at each boundary
	Epochs         int     // Optimizer iterations
	LearningRate   float64
	HiddenWidth    int // Units per hidden layer
	HiddenLayers   int // Number of hidden tanh layers
	LogEvery       int // Epoch line interval
	Seed           uint64
	GridPoints     int    // Evaluation grid size
	Optimizer      string // "adam" or "sgd"

	// ResampleEvery redraws the collocation batch every N epochs.
	// Zero draws it once and reuses it for the whole run.
	ResampleEvery int
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	return Config{
		Epsilon:        0.01,
		NumCollocation: 1000,
		NumBoundary:    100,
		Epochs:         5000,
		LearningRate:   0.001,
		HiddenWidth:    50,
		HiddenLayers:   2,
		LogEvery:       500,
		Seed:           42,
		GridPoints:     200,
		Optimizer:      OptimizerAdam,
		ResampleEvery:  0,
	}
}

// Validate checks that every field is usable.
func (c Config) Validate() error {
	switch {
	case !(c.Epsilon > 0):
		return errors.Errorf("epsilon must be positive, got %g", c.Epsilon)
	case c.NumCollocation <= 0:
		return errors.Errorf("collocation points must be positive, got %d", c.NumCollocation)
	case c.NumBoundary <= 0:
		return errors.Errorf("boundary points must be positive, got %d", c.NumBoundary)
	case c.Epochs < 0:
		return errors.Errorf("epochs must not be negative, got %d", c.Epochs)
	case !(c.LearningRate > 0):
		return errors.Errorf("learning rate must be positive, got %g", c.LearningRate)
	case c.HiddenWidth <= 0:
		return errors.Errorf("hidden width must be positive, got %d", c.HiddenWidth)
	case c.HiddenLayers <= 0:
		return errors.Errorf("hidden layers must be positive, got %d", c.HiddenLayers)
	case c.LogEvery <= 0:
		return errors.Errorf("log interval must be positive, got %d", c.LogEvery)
	case c.GridPoints < 2:
		return errors.Errorf("evaluation grid needs at least 2 points, got %d", c.GridPoints)
	case c.ResampleEvery < 0:
		return errors.Errorf("resample interval must not be negative, got %d", c.ResampleEvery)
	}
	if c.Optimizer != OptimizerAdam && c.Optimizer != OptimizerSGD {
		return errors.Errorf("unknown optimizer %q", c.Optimizer)
	}
	return nil
}
