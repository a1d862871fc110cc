package pinn

import (
	"math/rand/v2"

	"github.com/born-ml/pinn/internal/autodiff"
	"github.com/born-ml/pinn/internal/backend/cpu"
	"github.com/born-ml/pinn/internal/nn"
	"github.com/born-ml/pinn/internal/tensor"
)

// Backend is the differentiable backend runs compute on.
type Backend = *autodiff.AutodiffBackend[*cpu.CPUBackend]

// Tensor is a tensor on Backend.
type Tensor = tensor.Tensor[Backend]

// Model maps a (batch, 1) input to a (batch, 1) output.
type Model = nn.Module[Backend]

// NewBackend returns a fresh differentiable CPU backend with no open tapes.
func NewBackend() Backend {
	return autodiff.New(cpu.New())
}

// BuildModel constructs 1 → HiddenWidth (tanh) × HiddenLayers → 1.
// Kernels are Glorot-uniform from src, biases zero.
func BuildModel(cfg Config, src rand.Source, backend Backend) *nn.Sequential[Backend] {
	hidden := make([]int, cfg.HiddenLayers)
	for i := range hidden {
		hidden[i] = cfg.HiddenWidth
	}
	return nn.NewMLP(1, hidden, 1, src, backend)
}
