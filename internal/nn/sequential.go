package nn

import (
	"math/rand/v2"

	"github.com/born-ml/pinn/internal/tensor"
)

// Sequential is a container module that chains multiple modules together.
//
// Each module's output becomes the next module's input.
//
//	h1 := linear1.Forward(input)
//	h2 := tanh.Forward(h1)
//	output := linear2.Forward(h2)
type Sequential[B tensor.Backend] struct {
	modules []Module[B]
}

// NewSequential creates a new Sequential container.
func NewSequential[B tensor.Backend](modules ...Module[B]) *Sequential[B] {
	return &Sequential[B]{
		modules: modules,
	}
}

// Forward applies all modules in sequence.
func (s *Sequential[B]) Forward(input *tensor.Tensor[B]) *tensor.Tensor[B] {
	output := input
	for _, module := range s.modules {
		output = module.Forward(output)
	}
	return output
}

// Parameters returns all trainable parameters from all modules, in order.
func (s *Sequential[B]) Parameters() []*Parameter[B] {
	var params []*Parameter[B]
	for _, module := range s.modules {
		params = append(params, module.Parameters()...)
	}
	return params
}

// Add appends a module to the sequence.
func (s *Sequential[B]) Add(module Module[B]) {
	s.modules = append(s.modules, module)
}

// Len returns the number of modules in the sequence.
func (s *Sequential[B]) Len() int {
	return len(s.modules)
}

// Module returns the module at the given index.
//
// Panics if index is out of bounds.
func (s *Sequential[B]) Module(index int) Module[B] {
	if index < 0 || index >= len(s.modules) {
		panic("Sequential.Module: index out of bounds")
	}
	return s.modules[index]
}

// NewMLP builds in → [hidden, tanh] × len(hidden) → out, with a linear output layer.
// Layers draw their initial weights from src in construction order.
func NewMLP[B tensor.Backend](in int, hidden []int, out int, src rand.Source, backend B) *Sequential[B] {
	model := NewSequential[B]()
	width := in
	for _, h := range hidden {
		model.Add(NewLinear(width, h, src, backend))
		model.Add(NewTanh[B]())
		width = h
	}
	model.Add(NewLinear(width, out, src, backend))
	return model
}
