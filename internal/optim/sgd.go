package optim

import (
	"github.com/born-ml/pinn/internal/nn"
	"github.com/born-ml/pinn/internal/tensor"
)

// SGD implements Stochastic Gradient Descent optimizer with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
type SGD[B tensor.Backend] struct {
	params     []*nn.Parameter[B]
	lr         float64
	momentum   float64
	velocities [][]float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
func NewSGD[B tensor.Backend](params []*nn.Parameter[B], config SGDConfig) *SGD[B] {
	if config.LR == 0 {
		config.LR = 0.01
	}

	velocities := make([][]float64, len(params))
	for i, p := range params {
		velocities[i] = make([]float64, p.Tensor().NumElements())
	}

	return &SGD[B]{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: velocities,
	}
}

// Step performs a single optimization step.
func (s *SGD[B]) Step(grads map[*tensor.RawTensor]*tensor.RawTensor) error {
	gs, err := collect(s.params, grads)
	if err != nil {
		return err
	}

	for i, param := range s.params {
		paramData := param.Tensor().Data()
		velocity := s.velocities[i]
		for j, g := range gs[i] {
			if s.momentum != 0 {
				velocity[j] = s.momentum*velocity[j] + g
				g = velocity[j]
			}
			paramData[j] -= s.lr * g
		}
	}
	return nil
}

// GetLR returns the current learning rate.
func (s *SGD[B]) GetLR() float64 {
	return s.lr
}

// Name returns "sgd".
func (s *SGD[B]) Name() string {
	return "sgd"
}
