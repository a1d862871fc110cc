package pinn

import (
	"math"

	"github.com/born-ml/pinn/internal/nn"
)

// ExactSolution returns (exp(x/√ε) − 1) / (exp(1/√ε) − 1).
//
// For very small ε both exponentials overflow and the result is NaN or ±Inf.
func ExactSolution(x, epsilon float64) float64 {
	k := 1 / math.Sqrt(epsilon)
	return math.Expm1(k*x) / math.Expm1(k)
}

// ExactModule computes the closed-form solution with differentiable
// operations, so it can stand in for a trained network.
type ExactModule struct {
	epsilon float64
}

// NewExactModule returns the closed-form solution for epsilon as a Model.
func NewExactModule(epsilon float64) *ExactModule {
	return &ExactModule{epsilon: epsilon}
}

// Forward evaluates the solution at every row of input.
func (m *ExactModule) Forward(input *Tensor) *Tensor {
	k := 1 / math.Sqrt(m.epsilon)
	return input.MulScalar(k).Exp().AddScalar(-1).MulScalar(1 / math.Expm1(k))
}

// Parameters returns nothing; the solution has no trainable values.
func (m *ExactModule) Parameters() []*nn.Parameter[Backend] {
	return nil
}

// ExactResidual is the residual ε u'' − u of ExactSolution, which equals
// 1 / (exp(1/√ε) − 1) everywhere rather than zero.
func ExactResidual(epsilon float64) float64 {
	return 1 / math.Expm1(1/math.Sqrt(epsilon))
}
