package pinn

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/pinn/internal/tensor"
)

// Evaluation holds the prediction and exact solution on an evenly spaced grid.
// X, Predicted and Exact are aligned.
type Evaluation struct {
	X         []float64 `yaml:"-"`
	Predicted []float64 `yaml:"-"`
	Exact     []float64 `yaml:"-"`

	MaxAbsError float64 `yaml:"max_abs_error"`
	RelL2Error  float64 `yaml:"rel_l2_error"`
}

// Grid returns n evenly spaced points covering [0, 1], endpoints included.
func Grid(n int) []float64 {
	return floats.Span(make([]float64, n), 0, 1)
}

// ErrRecording is returned by Evaluate when a tape is recording on the backend.
var ErrRecording = errors.New("evaluation needs a backend with no recording tape")

// Evaluate runs model on a points-sized grid and compares it with
// ExactSolution.
func Evaluate(backend Backend, model Model, epsilon float64, points int) (Evaluation, error) {
	if backend.Recording() {
		return Evaluation{}, ErrRecording
	}
	x := Grid(points)
	predicted := model.Forward(tensor.Column(x, backend)).Data()

	exact := make([]float64, len(x))
	for i, xi := range x {
		exact[i] = ExactSolution(xi, epsilon)
	}

	diff := make([]float64, len(x))
	floats.SubTo(diff, predicted, exact)

	return Evaluation{
		X:           x,
		Predicted:   append([]float64(nil), predicted...),
		Exact:       exact,
		MaxAbsError: floats.Norm(diff, math.Inf(1)),
		RelL2Error:  floats.Norm(diff, 2) / floats.Norm(exact, 2),
	}, nil
}
