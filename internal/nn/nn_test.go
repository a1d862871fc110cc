package nn_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/pinn/internal/autodiff"
	"github.com/born-ml/pinn/internal/backend/cpu"
	"github.com/born-ml/pinn/internal/nn"
	"github.com/born-ml/pinn/internal/tensor"
)

type backendT = *autodiff.AutodiffBackend[*cpu.CPUBackend]

func newSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed)
}

// TestLinear_Shapes tests kernel, bias and output shapes.
func TestLinear_Shapes(t *testing.T) {
	backend := autodiff.New(cpu.New())
	layer := nn.NewLinear(3, 5, newSource(1), backend)

	assert.Equal(t, tensor.Shape{3, 5}, layer.Weight().Tensor().Shape())
	assert.Equal(t, tensor.Shape{1, 5}, layer.Bias().Tensor().Shape())
	assert.Equal(t, 3, layer.InFeatures())
	assert.Equal(t, 5, layer.OutFeatures())

	out := layer.Forward(tensor.Zeros(tensor.Shape{7, 3}, backend))
	assert.Equal(t, tensor.Shape{7, 5}, out.Shape())
}

// TestLinear_Forward tests y = x @ W + b with known weights.
func TestLinear_Forward(t *testing.T) {
	backend := autodiff.New(cpu.New())
	layer := nn.NewLinear(2, 1, newSource(1), backend)
	copy(layer.Weight().Tensor().Data(), []float64{2, -1})
	layer.Bias().Tensor().Data()[0] = 0.5

	x, err := tensor.FromSlice([]float64{1, 1, 3, 2}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)

	out := layer.Forward(x)
	assert.InDeltaSlice(t, []float64{1.5, 4.5}, out.Data(), 1e-12)
}

// TestLinear_WrongInputPanics tests that a feature mismatch panics.
func TestLinear_WrongInputPanics(t *testing.T) {
	backend := autodiff.New(cpu.New())
	layer := nn.NewLinear(2, 1, newSource(1), backend)
	assert.Panics(t, func() { layer.Forward(tensor.Zeros(tensor.Shape{4, 3}, backend)) })
}

// TestGlorotUniform tests the initializer bounds and zero biases.
func TestGlorotUniform(t *testing.T) {
	backend := cpu.New()
	w := nn.GlorotUniform(50, 50, tensor.Shape{50, 50}, newSource(7), backend)

	limit := math.Sqrt(6.0 / 100.0)
	var sum float64
	for _, v := range w.Data() {
		require.LessOrEqual(t, math.Abs(v), limit)
		sum += v
	}
	assert.InDelta(t, 0, sum/float64(w.NumElements()), 0.02, "mean should be near zero")

	layer := nn.NewLinear(4, 2, newSource(7), backend)
	for _, v := range layer.Bias().Tensor().Data() {
		assert.Zero(t, v)
	}
}

// TestGlorotUniform_Deterministic tests that equal seeds give equal weights.
func TestGlorotUniform_Deterministic(t *testing.T) {
	backend := cpu.New()
	a := nn.GlorotUniform(3, 4, tensor.Shape{3, 4}, newSource(42), backend)
	b := nn.GlorotUniform(3, 4, tensor.Shape{3, 4}, newSource(42), backend)
	c := nn.GlorotUniform(3, 4, tensor.Shape{3, 4}, newSource(43), backend)

	assert.Equal(t, a.Data(), b.Data())
	assert.NotEqual(t, a.Data(), c.Data())
}

// TestMLP tests the layer layout and parameter count of a 1-50-50-1 network.
func TestMLP(t *testing.T) {
	backend := autodiff.New(cpu.New())
	model := nn.NewMLP(1, []int{50, 50}, 1, newSource(42), backend)

	assert.Equal(t, 5, model.Len())
	assert.IsType(t, &nn.Tanh[backendT]{}, model.Module(1))
	assert.Len(t, model.Parameters(), 6)
	assert.Equal(t, 2*50+50*50+50+50+1, nn.CountParameters[backendT](model))

	out := model.Forward(tensor.Column([]float64{0, 0.5, 1}, backend))
	assert.Equal(t, tensor.Shape{3, 1}, out.Shape())
	assert.Panics(t, func() { model.Module(5) })
}

// TestMLP_Differentiable tests that every parameter receives a gradient.
func TestMLP_Differentiable(t *testing.T) {
	backend := autodiff.New(cpu.New())
	model := nn.NewMLP(1, []int{4}, 1, newSource(3), backend)
	params := model.Parameters()

	tape := backend.NewTape(false)
	tape.Watch(nn.Raws(params)...)
	loss := model.Forward(tensor.Column([]float64{0.1, 0.9}, backend)).Square().Mean()
	tape.Stop()

	grads, err := tape.Gradient(loss.Raw(), nn.Raws(params)...)
	require.NoError(t, err)
	require.Len(t, grads, len(params))
	for i, g := range grads {
		assert.Equal(t, params[i].Tensor().Shape(), g.Shape(), params[i].Name())
	}
}

// TestStateDict tests copying weights between two models.
func TestStateDict(t *testing.T) {
	backend := autodiff.New(cpu.New())
	a := nn.NewMLP(1, []int{3}, 1, newSource(1), backend)
	b := nn.NewMLP(1, []int{3}, 1, newSource(2), backend)

	dict := nn.StateDict[backendT](a)
	require.Len(t, dict, 4)
	assert.Contains(t, dict, "00.kernel")
	assert.Contains(t, dict, "03.bias")

	require.NoError(t, nn.LoadStateDict[backendT](b, dict))
	x := tensor.Column([]float64{0.3}, backend)
	assert.InDelta(t, a.Forward(x).Item(), b.Forward(x).Item(), 0)

	small := nn.NewMLP(1, []int{2}, 1, newSource(3), backend)
	assert.Error(t, nn.LoadStateDict[backendT](small, dict))
	delete(dict, "00.kernel")
	assert.Error(t, nn.LoadStateDict[backendT](b, dict))
}
