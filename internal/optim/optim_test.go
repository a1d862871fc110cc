package optim_test

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/pinn/internal/autodiff"
	"github.com/born-ml/pinn/internal/backend/cpu"
	"github.com/born-ml/pinn/internal/nn"
	"github.com/born-ml/pinn/internal/optim"
	"github.com/born-ml/pinn/internal/tensor"
)

type backendT = *autodiff.AutodiffBackend[*cpu.CPUBackend]

func scalarParam(t *testing.T, backend backendT, name string, v float64) *nn.Parameter[backendT] {
	t.Helper()
	x, err := tensor.FromSlice([]float64{v}, tensor.Shape{1, 1}, backend)
	require.NoError(t, err)
	return nn.NewParameter(name, x)
}

func scalarGrad(t *testing.T, v float64) *tensor.RawTensor {
	t.Helper()
	g, err := tensor.NewRaw(tensor.Shape{1, 1}, tensor.CPU)
	require.NoError(t, err)
	g.Data()[0] = v
	return g
}

// TestSGD_SimpleUpdate tests SGD without momentum.
func TestSGD_SimpleUpdate(t *testing.T) {
	backend := autodiff.New(cpu.New())
	param := scalarParam(t, backend, "x", 2.0)

	optimizer := optim.NewSGD([]*nn.Parameter[backendT]{param}, optim.SGDConfig{LR: 0.1})
	err := optimizer.Step(map[*tensor.RawTensor]*tensor.RawTensor{param.Raw(): scalarGrad(t, 1.0)})
	require.NoError(t, err)

	// x_new = 2.0 - 0.1 * 1.0
	assert.InDelta(t, 1.9, param.Tensor().Item(), 1e-12)
	assert.Equal(t, "sgd", optimizer.Name())
}

// TestSGD_WithMomentum tests velocity accumulation.
func TestSGD_WithMomentum(t *testing.T) {
	backend := autodiff.New(cpu.New())
	param := scalarParam(t, backend, "x", 1.0)
	optimizer := optim.NewSGD([]*nn.Parameter[backendT]{param}, optim.SGDConfig{LR: 0.1, Momentum: 0.9})

	grads := map[*tensor.RawTensor]*tensor.RawTensor{param.Raw(): scalarGrad(t, 1.0)}
	require.NoError(t, optimizer.Step(grads))
	// v = 1, x = 1 - 0.1
	assert.InDelta(t, 0.9, param.Tensor().Item(), 1e-12)

	require.NoError(t, optimizer.Step(grads))
	// v = 0.9 + 1 = 1.9, x = 0.9 - 0.19
	assert.InDelta(t, 0.71, param.Tensor().Item(), 1e-12)
}

// TestAdam_FirstStep tests that the first Adam step moves by about lr.
func TestAdam_FirstStep(t *testing.T) {
	backend := autodiff.New(cpu.New())
	param := scalarParam(t, backend, "x", 1.0)
	optimizer := optim.NewAdam([]*nn.Parameter[backendT]{param}, optim.AdamConfig{LR: 0.1})

	require.NoError(t, optimizer.Step(map[*tensor.RawTensor]*tensor.RawTensor{param.Raw(): scalarGrad(t, 0.5)}))

	// m_hat = g, v_hat = g², step = lr * g / (|g| + eps)
	want := 1.0 - 0.1*0.5/(0.5+1e-7)
	assert.InDelta(t, want, param.Tensor().Item(), 1e-12)
	assert.Equal(t, 1, optimizer.Steps())
	assert.InDelta(t, 0.1, optimizer.GetLR(), 0)
}

// TestAdam_Minimizes tests Adam on f(x) = (x-3)² using tape gradients.
func TestAdam_Minimizes(t *testing.T) {
	backend := autodiff.New(cpu.New())
	param := scalarParam(t, backend, "x", 0.0)
	params := []*nn.Parameter[backendT]{param}
	optimizer := optim.NewAdam(params, optim.AdamConfig{LR: 0.1})

	for range 500 {
		tape := backend.NewTape(false)
		tape.Watch(nn.Raws(params)...)
		loss := param.Tensor().AddScalar(-3).Square().Sum()
		tape.Stop()

		grads, err := tape.Gradient(loss.Raw(), nn.Raws(params)...)
		require.NoError(t, err)
		require.NoError(t, optimizer.Step(optim.GradMap(params, grads)))
	}

	assert.InDelta(t, 3.0, param.Tensor().Item(), 1e-2)
}

// TestStep_MissingGradient tests that nothing is updated when a gradient is absent.
func TestStep_MissingGradient(t *testing.T) {
	backend := autodiff.New(cpu.New())
	a := scalarParam(t, backend, "a", 1.0)
	b := scalarParam(t, backend, "b", 2.0)
	params := []*nn.Parameter[backendT]{a, b}
	grads := map[*tensor.RawTensor]*tensor.RawTensor{a.Raw(): scalarGrad(t, 1.0)}

	for _, opt := range []optim.Optimizer{
		optim.NewAdam(params, optim.AdamConfig{}),
		optim.NewSGD(params, optim.SGDConfig{}),
	} {
		err := opt.Step(grads)
		require.Error(t, err, opt.Name())
		assert.True(t, errors.Is(err, optim.ErrMissingGradient), opt.Name())
		assert.InDelta(t, 1.0, a.Tensor().Item(), 0, opt.Name())
		assert.InDelta(t, 2.0, b.Tensor().Item(), 0, opt.Name())
	}
}

// TestAdam_Defaults tests that zero config values take the defaults.
func TestAdam_Defaults(t *testing.T) {
	backend := autodiff.New(cpu.New())
	param := scalarParam(t, backend, "x", 0.0)
	optimizer := optim.NewAdam([]*nn.Parameter[backendT]{param}, optim.AdamConfig{})
	assert.InDelta(t, 0.001, optimizer.GetLR(), 0)

	require.NoError(t, optimizer.Step(map[*tensor.RawTensor]*tensor.RawTensor{param.Raw(): scalarGrad(t, -2.0)}))
	assert.InDelta(t, 0.001, param.Tensor().Item(), 1e-9)
	assert.False(t, math.IsNaN(param.Tensor().Item()))
}
