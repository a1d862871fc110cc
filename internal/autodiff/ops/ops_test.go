package ops_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/pinn/internal/autodiff/ops"
	"github.com/born-ml/pinn/internal/backend/cpu"
	"github.com/born-ml/pinn/internal/tensor"
)

func raw(t *testing.T, shape tensor.Shape, values ...float64) *tensor.RawTensor {
	t.Helper()
	r, err := tensor.NewRaw(shape, tensor.CPU)
	require.NoError(t, err)
	copy(r.Data(), values)
	return r
}

var both = []bool{true, true}

func TestMulOp_Backward(t *testing.T) {
	backend := cpu.New()
	a := raw(t, tensor.Shape{1, 2}, 2, 3)
	b := raw(t, tensor.Shape{1, 2}, 5, 7)
	op := ops.NewMulOp(a, b, backend.Mul(a, b))

	grads := op.Backward(tensor.OnesLike(op.Output()), both, backend)
	assert.Equal(t, []float64{5, 7}, grads[0].Data())
	assert.Equal(t, []float64{2, 3}, grads[1].Data())

	grads = op.Backward(tensor.OnesLike(op.Output()), []bool{false, true}, backend)
	assert.Nil(t, grads[0])
	assert.NotNil(t, grads[1])
}

func TestSubOp_Backward(t *testing.T) {
	backend := cpu.New()
	a := raw(t, tensor.Shape{1, 2}, 1, 1)
	op := ops.NewSubOp(a, a, backend.Sub(a, a))

	grads := op.Backward(raw(t, tensor.Shape{1, 2}, 3, 4), both, backend)
	assert.Equal(t, []float64{3, 4}, grads[0].Data())
	assert.Equal(t, []float64{-3, -4}, grads[1].Data())
}

func TestMatMulOp_Backward(t *testing.T) {
	backend := cpu.New()
	a := raw(t, tensor.Shape{2, 2}, 1, 2, 3, 4)
	b := raw(t, tensor.Shape{2, 1}, 5, 6)
	op := ops.NewMatMulOp(a, b, backend.MatMul(a, b))

	grads := op.Backward(raw(t, tensor.Shape{2, 1}, 1, 1), both, backend)
	// grad_a = g @ bᵀ, grad_b = aᵀ @ g
	assert.Equal(t, []float64{5, 6, 5, 6}, grads[0].Data())
	assert.Equal(t, []float64{4, 6}, grads[1].Data())
	assert.Equal(t, "matmul", op.Name())
}

func TestTanhOp_Backward(t *testing.T) {
	backend := cpu.New()
	x := raw(t, tensor.Shape{1, 2}, 0, 0.5)
	op := ops.NewTanhOp(x, backend.Tanh(x))

	grad := op.Backward(raw(t, tensor.Shape{1, 2}, 1, 2), []bool{true}, backend)[0]
	th := math.Tanh(0.5)
	assert.InDelta(t, 1, grad.Data()[0], 1e-15)
	assert.InDelta(t, 2*(1-th*th), grad.Data()[1], 1e-15)
}

func TestExpOp_Backward(t *testing.T) {
	backend := cpu.New()
	x := raw(t, tensor.Shape{1, 1}, 1)
	op := ops.NewExpOp(x, backend.Exp(x))

	grad := op.Backward(raw(t, tensor.Shape{1, 1}, 2), []bool{true}, backend)[0]
	assert.InDelta(t, 2*math.E, grad.Item(), 1e-14)
}

func TestBroadcastOps_AreAdjoint(t *testing.T) {
	backend := cpu.New()
	bias := raw(t, tensor.Shape{1, 2}, 1, 2)
	expand := ops.NewExpandOp(bias, backend.Expand(bias, tensor.Shape{3, 2}))

	g := raw(t, tensor.Shape{3, 2}, 1, 2, 3, 4, 5, 6)
	grad := expand.Backward(g, []bool{true}, backend)[0]
	assert.Equal(t, tensor.Shape{1, 2}, grad.Shape())
	assert.Equal(t, []float64{9, 12}, grad.Data())

	m := raw(t, tensor.Shape{2, 2}, 1, 2, 3, 4)
	sum := ops.NewSumToOp(m, backend.SumTo(m, tensor.Shape{1, 1}))
	grad = sum.Backward(raw(t, tensor.Shape{1, 1}, 0.5), []bool{true}, backend)[0]
	assert.Equal(t, []float64{0.5, 0.5, 0.5, 0.5}, grad.Data())
}

func TestScalarOps_Backward(t *testing.T) {
	backend := cpu.New()
	x := raw(t, tensor.Shape{1, 2}, 1, 2)
	g := raw(t, tensor.Shape{1, 2}, 1, 1)

	mul := ops.NewMulScalarOp(x, backend.MulScalar(x, 3), 3)
	assert.Equal(t, []float64{3, 3}, mul.Backward(g, []bool{true}, backend)[0].Data())

	add := ops.NewAddScalarOp(x, backend.AddScalar(x, 3))
	assert.Same(t, g, add.Backward(g, []bool{true}, backend)[0])
}
