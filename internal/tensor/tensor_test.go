package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/pinn/internal/backend/cpu"
	"github.com/born-ml/pinn/internal/tensor"
)

func TestShape_Validate(t *testing.T) {
	require.NoError(t, tensor.Shape{3, 1}.Validate())
	require.Error(t, tensor.Shape{3}.Validate())
	require.Error(t, tensor.Shape{3, 0}.Validate())
	require.Error(t, tensor.Shape{2, 2, 2}.Validate())
}

func TestShape_CanExpand(t *testing.T) {
	target := tensor.Shape{4, 3}
	assert.True(t, tensor.Shape{1, 3}.CanExpand(target))
	assert.True(t, tensor.Shape{4, 1}.CanExpand(target))
	assert.True(t, tensor.Shape{1, 1}.CanExpand(target))
	assert.True(t, tensor.Shape{4, 3}.CanExpand(target))
	assert.False(t, tensor.Shape{2, 3}.CanExpand(target))
}

func TestFromSlice(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3}, x.Shape())
	assert.Equal(t, 6.0, x.Raw().At(1, 2))

	_, err = tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{2, 2}, backend)
	require.Error(t, err)
}

func TestCreation(t *testing.T) {
	backend := cpu.New()

	z := tensor.Zeros(tensor.Shape{2, 2}, backend)
	assert.Equal(t, []float64{0, 0, 0, 0}, z.Data())

	o := tensor.Ones(tensor.Shape{1, 3}, backend)
	assert.Equal(t, []float64{1, 1, 1}, o.Data())

	c := tensor.Column([]float64{0.5, 1.5}, backend)
	assert.Equal(t, tensor.Shape{2, 1}, c.Shape())
}

func TestTensor_Chain(t *testing.T) {
	backend := cpu.New()
	x := tensor.Column([]float64{1, 2, 3}, backend)

	// mean((2x + 1)^2) = mean(9, 25, 49)
	got := x.MulScalar(2).AddScalar(1).Square().Mean().Item()
	assert.InDelta(t, 83.0/3.0, got, 1e-12)
}

func TestTensor_Detach(t *testing.T) {
	backend := cpu.New()
	x := tensor.Column([]float64{1, 2}, backend)
	d := x.Detach()

	require.NotSame(t, x.Raw(), d.Raw())
	d.Data()[0] = 42
	assert.Equal(t, 1.0, x.Data()[0])
}
