package pinn

import (
	"github.com/pkg/errors"

	"github.com/born-ml/pinn/internal/tensor"
)

// Derivatives holds u and its first two input derivatives at a batch of points.
type Derivatives struct {
	U   *Tensor
	Ux  *Tensor
	Uxx *Tensor
}

// Differentiate evaluates model at x together with u_x and u_xx.
//
// The outer tape is persistent and stays open while the inner tape's gradient
// is taken, so it records the first backward pass. Any tape already open on
// backend records both passes, which keeps the results differentiable with
// respect to the model parameters.
func Differentiate(backend Backend, model Model, x *Tensor) (Derivatives, error) {
	outer := backend.NewTape(true)
	defer outer.Release()
	outer.Watch(x.Raw())

	inner := backend.NewTape(false)
	inner.Watch(x.Raw())
	u := model.Forward(x)
	inner.Stop()

	ux, err := inner.Gradient(u.Raw(), x.Raw())
	if err != nil {
		return Derivatives{}, errors.Wrap(err, "first derivative")
	}
	outer.Stop()

	uxx, err := outer.Gradient(ux[0], x.Raw())
	if err != nil {
		return Derivatives{}, errors.Wrap(err, "second derivative")
	}

	return Derivatives{
		U:   u,
		Ux:  tensor.New(ux[0], backend),
		Uxx: tensor.New(uxx[0], backend),
	}, nil
}

// Residual returns ε·u_xx − u at every row of x.
func Residual(backend Backend, model Model, x *Tensor, epsilon float64) (*Tensor, error) {
	d, err := Differentiate(backend, model, x)
	if err != nil {
		return nil, err
	}
	return d.Uxx.MulScalar(epsilon).Sub(d.U), nil
}
