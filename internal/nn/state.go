package nn

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/born-ml/pinn/internal/tensor"
)

// StateDict returns m's parameters keyed "<index>.<name>", index being the
// parameter's position in m.Parameters(). The tensors are shared, not copied.
func StateDict[B tensor.Backend](m Module[B]) map[string]*tensor.RawTensor {
	params := m.Parameters()
	dict := make(map[string]*tensor.RawTensor, len(params))
	for i, p := range params {
		dict[stateKey(i, p)] = p.Raw()
	}
	return dict
}

// LoadStateDict copies dict into m's parameters. Every parameter must be
// present with a matching shape.
func LoadStateDict[B tensor.Backend](m Module[B], dict map[string]*tensor.RawTensor) error {
	params := m.Parameters()
	if len(dict) != len(params) {
		return errors.Errorf("state dict has %d tensors, model has %d parameters", len(dict), len(params))
	}
	for i, p := range params {
		key := stateKey(i, p)
		src, ok := dict[key]
		if !ok {
			return errors.Errorf("state dict is missing %q", key)
		}
		if !src.Shape().Equal(p.Tensor().Shape()) {
			return errors.Errorf("%q has shape %s, parameter has %s", key, src.Shape(), p.Tensor().Shape())
		}
		copy(p.Tensor().Data(), src.Data())
	}
	return nil
}

func stateKey[B tensor.Backend](i int, p *Parameter[B]) string {
	return fmt.Sprintf("%02d.%s", i, p.Name())
}
