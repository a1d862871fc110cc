package pinn

import (
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/born-ml/pinn/internal/nn"
	"github.com/born-ml/pinn/internal/serialization"
)

// SaveWeights writes the trained parameters of res to w as SafeTensors.
func SaveWeights(w io.Writer, res *Result) error {
	if res.Model == nil {
		return errors.New("result has no model")
	}
	metadata := map[string]string{
		"run_id":        res.RunID,
		"epsilon":       strconv.FormatFloat(res.Config.Epsilon, 'g', -1, 64),
		"hidden_width":  strconv.Itoa(res.Config.HiddenWidth),
		"hidden_layers": strconv.Itoa(res.Config.HiddenLayers),
		"seed":          strconv.FormatUint(res.Config.Seed, 10),
	}
	return errors.Wrap(serialization.WriteSafeTensors(w, nn.StateDict[Backend](res.Model), metadata), "saving weights")
}

// LoadWeights builds the architecture of cfg on a new backend and fills it
// with weights read from r.
func LoadWeights(r io.Reader, cfg Config) (*nn.Sequential[Backend], Backend, error) {
	dict, _, err := serialization.ReadSafeTensors(r)
	if err != nil {
		return nil, nil, errors.Wrap(err, "loading weights")
	}
	backend := NewBackend()
	model := BuildModel(cfg, zeroSource{}, backend)
	if err := nn.LoadStateDict[Backend](model, dict); err != nil {
		return nil, nil, errors.Wrap(err, "loading weights")
	}
	return model, backend, nil
}

// zeroSource feeds the initializer while the real weights are loaded on top.
type zeroSource struct{}

func (zeroSource) Uint64() uint64 { return 0 }
