package report

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/born-ml/pinn/internal/pinn"
)

// Record is the persisted form of a run.
type Record struct {
	RunID         string          `yaml:"run_id"`
	Backend       string          `yaml:"backend"`
	Device        string          `yaml:"device,omitempty"`
	NumParameters int             `yaml:"num_parameters"`
	Duration      time.Duration   `yaml:"duration"`
	Config        ConfigRecord    `yaml:"config"`
	Checkpoints   []EpochRecord   `yaml:"checkpoints"`
	Final         pinn.Losses     `yaml:"final"`
	Evaluation    pinn.Evaluation `yaml:"evaluation"`
}

// ConfigRecord mirrors pinn.Config.
type ConfigRecord struct {
	Epsilon        float64 `yaml:"epsilon"`
	NumCollocation int     `yaml:"num_collocation"`
	NumBoundary    int     `yaml:"num_boundary"`
	Epochs         int     `yaml:"epochs"`
	LearningRate   float64 `yaml:"learning_rate"`
	HiddenWidth    int     `yaml:"hidden_width"`
	HiddenLayers   int     `yaml:"hidden_layers"`
	Seed           uint64  `yaml:"seed"`
	Optimizer      string  `yaml:"optimizer"`
	ResampleEvery  int     `yaml:"resample_every"`
}

// EpochRecord is the loss at one logged epoch.
type EpochRecord struct {
	Epoch       int `yaml:"epoch"`
	pinn.Losses `yaml:",inline"`
}

// NewRecord collects res into a Record, keeping the losses of every logged epoch.
func NewRecord(res *pinn.Result, device string) Record {
	cfg := res.Config
	r := Record{
		RunID:         res.RunID,
		Backend:       res.Backend,
		Device:        device,
		NumParameters: res.NumParameters,
		Duration:      res.Duration,
		Config: ConfigRecord{
			Epsilon:        cfg.Epsilon,
			NumCollocation: cfg.NumCollocation,
			NumBoundary:    cfg.NumBoundary,
			Epochs:         cfg.Epochs,
			LearningRate:   cfg.LearningRate,
			HiddenWidth:    cfg.HiddenWidth,
			HiddenLayers:   cfg.HiddenLayers,
			Seed:           cfg.Seed,
			Optimizer:      cfg.Optimizer,
			ResampleEvery:  cfg.ResampleEvery,
		},
		Final:      res.FinalLoss(),
		Evaluation: res.Evaluation,
	}
	for epoch, l := range res.History {
		if cfg.LogEvery > 0 && epoch%cfg.LogEvery == 0 {
			r.Checkpoints = append(r.Checkpoints, EpochRecord{Epoch: epoch, Losses: l})
		}
	}
	return r
}

// WriteYAML encodes the record of res to w.
func WriteYAML(w io.Writer, res *pinn.Result, device string) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewRecord(res, device)); err != nil {
		return errors.Wrap(err, "encoding report")
	}
	return errors.Wrap(enc.Close(), "encoding report")
}

// ReadYAML decodes a record written by WriteYAML.
func ReadYAML(r io.Reader) (Record, error) {
	var rec Record
	if err := yaml.NewDecoder(r).Decode(&rec); err != nil {
		return Record{}, errors.Wrap(err, "decoding report")
	}
	return rec, nil
}
