package pinn

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/pinn/internal/nn"
)

// Result is everything a finished run produced.
type Result struct {
	RunID         string
	Config        Config
	History       []Losses
	Evaluation    Evaluation
	NumParameters int
	Backend       string
	Duration      time.Duration

	// Model is the trained network; Backend evaluates it.
	Model *nn.Sequential[Backend]
}

// FinalLoss returns the loss of the last epoch, or zero if none ran.
func (r *Result) FinalLoss() Losses {
	if len(r.History) == 0 {
		return Losses{}
	}
	return r.History[len(r.History)-1]
}

// Run trains a model with cfg and evaluates it against the exact solution.
func Run(cfg Config, opts ...TrainerOption) (*Result, error) {
	start := time.Now()
	runID := uuid.NewString()
	klog.V(1).Infof("run %s: epsilon=%g epochs=%d seed=%d", runID, cfg.Epsilon, cfg.Epochs, cfg.Seed)

	trainer, err := NewTrainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	history, err := trainer.Train()
	if err != nil {
		return nil, errors.Wrapf(err, "run %s", runID)
	}
	evaluation, err := trainer.Evaluate()
	if err != nil {
		return nil, errors.Wrapf(err, "run %s", runID)
	}

	return &Result{
		RunID:         runID,
		Config:        cfg,
		History:       history,
		Evaluation:    evaluation,
		NumParameters: nn.CountParameters[Backend](trainer.Model()),
		Backend:       trainer.Backend().Name(),
		Duration:      time.Since(start),
		Model:         trainer.Model(),
	}, nil
}
