package pinn

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/pinn/internal/nn"
	"github.com/born-ml/pinn/internal/optim"
)

// ErrTerminated is returned by Step once every epoch has run.
var ErrTerminated = errors.New("trainer terminated")

// TrainerState is the lifecycle of a Trainer.
type TrainerState int

// Trainer states.
const (
	Initializing TrainerState = iota
	Iterating
	Terminated
)

func (s TrainerState) String() string {
	switch s {
	case Initializing:
		return "Initializing"
	case Iterating:
		return "Iterating"
	case Terminated:
		return "Terminated"
	default:
		return fmt.Sprintf("TrainerState(%d)", int(s))
	}
}

// EpochHook observes the losses of every epoch, measured before that epoch's
// update.
type EpochHook func(epoch int, losses Losses)

// TrainerOption configures a Trainer.
type TrainerOption func(*trainerOptions)

type trainerOptions struct {
	out       io.Writer
	hooks     []EpochHook
	tapeGraph io.Writer
}

// WithOutput sets where epoch lines are written. Defaults to os.Stdout.
func WithOutput(w io.Writer) TrainerOption {
	return func(o *trainerOptions) {
		o.out = w
	}
}

// WithEpochHook adds an observer called after every epoch.
func WithEpochHook(h EpochHook) TrainerOption {
	return func(o *trainerOptions) {
		o.hooks = append(o.hooks, h)
	}
}

// WithTapeGraph writes the first epoch's training tape to w in DOT format.
func WithTapeGraph(w io.Writer) TrainerOption {
	return func(o *trainerOptions) {
		o.tapeGraph = w
	}
}

// Trainer owns everything one run mutates: backend, model, optimizer, random
// source and training batches.
type Trainer struct {
	cfg       Config
	backend   Backend
	src       rand.Source
	model     *nn.Sequential[Backend]
	params    []*nn.Parameter[Backend]
	optimizer optim.Optimizer
	batches   Batches

	state   TrainerState
	epoch   int
	history []Losses
	opts    trainerOptions
}

// NewTrainer validates cfg, then initializes the model and draws the training
// batches from a source seeded with cfg.Seed, in that order.
func NewTrainer(cfg Config, opts ...TrainerOption) (*Trainer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	options := trainerOptions{out: os.Stdout}
	for _, opt := range opts {
		opt(&options)
	}

	backend := NewBackend()
	src := rand.NewPCG(cfg.Seed, cfg.Seed)
	model := BuildModel(cfg, src, backend)
	params := model.Parameters()

	var optimizer optim.Optimizer
	switch cfg.Optimizer {
	case OptimizerSGD:
		optimizer = optim.NewSGD(params, optim.SGDConfig{LR: cfg.LearningRate})
	default:
		optimizer = optim.NewAdam(params, optim.AdamConfig{LR: cfg.LearningRate})
	}

	t := &Trainer{
		cfg:       cfg,
		backend:   backend,
		src:       src,
		model:     model,
		params:    params,
		optimizer: optimizer,
		batches:   Sample(backend, src, cfg.NumCollocation, cfg.NumBoundary),
		state:     Initializing,
		history:   make([]Losses, 0, cfg.Epochs),
		opts:      options,
	}

	klog.V(1).Infof("model: %d layers, %d parameters, optimizer %s, backend %s",
		model.Len(), nn.CountParameters[Backend](model), optimizer.Name(), backend.Name())
	return t, nil
}

// Step runs one epoch: forward pass and loss under a training tape, gradient
// with respect to every parameter, one optimizer update.
func (t *Trainer) Step() (Losses, error) {
	if t.state == Terminated {
		return Losses{}, ErrTerminated
	}
	t.state = Iterating

	if t.cfg.ResampleEvery > 0 && t.epoch > 0 && t.epoch%t.cfg.ResampleEvery == 0 {
		t.batches.Interior = SampleInterior(t.backend, t.src, t.cfg.NumCollocation)
	}

	losses, err := t.step()
	if err != nil {
		t.state = Terminated
		return Losses{}, errors.Wrapf(err, "epoch %d", t.epoch)
	}

	if t.epoch%t.cfg.LogEvery == 0 {
		fmt.Fprintf(t.opts.out, "Epoch %d: Loss = %.5e\n", t.epoch, losses.Total)
	}
	klog.V(2).Infof("epoch %d: pde=%.5e left=%.5e right=%.5e", t.epoch, losses.PDE, losses.Left, losses.Right)

	t.history = append(t.history, losses)
	for _, h := range t.opts.hooks {
		h(t.epoch, losses)
	}

	t.epoch++
	if t.epoch >= t.cfg.Epochs {
		t.state = Terminated
	}
	return losses, nil
}

func (t *Trainer) step() (Losses, error) {
	sources := nn.Raws(t.params)

	tape := t.backend.NewTape(false)
	defer tape.Release()
	tape.Watch(sources...)
	total, losses, err := Loss(t.backend, t.model, t.batches, t.cfg.Epsilon)
	tape.Stop()
	if err != nil {
		return Losses{}, err
	}

	if t.epoch == 0 && t.opts.tapeGraph != nil {
		if err := tape.WriteDOT(t.opts.tapeGraph, sources...); err != nil {
			return Losses{}, errors.Wrap(err, "write tape graph")
		}
	}

	grads, err := tape.Gradient(total.Raw(), sources...)
	if err != nil {
		return Losses{}, err
	}
	if err := t.optimizer.Step(optim.GradMap(t.params, grads)); err != nil {
		return Losses{}, err
	}
	return losses, nil
}

// Train runs every remaining epoch and returns the loss history.
func (t *Trainer) Train() ([]Losses, error) {
	if t.cfg.Epochs == 0 {
		t.state = Terminated
	}
	for t.state != Terminated {
		if _, err := t.Step(); err != nil {
			return t.history, err
		}
	}
	return t.history, nil
}

// Evaluate compares the model with the exact solution on the configured grid.
func (t *Trainer) Evaluate() (Evaluation, error) {
	return Evaluate(t.backend, t.model, t.cfg.Epsilon, t.cfg.GridPoints)
}

// State returns the current lifecycle state.
func (t *Trainer) State() TrainerState { return t.state }

// Epoch returns the number of completed epochs.
func (t *Trainer) Epoch() int { return t.epoch }

// History returns the losses of every completed epoch.
func (t *Trainer) History() []Losses { return t.history }

// Model returns the network being trained.
func (t *Trainer) Model() *nn.Sequential[Backend] { return t.model }

// Backend returns the backend the run computes on.
func (t *Trainer) Backend() Backend { return t.backend }

// Batches returns the current training inputs.
func (t *Trainer) Batches() Batches { return t.batches }
