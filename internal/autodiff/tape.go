package autodiff

import (
	"github.com/pkg/errors"

	"github.com/born-ml/pinn/internal/autodiff/ops"
	"github.com/born-ml/pinn/internal/tensor"
)

var (
	// ErrNoGradient is returned when a requested source has no derivative path
	// from the target on the tape, e.g. because it was never watched or was
	// detached from the computation.
	ErrNoGradient = errors.New("no gradient for source")

	// ErrTapeUsed is returned when a non-persistent tape is queried a second time.
	ErrTapeUsed = errors.New("non-persistent gradient tape already used")

	// ErrTapeReleased is returned when a released tape is queried.
	ErrTapeReleased = errors.New("gradient tape released")
)

// tapeStack holds the tapes open on one AutodiffBackend, innermost last.
type tapeStack struct {
	backend tensor.Backend // the recording backend backward passes run through
	active  []*GradientTape
}

func (s *tapeStack) open(persistent bool) *GradientTape {
	t := &GradientTape{
		stack:      s,
		operations: make([]ops.Operation, 0, 64),
		tracked:    make(map[*tensor.RawTensor]struct{}),
		recording:  true,
		persistent: persistent,
	}
	s.active = append(s.active, t)
	return t
}

func (s *tapeStack) close(t *GradientTape) {
	for i, open := range s.active {
		if open == t {
			s.active = append(s.active[:i], s.active[i+1:]...)
			return
		}
	}
}

func (s *tapeStack) record(op ops.Operation) {
	for _, t := range s.active {
		t.record(op)
	}
}

// GradientTape records operations during the forward pass and computes
// gradients during the backward pass using reverse-mode automatic differentiation.
//
// A tape only records operations that depend on a tensor it watches (directly
// or through earlier recorded operations). Tapes nest: while a tape computes a
// gradient, the tapes still open on the same backend record that computation.
//
// Usage:
//
//	tape := backend.NewTape(false)
//	tape.Watch(w.Raw())
//	loss := ... // operations on w
//	tape.Stop()
//	grads, err := tape.Gradient(loss.Raw(), w.Raw())
type GradientTape struct {
	stack      *tapeStack
	operations []ops.Operation // Recorded operations (in execution order)
	tracked    map[*tensor.RawTensor]struct{}
	recording  bool
	persistent bool
	used       bool
	released   bool
}

// Watch marks tensors as differentiation sources for this tape.
func (t *GradientTape) Watch(sources ...*tensor.RawTensor) {
	if t.released {
		return
	}
	for _, s := range sources {
		t.tracked[s] = struct{}{}
	}
}

// Watching reports whether the tape tracks r, either because r was watched or
// because r was produced by an operation the tape recorded.
func (t *GradientTape) Watching(r *tensor.RawTensor) bool {
	_, ok := t.tracked[r]
	return ok
}

// IsRecording returns true if the tape is currently recording operations.
func (t *GradientTape) IsRecording() bool {
	return t.recording
}

// Persistent reports whether the tape survives more than one Gradient call.
func (t *GradientTape) Persistent() bool {
	return t.persistent
}

// Stop closes the recording scope. The tape keeps its operations and can
// still be queried. Stopping twice is a no-op.
func (t *GradientTape) Stop() {
	if !t.recording && !t.onStack() {
		return
	}
	t.recording = false
	t.stack.close(t)
}

func (t *GradientTape) onStack() bool {
	for _, open := range t.stack.active {
		if open == t {
			return true
		}
	}
	return false
}

// Release stops the tape and drops every recorded operation.
func (t *GradientTape) Release() {
	t.Stop()
	t.operations = nil
	t.tracked = nil
	t.released = true
}

// NumOps returns the number of recorded operations.
func (t *GradientTape) NumOps() int {
	return len(t.operations)
}

// Operations returns the recorded operations in execution order.
func (t *GradientTape) Operations() []ops.Operation {
	return t.operations
}

// record adds op if the tape is recording and op reads a tracked tensor.
func (t *GradientTape) record(op ops.Operation) {
	if !t.recording {
		return
	}
	for _, in := range op.Inputs() {
		if _, ok := t.tracked[in]; ok {
			t.operations = append(t.operations, op)
			t.tracked[op.Output()] = struct{}{}
			return
		}
	}
}

// Gradient computes d(sum(target))/d(source) for every source by walking the
// tape in reverse.
//
// Algorithm:
//  1. Seed the target with ones (the gradient of sum(target))
//  2. Walk operations in reverse order
//  3. For each operation with an incoming gradient, compute the gradients of
//     its tracked inputs using the chain rule
//  4. Accumulate gradients when the same tensor is used multiple times
//
// The backward pass runs through the recording backend, so other open tapes
// record it and can differentiate the result again. Returns ErrNoGradient
// (wrapped) if any source is unreachable from target.
func (t *GradientTape) Gradient(target *tensor.RawTensor, sources ...*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	if t.used && !t.persistent {
		return nil, ErrTapeUsed
	}
	if t.released {
		return nil, ErrTapeReleased
	}
	t.used = true

	// Stop recording during backward pass to keep this tape's own gradient
	// operations off it.
	wasRecording := t.recording
	t.recording = false
	defer func() {
		t.recording = wasRecording
		if !t.persistent {
			t.Release()
		}
	}()

	grads := make(map[*tensor.RawTensor]*tensor.RawTensor)
	grads[target] = tensor.OnesLike(target)

	backend := t.stack.backend
	for i := len(t.operations) - 1; i >= 0; i-- {
		op := t.operations[i]
		outputGrad, ok := grads[op.Output()]
		if !ok {
			continue
		}
		inputs := op.Inputs()
		needs, wanted := t.needs(inputs)
		if !wanted {
			continue
		}
		inputGrads := op.Backward(outputGrad, needs, backend)
		accumulate(inputs, needs, inputGrads, grads, backend)
	}

	result := make([]*tensor.RawTensor, len(sources))
	for i, s := range sources {
		g, ok := grads[s]
		if !ok {
			return nil, errors.Wrapf(ErrNoGradient, "source %d with shape %s", i, s.Shape())
		}
		result[i] = g
	}
	return result, nil
}

// needs reports which inputs the tape tracks, i.e. which input gradients can
// reach a watched source.
func (t *GradientTape) needs(inputs []*tensor.RawTensor) ([]bool, bool) {
	needs := make([]bool, len(inputs))
	wanted := false
	for j, in := range inputs {
		if _, ok := t.tracked[in]; ok {
			needs[j] = true
			wanted = true
		}
	}
	return needs, wanted
}

// accumulate adds each needed input gradient into grads.
func accumulate(
	inputs []*tensor.RawTensor,
	needs []bool,
	inputGrads []*tensor.RawTensor,
	grads map[*tensor.RawTensor]*tensor.RawTensor,
	backend tensor.Backend,
) {
	for j, input := range inputs {
		if !needs[j] || j >= len(inputGrads) || inputGrads[j] == nil {
			continue
		}
		if existing, ok := grads[input]; ok {
			grads[input] = backend.Add(existing, inputGrads[j])
		} else {
			grads[input] = inputGrads[j]
		}
	}
}
