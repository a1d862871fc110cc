package pinn

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/born-ml/pinn/internal/tensor"
)

// Batches holds the training inputs of one run.
type Batches struct {
	Interior *Tensor // (N_f, 1), uniform in [0, 1)
	Left     *Tensor // (N_b, 1), all 0
	Right    *Tensor // (N_b, 1), all 1
}

// Sample draws nf collocation points uniformly in [0, 1) from src and builds
// nb copies of each boundary point.
func Sample(backend Backend, src rand.Source, nf, nb int) Batches {
	return Batches{
		Interior: SampleInterior(backend, src, nf),
		Left:     tensor.Zeros(tensor.Shape{nb, 1}, backend),
		Right:    tensor.Ones(tensor.Shape{nb, 1}, backend),
	}
}

// SampleInterior draws n collocation points uniformly in [0, 1).
func SampleInterior(backend Backend, src rand.Source, n int) *Tensor {
	dist := distuv.Uniform{Min: 0, Max: 1, Src: src}
	x := tensor.Zeros(tensor.Shape{n, 1}, backend)
	data := x.Data()
	for i := range data {
		data[i] = dist.Rand()
	}
	return x
}
