package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/born-ml/pinn/internal/tensor"
)

// MatMul performs matrix multiplication: (M, K) @ (K, N) -> (M, N).
func (cpu *CPUBackend) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	m, k := a.Shape().Rows(), a.Shape().Cols()
	kAlt, n := b.Shape().Rows(), b.Shape().Cols()
	if k != kAlt {
		panic(fmt.Sprintf("matmul: shape mismatch %s @ %s", a.Shape(), b.Shape()))
	}

	result := cpu.newResult("matmul", tensor.Shape{m, n})
	blas64.Gemm(blas.NoTrans, blas.NoTrans, 1,
		general(a), general(b),
		0, general(result))
	return result
}

// Transpose swaps rows and columns.
func (cpu *CPUBackend) Transpose(x *tensor.RawTensor) *tensor.RawTensor {
	rows, cols := x.Shape().Rows(), x.Shape().Cols()
	result := cpu.newResult("transpose", tensor.Shape{cols, rows})
	in, out := x.Data(), result.Data()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out[j*rows+i] = in[i*cols+j]
		}
	}
	return result
}

// general views a row-major RawTensor as a BLAS general matrix without copying.
func general(r *tensor.RawTensor) blas64.General {
	shape := r.Shape()
	return blas64.General{
		Rows:   shape.Rows(),
		Cols:   shape.Cols(),
		Stride: shape.Cols(),
		Data:   r.Data(),
	}
}
