package cpu

import (
	"fmt"

	"github.com/born-ml/pinn/internal/tensor"
)

// Expand broadcasts x to shape, repeating it along every dimension where x has size 1.
func (cpu *CPUBackend) Expand(x *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	in := x.Shape()
	if !in.CanExpand(shape) {
		panic(fmt.Sprintf("expand: cannot broadcast %s to %s", in, shape))
	}

	result := cpu.newResult("expand", shape)
	src, out := x.Data(), result.Data()
	rows, cols := shape.Rows(), shape.Cols()
	for i := 0; i < rows; i++ {
		si := i
		if in.Rows() == 1 {
			si = 0
		}
		for j := 0; j < cols; j++ {
			sj := j
			if in.Cols() == 1 {
				sj = 0
			}
			out[i*cols+j] = src[si*in.Cols()+sj]
		}
	}
	return result
}

// SumTo sums x along every dimension where shape has size 1.
func (cpu *CPUBackend) SumTo(x *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	in := x.Shape()
	if !shape.CanExpand(in) {
		panic(fmt.Sprintf("sumto: cannot reduce %s to %s", in, shape))
	}

	result := cpu.newResult("sumto", shape)
	src, out := x.Data(), result.Data()
	rows, cols := in.Rows(), in.Cols()
	for i := 0; i < rows; i++ {
		di := i
		if shape.Rows() == 1 {
			di = 0
		}
		for j := 0; j < cols; j++ {
			dj := j
			if shape.Cols() == 1 {
				dj = 0
			}
			out[di*shape.Cols()+dj] += src[i*cols+j]
		}
	}
	return result
}
