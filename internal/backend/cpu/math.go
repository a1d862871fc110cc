package cpu

import (
	"math"

	"github.com/born-ml/pinn/internal/tensor"
)

// Tanh applies the hyperbolic tangent element-wise.
func (cpu *CPUBackend) Tanh(x *tensor.RawTensor) *tensor.RawTensor {
	result := cpu.newResult("tanh", x.Shape())
	out, in := result.Data(), x.Data()
	for i, v := range in {
		out[i] = math.Tanh(v)
	}
	return result
}

// Exp applies the exponential element-wise. Overflow yields +Inf.
func (cpu *CPUBackend) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	result := cpu.newResult("exp", x.Shape())
	out, in := result.Data(), x.Data()
	for i, v := range in {
		out[i] = math.Exp(v)
	}
	return result
}
