package nn

import (
	"fmt"
	"math/rand/v2"

	"github.com/born-ml/pinn/internal/tensor"
)

// Linear implements a fully connected (dense) layer.
//
// Performs the transformation: y = x @ W + b
// where:
//   - x is the input tensor with shape [batch_size, in_features]
//   - W is the kernel with shape [in_features, out_features]
//   - b is the bias with shape [1, out_features], broadcast over the batch
//   - y is the output tensor with shape [batch_size, out_features]
//
// Kernels are initialized Glorot-uniform and biases to zero.
type Linear[B tensor.Backend] struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter[B]
	bias        *Parameter[B]
}

// NewLinear creates a new Linear layer with weights drawn from src.
func NewLinear[B tensor.Backend](inFeatures, outFeatures int, src rand.Source, backend B) *Linear[B] {
	weight := GlorotUniform(inFeatures, outFeatures, tensor.Shape{inFeatures, outFeatures}, src, backend)
	bias := Zeros(tensor.Shape{1, outFeatures}, backend)

	return &Linear[B]{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      NewParameter("kernel", weight),
		bias:        NewParameter("bias", bias),
	}
}

// Forward computes the output of the linear layer.
//
// Input shape: [batch_size, in_features]
// Output shape: [batch_size, out_features]
func (l *Linear[B]) Forward(input *tensor.Tensor[B]) *tensor.Tensor[B] {
	inputShape := input.Shape()
	if inputShape.Cols() != l.inFeatures {
		panic(fmt.Sprintf("Linear.Forward: expected input with %d features, got shape %s", l.inFeatures, inputShape))
	}

	output := input.MatMul(l.weight.Tensor())
	return output.Add(l.bias.Tensor().Expand(output.Shape()))
}

// Parameters returns [kernel, bias].
func (l *Linear[B]) Parameters() []*Parameter[B] {
	return []*Parameter[B]{l.weight, l.bias}
}

// Weight returns the kernel parameter.
func (l *Linear[B]) Weight() *Parameter[B] {
	return l.weight
}

// Bias returns the bias parameter.
func (l *Linear[B]) Bias() *Parameter[B] {
	return l.bias
}

// InFeatures returns the number of input features.
func (l *Linear[B]) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of output features.
func (l *Linear[B]) OutFeatures() int {
	return l.outFeatures
}
