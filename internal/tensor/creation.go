package tensor

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros(Shape{3, 4}, backend)
func Zeros[B Backend](shape Shape, b B) *Tensor[B] {
	return New(MustRaw(shape, b.Device()), b)
}

// Full creates a tensor with every element set to v.
func Full[B Backend](shape Shape, v float64, b B) *Tensor[B] {
	raw := MustRaw(shape, b.Device())
	raw.Fill(v)
	return New(raw, b)
}

// Ones creates a tensor filled with ones.
func Ones[B Backend](shape Shape, b B) *Tensor[B] {
	return Full(shape, 1, b)
}

// OnesLike returns a ones-filled RawTensor with r's shape and device.
func OnesLike(r *RawTensor) *RawTensor {
	ones := MustRaw(r.Shape(), r.Device())
	ones.Fill(1)
	return ones
}

// Column creates a [len(values), 1] tensor.
func Column[B Backend](values []float64, b B) *Tensor[B] {
	t, err := FromSlice(values, Shape{len(values), 1}, b)
	if err != nil {
		panic(err)
	}
	return t
}
