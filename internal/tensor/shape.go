package tensor

import "fmt"

// Shape represents the dimensions of a tensor.
//
// Every tensor in this module is a matrix: a batch of samples is [batch, features]
// and a scalar reduction is [1, 1].
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that the shape is a matrix with positive dimensions.
func (s Shape) Validate() error {
	if len(s) != 2 {
		return fmt.Errorf("invalid rank %d: only [rows, cols] shapes are supported", len(s))
	}
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Rows returns the leading dimension.
func (s Shape) Rows() int { return s[0] }

// Cols returns the trailing dimension.
func (s Shape) Cols() int { return s[1] }

// String formats the shape as [r, c].
func (s Shape) String() string {
	if len(s) == 2 {
		return fmt.Sprintf("[%d, %d]", s[0], s[1])
	}
	return fmt.Sprint([]int(s))
}

// CanExpand reports whether a tensor of shape s broadcasts to target.
//
// A dimension broadcasts when it equals the target dimension or is 1.
func (s Shape) CanExpand(target Shape) bool {
	if len(s) != len(target) {
		return false
	}
	for i := range s {
		if s[i] != target[i] && s[i] != 1 {
			return false
		}
	}
	return true
}
