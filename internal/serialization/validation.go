package serialization

import (
	"fmt"
	"sort"
)

// Validation limits for resource protection.
const (
	MaxHeaderSize  = 16 * 1024 * 1024
	MaxTensorCount = 10_000
)

// tensorMeta locates one tensor in the data section.
type tensorMeta struct {
	Name   string
	Shape  []int64
	Offset int64
	Size   int64
}

// validateOffsets checks for overlapping tensor offsets and out-of-bounds access.
func validateOffsets(tensors []tensorMeta, dataSize int64) error {
	if len(tensors) > MaxTensorCount {
		return &ValidationError{
			Type:    "too_many_tensors",
			Details: fmt.Sprintf("got %d, max %d", len(tensors), MaxTensorCount),
		}
	}

	sorted := make([]tensorMeta, len(tensors))
	copy(sorted, tensors)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	for i, t := range sorted {
		if t.Offset < 0 || t.Size < 0 {
			return &ValidationError{
				Type:    "negative_offset",
				Tensor:  t.Name,
				Details: fmt.Sprintf("offset=%d, size=%d", t.Offset, t.Size),
			}
		}
		if t.Offset+t.Size > dataSize {
			return &ValidationError{
				Type:    "out_of_bounds",
				Tensor:  t.Name,
				Details: fmt.Sprintf("ends at %d, data section has %d bytes", t.Offset+t.Size, dataSize),
			}
		}
		if i > 0 {
			prev := sorted[i-1]
			if prev.Offset+prev.Size > t.Offset {
				return &ValidationError{
					Type:    "offset_overlap",
					Tensor:  prev.Name,
					Tensor2: t.Name,
					Details: fmt.Sprintf("[%d, %d) overlaps [%d, %d)", prev.Offset, prev.Offset+prev.Size, t.Offset, t.Offset+t.Size),
				}
			}
		}
		elements := int64(1)
		for _, d := range t.Shape {
			elements *= d
		}
		if len(t.Shape) != 2 || elements*8 != t.Size {
			return &ValidationError{
				Type:    "invalid_shape",
				Tensor:  t.Name,
				Details: fmt.Sprintf("shape %v does not match %d bytes", t.Shape, t.Size),
			}
		}
	}
	return nil
}
