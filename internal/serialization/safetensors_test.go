package serialization

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/pinn/internal/tensor"
)

func rawOf(t *testing.T, shape tensor.Shape, values ...float64) *tensor.RawTensor {
	t.Helper()
	r, err := tensor.NewRaw(shape, tensor.CPU)
	require.NoError(t, err)
	copy(r.Data(), values)
	return r
}

func TestSafeTensors_RoundTrip(t *testing.T) {
	tensors := map[string]*tensor.RawTensor{
		"00.kernel": rawOf(t, tensor.Shape{1, 3}, 0.5, -1.25, 3),
		"01.bias":   rawOf(t, tensor.Shape{1, 1}, 1e-9),
	}
	var buf bytes.Buffer
	require.NoError(t, WriteSafeTensors(&buf, tensors, map[string]string{"seed": "42"}))

	got, metadata, err := ReadSafeTensors(&buf)
	require.NoError(t, err)
	assert.Equal(t, "42", metadata["seed"])
	assert.Len(t, metadata["sha256"], 64)
	require.Len(t, got, 2)
	assert.Equal(t, tensor.Shape{1, 3}, got["00.kernel"].Shape())
	assert.Equal(t, []float64{0.5, -1.25, 3}, got["00.kernel"].Data())
	assert.Equal(t, []float64{1e-9}, got["01.bias"].Data())
}

func TestSafeTensors_ChecksumMismatch(t *testing.T) {
	var buf bytes.Buffer
	tensors := map[string]*tensor.RawTensor{"w": rawOf(t, tensor.Shape{1, 2}, 1, 2)}
	require.NoError(t, WriteSafeTensors(&buf, tensors, nil))

	data := buf.Bytes()
	data[len(data)-1] ^= 0xff
	_, _, err := ReadSafeTensors(bytes.NewReader(data))
	assert.True(t, errors.Is(err, ErrChecksumMismatch))
}

func TestSafeTensors_HeaderTooLarge(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint64(MaxHeaderSize+1)))
	_, _, err := ReadSafeTensors(&buf)
	assert.True(t, errors.Is(err, ErrHeaderTooLarge))
}

func TestSafeTensors_Truncated(t *testing.T) {
	var buf bytes.Buffer
	tensors := map[string]*tensor.RawTensor{"w": rawOf(t, tensor.Shape{2, 2}, 1, 2, 3, 4)}
	require.NoError(t, WriteSafeTensors(&buf, tensors, nil))

	data := buf.Bytes()
	_, _, err := ReadSafeTensors(bytes.NewReader(data[:len(data)-8]))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "out_of_bounds", verr.Type)
}

func TestValidateOffsets(t *testing.T) {
	tests := []struct {
		name  string
		metas []tensorMeta
		want  string
	}{
		{"ok", []tensorMeta{{Name: "a", Shape: []int64{1, 2}, Offset: 0, Size: 16}, {Name: "b", Shape: []int64{1, 1}, Offset: 16, Size: 8}}, ""},
		{"overlap", []tensorMeta{{Name: "a", Shape: []int64{1, 2}, Offset: 0, Size: 16}, {Name: "b", Shape: []int64{1, 1}, Offset: 8, Size: 8}}, "offset_overlap"},
		{"negative", []tensorMeta{{Name: "a", Shape: []int64{1, 1}, Offset: -8, Size: 8}}, "negative_offset"},
		{"shape", []tensorMeta{{Name: "a", Shape: []int64{3}, Offset: 0, Size: 24}}, "invalid_shape"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateOffsets(tt.metas, 24)
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.want, verr.Type)
			assert.Contains(t, verr.Error(), tt.want)
		})
	}
}
