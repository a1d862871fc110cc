package serialization

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"io"
	"sort"

	"github.com/pkg/errors"

	"github.com/born-ml/pinn/internal/tensor"
)

const (
	metadataKey = "__metadata__"
	checksumKey = "sha256"
	dtypeF64    = "F64"
)

// SafeTensorHeader represents a tensor in the SafeTensors header.
type SafeTensorHeader struct {
	DType       string   `json:"dtype"`
	Shape       []int64  `json:"shape"`
	DataOffsets [2]int64 `json:"data_offsets"`
}

// WriteSafeTensors writes tensors, in name order, and metadata to w.
func WriteSafeTensors(w io.Writer, tensors map[string]*tensor.RawTensor, metadata map[string]string) error {
	names := make([]string, 0, len(tensors))
	for name := range tensors {
		names = append(names, name)
	}
	sort.Strings(names)

	var data bytes.Buffer
	header := make(map[string]any, len(names)+1)
	for _, name := range names {
		raw := tensors[name]
		start := int64(data.Len())
		if err := binary.Write(&data, binary.LittleEndian, raw.Data()); err != nil {
			return errors.Wrapf(err, "encoding tensor %s", name)
		}
		shape := raw.Shape()
		header[name] = SafeTensorHeader{
			DType:       dtypeF64,
			Shape:       []int64{int64(shape.Rows()), int64(shape.Cols())},
			DataOffsets: [2]int64{start, int64(data.Len())},
		}
	}

	meta := make(map[string]string, len(metadata)+1)
	for k, v := range metadata {
		meta[k] = v
	}
	sum := sha256.Sum256(data.Bytes())
	meta[checksumKey] = hex.EncodeToString(sum[:])
	header[metadataKey] = meta

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return errors.Wrap(err, "failed to marshal header")
	}
	if err := binary.Write(w, binary.LittleEndian, uint64(len(headerJSON))); err != nil {
		return errors.Wrap(err, "failed to write header size")
	}
	if _, err := w.Write(headerJSON); err != nil {
		return errors.Wrap(err, "failed to write header")
	}
	if _, err := w.Write(data.Bytes()); err != nil {
		return errors.Wrap(err, "failed to write tensor data")
	}
	return nil
}

// ReadSafeTensors reads every tensor and the metadata written by WriteSafeTensors.
func ReadSafeTensors(r io.Reader) (map[string]*tensor.RawTensor, map[string]string, error) {
	var headerSize uint64
	if err := binary.Read(r, binary.LittleEndian, &headerSize); err != nil {
		return nil, nil, errors.Wrap(err, "failed to read header size")
	}
	if headerSize > MaxHeaderSize {
		return nil, nil, errors.Wrapf(ErrHeaderTooLarge, "%d bytes", headerSize)
	}

	headerJSON := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerJSON); err != nil {
		return nil, nil, errors.Wrap(err, "failed to read header")
	}
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(headerJSON, &entries); err != nil {
		return nil, nil, errors.Wrap(err, "failed to parse header")
	}

	var metadata map[string]string
	metas := make([]tensorMeta, 0, len(entries))
	for name, entry := range entries {
		if name == metadataKey {
			if err := json.Unmarshal(entry, &metadata); err != nil {
				return nil, nil, errors.Wrap(err, "failed to parse metadata")
			}
			continue
		}
		var h SafeTensorHeader
		if err := json.Unmarshal(entry, &h); err != nil {
			return nil, nil, errors.Wrapf(err, "failed to parse tensor %s", name)
		}
		if h.DType != dtypeF64 {
			return nil, nil, errors.Wrapf(ErrUnsupportedDType, "tensor %s has dtype %s", name, h.DType)
		}
		metas = append(metas, tensorMeta{
			Name:   name,
			Shape:  h.Shape,
			Offset: h.DataOffsets[0],
			Size:   h.DataOffsets[1] - h.DataOffsets[0],
		})
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read tensor data")
	}
	if err := validateOffsets(metas, int64(len(data))); err != nil {
		return nil, nil, err
	}
	if want, ok := metadata[checksumKey]; ok {
		sum := sha256.Sum256(data)
		if hex.EncodeToString(sum[:]) != want {
			return nil, nil, ErrChecksumMismatch
		}
	}

	tensors := make(map[string]*tensor.RawTensor, len(metas))
	for _, m := range metas {
		raw, err := tensor.NewRaw(tensor.Shape{int(m.Shape[0]), int(m.Shape[1])}, tensor.CPU)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "tensor %s", m.Name)
		}
		chunk := bytes.NewReader(data[m.Offset : m.Offset+m.Size])
		if err := binary.Read(chunk, binary.LittleEndian, raw.Data()); err != nil {
			return nil, nil, errors.Wrapf(err, "decoding tensor %s", m.Name)
		}
		tensors[m.Name] = raw
	}
	return tensors, metadata, nil
}
