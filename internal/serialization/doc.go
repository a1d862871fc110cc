// Package serialization saves and loads trained weights in the SafeTensors
// format:
//
//	[8 bytes: header size (uint64 LE)]
//	[header: JSON, tensor name -> {dtype, shape, data_offsets}, plus __metadata__]
//	[tensor data: float64 LE, tensors in name order]
//
// The writer stores a SHA-256 of the data section under the "sha256"
// metadata key; the reader verifies it when present.
//
//	err := serialization.WriteSafeTensors(f, nn.StateDict(model), map[string]string{"seed": "42"})
//	...
//	tensors, metadata, err := serialization.ReadSafeTensors(f)
package serialization
