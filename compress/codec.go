// Package compress provides the optional payload compression used by track
// blobs.
//
// The record payload of a track blob is varint-encoded and already dense, but
// long trajectories with regular sampling still compress well: delta-encoded
// payloads are dominated by small repeated byte patterns. Compression applies
// to the payload only; the fixed header stays plain so a decoder can read the
// count, sizing and digest before touching a codec.
package compress

import (
	"fmt"

	"github.com/arloliu/trajo/format"
)

// Compressor compresses a complete track blob payload.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller
//   - Input slice is not modified
//   - Internal buffers may be reused for efficiency
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload previously produced by the matching
// Compressor. It validates the compressed framing and returns an error if the
// data is corrupted or uses an incompatible format.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
