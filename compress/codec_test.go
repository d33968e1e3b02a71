package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/trajo/format"
)

// deltaLikePayload mimics a delta-encoded trajectory payload: long runs of
// small varint bytes with occasional larger gaps.
func deltaLikePayload(n int) []byte {
	var buf bytes.Buffer
	for i := 0; i < n; i++ {
		switch {
		case i%100 == 0:
			buf.Write([]byte{0xAC, 0x82, 0x41}) // occasional large delta
		default:
			buf.Write([]byte{0x02, 0x14, 0x0A, 0x00}) // small per-field deltas
		}
	}

	return buf.Bytes()
}

func TestGetCodec_AllTypes(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)

		require.NoError(t, err, "codec for %s", ct)
		require.NotNil(t, codec)
	}
}

func TestGetCodec_Unknown(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0x7F))

	require.Error(t, err)
}

func TestCodec_RoundTrip(t *testing.T) {
	payload := deltaLikePayload(500)

	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(payload)
		require.NoError(t, err, "%s compress", ct)

		restored, err := codec.Decompress(compressed)
		require.NoError(t, err, "%s decompress", ct)
		assert.Equal(t, payload, restored, "%s round trip", ct)
	}
}

func TestCodec_EmptyInput(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(nil)
		require.NoError(t, err)
		assert.Empty(t, compressed)

		restored, err := codec.Decompress(nil)
		require.NoError(t, err)
		assert.Empty(t, restored)
	}
}

func TestCodec_CompressesRepetitivePayload(t *testing.T) {
	payload := deltaLikePayload(10_000)

	for _, ct := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(payload)
		require.NoError(t, err)
		assert.Less(t, len(compressed), len(payload), "%s should shrink a repetitive delta payload", ct)
	}
}

func TestNoOpCompressor_Passthrough(t *testing.T) {
	codec := NewNoOpCompressor()
	payload := []byte{1, 2, 3}

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	assert.Equal(t, payload, compressed)

	restored, err := codec.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, payload, restored)
}
