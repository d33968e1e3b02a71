package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/trajo/errs"
	"github.com/arloliu/trajo/format"
)

func TestNewFlag_Defaults(t *testing.T) {
	flag := NewFlag()

	assert.Equal(t, uint16(MagicTrackV1Opt), flag.GetMagicNumber())
	assert.True(t, flag.IsLittleEndian())
	assert.False(t, flag.IsBigEndian())
	assert.Equal(t, format.TypeAbsolute, flag.Encoding())
	assert.Equal(t, format.CompressionNone, flag.Compression())
	require.NoError(t, flag.Validate())
}

func TestFlag_Endianness(t *testing.T) {
	flag := NewFlag()

	flag.WithBigEndian()
	assert.True(t, flag.IsBigEndian())
	assert.Equal(t, uint16(MagicTrackV1Opt), flag.GetMagicNumber(), "endianness bit must not disturb the magic number")

	flag.WithLittleEndian()
	assert.True(t, flag.IsLittleEndian())
}

func TestFlag_Validate(t *testing.T) {
	flag := NewFlag()
	flag.Options = 0x1234 // wrong magic
	require.ErrorIs(t, flag.Validate(), errs.ErrInvalidMagicNumber)

	flag = NewFlag()
	flag.EncodingType = 0x9
	require.ErrorIs(t, flag.Validate(), errs.ErrInvalidEncodingType)

	flag = NewFlag()
	flag.CompressionType = 0x9
	require.ErrorIs(t, flag.Validate(), errs.ErrInvalidCompressionType)
}

func TestHeader_RoundTrip(t *testing.T) {
	flag := NewFlag()
	flag.SetEncoding(format.TypeDelta)
	flag.SetCompression(format.CompressionS2)

	h := NewHeader(flag)
	h.PointCount = 1234
	h.PayloadSize = 56789
	h.PayloadDigest = 0xDEADBEEFCAFEF00D

	data := h.Bytes()
	require.Len(t, data, HeaderSize)

	parsed, err := ParseHeader(data)
	require.NoError(t, err)

	assert.Equal(t, h.PointCount, parsed.PointCount)
	assert.Equal(t, h.PayloadSize, parsed.PayloadSize)
	assert.Equal(t, h.PayloadDigest, parsed.PayloadDigest)
	assert.Equal(t, format.TypeDelta, parsed.Flag.Encoding())
	assert.Equal(t, format.CompressionS2, parsed.Flag.Compression())
}

func TestHeader_RoundTrip_BigEndian(t *testing.T) {
	flag := NewFlag()
	flag.WithBigEndian()

	h := NewHeader(flag)
	h.PointCount = 42
	h.PayloadSize = 7
	h.PayloadDigest = 99

	parsed, err := ParseHeader(h.Bytes())
	require.NoError(t, err)

	assert.True(t, parsed.Flag.IsBigEndian())
	assert.Equal(t, uint32(42), parsed.PointCount)
	assert.Equal(t, uint32(7), parsed.PayloadSize)
	assert.Equal(t, uint64(99), parsed.PayloadDigest)
}

func TestParseHeader_TooShort(t *testing.T) {
	_, err := ParseHeader(make([]byte, HeaderSize-1))

	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
}

func TestParseHeader_BadMagic(t *testing.T) {
	data := make([]byte, HeaderSize)
	data[0] = 0xFF
	data[1] = 0xFF

	_, err := ParseHeader(data)

	require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)
}
