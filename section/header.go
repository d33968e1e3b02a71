package section

import (
	"github.com/arloliu/trajo/errs"
)

// Header represents the fixed-size header section at the start of a track blob.
//
// The on-wire layout is 24 bytes: the packed flag (options word, encoding
// tag, compression tag) in bytes 0-3, the point count in bytes 4-7, the
// uncompressed payload size in bytes 8-11, four reserved zero bytes, and the
// xxhash64 digest of the uncompressed payload in bytes 16-23.
//
// The options word itself is always little-endian; every other integer field
// uses the byte order selected by the endianness flag.
type Header struct {
	// PointCount is the number of points stored in the blob, max 2^32-1.
	PointCount uint32
	// PayloadSize is the size in bytes of the uncompressed record payload.
	PayloadSize uint32
	// PayloadDigest is the xxhash64 digest of the uncompressed record
	// payload, verified on decode.
	PayloadDigest uint64

	// Flag is a packed field for various flags and the magic number.
	Flag Flag
}

// NewHeader creates a new Header with the given flag. The point count,
// payload size and digest are set when the encoder finishes.
func NewHeader(flag Flag) *Header {
	return &Header{
		Flag: flag,
	}
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly 24 bytes)
//
// Returns:
//   - error: errs.ErrInvalidHeaderSize if data is not 24 bytes, or flag
//     validation errors
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// Parse options first to determine endianness (always little-endian for
	// the Options field itself).
	h.Flag.Options = uint16(data[OptionsOffset]) | (uint16(data[OptionsOffset+1]) << 8)
	h.Flag.EncodingType = data[EncodingTypeOffset]
	h.Flag.CompressionType = data[CompressionTypeOffset]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()

	h.PointCount = engine.Uint32(data[PointCountOffset : PointCountOffset+4])
	h.PayloadSize = engine.Uint32(data[PayloadSizeOffset : PayloadSizeOffset+4])
	h.PayloadDigest = engine.Uint64(data[PayloadDigestOffset : PayloadDigestOffset+8])

	return nil
}

// Bytes serializes the Header into a byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	engine := h.Flag.GetEndianEngine()

	b[OptionsOffset] = byte(h.Flag.Options)
	b[OptionsOffset+1] = byte(h.Flag.Options >> 8)
	b[EncodingTypeOffset] = h.Flag.EncodingType
	b[CompressionTypeOffset] = h.Flag.CompressionType
	engine.PutUint32(b[PointCountOffset:PointCountOffset+4], h.PointCount)
	engine.PutUint32(b[PayloadSizeOffset:PayloadSizeOffset+4], h.PayloadSize)
	// Reserved bytes 12-15 stay zero.
	engine.PutUint64(b[PayloadDigestOffset:PayloadDigestOffset+8], h.PayloadDigest)

	return b
}

// ParseHeader parses a Header from a byte slice that starts with a header.
//
// Parameters:
//   - data: Byte slice containing the header (must be at least 24 bytes)
//
// Returns:
//   - Header: Parsed header struct
//   - error: errs.ErrInvalidHeaderSize or flag validation errors
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
