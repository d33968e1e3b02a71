package section

import (
	"github.com/arloliu/trajo/endian"
	"github.com/arloliu/trajo/errs"
	"github.com/arloliu/trajo/format"
)

// Flag represents the packed field for various flags in the track blob header.
type Flag struct {
	// Options is a packed field for various options.
	// Bit 0 is reserved for future use, must be set to 0.
	// Bit 1 is endianness flag, 0 means little-endian, 1 means big-endian.
	// Bit 2-3 are reserved for future use, must be set to 0.
	// Bit 4-15 are magic number to identify the blob format:
	//   - 0xEC10 (0b1110_1100_0001_0000): Track blob format v1
	Options uint16

	// EncodingType is an enum indicating the record encoding variant used for
	// this track blob: absolute records, or baseline plus first-order deltas.
	EncodingType uint8
	// CompressionType is an enum indicating the payload compression used for
	// this track blob.
	CompressionType uint8
}

var (
	validEncodings = map[uint8]struct{}{
		uint8(format.TypeAbsolute): {},
		uint8(format.TypeDelta):    {},
	}

	validCompressions = map[uint8]struct{}{
		uint8(format.CompressionNone): {},
		uint8(format.CompressionZstd): {},
		uint8(format.CompressionS2):   {},
		uint8(format.CompressionLZ4):  {},
	}
)

// NewFlag creates a new Flag with default settings: little-endian,
// absolute encoding, no compression.
func NewFlag() Flag {
	flag := Flag{
		Options:         MagicTrackV1Opt,
		EncodingType:    uint8(format.TypeAbsolute),
		CompressionType: uint8(format.CompressionNone),
	}
	flag.WithLittleEndian()

	return flag
}

// IsLittleEndian returns whether the header integer fields are little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the header integer fields are big-endian.
func (f Flag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// Encoding returns the record encoding variant.
func (f Flag) Encoding() format.EncodingType {
	return format.EncodingType(f.EncodingType)
}

// SetEncoding sets the record encoding variant.
func (f *Flag) SetEncoding(enc format.EncodingType) {
	f.EncodingType = uint8(enc)
}

// Compression returns the payload compression type.
func (f Flag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression sets the payload compression type.
func (f *Flag) SetCompression(comp format.CompressionType) {
	f.CompressionType = uint8(comp)
}

// GetEndianEngine returns the endian engine matching the endianness flag.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	if f.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// Validate checks the magic number and the encoding and compression tags.
//
// Returns:
//   - errs.ErrInvalidMagicNumber if the magic number does not identify a
//     track blob
//   - errs.ErrInvalidEncodingType if the encoding tag is unknown
//   - errs.ErrInvalidCompressionType if the compression tag is unknown
func (f Flag) Validate() error {
	if f.GetMagicNumber() != MagicTrackV1Opt {
		return errs.ErrInvalidMagicNumber
	}

	if _, ok := validEncodings[f.EncodingType]; !ok {
		return errs.ErrInvalidEncodingType
	}

	if _, ok := validCompressions[f.CompressionType]; !ok {
		return errs.ErrInvalidCompressionType
	}

	return nil
}
