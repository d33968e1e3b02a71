package section

// Packed Options field layout.
const (
	// Bit masks
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1)
	ReservedBitsMask = 0x000D // Mask for reserved bits (bits 0, 2, 3), must be zero

	MagicNumberMask = 0xFFF0 // Mask for magic number (bits 4-15)

	// Magic numbers (bits 4-15)
	MagicTrackV1Opt = 0xEC10 // MagicTrackV1Opt is the version 1 magic number for the track blob format.
)

// Offsets and sizes in the blob.
const (
	HeaderSize = 24 // fixed header size in bytes

	// Header field byte offsets.
	OptionsOffset         = 0  // bytes 0-1: packed options (always little-endian)
	EncodingTypeOffset    = 2  // byte 2: encoding-variant tag
	CompressionTypeOffset = 3  // byte 3: compression tag
	PointCountOffset      = 4  // bytes 4-7: point count
	PayloadSizeOffset     = 8  // bytes 8-11: uncompressed payload size
	ReservedOffset        = 12 // bytes 12-15: reserved, written as zero
	PayloadDigestOffset   = 16 // bytes 16-23: xxhash64 of the uncompressed payload
)
