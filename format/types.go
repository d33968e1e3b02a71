package format

type (
	EncodingType    uint8
	CompressionType uint8
)

const (
	TypeAbsolute EncodingType = 0x1 // TypeAbsolute stores each record's quantized field values directly.
	TypeDelta    EncodingType = 0x2 // TypeDelta stores a baseline record followed by first-order field deltas.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (e EncodingType) String() string {
	switch e {
	case TypeAbsolute:
		return "Absolute"
	case TypeDelta:
		return "Delta"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
