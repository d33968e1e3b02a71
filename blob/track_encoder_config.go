package blob

import (
	"github.com/arloliu/trajo/compress"
	"github.com/arloliu/trajo/errs"
	"github.com/arloliu/trajo/format"
	"github.com/arloliu/trajo/internal/options"
	"github.com/arloliu/trajo/section"
)

// TrackEncoderConfig holds the resolved configuration of a TrackEncoder.
type TrackEncoderConfig struct {
	flag  section.Flag
	codec compress.Codec
}

// newTrackEncoderConfig creates a config for the given encoding variant with
// default settings (little-endian, no compression) and applies the options.
func newTrackEncoderConfig(encoding format.EncodingType, opts ...TrackEncoderOption) (*TrackEncoderConfig, error) {
	if encoding != format.TypeAbsolute && encoding != format.TypeDelta {
		return nil, errs.ErrInvalidEncodingType
	}

	cfg := &TrackEncoderConfig{
		flag: section.NewFlag(),
	}
	cfg.flag.SetEncoding(encoding)

	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(cfg.flag.Compression())
	if err != nil {
		return nil, err
	}
	cfg.codec = codec

	return cfg, nil
}

// endianness represents the byte order configuration option.
type endianness uint8

const (
	littleEndianOpt endianness = iota
	bigEndianOpt
)

func (c *TrackEncoderConfig) setEndianness(e endianness) {
	if e == bigEndianOpt {
		c.flag.WithBigEndian()
	} else {
		c.flag.WithLittleEndian()
	}
}

// TrackEncoderOption represents a functional option for configuring the TrackEncoderConfig.
// This is a type alias for the generic Option interface specialized for TrackEncoderConfig.
type TrackEncoderOption = options.Option[*TrackEncoderConfig]

// WithLittleEndian sets the encoder to use little-endian byte order for the
// header's integer fields. It is the default option.
func WithLittleEndian() TrackEncoderOption {
	return options.NoError(func(c *TrackEncoderConfig) {
		c.setEndianness(littleEndianOpt)
	})
}

// WithBigEndian sets the encoder to use big-endian byte order for the
// header's integer fields. It rarely needs to be used unless interoperability
// with big-endian systems is required.
func WithBigEndian() TrackEncoderOption {
	return options.NoError(func(c *TrackEncoderConfig) {
		c.setEndianness(bigEndianOpt)
	})
}

// WithCompression sets the payload compression type for the encoder.
// The default is format.CompressionNone.
func WithCompression(comp format.CompressionType) TrackEncoderOption {
	return options.New(func(c *TrackEncoderConfig) error {
		switch comp {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			c.flag.SetCompression(comp)
			return nil
		default:
			return errs.ErrInvalidCompressionType
		}
	})
}
