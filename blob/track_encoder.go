// Package blob implements the compact binary container for GPS trajectories.
//
// A track blob is a fixed 24-byte header (see the section package) followed
// by one varint record per point. Two record variants exist:
//
//   - Absolute: every record carries the point's quantized field values.
//   - Delta: the first record is an absolute baseline; every subsequent
//     record carries each field as the signed difference from the previous
//     record's field (a first-order delta chain, reconstructed by cumulative
//     summation).
//
// Both variants share the same record writer, so their baseline layout is
// identical by construction: per point, four zigzag+uvarint fields in order —
// timestamp (Unix seconds), latitude (microdegrees), longitude
// (microdegrees), altitude (hundredths). Zigzag maps signed values to
// unsigned so small magnitudes of either sign encode in one or two bytes,
// which is what makes the delta variant compact for real trajectories.
//
// Encoding is deterministic: the same trajectory always produces the same
// bytes. The payload may optionally be compressed (see the compress package);
// the header records the codec along with the uncompressed size and an
// xxhash64 digest so decoding can verify integrity.
package blob

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/trajo/format"
	"github.com/arloliu/trajo/internal/pool"
	"github.com/arloliu/trajo/section"
	"github.com/arloliu/trajo/track"
)

// fieldsPerRecord is the number of varint fields each point serializes to.
const fieldsPerRecord = 4

// TrackEncoder serializes trajectories into track blobs.
//
// The encoder holds no state across calls: each Encode call borrows a pooled
// buffer, produces an owned byte slice and releases the buffer. A single
// encoder may be used for any number of trajectories, and distinct calls are
// safe to run concurrently.
type TrackEncoder struct {
	cfg *TrackEncoderConfig
}

// NewTrackEncoder creates an encoder for the given encoding variant.
//
// Parameters:
//   - encoding: format.TypeAbsolute or format.TypeDelta
//   - opts: optional configuration (byte order, payload compression)
//
// Returns:
//   - *TrackEncoder: A new encoder instance
//   - error: errs.ErrInvalidEncodingType for an unknown variant, or option
//     validation errors
func NewTrackEncoder(encoding format.EncodingType, opts ...TrackEncoderOption) (*TrackEncoder, error) {
	cfg, err := newTrackEncoderConfig(encoding, opts...)
	if err != nil {
		return nil, err
	}

	return &TrackEncoder{cfg: cfg}, nil
}

// Encode serializes the trajectory into a new track blob.
//
// A zero-length trajectory is legal and encodes to a header-only blob with a
// zero count. The input is never mutated and the returned slice is owned by
// the caller.
//
// Returns:
//   - []byte: The encoded blob
//   - error: errs.ErrFieldOverflow if any field cannot be quantized; no
//     partial buffer is produced in that case
func (e *TrackEncoder) Encode(points track.Trajectory) ([]byte, error) {
	if len(points) > math.MaxUint32 {
		return nil, fmt.Errorf("trajectory of %d points exceeds the blob point-count limit", len(points))
	}

	buf := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(buf)

	// Conservative estimate: ~4 bytes per field for absolute records, much
	// less for deltas. One up-front Grow avoids repeated reallocation.
	buf.Grow(len(points) * fieldsPerRecord * 4)

	var temp [binary.MaxVarintLen64]byte
	var prev [fieldsPerRecord]int64

	delta := e.cfg.flag.Encoding() == format.TypeDelta

	for i := range points {
		fields, err := quantizePoint(&points[i])
		if err != nil {
			return nil, err
		}

		for f, v := range fields {
			if delta && i > 0 {
				v -= prev[f]
			}
			writeZigzagVarint(buf, &temp, v)
		}

		prev = fields
	}

	payload := buf.Bytes()
	if len(payload) > math.MaxUint32 {
		return nil, fmt.Errorf("payload of %d bytes exceeds the blob size limit", len(payload))
	}

	header := section.NewHeader(e.cfg.flag)
	header.PointCount = uint32(len(points))
	header.PayloadSize = uint32(len(payload))
	header.PayloadDigest = xxhash.Sum64(payload)

	compressed, err := e.cfg.codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("compress payload: %w", err)
	}

	out := make([]byte, 0, section.HeaderSize+len(compressed))
	out = append(out, header.Bytes()...)
	out = append(out, compressed...)

	return out, nil
}

// Encoding returns the encoding variant this encoder produces.
func (e *TrackEncoder) Encoding() format.EncodingType {
	return e.cfg.flag.Encoding()
}

// quantizePoint converts a point into its four fixed-point fields, in record
// order: timestamp, latitude, longitude, altitude.
func quantizePoint(p *track.Point) ([fieldsPerRecord]int64, error) {
	var fields [fieldsPerRecord]int64

	lat, err := track.QuantizeCoord(p.Lat)
	if err != nil {
		return fields, fmt.Errorf("latitude %v: %w", p.Lat, err)
	}

	lon, err := track.QuantizeCoord(p.Lon)
	if err != nil {
		return fields, fmt.Errorf("longitude %v: %w", p.Lon, err)
	}

	alt, err := track.QuantizeAlt(p.Alt)
	if err != nil {
		return fields, fmt.Errorf("altitude %v: %w", p.Alt, err)
	}

	fields[0] = p.Timestamp
	fields[1] = lat
	fields[2] = lon
	fields[3] = alt

	return fields, nil
}

// writeZigzagVarint appends v to buf as a zigzag-mapped unsigned varint.
func writeZigzagVarint(buf *pool.ByteBuffer, temp *[binary.MaxVarintLen64]byte, v int64) {
	zigzag := (v << 1) ^ (v >> 63)
	n := binary.PutUvarint(temp[:], uint64(zigzag)) //nolint:gosec
	buf.MustWrite(temp[:n])
}
