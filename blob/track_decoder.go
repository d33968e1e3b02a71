package blob

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/trajo/compress"
	"github.com/arloliu/trajo/errs"
	"github.com/arloliu/trajo/format"
	"github.com/arloliu/trajo/section"
	"github.com/arloliu/trajo/track"
)

// Decode parses a track blob and reconstructs the trajectory it carries.
//
// Decoding verifies the blob end to end before returning: the header magic
// and tags, the uncompressed payload size, the xxhash64 payload digest, and
// that the records consume the payload exactly. Delta blobs are reconstructed
// by cumulative summation from the baseline record.
//
// Parameters:
//   - data: A complete blob as produced by TrackEncoder.Encode
//
// Returns:
//   - track.Trajectory: The decoded points (empty for a zero-count blob)
//   - error: errs.ErrInvalidHeaderSize, errs.ErrInvalidMagicNumber,
//     errs.ErrInvalidEncodingType, errs.ErrInvalidCompressionType, or
//     errs.ErrCorruptedPayload
func Decode(data []byte) (track.Trajectory, error) {
	header, err := section.ParseHeader(data)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(header.Flag.Compression())
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(data[section.HeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("%w: payload decompression failed: %v", errs.ErrCorruptedPayload, err)
	}

	if len(payload) != int(header.PayloadSize) {
		return nil, fmt.Errorf("%w: payload size %d does not match header %d",
			errs.ErrCorruptedPayload, len(payload), header.PayloadSize)
	}

	if xxhash.Sum64(payload) != header.PayloadDigest {
		return nil, fmt.Errorf("%w: payload digest mismatch", errs.ErrCorruptedPayload)
	}

	count := int(header.PointCount)

	// Every record carries fieldsPerRecord varints of at least one byte, so
	// the payload bounds the count a valid header can claim. Rejecting an
	// inflated count here keeps a hostile 24-byte blob from forcing a huge
	// preallocation below.
	if count > len(payload)/fieldsPerRecord {
		return nil, fmt.Errorf("%w: point count %d exceeds payload capacity %d",
			errs.ErrCorruptedPayload, count, len(payload)/fieldsPerRecord)
	}

	points := make(track.Trajectory, 0, count)

	delta := header.Flag.Encoding() == format.TypeDelta
	offset := 0

	var prev [fieldsPerRecord]int64

	for i := 0; i < count; i++ {
		var fields [fieldsPerRecord]int64
		for f := range fields {
			v, n := readZigzagVarint(payload[offset:])
			if n <= 0 {
				return nil, fmt.Errorf("%w: truncated record %d", errs.ErrCorruptedPayload, i)
			}
			offset += n

			if delta && i > 0 {
				v += prev[f]
			}
			fields[f] = v
		}

		prev = fields

		points = append(points, track.Point{
			Timestamp: fields[0],
			Lat:       track.CoordFromFixed(fields[1]),
			Lon:       track.CoordFromFixed(fields[2]),
			Alt:       track.AltFromFixed(fields[3]),
		})
	}

	if offset != len(payload) {
		return nil, fmt.Errorf("%w: %d trailing payload bytes after %d records",
			errs.ErrCorruptedPayload, len(payload)-offset, count)
	}

	return points, nil
}

// readZigzagVarint decodes one zigzag-mapped unsigned varint from data.
// It returns the signed value and the number of bytes consumed; n <= 0
// signals a truncated or malformed varint, mirroring binary.Uvarint.
func readZigzagVarint(data []byte) (int64, int) {
	zigzag, n := binary.Uvarint(data)
	if n <= 0 {
		return 0, n
	}

	return int64(zigzag>>1) ^ -int64(zigzag&1), n //nolint:gosec
}
