// Package trajo provides tolerance-bounded GPS trajectory simplification and
// a compact binary blob format for the simplified result.
//
// A trajectory is an ordered sequence of timestamped GPS fixes. Trajo reduces
// its point count with the Douglas-Peucker algorithm, bounding the geometric
// deviation of the dropped points, and serializes the survivors into a track
// blob in one of two variants: absolute records, or a baseline record plus
// first-order field deltas. The two variants share a header and record
// layout, so their sizes compare directly.
//
// # Basic Usage
//
// Simplifying and encoding a trajectory:
//
//	import "github.com/arloliu/trajo"
//
//	simplified, err := trajo.Simplify(points, 0.001) // epsilon in degrees
//	if err != nil {
//	    return err
//	}
//
//	deltaBlob, err := trajo.EncodeDelta(simplified)
//	if err != nil {
//	    return err
//	}
//
//	restored, err := trajo.Decode(deltaBlob)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the simplify and
// blob packages, simplifying the most common use cases. For fine-grained
// control (byte order, payload compression, columnar masks), use those
// packages directly:
//
//   - track: the Point/Trajectory data model and fixed-point quantization
//   - simplify: Douglas-Peucker point reduction
//   - blob: track blob encoding and decoding
//   - compress: optional payload compression codecs
//   - geolife: a reader for the Geolife PLT trajectory log format
package trajo

import (
	"github.com/arloliu/trajo/blob"
	"github.com/arloliu/trajo/format"
	"github.com/arloliu/trajo/simplify"
	"github.com/arloliu/trajo/track"
)

// Simplify reduces a trajectory with the Douglas-Peucker algorithm.
// Epsilon is the maximum allowed perpendicular deviation, in degrees, of a
// discarded point from the simplified line. See simplify.Simplify.
func Simplify(points track.Trajectory, epsilon float64) (track.Trajectory, error) {
	return simplify.Simplify(points, epsilon)
}

// EncodeAbsolute serializes a trajectory as a track blob with absolute
// records.
func EncodeAbsolute(points track.Trajectory, opts ...blob.TrackEncoderOption) ([]byte, error) {
	return encode(points, format.TypeAbsolute, opts...)
}

// EncodeDelta serializes a trajectory as a track blob with a baseline record
// plus first-order field deltas. For trajectories with small inter-point
// deltas relative to absolute magnitudes this is the smaller variant.
func EncodeDelta(points track.Trajectory, opts ...blob.TrackEncoderOption) ([]byte, error) {
	return encode(points, format.TypeDelta, opts...)
}

// Decode reconstructs the trajectory stored in a track blob of either
// variant.
func Decode(data []byte) (track.Trajectory, error) {
	return blob.Decode(data)
}

func encode(points track.Trajectory, encoding format.EncodingType, opts ...blob.TrackEncoderOption) ([]byte, error) {
	encoder, err := blob.NewTrackEncoder(encoding, opts...)
	if err != nil {
		return nil, err
	}

	return encoder.Encode(points)
}
