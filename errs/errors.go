// Package errs defines the sentinel errors shared by the trajo packages.
//
// All errors are plain sentinel values so callers can test for specific
// failure conditions with errors.Is, even when the error has been wrapped
// with additional context by the reporting package.
package errs

import "errors"

// Simplifier errors.
var (
	// ErrNegativeEpsilon is returned when a negative tolerance is passed to
	// the simplifier. Negative tolerances are a caller contract violation and
	// are rejected before any processing begins.
	ErrNegativeEpsilon = errors.New("epsilon must be non-negative")

	// ErrLengthMismatch is returned when parallel coordinate slices passed to
	// the mask-level simplifier API have different lengths.
	ErrLengthMismatch = errors.New("coordinate slices have different lengths")
)

// Encoding errors.
var (
	// ErrFieldOverflow is returned when a point field cannot be represented
	// in the blob's fixed-point encoding (NaN, infinity, or a magnitude that
	// does not fit the scaled int64 range). The whole encode call fails; no
	// truncated buffer is produced.
	ErrFieldOverflow = errors.New("field value not representable in fixed-point encoding")
)

// Decoding errors.
var (
	// ErrInvalidHeaderSize is returned when a blob is shorter than the fixed
	// header.
	ErrInvalidHeaderSize = errors.New("invalid header size")

	// ErrInvalidMagicNumber is returned when the header's magic number does
	// not identify a trajo track blob.
	ErrInvalidMagicNumber = errors.New("invalid magic number")

	// ErrInvalidEncodingType is returned when the header carries an unknown
	// encoding-variant tag.
	ErrInvalidEncodingType = errors.New("invalid encoding type")

	// ErrInvalidCompressionType is returned when the header carries an
	// unknown compression tag.
	ErrInvalidCompressionType = errors.New("invalid compression type")

	// ErrCorruptedPayload is returned when the payload does not match the
	// header: truncated records, trailing bytes, a record count mismatch, or
	// a payload digest mismatch.
	ErrCorruptedPayload = errors.New("corrupted payload")
)
