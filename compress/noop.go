package compress

// NoOpCompressor bypasses data without compression. It is the default codec
// for track blobs, where simplified trajectories are usually small enough
// that codec overhead outweighs the savings.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor that bypasses data.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input data as-is without copying.
//
// The returned slice shares the same underlying memory as the input; callers
// must not modify the input afterwards if they use the returned slice.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input data as-is without copying.
//
// The returned slice shares the same underlying memory as the input; callers
// must not modify the input afterwards if they use the returned slice.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
