package compress

// ZstdCompressor compresses payloads with Zstandard, favoring compression
// ratio over speed. A good fit for cold storage and archival of trajectory
// blobs, or transmission over constrained links.
//
// Two implementations exist behind build tags: the cgo build uses
// valyala/gozstd (libzstd bindings), and the pure-Go build falls back to
// klauspost/compress/zstd. The two produce interchangeable streams.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
