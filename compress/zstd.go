package compress

// ZstdCompressor provides Zstandard compression as the high-ratio reference
// point when comparing against the classic LZ codecs.
//
// Two implementations back this type, selected by build tag:
//   - cgo builds use the libzstd bindings from valyala/gozstd
//   - pure-Go builds use klauspost/compress/zstd with pooled encoders and decoders
//
// Both produce standard Zstandard frames and are wire compatible.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Returns:
//   - ZstdCompressor: New Zstd compressor instance
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
