// Package compress provides byte-oriented compression codecs built on the
// classic LZ family implemented in the lz package, alongside modern
// general-purpose codecs for comparison.
//
// # Overview
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Classic Codecs
//
// The LZ77, LZ78 and LZW codecs wrap the generic implementations in the lz
// package. Their output is a self-describing container: a small header with
// a magic number, the algorithm identifier and an xxHash64 checksum of the
// original data, followed by a varint-encoded token or code stream.
//
//	codec, _ := compress.NewLZ77Codec(
//	    compress.WithWindowSize(8192),
//	    compress.WithLookaheadSize(128),
//	)
//	compressed, _ := codec.Compress(data)
//	original, _ := codec.Decompress(compressed)
//
// The decompressor rejects payloads with a bad magic number, an unexpected
// algorithm byte, a truncated token stream or a checksum mismatch, using the
// sentinel errors in the errs package.
//
// # Reference Codecs
//
// Zstd, S2 and LZ4 codecs are provided so the classic algorithms can be
// measured against production implementations of the same ideas:
//   - Zstd: best compression ratio, moderate speed
//   - S2: balanced compression and speed
//   - LZ4: fastest decompression, moderate compression
//   - None: passthrough baseline
//
// Use format.CompressionType with CreateCodec to select a codec at runtime:
//
//	codec, _ := compress.CreateCodec(format.CompressionZstd, "payload")
//
// # Measuring
//
// Ratio and CompressionStats report how a codec performed on a payload:
//
//	ratio, rate := compress.Ratio(len(data), len(compressed))
//
// See the compare_demo and ratio_chart_demo examples for side-by-side
// comparisons across all codecs.
//
// # Thread Safety
//
// All codec implementations are stateless or internally pooled and are safe
// for concurrent use.
package compress
