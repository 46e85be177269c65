// Package lzkit implements the classic LZ family of dictionary compressors:
// LZ77 sliding-window compression, LZ78 phrase-dictionary compression and
// LZW adaptive code-table compression.
//
// The core algorithms in the lz package are generic over any comparable
// symbol type, so the same implementation compresses byte streams, runes or
// application-level values such as time-series samples. The compress package
// wraps the byte-oriented variants in a checksummed container format and adds
// modern reference codecs (Zstd, S2, LZ4) for comparison.
//
// # Basic Usage
//
// Compressing a byte payload with a chosen algorithm:
//
//	import "github.com/arloliu/lzkit"
//
//	compressed, _ := lzkit.Compress(data, format.CompressionLZW)
//	original, _ := lzkit.Decompress(compressed, format.CompressionLZW)
//
// Working with the token streams directly:
//
//	tokens, _ := lzkit.Tokenize77(data)       // LZ77 (distance, length, next) tokens
//	tokens78 := lzkit.Tokenize78(data)        // LZ78 (index, next) tokens
//	codes, dict := lzkit.TokenizeW(data)      // LZW code sequence and final table
//
// Compressing arbitrary symbol sequences:
//
//	readings := []int64{10, 20, 30, 10, 20, 30, 40}
//	tokens, _ := lz.Compress77(readings, 8, 4)
//	restored, _ := lz.Decompress77(tokens)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the lz and
// compress packages, simplifying the most common use cases. For fine-grained
// control (custom window sizes, generic symbol types, raw token serialization)
// use those packages directly.
package lzkit

import (
	"github.com/arloliu/lzkit/compress"
	"github.com/arloliu/lzkit/format"
	"github.com/arloliu/lzkit/internal/hash"
	"github.com/arloliu/lzkit/lz"
)

// Compress compresses data with the given compression type using the shared
// built-in codec for that type.
//
// Parameters:
//   - data: Input payload
//   - compressionType: One of format.CompressionNone, Zstd, S2, LZ4, LZ77, LZ78, LZW
//
// Returns:
//   - []byte: Compressed payload (nil for empty input)
//   - error: Unsupported compression type or compression failure
func Compress(data []byte, compressionType format.CompressionType) ([]byte, error) {
	codec, err := compress.GetCodec(compressionType)
	if err != nil {
		return nil, err
	}

	return codec.Compress(data)
}

// Decompress reverses Compress for the given compression type.
//
// Parameters:
//   - data: Compressed payload produced by Compress with the same type
//   - compressionType: Compression type the payload was produced with
//
// Returns:
//   - []byte: Original payload (nil for empty input)
//   - error: Unsupported type, corrupted payload, or type mismatch
func Decompress(data []byte, compressionType format.CompressionType) ([]byte, error) {
	codec, err := compress.GetCodec(compressionType)
	if err != nil {
		return nil, err
	}

	return codec.Decompress(data)
}

// Stats compresses data with the given type and reports size statistics
// alongside the compressed payload.
func Stats(data []byte, compressionType format.CompressionType) ([]byte, compress.CompressionStats, error) {
	compressed, err := Compress(data, compressionType)
	if err != nil {
		return nil, compress.CompressionStats{}, err
	}

	stats := compress.CompressionStats{
		Algorithm:      compressionType,
		OriginalSize:   int64(len(data)),
		CompressedSize: int64(len(compressed)),
	}

	return compressed, stats, nil
}

// Tokenize77 runs LZ77 over a byte payload with the default window and
// lookahead sizes, returning the raw token stream.
func Tokenize77(data []byte) ([]lz.Token77[byte], error) {
	return lz.Compress77(data, compress.DefaultWindowSize, compress.DefaultLookaheadSize)
}

// Tokenize78 runs LZ78 over a byte payload, returning the raw token stream.
func Tokenize78(data []byte) []lz.Token78[byte] {
	return lz.Compress78(data)
}

// TokenizeW runs LZW over a byte payload, returning the code sequence and
// the final state of the adaptive code table.
func TokenizeW(data []byte) ([]int, map[int][]byte) {
	return lz.CompressW(data)
}

// CompressString77 compresses s into an LZ77 container payload.
func CompressString77(s string) ([]byte, error) {
	return Compress([]byte(s), format.CompressionLZ77)
}

// DecompressString77 reverses CompressString77.
func DecompressString77(data []byte) (string, error) {
	decoded, err := Decompress(data, format.CompressionLZ77)
	if err != nil {
		return "", err
	}

	return string(decoded), nil
}

// CompressString78 compresses s into an LZ78 container payload.
func CompressString78(s string) ([]byte, error) {
	return Compress([]byte(s), format.CompressionLZ78)
}

// DecompressString78 reverses CompressString78.
func DecompressString78(data []byte) (string, error) {
	decoded, err := Decompress(data, format.CompressionLZ78)
	if err != nil {
		return "", err
	}

	return string(decoded), nil
}

// CompressStringW compresses s into an LZW container payload.
func CompressStringW(s string) ([]byte, error) {
	return Compress([]byte(s), format.CompressionLZW)
}

// DecompressStringW reverses CompressStringW.
func DecompressStringW(data []byte) (string, error) {
	decoded, err := Decompress(data, format.CompressionLZW)
	if err != nil {
		return "", err
	}

	return string(decoded), nil
}

// Checksum returns the xxHash64 checksum lzkit records in its container
// headers, exposed so callers can verify payload integrity independently.
func Checksum(data []byte) uint64 {
	return hash.Checksum(data)
}
