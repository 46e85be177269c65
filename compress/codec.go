package compress

import (
	"fmt"

	"github.com/arloliu/lzkit/format"
)

// Compressor compresses a byte payload into a self-contained compressed form.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
//
// The interfaces are split so that asymmetric implementations (for example a
// decode-only reader) remain possible; all lzkit codecs implement both.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// The input must have been produced by the matching Compressor. The
	// decompressor validates the data and returns an error if it is corrupted
	// or uses an incompatible format; it never silently produces wrong
	// output.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// Ratio reports how much smaller the compressed form is.
//
// ratio is originalSize/compressedSize (higher is better, 1.0 means no gain)
// and rate is 1 - compressedSize/originalSize (the fraction of space saved).
//
// A zero or negative size on either side yields (0, 0), since no meaningful
// ratio exists.
func Ratio(originalSize, compressedSize int) (ratio, rate float64) {
	if originalSize <= 0 || compressedSize <= 0 {
		return 0, 0
	}

	ratio = float64(originalSize) / float64(compressedSize)
	rate = 1.0 - float64(compressedSize)/float64(originalSize)

	return ratio, rate
}

// CompressionStats records the outcome of one compression operation for
// monitoring and comparison across algorithms.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64
}

// Ratio returns the compression ratio (original size / compressed size).
// Values greater than 1.0 indicate successful compression.
func (s CompressionStats) Ratio() float64 {
	ratio, _ := Ratio(int(s.OriginalSize), int(s.CompressedSize))
	return ratio
}

// SpaceSavings returns the space savings as a percentage (0-100%).
// Higher values indicate better compression.
func (s CompressionStats) SpaceSavings() float64 {
	_, rate := Ratio(int(s.OriginalSize), int(s.CompressedSize))
	return rate * 100.0
}

// CreateCodec is a factory function that creates a Codec for the specified
// compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, LZ4, LZ77, LZ78, or LZW)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: Invalid compression type error
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	case format.CompressionLZ77:
		return NewLZ77Codec()
	case format.CompressionLZ78:
		return NewLZ78Codec(), nil
	case format.CompressionLZW:
		return NewLZWCodec(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

// GetCodec retrieves a shared built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
	format.CompressionLZ77: mustLZ77Codec(),
	format.CompressionLZ78: NewLZ78Codec(),
	format.CompressionLZW:  NewLZWCodec(),
}

func mustLZ77Codec() *LZ77Codec {
	codec, err := NewLZ77Codec()
	if err != nil {
		panic(fmt.Sprintf("default LZ77 codec configuration invalid: %v", err))
	}

	return codec
}
