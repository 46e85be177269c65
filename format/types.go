package format

type (
	AlgorithmType   uint8
	CompressionType uint8
)

const (
	AlgorithmLZ77 AlgorithmType = 0x1 // AlgorithmLZ77 represents sliding-window triple coding.
	AlgorithmLZ78 AlgorithmType = 0x2 // AlgorithmLZ78 represents incremental phrase dictionary coding.
	AlgorithmLZW  AlgorithmType = 0x3 // AlgorithmLZW represents adaptive single-code dictionary coding.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
	CompressionLZ77 CompressionType = 0x5 // CompressionLZ77 represents the lzkit LZ77 container codec.
	CompressionLZ78 CompressionType = 0x6 // CompressionLZ78 represents the lzkit LZ78 container codec.
	CompressionLZW  CompressionType = 0x7 // CompressionLZW represents the lzkit LZW container codec.
)

func (a AlgorithmType) String() string {
	switch a {
	case AlgorithmLZ77:
		return "LZ77"
	case AlgorithmLZ78:
		return "LZ78"
	case AlgorithmLZW:
		return "LZW"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionLZ77:
		return "LZ77"
	case CompressionLZ78:
		return "LZ78"
	case CompressionLZW:
		return "LZW"
	default:
		return "Unknown"
	}
}
