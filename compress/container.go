package compress

import (
	"fmt"

	"github.com/arloliu/lzkit/endian"
	"github.com/arloliu/lzkit/errs"
	"github.com/arloliu/lzkit/format"
	"github.com/arloliu/lzkit/internal/hash"
)

// The lzkit container wraps a serialized token stream with enough metadata
// to validate it on decode:
//
//	offset 0: magic "LZ" (2 bytes)
//	offset 2: algorithm identifier (1 byte, format.AlgorithmType)
//	offset 3: xxHash64 of the original payload (8 bytes, little-endian)
//	offset 11: token stream payload
//
// The checksum covers the original (uncompressed) data, so a decoder detects
// both payload corruption and token streams that decode to the wrong output.
const (
	magicByte0 = 'L'
	magicByte1 = 'Z'

	containerHeaderSize = 11
	checksumOffset      = 3
)

var headerEngine = endian.GetLittleEndianEngine()

// appendContainerHeader appends the container header for the given algorithm
// and original payload to dst and returns the extended slice.
func appendContainerHeader(dst []byte, algo format.AlgorithmType, original []byte) []byte {
	dst = append(dst, magicByte0, magicByte1, byte(algo))
	dst = headerEngine.AppendUint64(dst, hash.Checksum(original))

	return dst
}

// openContainer validates the container header and returns the token storage
// payload along with the recorded checksum of the original data.
func openContainer(data []byte, want format.AlgorithmType) (payload []byte, checksum uint64, err error) {
	if len(data) < containerHeaderSize {
		return nil, 0, fmt.Errorf("%w: %d bytes, header needs %d",
			errs.ErrTruncatedStream, len(data), containerHeaderSize)
	}
	if data[0] != magicByte0 || data[1] != magicByte1 {
		return nil, 0, fmt.Errorf("%w: 0x%02x%02x", errs.ErrInvalidMagicNumber, data[0], data[1])
	}

	algo := format.AlgorithmType(data[2])
	switch algo {
	case format.AlgorithmLZ77, format.AlgorithmLZ78, format.AlgorithmLZW:
	default:
		return nil, 0, fmt.Errorf("%w: 0x%02x", errs.ErrInvalidAlgorithm, data[2])
	}
	if algo != want {
		return nil, 0, fmt.Errorf("%w: container holds %s, codec expects %s",
			errs.ErrInvalidAlgorithm, algo, want)
	}

	checksum = headerEngine.Uint64(data[checksumOffset : checksumOffset+8])

	return data[containerHeaderSize:], checksum, nil
}

// verifyChecksum compares the reconstructed payload against the checksum
// recorded in the container header.
func verifyChecksum(decoded []byte, checksum uint64) error {
	if got := hash.Checksum(decoded); got != checksum {
		return fmt.Errorf("%w: header 0x%016x, payload 0x%016x", errs.ErrChecksumMismatch, checksum, got)
	}

	return nil
}
