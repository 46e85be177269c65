package encoding

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/lzkit/errs"
)

// AppendCodes appends the serialized form of an LZW code stream to dst and
// returns the extended slice. Each code is an unsigned varint.
func AppendCodes(dst []byte, codes []int) []byte {
	for _, code := range codes {
		dst = binary.AppendUvarint(dst, uint64(code))
	}

	return dst
}

// DecodeCodes parses a payload produced by AppendCodes, appending the codes
// to dst and returning the extended slice.
//
// Returns errs.ErrTruncatedStream if the payload ends mid-varint.
func DecodeCodes(dst []int, data []byte) ([]int, error) {
	codes := dst
	for pos := 0; pos < len(data); {
		code, n := binary.Uvarint(data[pos:])
		if n <= 0 {
			return nil, fmt.Errorf("%w: code at offset %d", errs.ErrTruncatedStream, pos)
		}
		pos += n

		codes = append(codes, int(code))
	}

	return codes, nil
}
