package encoding

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/lzkit/errs"
	"github.com/arloliu/lzkit/lz"
)

// Marker bytes for the optional trailing literal of LZ77/LZ78 tokens.
const (
	markerAbsent  = 0x0
	markerPresent = 0x1
)

// AppendTokens77 appends the serialized form of an LZ77 token stream to dst
// and returns the extended slice.
func AppendTokens77(dst []byte, tokens []lz.Token77[byte]) []byte {
	for _, tok := range tokens {
		dst = binary.AppendUvarint(dst, uint64(tok.Distance))
		dst = binary.AppendUvarint(dst, uint64(tok.Length))
		if tok.HasNext {
			dst = append(dst, markerPresent, tok.Next)
		} else {
			dst = append(dst, markerAbsent)
		}
	}

	return dst
}

// DecodeTokens77 parses a payload produced by AppendTokens77.
//
// Returns errs.ErrTruncatedStream if the payload ends mid-token.
func DecodeTokens77(data []byte) ([]lz.Token77[byte], error) {
	tokens := make([]lz.Token77[byte], 0, len(data)/3)
	for pos := 0; pos < len(data); {
		distance, n := binary.Uvarint(data[pos:])
		if n <= 0 {
			return nil, fmt.Errorf("%w: token distance at offset %d", errs.ErrTruncatedStream, pos)
		}
		pos += n

		length, n := binary.Uvarint(data[pos:])
		if n <= 0 {
			return nil, fmt.Errorf("%w: token length at offset %d", errs.ErrTruncatedStream, pos)
		}
		pos += n

		tok := lz.Token77[byte]{Distance: int(distance), Length: int(length)}
		marker, pos2, err := decodeMarker(data, pos)
		if err != nil {
			return nil, err
		}
		pos = pos2
		if marker {
			if pos >= len(data) {
				return nil, fmt.Errorf("%w: literal at offset %d", errs.ErrTruncatedStream, pos)
			}
			tok.Next = data[pos]
			tok.HasNext = true
			pos++
		}

		tokens = append(tokens, tok)
	}

	return tokens, nil
}

func decodeMarker(data []byte, pos int) (present bool, next int, err error) {
	if pos >= len(data) {
		return false, pos, fmt.Errorf("%w: literal marker at offset %d", errs.ErrTruncatedStream, pos)
	}

	switch data[pos] {
	case markerPresent:
		return true, pos + 1, nil
	case markerAbsent:
		return false, pos + 1, nil
	default:
		return false, pos, fmt.Errorf("%w: 0x%02x at offset %d", errs.ErrInvalidMarker, data[pos], pos)
	}
}
