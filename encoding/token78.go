package encoding

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/lzkit/errs"
	"github.com/arloliu/lzkit/lz"
)

// AppendTokens78 appends the serialized form of an LZ78 token stream to dst
// and returns the extended slice.
func AppendTokens78(dst []byte, tokens []lz.Token78[byte]) []byte {
	for _, tok := range tokens {
		dst = binary.AppendUvarint(dst, uint64(tok.Index))
		if tok.HasNext {
			dst = append(dst, markerPresent, tok.Next)
		} else {
			dst = append(dst, markerAbsent)
		}
	}

	return dst
}

// DecodeTokens78 parses a payload produced by AppendTokens78.
//
// Returns errs.ErrTruncatedStream if the payload ends mid-token.
func DecodeTokens78(data []byte) ([]lz.Token78[byte], error) {
	tokens := make([]lz.Token78[byte], 0, len(data)/3)
	for pos := 0; pos < len(data); {
		index, n := binary.Uvarint(data[pos:])
		if n <= 0 {
			return nil, fmt.Errorf("%w: token index at offset %d", errs.ErrTruncatedStream, pos)
		}
		pos += n

		tok := lz.Token78[byte]{Index: int(index)}
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
