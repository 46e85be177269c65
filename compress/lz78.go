package compress

import (
	"github.com/arloliu/lzkit/encoding"
	"github.com/arloliu/lzkit/format"
	"github.com/arloliu/lzkit/internal/pool"
	"github.com/arloliu/lzkit/lz"
)

// LZ78Codec wraps the lz package's phrase-dictionary codec in the container
// format. The dictionary is rebuilt from the token stream during
// decompression, so the payload carries no explicit dictionary.
type LZ78Codec struct{}

var _ Codec = (*LZ78Codec)(nil)

// NewLZ78Codec creates an LZ78 codec. The codec is stateless and safe for
// concurrent use.
func NewLZ78Codec() *LZ78Codec {
	return &LZ78Codec{}
}

// Compress compresses data into an LZ78 container payload.
func (c *LZ78Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	tokens := lz.Compress78(data)

	buf := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(buf)

	buf.B = appendContainerHeader(buf.B, format.AlgorithmLZ78, data)
	buf.B = encoding.AppendTokens78(buf.B, tokens)

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// Decompress reverses Compress, validating the container header and the
// payload checksum.
func (c *LZ78Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	payload, checksum, err := openContainer(data, format.AlgorithmLZ78)
	if err != nil {
		return nil, err
	}

	tokens, err := encoding.DecodeTokens78(payload)
	if err != nil {
		return nil, err
	}

	decoded, err := lz.Decompress78(tokens)
	if err != nil {
		return nil, err
	}
	if err := verifyChecksum(decoded, checksum); err != nil {
		return nil, err
	}

	return decoded, nil
}
