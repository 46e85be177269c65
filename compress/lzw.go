package compress

import (
	"github.com/arloliu/lzkit/encoding"
	"github.com/arloliu/lzkit/format"
	"github.com/arloliu/lzkit/internal/pool"
	"github.com/arloliu/lzkit/lz"
)

// LZWCodec wraps the lz package's adaptive code-table codec in the container
// format. Both sides grow the same table from the byte alphabet, so the
// payload is just the code sequence.
type LZWCodec struct{}

var _ Codec = (*LZWCodec)(nil)

// NewLZWCodec creates an LZW codec. The codec is stateless and safe for
// concurrent use.
func NewLZWCodec() *LZWCodec {
	return &LZWCodec{}
}

// Compress compresses data into an LZW container payload.
func (c *LZWCodec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	codes, _ := lz.CompressW(data)

	buf := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(buf)

	buf.B = appendContainerHeader(buf.B, format.AlgorithmLZW, data)
	buf.B = encoding.AppendCodes(buf.B, codes)

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// Decompress reverses Compress, validating the container header and the
// payload checksum.
func (c *LZWCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	payload, checksum, err := openContainer(data, format.AlgorithmLZW)
	if err != nil {
		return nil, err
	}

	scratch, release := pool.GetIntSlice(len(payload))
	defer release()

	codes, err := encoding.DecodeCodes(scratch[:0], payload)
	if err != nil {
		return nil, err
	}

	decoded, err := lz.DecompressW(codes)
	if err != nil {
		return nil, err
	}
	if err := verifyChecksum(decoded, checksum); err != nil {
		return nil, err
	}

	return decoded, nil
}
