package compress

import (
	"fmt"

	"github.com/arloliu/lzkit/encoding"
	"github.com/arloliu/lzkit/errs"
	"github.com/arloliu/lzkit/format"
	"github.com/arloliu/lzkit/internal/options"
	"github.com/arloliu/lzkit/internal/pool"
	"github.com/arloliu/lzkit/lz"
)

// Default LZ77 search bounds. The window bounds how far back references may
// reach; the lookahead bounds individual match length.
const (
	DefaultWindowSize    = 4096
	DefaultLookaheadSize = 64
)

// LZ77Codec wraps the lz package's sliding-window codec in the container
// format, producing a self-describing byte payload with an integrity
// checksum.
//
// Note: the search is a straightforward window scan, so compression cost
// grows with the configured window size. This codec exists for studying and
// comparing the classic algorithms; use the S2/LZ4/Zstd codecs for
// production workloads.
type LZ77Codec struct {
	windowSize    int
	lookaheadSize int
}

var _ Codec = (*LZ77Codec)(nil)

// LZ77Option configures an LZ77Codec.
type LZ77Option = options.Option[*LZ77Codec]

// WithWindowSize sets the sliding window size (maximum back-reference
// distance). Returns errs.ErrInvalidWindowSize for non-positive values.
func WithWindowSize(size int) LZ77Option {
	return options.New(func(c *LZ77Codec) error {
		if size <= 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidWindowSize, size)
		}
		c.windowSize = size

		return nil
	})
}

// WithLookaheadSize sets the lookahead size (maximum match length). Returns
// errs.ErrInvalidLookaheadSize for non-positive values.
func WithLookaheadSize(size int) LZ77Option {
	return options.New(func(c *LZ77Codec) error {
		if size <= 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidLookaheadSize, size)
		}
		c.lookaheadSize = size

		return nil
	})
}

// NewLZ77Codec creates an LZ77 codec with the given options.
//
// Without options the codec uses DefaultWindowSize and DefaultLookaheadSize.
func NewLZ77Codec(opts ...LZ77Option) (*LZ77Codec, error) {
	codec := &LZ77Codec{
		windowSize:    DefaultWindowSize,
		lookaheadSize: DefaultLookaheadSize,
	}
	if err := options.Apply(codec, opts...); err != nil {
		return nil, err
	}

	return codec, nil
}

// Compress compresses data into an LZ77 container payload.
func (c *LZ77Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	tokens, err := lz.Compress77(data, c.windowSize, c.lookaheadSize)
	if err != nil {
		return nil, err
	}

	buf := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(buf)

	buf.B = appendContainerHeader(buf.B, format.AlgorithmLZ77, data)
	buf.B = encoding.AppendTokens77(buf.B, tokens)

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// Decompress reverses Compress, validating the container header and the
// payload checksum.
func (c *LZ77Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	payload, checksum, err := openContainer(data, format.AlgorithmLZ77)
	if err != nil {
		return nil, err
	}

	tokens, err := encoding.DecodeTokens77(payload)
	if err != nil {
		return nil, err
	}

	decoded, err := lz.Decompress77(tokens)
	if err != nil {
		return nil, err
	}
	if err := verifyChecksum(decoded, checksum); err != nil {
		return nil, err
	}

	return decoded, nil
}
