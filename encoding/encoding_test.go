package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/lzkit/errs"
	"github.com/arloliu/lzkit/lz"
)

func TestTokens77_RoundTrip(t *testing.T) {
	tokens := []lz.Token77[byte]{
		lz.Literal77[byte]('b'),
		lz.Match77(300, 1000, byte(0x00)),
		lz.FinalMatch77[byte](2, 2),
	}

	payload := AppendTokens77(nil, tokens)
	decoded, err := DecodeTokens77(payload)
	require.NoError(t, err)
	require.Equal(t, tokens, decoded)
}

func TestTokens77_FromCompressor(t *testing.T) {
	input := []byte("the quick brown fox jumps over the lazy dog the quick brown fox")
	tokens, err := lz.Compress77(input, 32, 16)
	require.NoError(t, err)

	payload := AppendTokens77(nil, tokens)
	decoded, err := DecodeTokens77(payload)
	require.NoError(t, err)
	require.Equal(t, tokens, decoded)
}

func TestTokens77_Empty(t *testing.T) {
	require.Empty(t, AppendTokens77(nil, nil))

	decoded, err := DecodeTokens77(nil)
	require.NoError(t, err)
	require.Empty(t, decoded)
}

func TestTokens77_Truncated(t *testing.T) {
	payload := AppendTokens77(nil, []lz.Token77[byte]{lz.Match77(5, 3, byte('x'))})

	for cut := 1; cut < len(payload); cut++ {
		_, err := DecodeTokens77(payload[:cut])
		require.ErrorIs(t, err, errs.ErrTruncatedStream, "cut at %d", cut)
	}
}

func TestTokens77_CorruptedMarker(t *testing.T) {
	payload := AppendTokens77(nil, []lz.Token77[byte]{lz.Match77(5, 3, byte('x'))})

	// The marker byte sits after the two uvarint fields; any value other
	// than 0 or 1 is a corrupted stream, not an absent literal.
	corrupted := append([]byte(nil), payload...)
	corrupted[2] = 0x7

	_, err := DecodeTokens77(corrupted)
	require.ErrorIs(t, err, errs.ErrInvalidMarker)
}

func TestTokens78_RoundTrip(t *testing.T) {
	tokens := []lz.Token78[byte]{
		{Index: 0, Next: 'b', HasNext: true},
		{Index: 500, Next: 0xff, HasNext: true},
		{Index: 2},
	}

	payload := AppendTokens78(nil, tokens)
	decoded, err := DecodeTokens78(payload)
	require.NoError(t, err)
	require.Equal(t, tokens, decoded)
}

func TestTokens78_Truncated(t *testing.T) {
	payload := AppendTokens78(nil, []lz.Token78[byte]{{Index: 300, Next: 'x', HasNext: true}})

	for cut := 1; cut < len(payload); cut++ {
		_, err := DecodeTokens78(payload[:cut])
		require.ErrorIs(t, err, errs.ErrTruncatedStream, "cut at %d", cut)
	}
}

func TestTokens78_CorruptedMarker(t *testing.T) {
	payload := AppendTokens78(nil, []lz.Token78[byte]{{Index: 3, Next: 'x', HasNext: true}})

	corrupted := append([]byte(nil), payload...)
	corrupted[1] = 0xFF

	_, err := DecodeTokens78(corrupted)
	require.ErrorIs(t, err, errs.ErrInvalidMarker)
}

func TestCodes_RoundTrip(t *testing.T) {
	codes := []int{65, 66, 256, 258, 100000}

	payload := AppendCodes(nil, codes)
	decoded, err := DecodeCodes(nil, payload)
	require.NoError(t, err)
	require.Equal(t, codes, decoded)
}

func TestCodes_Truncated(t *testing.T) {
	payload := AppendCodes(nil, []int{1 << 20})

	_, err := DecodeCodes(nil, payload[:1])
	require.ErrorIs(t, err, errs.ErrTruncatedStream)
}
