package lz

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/lzkit/errs"
)

func TestCompress77_Banana(t *testing.T) {
	tokens, err := Compress77([]byte("banana"), 20, 15)
	require.NoError(t, err)

	expected := []Token77[byte]{
		Literal77[byte]('b'),
		Literal77[byte]('a'),
		Literal77[byte]('n'),
		Match77(2, 2, byte('a')),
	}
	require.Equal(t, expected, tokens)

	decoded, err := Decompress77(tokens)
	require.NoError(t, err)
	require.Equal(t, []byte("banana"), decoded)
}

func TestCompress77_EmptyInput(t *testing.T) {
	tokens, err := Compress77([]byte(nil), 8, 8)
	require.NoError(t, err)
	require.Empty(t, tokens)

	decoded, err := Decompress77[byte](nil)
	require.NoError(t, err)
	require.Empty(t, decoded)
}

func TestCompress77_InvalidConfiguration(t *testing.T) {
	tests := []struct {
		name      string
		window    int
		lookahead int
		wantErr   error
	}{
		{"zero window", 0, 8, errs.ErrInvalidWindowSize},
		{"negative window", -3, 8, errs.ErrInvalidWindowSize},
		{"zero lookahead", 8, 0, errs.ErrInvalidLookaheadSize},
		{"negative lookahead", 8, -1, errs.ErrInvalidLookaheadSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compress77([]byte("abc"), tt.window, tt.lookahead)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCompress77_RoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		window    int
		lookahead int
	}{
		{"single symbol", "x", 4, 4},
		{"run", "aaaaaa", 6, 6},
		{"long run", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", 8, 8},
		{"repeated phrase", "abcabcabcabc", 20, 15},
		{"no repetition", "abcdefghij", 20, 15},
		{"tiny window", "abcabcabcabc", 2, 2},
		{"sentence", "the quick brown fox jumps over the lazy dog the quick brown fox", 32, 16},
		{"binary-ish", "\x00\x01\x00\x01\x00\x01\xff\xfe\xff\xfe", 16, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Compress77([]byte(tt.input), tt.window, tt.lookahead)
			require.NoError(t, err)

			// Each token consumes at least one input symbol.
			require.LessOrEqual(t, len(tokens), len(tt.input))

			decoded, err := Decompress77(tokens)
			require.NoError(t, err)
			require.Equal(t, []byte(tt.input), decoded)
		})
	}
}

func TestCompress77_RunTokens(t *testing.T) {
	// A run compresses into matches whose distance never exceeds the window,
	// with the final match running to the end of input (absent literal).
	tokens, err := Compress77([]byte("aaaaaa"), 6, 6)
	require.NoError(t, err)

	expected := []Token77[byte]{
		Literal77[byte]('a'),
		Match77(1, 1, byte('a')),
		FinalMatch77[byte](3, 3),
	}
	require.Equal(t, expected, tokens)

	decoded, err := Decompress77(tokens)
	require.NoError(t, err)
	require.Equal(t, []byte("aaaaaa"), decoded)
}

func TestCompress77_GeneralizedSequence(t *testing.T) {
	seq := []int{1, 2, 3, 1, 2, 3, 4, 1, 2, 3, 4, 5, 2, 3, 4, 1, 2, 3}

	tokens, err := Compress77(seq, 20, 15)
	require.NoError(t, err)

	expected := []Token77[int]{
		Literal77(1),
		Literal77(2),
		Literal77(3),
		Match77(3, 3, 4),
		Match77(4, 4, 5),
		FinalMatch77[int](8, 6),
	}
	require.Equal(t, expected, tokens)

	decoded, err := Decompress77(tokens)
	require.NoError(t, err)
	require.Equal(t, seq, decoded)
}

func TestDecompress77_SelfOverlappingCopy(t *testing.T) {
	// distance < length: each copied symbol becomes a source for the next
	// one within the same match.
	tokens := []Token77[byte]{
		Literal77[byte]('a'),
		FinalMatch77[byte](1, 5),
	}

	decoded, err := Decompress77(tokens)
	require.NoError(t, err)
	require.Equal(t, []byte("aaaaaa"), decoded)
}

func TestDecompress77_OverlappingPeriodicCopy(t *testing.T) {
	tokens := []Token77[byte]{
		Literal77[byte]('a'),
		Literal77[byte]('b'),
		FinalMatch77[byte](2, 6),
	}

	decoded, err := Decompress77(tokens)
	require.NoError(t, err)
	require.Equal(t, []byte("abababab"), decoded)
}

func TestDecompress77_InvalidDistance(t *testing.T) {
	tests := []struct {
		name   string
		tokens []Token77[byte]
	}{
		{
			name: "distance beyond decoded output",
			tokens: []Token77[byte]{
				Literal77[byte]('a'),
				Match77(5, 2, byte('b')),
			},
		},
		{
			name: "zero distance with nonzero length",
			tokens: []Token77[byte]{
				Literal77[byte]('a'),
				{Distance: 0, Length: 3},
			},
		},
		{
			name: "negative distance",
			tokens: []Token77[byte]{
				Literal77[byte]('a'),
				{Distance: -2, Length: 1},
			},
		},
		{
			name: "negative length",
			tokens: []Token77[byte]{
				Literal77[byte]('a'),
				{Distance: 1, Length: -1},
			},
		},
		{
			name: "positive distance with zero length",
			tokens: []Token77[byte]{
				Literal77[byte]('a'),
				{Distance: 1, Length: 0},
			},
		},
		{
			name:   "match before any output",
			tokens: []Token77[byte]{Match77(1, 1, byte('a'))},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Decompress77(tt.tokens)
			require.ErrorIs(t, err, errs.ErrInvalidDistance)
			require.Nil(t, result)
		})
	}
}

func BenchmarkCompress77(b *testing.B) {
	input := []byte("the quick brown fox jumps over the lazy dog ")
	for len(input) < 4096 {
		input = append(input, input...)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Compress77(input, 64, 32)
	}
}

func BenchmarkDecompress77(b *testing.B) {
	input := []byte("the quick brown fox jumps over the lazy dog ")
	for len(input) < 4096 {
		input = append(input, input...)
	}
	tokens, err := Compress77(input, 64, 32)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Decompress77(tokens)
	}
}
