package lz

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/lzkit/errs"
)

func TestCompressW_ABABABA(t *testing.T) {
	codes, dict := CompressW([]byte("ABABABA"))

	require.Equal(t, []int{65, 66, 256, 258}, codes)
	require.Equal(t, []byte("AB"), dict[256])
	require.Equal(t, []byte("BA"), dict[257])
	require.Equal(t, []byte("ABA"), dict[258])

	decoded, err := DecompressW(codes)
	require.NoError(t, err)
	require.Equal(t, []byte("ABABABA"), decoded)
}

func TestCompressW_EmptyInput(t *testing.T) {
	codes, dict := CompressW(nil)
	require.Empty(t, codes)
	// Only the seeded single-byte alphabet is present.
	require.Len(t, dict, AlphabetSize)

	decoded, err := DecompressW(nil)
	require.NoError(t, err)
	require.Empty(t, decoded)
}

func TestCompressW_SeededAlphabet(t *testing.T) {
	_, dict := CompressW([]byte("x"))

	for i := 0; i < AlphabetSize; i++ {
		require.Equal(t, []byte{byte(i)}, dict[i])
	}
}

func TestCompressW_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"single symbol", "q"},
		{"run", "aaaaaaaaaaaaaaaa"},
		{"alternating", "ABABABABABABABAB"},
		{"repeated phrase", "TOBEORNOTTOBEORTOBEORNOT"},
		{"no repetition", "abcdefghijklmnopqrstuvwxyz"},
		{"high bytes", "\xff\xfe\xff\xfe\xff\xff\xff\x00\x00\x00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codes, _ := CompressW([]byte(tt.input))

			decoded, err := DecompressW(codes)
			require.NoError(t, err)
			require.Equal(t, []byte(tt.input), decoded)
		})
	}
}

func TestCompressW_CodeCausality(t *testing.T) {
	codes, _ := CompressW([]byte("TOBEORNOTTOBEORTOBEORNOT"))

	// Code i may only reference the seeded alphabet plus entries inserted by
	// codes 0..i-1; the encoder inserts at most one entry per emitted code.
	for i, code := range codes {
		require.Less(t, code, AlphabetSize+i, "code %d violates causality", i)
	}
}

func TestDecompressW_NotYetInTable(t *testing.T) {
	// The classic deferred-insertion case: the code equals the next index
	// about to be assigned and decodes as prev + prev[0].
	codes, _ := CompressW([]byte("AAA"))
	require.Equal(t, []int{65, 256}, codes)

	decoded, err := DecompressW(codes)
	require.NoError(t, err)
	require.Equal(t, []byte("AAA"), decoded)
}

func TestDecompressW_InvalidCode(t *testing.T) {
	tests := []struct {
		name  string
		codes []int
	}{
		{"beyond next assignable", []int{65, 300}},
		{"negative", []int{-1}},
		{"next index with empty prev", []int{256}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecompressW(tt.codes)
			require.ErrorIs(t, err, errs.ErrInvalidCode)
		})
	}
}

func BenchmarkCompressW(b *testing.B) {
	input := []byte("TOBEORNOTTOBEORTOBEORNOT")
	for len(input) < 4096 {
		input = append(input, input...)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = CompressW(input)
	}
}

func BenchmarkDecompressW(b *testing.B) {
	input := []byte("TOBEORNOTTOBEORTOBEORNOT")
	for len(input) < 4096 {
		input = append(input, input...)
	}
	codes, _ := CompressW(input)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = DecompressW(codes)
	}
}
