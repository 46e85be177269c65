package lz

import (
	"fmt"

	"github.com/arloliu/lzkit/errs"
)

// Compress77 compresses seq using sliding-window triple coding.
//
// At each position the encoder searches the trailing window of windowSize
// symbols for the longest match of the upcoming symbols, capped at
// lookaheadSize. It emits one token per step: either a literal (0, 0, c) when
// no prior occurrence exists, or (distance, length, next) where next is the
// first symbol after the match. The trailing symbol is absent only when the
// match reaches the end of the input.
//
// Emitted matches always lie entirely within the window, so distance is
// never smaller than length. Decompress77 additionally accepts overlapping
// matches produced by other encoders.
//
// Parameters:
//   - seq: Input symbol sequence (an empty sequence yields an empty stream)
//   - windowSize: Maximum back-reference distance, must be positive
//   - lookaheadSize: Maximum match length, must be positive
//
// Returns:
//   - []Token77[S]: The compressed token stream
//   - error: errs.ErrInvalidWindowSize or errs.ErrInvalidLookaheadSize for a
//     non-positive configuration
func Compress77[S comparable](seq []S, windowSize, lookaheadSize int) ([]Token77[S], error) {
	if windowSize <= 0 {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidWindowSize, windowSize)
	}
	if lookaheadSize <= 0 {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidLookaheadSize, lookaheadSize)
	}

	tokens := make([]Token77[S], 0, len(seq))
	for pos := 0; pos < len(seq); {
		distance, length := longestMatch(seq, pos, windowSize, lookaheadSize)

		tok := Token77[S]{Distance: distance, Length: length}
		if next := pos + length; next < len(seq) {
			tok.Next = seq[next]
			tok.HasNext = true
		}
		tokens = append(tokens, tok)

		// A literal consumes one symbol, a match consumes length plus its
		// trailing literal when present.
		pos += length + 1
	}

	return tokens, nil
}

// Decompress77 reconstructs the sequence encoded by Compress77.
//
// Matches are copied symbol by symbol from the growing output, so tokens with
// distance < length (self-overlapping runs) decode correctly.
//
// Returns errs.ErrInvalidDistance for malformed match tokens: a distance
// pointing before the start of the reconstructed output, a zero or negative
// distance paired with a nonzero length, or a negative length. These indicate
// a corrupted or non-conforming stream.
func Decompress77[S comparable](tokens []Token77[S]) ([]S, error) {
	out := make([]S, 0, len(tokens))
	for i, tok := range tokens {
		if tok.Length != 0 || tok.Distance != 0 {
			// A match token needs both fields positive and a distance that
			// stays inside the reconstructed output.
			if tok.Length <= 0 || tok.Distance <= 0 || tok.Distance > len(out) {
				return nil, fmt.Errorf("%w: token %d distance %d length %d, decoded %d",
					errs.ErrInvalidDistance, i, tok.Distance, tok.Length, len(out))
			}
			start := len(out) - tok.Distance
			for k := 0; k < tok.Length; k++ {
				out = append(out, out[start+k])
			}
		}
		if tok.HasNext {
			out = append(out, tok.Next)
		}
	}

	return out, nil
}
