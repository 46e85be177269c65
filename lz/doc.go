// Package lz implements the classic dictionary and window based lossless
// compression family: LZ77 (sliding-window triple coding), LZ78 (incremental
// phrase dictionary) and LZW (adaptive single-code dictionary).
//
// LZ77 and LZ78 operate on generic symbol sequences ([]S for any comparable
// S), so the same implementation covers byte streams, character streams and
// arbitrary discrete sequences such as quantized time-series values. LZW is
// byte oriented, seeded with all 256 single-byte codes.
//
// # Token Streams
//
// Each discipline produces its own in-memory token stream:
//
//   - LZ77: []Token77[S], triples of (distance, length, next symbol)
//   - LZ78: []Token78[S], pairs of (dictionary index, next symbol)
//   - LZW:  []int, bare dictionary codes
//
// The token stream is the sole artifact exchanged between an encoder and its
// decoder. Decoders rebuild dictionary state deterministically from the
// stream alone, in exactly the insertion order the encoder used, and fail
// fast with a sentinel error from the errs package when a stream references
// output or dictionary state that does not exist yet.
//
// # Self-Overlapping Matches
//
// The LZ77 decoder accepts matches that overlap the position they extend
// (distance less than length), the classic run encoding: a literal 'a'
// followed by a match with distance 1 and length 5 decodes to "aaaaaa".
// Decoding copies symbol by symbol so that each appended symbol is
// immediately available as a source for the remainder of the same match.
// Compress77 itself only emits matches contained in the window, but streams
// from other LZ77 encoders decode correctly.
//
// # Dictionary Growth
//
// LZ78 and LZW dictionaries grow without a ceiling for the duration of one
// compress or decompress call. Callers that need bounded code widths or
// reset-on-full behavior must layer that on top of the token stream.
//
// All operations are single-threaded and run to completion over in-memory
// sequences; separate calls share no state.
package lz
