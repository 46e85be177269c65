// Package errs defines the sentinel errors shared across lzkit packages.
//
// Callers should match these errors with errors.Is, since packages wrap them
// with additional context using fmt.Errorf and the %w verb.
package errs

import "errors"

// Configuration errors, reported before any processing begins.
var (
	// ErrInvalidWindowSize indicates a non-positive LZ77 window size.
	ErrInvalidWindowSize = errors.New("window size must be positive")

	// ErrInvalidLookaheadSize indicates a non-positive LZ77 lookahead size.
	ErrInvalidLookaheadSize = errors.New("lookahead size must be positive")
)

// Decode errors, reported when a token stream is corrupted or was not
// produced by a conforming encoder. Decoders fail fast with one of these
// rather than producing silently wrong output.
var (
	// ErrInvalidDistance indicates an LZ77 token whose distance points before
	// the start of the reconstructed output.
	ErrInvalidDistance = errors.New("match distance exceeds decoded output length")

	// ErrInvalidDictIndex indicates an LZ78 token referencing a dictionary
	// index that has not been inserted yet.
	ErrInvalidDictIndex = errors.New("dictionary index not yet inserted")

	// ErrInvalidCode indicates an LZW code that is neither a known table entry
	// nor the next code about to be assigned.
	ErrInvalidCode = errors.New("code is neither known nor next to be assigned")
)

// Container errors, reported by the compress package when decoding a
// serialized token stream.
var (
	// ErrInvalidMagicNumber indicates the payload does not start with the
	// lzkit container magic bytes.
	ErrInvalidMagicNumber = errors.New("invalid magic number")

	// ErrInvalidAlgorithm indicates an unknown algorithm identifier in the
	// container header.
	ErrInvalidAlgorithm = errors.New("invalid algorithm identifier")

	// ErrChecksumMismatch indicates the decoded payload does not match the
	// checksum recorded in the container header.
	ErrChecksumMismatch = errors.New("payload checksum mismatch")

	// ErrTruncatedStream indicates the serialized token stream ended in the
	// middle of a token or header field.
	ErrTruncatedStream = errors.New("truncated token stream")

	// ErrInvalidMarker indicates a literal presence marker byte that is
	// neither the absent nor the present value.
	ErrInvalidMarker = errors.New("invalid literal presence marker")
)
