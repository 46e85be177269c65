// Package encoding serializes lzkit token streams to and from byte payloads.
//
// The lz package produces in-memory token streams; this package is the
// downstream layer that turns them into compact byte payloads for the
// compress package's container format. All integer fields use unsigned
// varints, and optional trailing literals are encoded with an explicit
// presence marker so that every byte value remains representable.
//
// Per-token wire layouts:
//
//	LZ77: distance uvarint | length uvarint | marker (0|1) | literal byte?
//	LZ78: index uvarint    | marker (0|1)   | literal byte?
//	LZW:  code uvarint
//
// Decoders fail with errs.ErrTruncatedStream when a payload ends in the
// middle of a token, and with errs.ErrInvalidMarker when a marker byte holds
// any value other than 0 or 1.
package encoding
