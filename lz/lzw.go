package lz

import (
	"fmt"

	"github.com/arloliu/lzkit/errs"
)

// AlphabetSize is the number of pre-seeded single-byte LZW codes.
const AlphabetSize = 256

// CompressW compresses data using adaptive single-code dictionary coding.
//
// The dictionary is pre-seeded with codes 0..255 for all single byte values,
// so the output is a bare sequence of integer codes with no literals. The
// encoder grows the current phrase while phrase+c is known; otherwise it
// emits the code of phrase, inserts phrase+c at the next code, and restarts
// the phrase from c (the residual symbol seeds the next phrase rather than
// being dropped, which is what distinguishes LZW from LZ78).
//
// Returns:
//   - []int: The emitted code stream (empty for empty input)
//   - map[int][]byte: Snapshot of the final dictionary, including the seeded
//     single-byte entries
func CompressW(data []byte) ([]int, map[int][]byte) {
	dict := make(map[string]int, AlphabetSize+len(data)/2)
	for i := 0; i < AlphabetSize; i++ {
		dict[string(byte(i))] = i
	}
	nextCode := AlphabetSize

	codes := make([]int, 0, len(data)/2+1)
	var phrase []byte
	for _, c := range data {
		candidate := append(phrase, c)
		if _, ok := dict[string(candidate)]; ok {
			phrase = candidate
			continue
		}

		codes = append(codes, dict[string(phrase)])
		dict[string(candidate)] = nextCode
		nextCode++
		phrase = phrase[:1]
		phrase[0] = c
	}
	if len(phrase) > 0 {
		codes = append(codes, dict[string(phrase)])
	}

	snapshot := make(map[int][]byte, len(dict))
	for phrase, code := range dict {
		snapshot[code] = []byte(phrase)
	}

	return codes, snapshot
}

// DecompressW reconstructs the byte sequence encoded by CompressW.
//
// The decoder seeds the same 256-entry table and replays the encoder's
// insertion sequence: after decoding each entry it inserts prev+entry[0] at
// the next code. A code equal to the next code about to be assigned is the
// classic not-yet-in-table case and decodes as prev+prev[0]; any other
// unknown code yields errs.ErrInvalidCode.
func DecompressW(codes []int) ([]byte, error) {
	table := make([][]byte, AlphabetSize, AlphabetSize+len(codes))
	for i := 0; i < AlphabetSize; i++ {
		table[i] = []byte{byte(i)}
	}

	out := make([]byte, 0, len(codes)*2)
	var prev []byte
	for i, code := range codes {
		var entry []byte
		switch {
		case code >= 0 && code < len(table):
			entry = table[code]
		case code == len(table) && len(prev) > 0:
			entry = append(append(make([]byte, 0, len(prev)+1), prev...), prev[0])
		default:
			return nil, fmt.Errorf("%w: code %d at position %d, table size %d",
				errs.ErrInvalidCode, code, i, len(table))
		}

		out = append(out, entry...)
		if len(prev) > 0 {
			grown := make([]byte, 0, len(prev)+1)
			grown = append(grown, prev...)
			table = append(table, append(grown, entry[0]))
		}
		prev = entry
	}

	return out, nil
}
