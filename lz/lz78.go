package lz

import (
	"fmt"

	"github.com/arloliu/lzkit/errs"
)

// trieNode78 is one node of the LZ78 encoder dictionary, keyed symbol by
// symbol so phrase lookup never hashes a full phrase.
type trieNode78[S comparable] struct {
	index    int
	children map[S]*trieNode78[S]
}

func (n *trieNode78[S]) child(c S) *trieNode78[S] {
	if n.children == nil {
		return nil
	}

	return n.children[c]
}

func (n *trieNode78[S]) insert(c S, index int) {
	if n.children == nil {
		n.children = make(map[S]*trieNode78[S])
	}
	n.children[c] = &trieNode78[S]{index: index}
}

// Compress78 compresses seq using incremental phrase dictionary coding.
//
// The encoder grows the current phrase while phrase+c is a known dictionary
// entry. On the first unknown extension it emits (index of phrase, c), where
// index 0 denotes the empty phrase, inserts phrase+c as the next dictionary
// entry and starts over with an empty phrase. If the input ends mid-match the
// final token carries only the phrase index with no trailing symbol.
//
// The dictionary is prefix-closed by construction and grows without a
// ceiling; it lives only for the duration of this call.
func Compress78[S comparable](seq []S) []Token78[S] {
	root := &trieNode78[S]{}
	tokens := make([]Token78[S], 0, len(seq)/2+1)

	curr := root
	nextIndex := 1
	for _, c := range seq {
		if child := curr.child(c); child != nil {
			curr = child
			continue
		}

		tokens = append(tokens, Token78[S]{Index: curr.index, Next: c, HasNext: true})
		curr.insert(c, nextIndex)
		nextIndex++
		curr = root
	}

	// Input exhausted mid-match: the residual phrase is already a dictionary
	// entry, reference it without a trailing literal.
	if curr != root {
		tokens = append(tokens, Token78[S]{Index: curr.index})
	}

	return tokens
}

// Decompress78 reconstructs the sequence encoded by Compress78.
//
// The decoder rebuilds the dictionary as a flat index-to-phrase table,
// inserting one entry per token in exactly the order the encoder inserted
// them. Every referenced index must have been inserted by a strictly earlier
// token; a forward or unknown reference yields errs.ErrInvalidDictIndex.
func Decompress78[S comparable](tokens []Token78[S]) ([]S, error) {
	// Index 0 is reserved for the empty phrase.
	phrases := make([][]S, 1, len(tokens)+1)

	out := make([]S, 0, len(tokens))
	for i, tok := range tokens {
		if tok.Index < 0 || tok.Index >= len(phrases) {
			return nil, fmt.Errorf("%w: token %d references index %d, dictionary size %d",
				errs.ErrInvalidDictIndex, i, tok.Index, len(phrases))
		}

		prefix := phrases[tok.Index]
		entry := make([]S, len(prefix), len(prefix)+1)
		copy(entry, prefix)
		if tok.HasNext {
			entry = append(entry, tok.Next)
		}

		out = append(out, entry...)
		phrases = append(phrases, entry)
	}

	return out, nil
}
