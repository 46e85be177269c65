package lz

// Token77 is one unit of an LZ77 compressed stream: a back-reference of
// Length symbols starting Distance symbols before the current output
// position, followed by an optional literal symbol.
//
// A zero Distance and Length means no match was found; the token then carries
// only the literal in Next. When a match runs to the end of the input the
// trailing literal is absent and HasNext is false. HasNext is a proper
// presence flag rather than a sentinel value, so any symbol value remains
// representable.
type Token77[S comparable] struct {
	Distance int
	Length   int
	Next     S
	HasNext  bool
}

// Token78 is one unit of an LZ78 compressed stream: a reference to a
// previously inserted dictionary phrase plus one literal symbol extending it.
//
// Index 0 refers to the empty phrase. HasNext is false only on a final token
// whose residual phrase exactly matched an existing dictionary entry.
type Token78[S comparable] struct {
	Index   int
	Next    S
	HasNext bool
}

// Literal77 returns a literal LZ77 token carrying only the symbol c.
func Literal77[S comparable](c S) Token77[S] {
	return Token77[S]{Next: c, HasNext: true}
}

// Match77 returns an LZ77 match token with a trailing literal.
func Match77[S comparable](distance, length int, next S) Token77[S] {
	return Token77[S]{Distance: distance, Length: length, Next: next, HasNext: true}
}

// FinalMatch77 returns an LZ77 match token without a trailing literal, used
// when the match runs to the end of the input.
func FinalMatch77[S comparable](distance, length int) Token77[S] {
	return Token77[S]{Distance: distance, Length: length}
}
