package lz

// longestMatch scans the trailing window of windowSize symbols ending just
// before pos for the longest occurrence of the upcoming symbols, comparing at
// most maxLen symbols.
//
// An occurrence must lie entirely inside the window: a candidate starting at
// start can match at most pos-start symbols, so the returned distance is
// always >= length. Ties for the longest length are broken toward the most
// recent occurrence, yielding the minimal distance for that length.
func longestMatch[S comparable](input []S, pos, windowSize, maxLen int) (distance, length int) {
	windowStart := pos - windowSize
	if windowStart < 0 {
		windowStart = 0
	}
	if remaining := len(input) - pos; maxLen > remaining {
		maxLen = remaining
	}

	for start := windowStart; start < pos; start++ {
		limit := maxLen
		if avail := pos - start; limit > avail {
			limit = avail
		}

		matchLen := 0
		for matchLen < limit && input[start+matchLen] == input[pos+matchLen] {
			matchLen++
		}
		if matchLen > 0 && matchLen >= length {
			length = matchLen
			distance = pos - start
		}
	}

	return distance, length
}
