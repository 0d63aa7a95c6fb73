package freqlist

import "strings"

// Rules configures the early per-token exclusion checks applied while loading.
type Rules struct {
	// MinTokenLength is the shortest token worth keeping. Tokens shorter than
	// this are always dropped.
	MinTokenLength int
}

// DefaultRules returns the exclusion thresholds used by the stock dictionary
// build.
func DefaultRules() Rules {
	return Rules{MinTokenLength: 3}
}

// Exclude reports whether a token at the given rank should be dropped before
// it enters its list.
func (r Rules) Exclude(token string, rank int) bool {
	return hasOnlyOneChar(token) || hasDisallowedChar(token) || r.isRareAndShort(token, rank)
}

// hasOnlyOneChar reports whether the token is a single character repeated
// (e.g. "aaaa"), a common artifact in password dumps.
func hasOnlyOneChar(token string) bool {
	runes := []rune(token)
	if len(runes) == 0 {
		return true
	}
	for _, r := range runes[1:] {
		if r != runes[0] {
			return false
		}
	}
	return true
}

// hasDisallowedChar reports whether the token contains a comma or double
// quote. The emitted artifact comma-joins tokens inside a quoted string and
// cannot escape, so these tokens can never be serialized.
func hasDisallowedChar(token string) bool {
	return strings.ContainsAny(token, `,"`)
}

// isRareAndShort reports whether the token is too short to matter or ranked no
// better than the brute-force bound for its length class. A token of length L
// has at most 10^L purely-numeric guesses at that length; a rank at or beyond
// that bound adds nothing over a generic brute-force model.
func (r Rules) isRareAndShort(token string, rank int) bool {
	length := len([]rune(token))
	if length < r.MinTokenLength {
		return true
	}
	bound := 1
	for i := 0; i < length; i++ {
		bound *= 10
		if bound > rank {
			return false
		}
	}
	return rank >= bound
}
