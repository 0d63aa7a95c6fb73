package consolidate

// Thresholds configures the brute-force-dominance filter. Zero values are not
// meaningful; use DefaultThresholds or values from configuration.
type Thresholds struct {
	// MinGuessesBeforeGrowing is the rank below which a token is always kept:
	// tokens this frequent beat any combinatorial guessing strategy.
	MinGuessesBeforeGrowing int
	// PrefixMultiplier bounds the cost of extending an already-ranked prefix
	// by one character, as a multiple of the prefix's rank.
	PrefixMultiplier int
	// MinPrefixLength is the shortest token length the filter considers;
	// shorter tokens have no useful length-minus-one prefix.
	MinPrefixLength int
}

// DefaultThresholds returns the stock filter tuning.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinGuessesBeforeGrowing: 1000,
		PrefixMultiplier:        22,
		MinPrefixLength:         5,
	}
}

// isBrutalBetter reports whether guessing the token by extending its
// length-minus-one prefix is cheaper than its own rank suggests. If the
// prefix is ranked anywhere (any list), appending one character to it is an
// enumerable strategy costing roughly srank*multiplier+base guesses; a token
// ranked beyond that bound adds nothing to the dictionary.
func (t Thresholds) isBrutalBetter(token string, rank int, index Index) bool {
	if rank < t.MinGuessesBeforeGrowing {
		return false
	}
	runes := []rune(token)
	if len(runes) < t.MinPrefixLength {
		return false
	}
	prefix, ok := index[string(runes[:len(runes)-1])]
	if !ok {
		return false
	}
	return rank > prefix.Rank*t.PrefixMultiplier+t.MinGuessesBeforeGrowing
}
