package consolidate

import "rankdict/internal/freqlist"

// Entry records where a token ranks best across all lists.
type Entry struct {
	Rank int
	List string
}

// Index is the global minimum-rank index: for every token seen in any list,
// the lowest rank it achieved and the list achieving it. It exists only for
// the duration of one consolidation run.
type Index map[string]Entry

// BuildIndex scans all lists and records the best (lowest) rank per token.
// Lists are visited in slice order; on an exact rank tie the earlier list
// wins, so callers pass lists in configured priority order to get a declared,
// deterministic tie-break.
func BuildIndex(lists []*freqlist.List) Index {
	index := make(Index)
	for _, list := range lists {
		for token, rank := range list.Ranks {
			if best, ok := index[token]; !ok || rank < best.Rank {
				index[token] = Entry{Rank: rank, List: list.Name}
			}
		}
	}
	return index
}

// Owned returns the subset of a list's token→rank pairs that the list owns,
// i.e. where no other list offers a better rank. Non-owned tokens are simply
// absent; they live on in their owning list only.
func Owned(list *freqlist.List, index Index) []Pair {
	owned := make([]Pair, 0, len(list.Ranks))
	for token, rank := range list.Ranks {
		if index[token].List == list.Name {
			owned = append(owned, Pair{Token: token, Rank: rank})
		}
	}
	return owned
}

// Pair is one token with its list-local rank.
type Pair struct {
	Token string
	Rank  int
}
