package consolidate

import (
	"sort"

	"rankdict/internal/freqlist"
)

// Options configures one consolidation run.
type Options struct {
	// Capacities maps list name to the maximum number of tokens retained
	// after filtering and sorting. Zero means unbounded.
	Capacities map[string]int
	Thresholds Thresholds
}

// ListStats summarizes what happened to one list during a run, for operator
// reporting.
type ListStats struct {
	Name      string
	Loaded    int // tokens surviving early exclusion at load time
	Owned     int // tokens this list won in global deduplication
	Dominated int // owned tokens dropped by the brute-force-dominance filter
	Kept      int // tokens in the final output after truncation
	Capacity  int // configured cap, 0 = unbounded
}

// Result is the final artifact of a run: ordered token sequences per list,
// most frequent first, plus per-list statistics. Ranks are discarded; a
// token's position is its implicit rank.
type Result struct {
	Lists map[string][]string
	Stats []ListStats
}

// Run consolidates the given lists. Lists must be ordered by configured
// priority: that order decides exact-rank ties during deduplication and the
// order of Stats entries.
func Run(lists []*freqlist.List, opts Options) Result {
	index := BuildIndex(lists)

	result := Result{
		Lists: make(map[string][]string, len(lists)),
		Stats: make([]ListStats, 0, len(lists)),
	}
	for _, list := range lists {
		stats := ListStats{
			Name:     list.Name,
			Loaded:   len(list.Ranks),
			Capacity: opts.Capacities[list.Name],
		}

		owned := Owned(list, index)
		stats.Owned = len(owned)

		survivors := owned[:0]
		for _, pair := range owned {
			if opts.Thresholds.isBrutalBetter(pair.Token, pair.Rank, index) {
				stats.Dominated++
				continue
			}
			survivors = append(survivors, pair)
		}

		sort.Slice(survivors, func(i, j int) bool { return survivors[i].Rank < survivors[j].Rank })
		// Capacity applies strictly after sorting so the most frequent
		// tokens are the ones kept.
		if limit := stats.Capacity; limit > 0 && len(survivors) > limit {
			survivors = survivors[:limit]
		}

		tokens := make([]string, len(survivors))
		for i, pair := range survivors {
			tokens[i] = pair.Token
		}
		stats.Kept = len(tokens)

		result.Lists[list.Name] = tokens
		result.Stats = append(result.Stats, stats)
	}
	return result
}
