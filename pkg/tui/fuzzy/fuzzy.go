// ABOUTME: Thin wrapper over sahilm/fuzzy for list type-ahead
// ABOUTME: FindFrom ranks every candidate; Top picks the one the selection jumps to

package fuzzy

import "github.com/sahilm/fuzzy"

// Source is a list of strings addressed by index, such as list labels.
type Source interface {
	String(i int) string
	Len() int
}

// Match is one candidate. MatchedIndexes are byte offsets into Str.
type Match struct {
	Str            string
	Index          int
	MatchedIndexes []int
	Score          int
}

// FindFrom returns the items of data matching pattern, best first.
// An empty pattern matches nothing.
func FindFrom(pattern string, data Source) []Match {
	if pattern == "" || data.Len() == 0 {
		return nil
	}
	results := fuzzy.FindFrom(pattern, data)
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{
			Str:            r.Str,
			Index:          r.Index,
			MatchedIndexes: r.MatchedIndexes,
			Score:          r.Score,
		}
	}
	return matches
}

// Top returns the highest scoring match; ties keep the earliest item.
func Top(matches []Match) (Match, bool) {
	if len(matches) == 0 {
		return Match{}, false
	}
	best := matches[0]
	for _, m := range matches[1:] {
		if m.Score > best.Score || (m.Score == best.Score && m.Index < best.Index) {
			best = m
		}
	}
	return best, true
}
