// ABOUTME: Tests for the fuzzy matching wrapper
// ABOUTME: Verifies candidate ranking, matched offsets, and top-match selection

package fuzzy

import (
	"slices"
	"testing"
)

type labels []string

func (l labels) String(i int) string { return l[i] }
func (l labels) Len() int            { return len(l) }

var depts = labels{"Accounting", "Engineering", "Marketing", "Sales"}

func TestFindFrom(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern string
		data    labels
		want    []int // candidate indexes in any order
	}{
		{name: "subsequence", pattern: "ing", data: depts, want: []int{0, 1, 2}},
		{name: "single", pattern: "sal", data: depts, want: []int{3}},
		{name: "no match", pattern: "zz", data: depts},
		{name: "empty pattern", pattern: "", data: depts},
		{name: "empty source", pattern: "a", data: labels{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var got []int
			for _, m := range FindFrom(tt.pattern, tt.data) {
				got = append(got, m.Index)
			}
			slices.Sort(got)
			if !slices.Equal(got, tt.want) {
				t.Errorf("FindFrom(%q) indexes = %v, want %v", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestFindFrom_MatchedIndexes(t *testing.T) {
	t.Parallel()

	matches := FindFrom("ae", labels{"Sales"})
	if len(matches) != 1 {
		t.Fatalf("FindFrom() = %+v, want one match", matches)
	}
	if got := matches[0].MatchedIndexes; !slices.Equal(got, []int{1, 3}) {
		t.Errorf("MatchedIndexes = %v, want [1 3]", got)
	}
}

func TestTop(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern string
		want    int
		wantOK  bool
	}{
		{name: "prefix", pattern: "eng", want: 1, wantOK: true},
		{name: "single letter", pattern: "s", want: 3, wantOK: true},
		{name: "no match", pattern: "zz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m, ok := Top(FindFrom(tt.pattern, depts))
			if ok != tt.wantOK || (ok && m.Index != tt.want) {
				t.Errorf("Top(%q) = %d, %v; want %d, %v", tt.pattern, m.Index, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestTop_TieKeepsEarliest(t *testing.T) {
	t.Parallel()

	m, ok := Top([]Match{{Index: 2, Score: 5}, {Index: 0, Score: 5}, {Index: 1, Score: 3}})
	if !ok || m.Index != 0 {
		t.Errorf("Top() = %+v, %v; want index 0", m, ok)
	}
}
