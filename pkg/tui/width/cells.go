// ABOUTME: Walks styled text as a sequence of terminal cells and escape sequences
// ABOUTME: Escape sequences occupy no columns; grapheme clusters take their East Asian width

package width

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// cell is one step of a walk: an escape sequence (cols == 0, esc set)
// or one grapheme cluster starting at column col.
type cell struct {
	text string
	col  int
	cols int
	esc  bool
}

// walk calls fn for every escape sequence and grapheme cluster in s, in
// order. It stops early when fn returns false.
func walk(s string, fn func(c cell) bool) {
	col := 0
	state := -1
	for i := 0; i < len(s); {
		if s[i] == '\x1b' {
			end := escapeEnd(s, i)
			if !fn(cell{text: s[i:end], col: col, esc: true}) {
				return
			}
			i = end
			state = -1
			continue
		}
		cluster, _, _, next := uniseg.FirstGraphemeClusterInString(s[i:], state)
		state = next
		w := clusterWidth(cluster)
		if !fn(cell{text: cluster, col: col, cols: w}) {
			return
		}
		col += w
		i += len(cluster)
	}
}

// clusterWidth is the width of the cluster's base rune.
func clusterWidth(cluster string) int {
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}

// escapeEnd returns the index just past the escape sequence starting at s[i].
// CSI ends at its final byte; OSC, APC, DCS and PM end at BEL or ST.
func escapeEnd(s string, i int) int {
	i++
	if i >= len(s) {
		return i
	}
	switch s[i] {
	case '[':
		for i++; i < len(s); i++ {
			if s[i] >= 0x40 && s[i] <= 0x7E {
				return i + 1
			}
		}
		return i
	case ']', '_', 'P', '^':
		for i++; i < len(s); i++ {
			if s[i] == '\x07' {
				return i + 1
			}
			if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
		}
		return i
	case '(', ')':
		return min(i+2, len(s))
	default:
		return i + 1
	}
}
