// ABOUTME: Status bar: focused widget title, last status message, and key hints on the bottom row
// ABOUTME: Styled with lipgloss from the palette's status bar color

package screen

import (
	"strings"

	"github.com/mauromedda/focusterm/pkg/tui/key"
	"github.com/mauromedda/focusterm/pkg/tui/theme"
	"github.com/mauromedda/focusterm/pkg/tui/width"
)

func (s *Screen) statusLine(cols int, p theme.Palette) string {
	var left []string
	if w, ok := s.ring.Current(); ok {
		left = append(left, w.Title())
	}
	if s.status != "" {
		left = append(left, s.status)
	}
	lhs := " " + strings.Join(left, " | ")

	rhs := strings.Join([]string{
		hint(s.nextKeys, "next"),
		hint(s.prevKeys, "prev"),
		hint(s.helpKeys, "help"),
		hint(s.quitKeys, "quit"),
	}, "  ") + " "

	// Hints give way to the message when the row is too narrow.
	gap := cols - width.VisibleWidth(lhs) - width.VisibleWidth(rhs)
	line := lhs
	if gap >= 1 {
		line = lhs + strings.Repeat(" ", gap) + rhs
	}

	return p.StatusBar.Style().Width(cols).MaxWidth(cols).Render(width.Fit(line, cols))
}

func hint(keys []key.Key, action string) string {
	if len(keys) == 0 {
		return ""
	}
	return keys[0].String() + " " + action
}
