// ABOUTME: Shared widget drawing helpers: title rows, bracketed and boxed button labels
// ABOUTME: Boxes are drawn with lipgloss rounded borders in the palette's colors

package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/focusterm/pkg/tui/theme"
	"github.com/mauromedda/focusterm/pkg/tui/width"
)

func titleLine(title string, focused bool, w int, p theme.Palette) string {
	if focused {
		return p.Focused.Apply(width.Fit(title, w))
	}
	return p.Title.Apply(width.Fit(title, w))
}

func bracketed(title string, focused bool, w int, p theme.Palette) string {
	label := width.Center("[ "+title+" ]", w)
	if focused {
		return p.ButtonFocused.Apply(label)
	}
	return p.Button.Apply(label)
}

// boxed renders title centered in a rounded box exactly w columns wide
// and h rows tall.
func boxed(title string, focused bool, w, h int, p theme.Palette) []string {
	text, border := p.Button, p.Border
	if focused {
		text, border = p.ButtonFocused, p.Focused
	}

	inner := w - 2
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border.Style().GetForeground()).
		Width(inner).
		Height(h-2).
		Align(lipgloss.Center, lipgloss.Center)

	box := style.Render(text.Apply(width.TruncateToWidth(title, inner)))
	lines := strings.Split(box, "\n")
	for i, l := range lines {
		lines[i] = width.Fit(l, w)
	}
	return lines
}
