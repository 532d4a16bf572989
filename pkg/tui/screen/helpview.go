// ABOUTME: Help overlay: the screen's help markdown rendered by glamour inside a rounded frame
// ABOUTME: Shown and dismissed with the help key; any key dismisses it while shown

package screen

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/focusterm/internal/help"
	"github.com/mauromedda/focusterm/internal/log"
	"github.com/mauromedda/focusterm/pkg/tui"
	"github.com/mauromedda/focusterm/pkg/tui/key"
	"github.com/mauromedda/focusterm/pkg/tui/theme"
)

// helpView implements tui.Component.
type helpView struct {
	renderer *help.Renderer
	markdown string
	palette  theme.Palette
}

func (h *helpView) Render(out *tui.RenderBuffer, w int) {
	inner := max(w-4, 10)
	lines, err := h.renderer.Render(h.markdown, inner)
	if err != nil {
		log.Debug("screen: help: %v", err)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(h.palette.Border.Style().GetForeground()).
		Padding(0, 1).
		Width(w - 2).
		Render(strings.Join(lines, "\n"))
	out.WriteLines(strings.Split(box, "\n"))
}

func (h *helpView) Invalidate() {}

// HelpShown reports whether the help overlay is visible.
func (s *Screen) HelpShown() bool {
	return s.helpShown
}

func (s *Screen) toggleHelp() {
	if s.helpShown {
		s.renderer.PopOverlay()
		s.helpShown = false
		return
	}

	md := s.helpText
	if md == "" {
		md = s.defaultHelp()
	}
	if s.helpRenderer == nil {
		s.helpRenderer = help.NewRenderer(help.StyleFor(s.theme.Name))
	}
	rows, cols := s.renderer.Size()
	s.renderer.PushOverlay(tui.Overlay{
		Component: &helpView{
			renderer: s.helpRenderer,
			markdown: md,
			palette:  s.theme.Palette,
		},
		Position: s.helpPosition,
		Width:    max(min(cols, 72), cols*3/4),
		Height:   max(rows-2, 1),
	})
	s.helpShown = true
}

func (s *Screen) defaultHelp() string {
	return help.Markdown("Keys", "Any key closes this page.", []help.Binding{
		{Keys: names(s.nextKeys), Action: "focus next widget"},
		{Keys: names(s.prevKeys), Action: "focus previous widget"},
		{Keys: names(s.helpKeys), Action: "show or hide this help"},
		{Keys: names(s.quitKeys), Action: "quit"},
		{Keys: []string{"Enter"}, Action: "accept the field, pick the item, press the button"},
		{Keys: []string{"Escape"}, Action: "cancel the current field"},
		{Keys: []string{"Up", "Down", "PageUp", "PageDown"}, Action: "move in a list; type to jump"},
	})
}

func names(keys []key.Key) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.String()
	}
	return out
}
