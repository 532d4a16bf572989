// ABOUTME: Functional options for Screen: key bindings, help page, theme, user data, journal, status bar
// ABOUTME: Defaults are Ctrl+C to quit, Tab/Shift+Tab to move focus, Ctrl+G for help

package screen

import (
	"github.com/mauromedda/focusterm/internal/journal"
	"github.com/mauromedda/focusterm/pkg/tui"
	"github.com/mauromedda/focusterm/pkg/tui/key"
	"github.com/mauromedda/focusterm/pkg/tui/theme"
)

// Option configures a Screen.
type Option func(*Screen)

// WithQuitKeys replaces the keys that terminate the loop.
func WithQuitKeys(keys ...key.Key) Option {
	return func(s *Screen) {
		if len(keys) > 0 {
			s.quitKeys = keys
		}
	}
}

// WithFocusKeys replaces the keys that move focus forward and backward.
// An empty slice keeps the default for that direction.
func WithFocusKeys(next, prev []key.Key) Option {
	return func(s *Screen) {
		if len(next) > 0 {
			s.nextKeys = next
		}
		if len(prev) > 0 {
			s.prevKeys = prev
		}
	}
}

// WithHelpKey replaces the keys that toggle the help overlay.
func WithHelpKey(keys ...key.Key) Option {
	return func(s *Screen) {
		if len(keys) > 0 {
			s.helpKeys = keys
		}
	}
}

// WithHelp sets the markdown shown by the help overlay. Without it the
// overlay lists the screen's key bindings.
func WithHelp(markdown string) Option {
	return func(s *Screen) {
		s.helpText = markdown
	}
}

// WithHelpPosition anchors the help page. The default is centered.
func WithHelpPosition(p tui.OverlayPosition) Option {
	return func(s *Screen) {
		s.helpPosition = p
	}
}

// WithTheme sets the palette widgets are drawn with. The default is theme.Current().
func WithTheme(t *theme.Theme) Option {
	return func(s *Screen) {
		if t != nil {
			s.theme = t
		}
	}
}

// WithData attaches user data passed to every callback in Context.Data.
func WithData(data any) Option {
	return func(s *Screen) {
		s.data = data
	}
}

// WithRecorder journals every key the loop reads.
func WithRecorder(r journal.Recorder) Option {
	return func(s *Screen) {
		s.recorder = r
	}
}

// WithStatusBar toggles the bottom status row. It is on by default.
func WithStatusBar(on bool) Option {
	return func(s *Screen) {
		s.statusBar = on
	}
}
