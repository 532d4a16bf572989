// ABOUTME: Lock-free global theme pointer using atomic.Pointer
// ABOUTME: Set also tells lipgloss the background shade so it never queries the terminal for it

package theme

import (
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
)

var current atomic.Pointer[Theme]

func init() {
	p := DefaultPalette()
	current.Store(&Theme{Name: "default", Palette: p})
	// An explicit value skips lipgloss's OSC 11 query, whose reply would
	// otherwise arrive on the input stream as keys.
	lipgloss.SetHasDarkBackground(true)
}

// Current returns the active theme. Never returns nil.
func Current() *Theme {
	return current.Load()
}

// Set atomically replaces the active theme.
func Set(t *Theme) {
	current.Store(t)
	lipgloss.SetHasDarkBackground(!t.IsLight())
}

// IsLight reports whether the theme is meant for a light background.
func (t *Theme) IsLight() bool {
	return t.Name == "light"
}
