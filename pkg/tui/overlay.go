// ABOUTME: Overlay types for modal panels rendered on top of the widget layer
// ABOUTME: Supports centered, top-anchored, and bottom-anchored positioning

package tui

// OverlayPosition defines where an overlay is rendered.
type OverlayPosition int

const (
	OverlayCenter OverlayPosition = iota
	OverlayTop
	OverlayBottom
)

// Overlay represents a component rendered on top of every block.
type Overlay struct {
	Component Component
	Position  OverlayPosition
	Width     int // 0 means terminal width minus a 2-column margin on each side
	Height    int // 0 means auto-size from render output
}
