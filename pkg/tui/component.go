// ABOUTME: Core rendering contracts: Component, Rect, and the cursor marker
// ABOUTME: Components render lines into a RenderBuffer; the Renderer places them on screen

package tui

// CursorMarker is a zero-width marker that components embed in render output
// to indicate cursor position. The Renderer strips it and positions the
// real terminal cursor at that location.
const CursorMarker = "\x1b_fc:c\x07"

// Rect is a cell rectangle with a 0-based top-left corner.
type Rect struct {
	X      int `yaml:"x" json:"x"`
	Y      int `yaml:"y" json:"y"`
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

// Contains reports whether the rectangle lies fully inside a rows x cols grid.
func (r Rect) Contains(rows, cols int) bool {
	return r.X >= 0 && r.Y >= 0 && r.X+r.Width <= cols && r.Y+r.Height <= rows
}

// Component is the base interface for renderable elements.
type Component interface {
	// Render writes the component's visual lines into out.
	// Lines must not exceed width visible columns.
	Render(out *RenderBuffer, width int)

	// Invalidate clears any cached render state, forcing a full re-render
	// on the next Render call.
	Invalidate()
}
