// ABOUTME: Renderer composes positioned blocks into a full-screen frame and writes only changed rows
// ABOUTME: Cursor marker extraction, overlay compositing, and CSI 2026 synchronized output

package tui

import (
	"fmt"
	"strings"

	"github.com/mauromedda/focusterm/pkg/tui/terminal"
	"github.com/mauromedda/focusterm/pkg/tui/width"
)

// Writer is the minimal interface for terminal output.
type Writer interface {
	Write(p []byte) (n int, err error)
}

// Block is a rendered component placed at an absolute position.
// Lines beyond Rect.Height or wider than Rect.Width are clipped.
type Block struct {
	Rect  Rect
	Lines []string
}

// Renderer draws frames of positioned blocks with absolute cursor moves.
// It diffs each frame against the previous one and rewrites changed rows only.
type Renderer struct {
	writer   Writer
	rows     int
	cols     int
	previous []string
	overlays []Overlay
}

// NewRenderer creates a Renderer writing to w for a rows x cols grid.
func NewRenderer(w Writer, rows, cols int) *Renderer {
	return &Renderer{writer: w, rows: rows, cols: cols}
}

// Resize updates the grid size; the next frame is drawn in full.
func (r *Renderer) Resize(rows, cols int) {
	if rows == r.rows && cols == r.cols {
		return
	}
	r.rows = rows
	r.cols = cols
	r.previous = nil
}

// Size returns the grid size as (rows, cols).
func (r *Renderer) Size() (rows, cols int) {
	return r.rows, r.cols
}

// Invalidate forces a full redraw on the next Render.
func (r *Renderer) Invalidate() {
	r.previous = nil
}

// PushOverlay adds an overlay on top of the blocks.
func (r *Renderer) PushOverlay(o Overlay) {
	r.overlays = append(r.overlays, o)
}

// PopOverlay removes the topmost overlay.
func (r *Renderer) PopOverlay() {
	if len(r.overlays) > 0 {
		r.overlays = r.overlays[:len(r.overlays)-1]
	}
}

// HasOverlay reports whether any overlay is shown.
func (r *Renderer) HasOverlay() bool {
	return len(r.overlays) > 0
}

// Render composes blocks (later blocks on top), then overlays, and writes
// the changed rows. The terminal cursor is shown at the first cursor
// marker found, or hidden when there is none.
func (r *Renderer) Render(blocks []Block) error {
	if r.rows <= 0 || r.cols <= 0 {
		return nil
	}

	frame := make([]string, r.rows)
	blank := strings.Repeat(" ", r.cols)
	for i := range frame {
		frame[i] = blank
	}

	cursorRow, cursorCol := -1, -1
	for _, b := range blocks {
		if row, col := r.place(frame, b); row >= 0 && cursorRow < 0 {
			cursorRow, cursorCol = row, col
		}
	}
	if len(r.overlays) > 0 {
		// Overlays are modal: they own the cursor.
		cursorRow, cursorCol = -1, -1
		r.compositeOverlays(frame)
	}

	var out strings.Builder
	for i, line := range frame {
		if i < len(r.previous) && r.previous[i] == line {
			continue
		}
		out.WriteString(terminal.MoveTo(0, i))
		out.WriteString(terminal.EraseLine)
		out.WriteString(line)
	}
	if cursorRow >= 0 {
		out.WriteString(terminal.MoveTo(cursorCol, cursorRow))
		out.WriteString(terminal.CursorShow)
	} else {
		out.WriteString(terminal.CursorHide)
	}

	r.previous = frame

	if _, err := r.writer.Write([]byte(terminal.SyncBegin + out.String() + terminal.SyncEnd)); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

// place splices a block into the frame and returns the cursor position
// found in its lines, or (-1, -1).
func (r *Renderer) place(frame []string, b Block) (cursorRow, cursorCol int) {
	cursorRow, cursorCol = -1, -1
	x, w := b.Rect.X, b.Rect.Width
	if x >= r.cols || w <= 0 {
		return cursorRow, cursorCol
	}
	if x < 0 {
		w += x
		x = 0
	}
	w = min(w, r.cols-x)
	if w <= 0 {
		return cursorRow, cursorCol
	}

	for i, line := range b.Lines {
		if b.Rect.Height > 0 && i >= b.Rect.Height {
			break
		}
		row := b.Rect.Y + i
		if row < 0 || row >= r.rows {
			continue
		}
		if idx := strings.Index(line, CursorMarker); idx >= 0 {
			before := line[:idx]
			line = before + line[idx+len(CursorMarker):]
			if cursorRow < 0 {
				cursorRow = row
				cursorCol = min(x+width.VisibleWidth(before), x+w-1)
			}
		}
		frame[row] = splice(frame[row], line, x, w, r.cols)
	}
	return cursorRow, cursorCol
}

// splice replaces columns [x, x+w) of row with content fitted to w columns.
func splice(row, content string, x, w, cols int) string {
	var b strings.Builder
	b.WriteString(width.SliceByColumn(row, 0, x))
	b.WriteString(terminal.StyleReset)
	b.WriteString(width.Fit(content, w))
	b.WriteString(terminal.StyleReset)
	b.WriteString(width.SliceByColumn(row, x+w, cols))
	return b.String()
}

// compositeOverlays renders overlays on top of the frame.
func (r *Renderer) compositeOverlays(frame []string) {
	for _, o := range r.overlays {
		ow := o.Width
		if ow <= 0 {
			ow = r.cols - 4
		}
		ow = max(min(ow, r.cols), 1)

		buf := AcquireBuffer()
		o.Component.Render(buf, ow)

		oh := buf.Len()
		if o.Height > 0 && oh > o.Height {
			oh = o.Height
		}
		oh = min(oh, r.rows)

		var startRow int
		switch o.Position {
		case OverlayCenter:
			startRow = (r.rows - oh) / 2
		case OverlayTop:
			startRow = 0
		case OverlayBottom:
			startRow = r.rows - oh
		}
		startRow = max(startRow, 0)

		r.place(frame, Block{
			Rect:  Rect{X: (r.cols - ow) / 2, Y: startRow, Width: ow, Height: oh},
			Lines: buf.Lines,
		})
		ReleaseBuffer(buf)
	}
}
