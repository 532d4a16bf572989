// ABOUTME: Focus ring: cyclic tab order over widgets with exactly one focused member
// ABOUTME: Advance clears the outgoing widget before focusing the incoming one

package focus

import (
	"iter"

	"github.com/mauromedda/focusterm/pkg/tui"
	"github.com/mauromedda/focusterm/pkg/tui/widget"
)

// Direction selects the neighbour Advance moves to.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Ring holds widgets in insertion order, which is also the tab order.
type Ring struct {
	widgets *tui.List[widget.Widget]
	index   int
}

// New creates a ring over ws with the first widget current.
func New(ws ...widget.Widget) *Ring {
	return &Ring{widgets: tui.NewList(ws...)}
}

// Add appends w to the end of the tab order.
func (r *Ring) Add(w widget.Widget) {
	r.widgets.Append(w)
}

// Len returns the number of widgets.
func (r *Ring) Len() int {
	return r.widgets.Len()
}

// Index returns the position of the current widget, or -1 when empty.
func (r *Ring) Index() int {
	if r.widgets.Len() == 0 {
		return -1
	}
	return r.index
}

// Current returns the focused widget. The boolean is false for an empty ring.
func (r *Ring) Current() (widget.Widget, bool) {
	return r.widgets.At(r.Index())
}

// Widgets iterates the widgets in tab order.
func (r *Ring) Widgets() iter.Seq2[int, widget.Widget] {
	return r.widgets.All()
}

// Enter focuses the current widget. Used once when a screen starts.
func (r *Ring) Enter(ctx widget.Context) {
	if w, ok := r.Current(); ok {
		widget.SetFocus(w, ctx)
	}
}

// Leave unfocuses the current widget. Used once when a screen stops.
func (r *Ring) Leave(ctx widget.Context) {
	if w, ok := r.Current(); ok {
		widget.ClearFocus(w, ctx)
	}
}

// Advance moves focus one step in dir, wrapping at both ends. A ring of
// one widget clears and re-focuses that widget; an empty ring does nothing.
func (r *Ring) Advance(dir Direction, ctx widget.Context) {
	n := r.widgets.Len()
	if n == 0 {
		return
	}
	out, _ := r.widgets.At(r.index)
	widget.ClearFocus(out, ctx)

	step := 1
	if dir == Backward {
		step = n - 1
	}
	r.index = (r.index + step) % n

	in, _ := r.widgets.At(r.index)
	widget.SetFocus(in, ctx)
}
