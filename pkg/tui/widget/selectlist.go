// ABOUTME: SelectableList widget over a caller-owned tui.List of labels with clamped navigation
// ABOUTME: Printable keys build a type-ahead query that jumps to the best fuzzy match and marks the other candidates

package widget

import (
	"fmt"
	"strings"

	"github.com/mauromedda/focusterm/pkg/tui"
	"github.com/mauromedda/focusterm/pkg/tui/fuzzy"
	"github.com/mauromedda/focusterm/pkg/tui/key"
	"github.com/mauromedda/focusterm/pkg/tui/theme"
	"github.com/mauromedda/focusterm/pkg/tui/width"
)

// SelectableListConfig configures a SelectableList.
type SelectableListConfig struct {
	Common
	// Items is not owned by the widget; the caller may mutate it between keys.
	Items *tui.List[string]

	OnAccept func(ctx Context, index int, item string) error
	OnChange func(ctx Context, index int, item string) error
	OnCancel func(Context) error
}

// SelectableList shows labels and tracks one selected index.
type SelectableList struct {
	core
	items    *tui.List[string]
	selected int
	top      int
	query    []rune
	matched  map[int][]int // candidate index -> matched byte offsets

	onAccept func(Context, int, string) error
	onChange func(Context, int, string) error
	onCancel func(Context) error
}

// NewSelectableList validates cfg and builds a SelectableList.
func NewSelectableList(cfg SelectableListConfig) (*SelectableList, error) {
	c, err := newCore("SelectableList", cfg.Common)
	if err != nil {
		return nil, err
	}
	if cfg.Items == nil {
		return nil, &ConfigError{Widget: cfg.Title, Field: "items", Reason: "must not be nil"}
	}
	return &SelectableList{
		core:     c,
		items:    cfg.Items,
		onAccept: cfg.OnAccept,
		onChange: cfg.OnChange,
		onCancel: cfg.OnCancel,
	}, nil
}

// Items returns the backing list.
func (sl *SelectableList) Items() *tui.List[string] {
	return sl.items
}

// Selected returns the selected index, or -1 when the list is empty.
func (sl *SelectableList) Selected() int {
	sl.clamp()
	if sl.items.Len() == 0 {
		return -1
	}
	return sl.selected
}

// SelectedItem returns the selected label.
func (sl *SelectableList) SelectedItem() (string, bool) {
	return sl.items.At(sl.Selected())
}

// Query returns the pending type-ahead query.
func (sl *SelectableList) Query() string {
	return string(sl.query)
}

// Select moves the selection to i, clamped to the list bounds. OnChange
// is not fired.
func (sl *SelectableList) Select(i int) {
	sl.selected = i
	sl.clamp()
}

// clamp re-establishes 0 <= selected < len after the backing list changed.
func (sl *SelectableList) clamp() {
	n := sl.items.Len()
	sl.selected = max(0, min(sl.selected, n-1))
}

// rows is the number of item rows below the optional title row.
func (sl *SelectableList) rows() int {
	if h := sl.Rect().Height; h >= 2 {
		return h - 1
	}
	return 1
}

func (sl *SelectableList) handleKey(k key.Key, ctx Context) bool {
	sl.clamp()
	n := sl.items.Len()

	switch k.Type {
	case key.KeyUp:
		sl.moveTo(sl.selected-1, ctx)
	case key.KeyDown:
		sl.moveTo(sl.selected+1, ctx)
	case key.KeyPageUp:
		sl.moveTo(sl.selected-sl.rows(), ctx)
	case key.KeyPageDown:
		sl.moveTo(sl.selected+sl.rows(), ctx)
	case key.KeyHome:
		sl.moveTo(0, ctx)
	case key.KeyEnd:
		sl.moveTo(n-1, ctx)
	case key.KeyEnter:
		sl.resetQuery()
		if item, ok := sl.items.At(sl.selected); ok {
			idx := sl.selected
			invoke(sl.Title(), "on-accept", func() error {
				if sl.onAccept == nil {
					return nil
				}
				return sl.onAccept(ctx, idx, item)
			})
		}
	case key.KeyEscape:
		sl.resetQuery()
		invoke(sl.Title(), "on-cancel", func() error { return callCtx(sl.onCancel, ctx) })
	case key.KeyBackspace:
		if len(sl.query) == 0 {
			return false
		}
		sl.query = sl.query[:len(sl.query)-1]
		if len(sl.query) == 0 {
			sl.resetQuery()
			break
		}
		sl.jump(ctx)
	case key.KeyRune:
		if k.Alt || k.Ctrl {
			return false
		}
		sl.query = append(sl.query, k.Rune)
		if !sl.jump(ctx) {
			sl.query = sl.query[:len(sl.query)-1]
		}
	default:
		return false
	}
	return true
}

func (sl *SelectableList) resetQuery() {
	sl.query = sl.query[:0]
	sl.matched = nil
}

// moveTo clamps i, clears the query and fires OnChange if the index moved.
func (sl *SelectableList) moveTo(i int, ctx Context) {
	sl.resetQuery()
	n := sl.items.Len()
	if n == 0 {
		return
	}
	i = max(0, min(i, n-1))
	if i == sl.selected {
		return
	}
	sl.selected = i
	item, _ := sl.items.At(i)
	invoke(sl.Title(), "on-change", func() error {
		if sl.onChange == nil {
			return nil
		}
		return sl.onChange(ctx, i, item)
	})
}

// jump selects the best fuzzy match for the query and reports whether
// there was one. Without a match the previous candidates stay.
func (sl *SelectableList) jump(ctx Context) bool {
	matches := fuzzy.FindFrom(string(sl.query), labels{sl.items})
	top, ok := fuzzy.Top(matches)
	if !ok {
		return false
	}
	q := sl.query
	sl.moveTo(top.Index, ctx)
	sl.query = q
	sl.matched = make(map[int][]int, len(matches))
	for _, m := range matches {
		sl.matched[m.Index] = m.MatchedIndexes
	}
	return true
}

// Candidates returns the number of items matching the pending query.
func (sl *SelectableList) Candidates() int {
	return len(sl.matched)
}

// labels adapts a tui.List to fuzzy.Source.
type labels struct {
	l *tui.List[string]
}

func (s labels) String(i int) string {
	v, _ := s.l.At(i)
	return v
}

func (s labels) Len() int { return s.l.Len() }

// Render draws the title row (height >= 2) and a window of items that
// keeps the selection visible.
func (sl *SelectableList) Render(out *tui.RenderBuffer, p theme.Palette) {
	r := sl.Rect()
	if r.Height >= 2 {
		if len(sl.query) == 0 {
			out.WriteLine(titleLine(sl.Title(), sl.Focused(), r.Width, p))
		} else {
			q := fmt.Sprintf(" /%s (%d)", string(sl.query), len(sl.matched))
			tw := max(r.Width-width.VisibleWidth(q), 0)
			out.WriteLine(titleLine(sl.Title(), sl.Focused(), tw, p) + p.Accent.Apply(width.Fit(q, r.Width-tw)))
		}
	}

	rows := sl.rows()
	n := sl.items.Len()
	if n == 0 {
		out.WriteLine(p.Muted.Apply(width.Fit("  (empty)", r.Width)))
		return
	}

	sl.clamp()
	if sl.selected < sl.top {
		sl.top = sl.selected
	}
	if sl.selected >= sl.top+rows {
		sl.top = sl.selected - rows + 1
	}
	sl.top = max(0, min(sl.top, n-rows))

	for i := sl.top; i < min(sl.top+rows, n); i++ {
		item, _ := sl.items.At(i)
		if i != sl.selected {
			if offs, ok := sl.matched[i]; ok {
				item = highlight(item, offs, p.Accent)
			}
			out.WriteLine(width.Fit("  "+item, r.Width))
			continue
		}
		line := width.Fit("> "+item, r.Width)
		if sl.Focused() {
			out.WriteLine(p.Selection.Apply(line))
		} else {
			out.WriteLine(p.Bold.Apply(line))
		}
	}
}

// highlight colors the runes of s that start at the given byte offsets.
func highlight(s string, offsets []int, c theme.Color) string {
	at := make(map[int]bool, len(offsets))
	for _, o := range offsets {
		at[o] = true
	}
	var b strings.Builder
	for i, r := range s {
		if at[i] {
			b.WriteString(c.Apply(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
