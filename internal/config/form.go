// ABOUTME: Builds widgets and a focus ring from a ScreenDef and tracks the values the user entered
// ABOUTME: Buttons run named actions; text and list values are captured on accept and change

package config

import (
	"fmt"
	"strings"

	"github.com/mauromedda/focusterm/pkg/tui"
	"github.com/mauromedda/focusterm/pkg/tui/focus"
	"github.com/mauromedda/focusterm/pkg/tui/widget"
)

// Action is a named button handler.
type Action func(ctx widget.Context, f *Form) error

// Field is one entry of a form's values.
type Field struct {
	Title string
	Value string
}

// Form is the runtime side of a ScreenDef.
type Form struct {
	Title string
	Help  string
	Ring  *focus.Ring

	accepted map[string]string
}

// BuildForm creates the widgets of def in tab order. Button actions are
// looked up in actions; an unknown name is an error.
func BuildForm(def *ScreenDef, actions map[string]Action) (*Form, error) {
	f := &Form{
		Title:    def.Title,
		Help:     def.Help,
		Ring:     focus.New(),
		accepted: make(map[string]string),
	}

	seen := make(map[string]bool, len(def.Widgets))
	for _, wd := range def.Widgets {
		if seen[wd.Title] {
			return nil, fmt.Errorf("screen %q: duplicate widget title %q", def.Title, wd.Title)
		}
		seen[wd.Title] = true

		w, err := f.build(wd, actions)
		if err != nil {
			return nil, fmt.Errorf("screen %q: %w", def.Title, err)
		}
		f.Ring.Add(w)
	}
	return f, nil
}

func (f *Form) build(wd WidgetDef, actions map[string]Action) (widget.Widget, error) {
	common := widget.Common{
		Title: wd.Title,
		Rect:  tui.Rect{X: wd.Rect.X, Y: wd.Rect.Y, Width: wd.Rect.Width, Height: wd.Rect.Height},
	}

	switch wd.Kind {
	case KindText:
		class, err := widget.ParseInputClass(wd.Class)
		if err != nil {
			return nil, fmt.Errorf("widget %q: %w", wd.Title, err)
		}
		mode, err := widget.ParseDisplayMode(wd.Mode)
		if err != nil {
			return nil, fmt.Errorf("widget %q: %w", wd.Title, err)
		}
		return widget.NewTextInput(widget.TextInputConfig{
			Common:      common,
			Class:       class,
			Mode:        mode,
			Placeholder: wd.Placeholder,
			OnAccept: func(v string) error {
				f.accepted[wd.Title] = v
				return nil
			},
		})

	case KindList:
		return widget.NewSelectableList(widget.SelectableListConfig{
			Common: common,
			Items:  tui.NewList(wd.Items...),
			OnAccept: func(ctx widget.Context, _ int, item string) error {
				f.accepted[wd.Title] = item
				ctx.SetStatus(wd.Title + ": " + item)
				return nil
			},
		})

	case KindButton:
		var press func(widget.Context) error
		if wd.Action != "" {
			act, ok := actions[wd.Action]
			if !ok {
				return nil, fmt.Errorf("widget %q: unknown action %q", wd.Title, wd.Action)
			}
			press = func(ctx widget.Context) error { return act(ctx, f) }
		}
		return widget.NewButton(widget.ButtonConfig{Common: common, OnPress: press})
	}

	return nil, fmt.Errorf("widget %q: unknown kind %q", wd.Title, wd.Kind)
}

// Values returns the value of every text field and list in tab order. A
// text field reports its last accepted text, or the pending buffer when
// nothing was accepted; a list reports its selected item.
func (f *Form) Values() []Field {
	var out []Field
	for _, w := range f.Ring.Widgets() {
		switch v := w.(type) {
		case *widget.TextInput:
			val, ok := f.accepted[v.Title()]
			if !ok {
				val = v.Text()
			}
			if v.Mode() == widget.ModePassword {
				val = strings.Repeat("*", len([]rune(val)))
			}
			out = append(out, Field{Title: v.Title(), Value: val})
		case *widget.SelectableList:
			item, _ := v.SelectedItem()
			out = append(out, Field{Title: v.Title(), Value: item})
		}
	}
	return out
}

// Reset empties every text field and moves every list back to its first item.
func (f *Form) Reset() {
	clear(f.accepted)
	for _, w := range f.Ring.Widgets() {
		switch v := w.(type) {
		case *widget.TextInput:
			v.SetText("")
		case *widget.SelectableList:
			v.Select(0)
		}
	}
}

// Summary renders Values as "title: value" lines.
func (f *Form) Summary() string {
	var b strings.Builder
	for _, fld := range f.Values() {
		fmt.Fprintf(&b, "%s: %s\n", fld.Title, fld.Value)
	}
	return b.String()
}
