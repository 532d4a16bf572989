// ABOUTME: Tests for the event loop: quit, read failure, terminal failure, focus keys, help overlay
// ABOUTME: Runs screens against a VirtualTerminal fed by chunked key streams

package screen

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/mauromedda/focusterm/internal/log"
	"github.com/mauromedda/focusterm/pkg/tui"
	"github.com/mauromedda/focusterm/pkg/tui/focus"
	"github.com/mauromedda/focusterm/pkg/tui/input"
	"github.com/mauromedda/focusterm/pkg/tui/key"
	"github.com/mauromedda/focusterm/pkg/tui/terminal"
	"github.com/mauromedda/focusterm/pkg/tui/widget"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// chunks returns one chunk per Read, then io.EOF.
type chunks struct {
	parts []string
}

func keys(parts ...string) *chunks {
	return &chunks{parts: parts}
}

func (c *chunks) Read(p []byte) (int, error) {
	if len(c.parts) == 0 {
		return 0, io.EOF
	}
	n := copy(p, c.parts[0])
	c.parts[0] = c.parts[0][n:]
	if c.parts[0] == "" {
		c.parts = c.parts[1:]
	}
	return n, nil
}

func button(t *testing.T, title string, y int, onPress func(widget.Context) error) *widget.Button {
	t.Helper()
	b, err := widget.NewButton(widget.ButtonConfig{
		Common:  widget.Common{Title: title, Rect: tui.Rect{X: 0, Y: y, Width: 12, Height: 1}},
		OnPress: onPress,
	})
	if err != nil {
		t.Fatalf("NewButton(%q): %v", title, err)
	}
	return b
}

func TestRun_QuitKeyRestoresTerminal(t *testing.T) {
	t.Parallel()

	term := terminal.NewVirtualTerminal(24, 80)
	s := New(term, keys("\x03"), focus.New(button(t, "OK", 0, nil)))

	if err := s.Run(); err != nil {
		t.Fatalf("Run() = %v; want nil", err)
	}
	if s.State() != StateTerminated {
		t.Errorf("State = %v; want terminated", s.State())
	}
	if term.IsRaw() {
		t.Error("terminal left in raw mode")
	}
	if got := term.RestoreCount(); got != 1 {
		t.Errorf("RestoreCount = %d; want 1", got)
	}

	out := term.Output()
	enter := strings.Index(out, terminal.AltScreenEnter)
	leave := strings.LastIndex(out, terminal.AltScreenLeave)
	if enter < 0 || leave < 0 || leave < enter {
		t.Errorf("alternate screen not entered then left: enter=%d leave=%d", enter, leave)
	}
	if !strings.Contains(out, "[ OK ]") {
		t.Error("button label was not drawn")
	}
}

func TestRun_InputModesToggled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      *chunks
		wantErr bool
	}{
		{name: "quit key", in: keys("\x03")},
		{name: "kitty quit key", in: keys("\x1b[99;5u")},
		{name: "input closed", in: keys(), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			term := terminal.NewVirtualTerminal(24, 80)
			s := New(term, tt.in, focus.New(button(t, "OK", 0, nil)))
			if err := s.Run(); (err != nil) != tt.wantErr {
				t.Fatalf("Run() = %v; wantErr %v", err, tt.wantErr)
			}

			out := term.Output()
			enter := strings.Index(out, terminal.AltScreenEnter)
			leave := strings.LastIndex(out, terminal.AltScreenLeave)
			for _, m := range []struct{ on, off string }{
				{terminal.BracketedPasteEnable, terminal.BracketedPasteDisable},
				{terminal.KittyKeysEnable, terminal.KittyKeysDisable},
			} {
				if strings.Count(out, m.on) != 1 || strings.Count(out, m.off) != 1 {
					t.Errorf("mode %q/%q: want one enable and one disable in %q", m.on, m.off, out)
					continue
				}
				on, off := strings.Index(out, m.on), strings.Index(out, m.off)
				if on < enter || off < on || off > leave {
					t.Errorf("mode %q toggled outside the alternate screen: enter=%d on=%d off=%d leave=%d",
						m.on, enter, on, off, leave)
				}
			}
		})
	}
}

func TestRun_PasteDoesNotTriggerKeys(t *testing.T) {
	t.Parallel()

	var accepted []string
	ti, err := widget.NewTextInput(widget.TextInputConfig{
		Common: widget.Common{Title: "name", Rect: tui.Rect{Width: 20, Height: 1}},
		OnAccept: func(v string) error {
			accepted = append(accepted, v)
			return nil
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	term := terminal.NewVirtualTerminal(24, 80)
	s := New(term, keys("a", "\x1b[200~zz\r\x03\x1b[201~", "b", "\r", "\x03"), focus.New(ti))
	if err := s.Run(); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if got := strings.Join(accepted, ","); got != "ab" {
		t.Errorf("accepted = %q; want %q", got, "ab")
	}
}

func TestRun_ReadFailureRestoresOnce(t *testing.T) {
	t.Parallel()

	var events []string
	mk := func(title string, y int) *widget.TextInput {
		ti, err := widget.NewTextInput(widget.TextInputConfig{
			Common: widget.Common{
				Title:     title,
				Rect:      tui.Rect{X: 0, Y: y, Width: 20, Height: 1},
				OnFocus:   func(widget.Context) error { events = append(events, "+"+title); return nil },
				OnUnfocus: func(widget.Context) error { events = append(events, "-"+title); return nil },
			},
		})
		if err != nil {
			t.Fatal(err)
		}
		return ti
	}

	term := terminal.NewVirtualTerminal(24, 80)
	s := New(term, keys("\t", "\t", "\t", "ab"), focus.New(mk("a", 0), mk("b", 1), mk("c", 2)))

	err := s.Run()
	var re *input.ReadError
	if !errors.As(err, &re) {
		t.Fatalf("Run() = %v; want *input.ReadError", err)
	}
	if !errors.Is(err, io.EOF) {
		t.Errorf("Run() = %v; want wrapped io.EOF", err)
	}
	if got := term.EnterCount(); got != 1 {
		t.Errorf("EnterCount = %d; want 1", got)
	}
	if got := term.RestoreCount(); got != 1 {
		t.Errorf("RestoreCount = %d; want 1", got)
	}

	want := "+a -a +b -b +c -c +a -a"
	if got := strings.Join(events, " "); got != want {
		t.Errorf("focus events = %q; want %q", got, want)
	}
}

func TestRun_TerminalFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(*terminal.VirtualTerminal)
		is    error
	}{
		{
			name:  "not a terminal",
			setup: func(v *terminal.VirtualTerminal) { v.SetInteractive(false) },
			is:    terminal.ErrNotTerminal,
		},
		{
			name:  "window size unavailable",
			setup: func(v *terminal.VirtualTerminal) { v.SetSizeError(io.ErrUnexpectedEOF) },
			is:    io.ErrUnexpectedEOF,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			term := terminal.NewVirtualTerminal(24, 80)
			tt.setup(term)
			pressed := false
			s := New(term, keys("\r"), focus.New(button(t, "OK", 0, func(widget.Context) error {
				pressed = true
				return nil
			})))

			err := s.Run()
			var te *terminal.Error
			if !errors.As(err, &te) {
				t.Fatalf("Run() = %v; want *terminal.Error", err)
			}
			if !errors.Is(err, tt.is) {
				t.Errorf("Run() = %v; want wrapped %v", err, tt.is)
			}
			if term.Output() != "" {
				t.Errorf("output written before the loop started: %q", term.Output())
			}
			if term.RestoreCount() != 0 {
				t.Errorf("RestoreCount = %d; want 0", term.RestoreCount())
			}
			if pressed {
				t.Error("keys were dispatched without a running loop")
			}
			if s.State() != StateTerminated {
				t.Errorf("State = %v; want terminated", s.State())
			}
		})
	}
}

func TestRun_FocusKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []string
		want  int
	}{
		{"no movement", nil, 0},
		{"tab", []string{"\t"}, 1},
		{"tab wraps", []string{"\t", "\t", "\t"}, 0},
		{"backtab wraps", []string{"\x1b[Z"}, 2},
		{"tab then backtab", []string{"\t", "\t", "\x1b[Z"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ring := focus.New(button(t, "a", 0, nil), button(t, "b", 1, nil), button(t, "c", 2, nil))
			term := terminal.NewVirtualTerminal(24, 80)
			s := New(term, keys(append(tt.input, "\x03")...), ring)

			if err := s.Run(); err != nil {
				t.Fatalf("Run() = %v", err)
			}
			if got := ring.Index(); got != tt.want {
				t.Errorf("Index = %d; want %d", got, tt.want)
			}
			for i, w := range ring.Widgets() {
				if w.Focused() {
					t.Errorf("widget %d still focused after the loop ended", i)
				}
			}
		})
	}
}

func TestRun_DeliversKeysToFocusedWidget(t *testing.T) {
	t.Parallel()

	var accepted []string
	mk := func(title string, y int) *widget.TextInput {
		ti, err := widget.NewTextInput(widget.TextInputConfig{
			Common: widget.Common{Title: title, Rect: tui.Rect{Y: y, Width: 20, Height: 1}},
			OnAccept: func(v string) error {
				accepted = append(accepted, title+"="+v)
				return nil
			},
		})
		if err != nil {
			t.Fatal(err)
		}
		return ti
	}

	term := terminal.NewVirtualTerminal(24, 80)
	s := New(term, keys("h", "i", "\r", "\t", "x", "\r", "\x03"), focus.New(mk("first", 0), mk("second", 1)))
	if err := s.Run(); err != nil {
		t.Fatalf("Run() = %v", err)
	}

	want := "first=hi second=x"
	if got := strings.Join(accepted, " "); got != want {
		t.Errorf("accepted = %q; want %q", got, want)
	}
}

func TestRun_CallbackStatusAndData(t *testing.T) {
	t.Parallel()

	type form struct{ saves int }
	data := &form{}

	save := button(t, "Save", 0, func(ctx widget.Context) error {
		ctx.Data.(*form).saves++
		ctx.SetStatus("saved " + ctx.Widget.Title())
		return nil
	})
	term := terminal.NewVirtualTerminal(24, 80)
	s := New(term, keys("\r", " ", "\x03"), focus.New(save), WithData(data))

	if err := s.Run(); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if data.saves != 2 {
		t.Errorf("saves = %d; want 2", data.saves)
	}
	if s.Status() != "saved Save" {
		t.Errorf("Status = %q; want %q", s.Status(), "saved Save")
	}
	if !strings.Contains(term.Output(), "saved Save") {
		t.Error("status message was not drawn")
	}
}

func TestRun_CallbackPanicDoesNotStopLoop(t *testing.T) {
	t.Parallel()

	presses := 0
	b := button(t, "Boom", 0, func(widget.Context) error {
		presses++
		panic("boom")
	})
	term := terminal.NewVirtualTerminal(24, 80)
	s := New(term, keys("\r", "\r", "\x03"), focus.New(b))

	if err := s.Run(); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if presses != 2 {
		t.Errorf("presses = %d; want 2", presses)
	}
	if term.RestoreCount() != 1 {
		t.Errorf("RestoreCount = %d; want 1", term.RestoreCount())
	}
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     []string
		wantShown bool
		wantText  string
	}{
		{"help key shows", []string{"\x07"}, true, ""},
		{"help key toggles", []string{"\x07", "\x07"}, false, ""},
		{"any key dismisses without delivery", []string{"\x07", "x"}, false, ""},
		{"typing after dismissal reaches the widget", []string{"\x07", "x", "y"}, false, "y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ti, err := widget.NewTextInput(widget.TextInputConfig{
				Common: widget.Common{Title: "name", Rect: tui.Rect{Width: 20, Height: 1}},
			})
			if err != nil {
				t.Fatal(err)
			}
			term := terminal.NewVirtualTerminal(24, 80)
			s := New(term, keys(append(tt.input, "\x03")...), focus.New(ti),
				WithHelp("# Usage\n\nFill in the *name*."))

			if err := s.Run(); err != nil {
				t.Fatalf("Run() = %v", err)
			}
			if s.HelpShown() != tt.wantShown {
				t.Errorf("HelpShown = %v; want %v", s.HelpShown(), tt.wantShown)
			}
			if ti.Text() != tt.wantText {
				t.Errorf("Text = %q; want %q", ti.Text(), tt.wantText)
			}
			if !strings.Contains(term.Output(), "Usage") {
				t.Error("help page was never drawn")
			}
		})
	}
}

func TestRun_CustomBindings(t *testing.T) {
	t.Parallel()

	ring := focus.New(button(t, "a", 0, nil), button(t, "b", 1, nil))
	term := terminal.NewVirtualTerminal(24, 80)
	s := New(term, keys("\x03", "n", "p", "n", "q", "n"), ring,
		WithQuitKeys(key.Key{Type: key.KeyRune, Rune: 'q'}),
		WithFocusKeys([]key.Key{{Type: key.KeyRune, Rune: 'n'}}, []key.Key{{Type: key.KeyRune, Rune: 'p'}}),
	)

	if err := s.Run(); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	// Ctrl+C is an ordinary key here; n p n leaves focus on b and the
	// trailing n is never read.
	if ring.Index() != 1 {
		t.Errorf("Index = %d; want 1", ring.Index())
	}
}

type keyLog struct {
	keys []key.Key
}

func (k *keyLog) Record(kk key.Key) error {
	k.keys = append(k.keys, kk)
	return nil
}

func TestRun_RecordsEveryKey(t *testing.T) {
	t.Parallel()

	rec := &keyLog{}
	term := terminal.NewVirtualTerminal(24, 80)
	s := New(term, keys("\t", "\x1b[A", "\x03"), focus.New(button(t, "a", 0, nil)), WithRecorder(rec))

	if err := s.Run(); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	want := []key.KeyType{key.KeyTab, key.KeyUp, key.KeyCtrlC}
	if len(rec.keys) != len(want) {
		t.Fatalf("recorded %d keys; want %d", len(rec.keys), len(want))
	}
	for i, kt := range want {
		if rec.keys[i].Type != kt {
			t.Errorf("key %d = %v; want type %d", i, rec.keys[i], kt)
		}
	}
}

func TestRun_PlacementReportedInStatus(t *testing.T) {
	t.Parallel()

	inside := button(t, "inside", 0, nil)
	outside := button(t, "outside", 23, nil) // row 23 is the status bar

	term := terminal.NewVirtualTerminal(24, 80)
	s := New(term, keys("\t", "\x03"), focus.New(inside, outside))

	if err := s.Run(); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if !strings.Contains(s.Status(), "does not fit") {
		t.Errorf("Status = %q; want a placement warning", s.Status())
	}
	if s.Ring().Index() != 1 {
		t.Errorf("focus should still move to the misplaced widget, Index = %d", s.Ring().Index())
	}
}

func TestRun_WithoutStatusBar(t *testing.T) {
	t.Parallel()

	last := button(t, "last", 23, nil)
	term := terminal.NewVirtualTerminal(24, 80)
	s := New(term, keys("\x03"), focus.New(last), WithStatusBar(false))

	if err := s.Run(); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if s.Status() != "" {
		t.Errorf("Status = %q; want empty", s.Status())
	}
	if strings.Contains(term.Output(), "Ctrl+C quit") {
		t.Error("status bar drawn while disabled")
	}
}

func TestRun_Twice(t *testing.T) {
	t.Parallel()

	term := terminal.NewVirtualTerminal(24, 80)
	s := New(term, keys("\x03"), focus.New(button(t, "a", 0, nil)))
	if err := s.Run(); err != nil {
		t.Fatalf("first Run() = %v", err)
	}
	if err := s.Run(); !errors.Is(err, ErrAlreadyRun) {
		t.Errorf("second Run() = %v; want ErrAlreadyRun", err)
	}
	if term.EnterCount() != 1 {
		t.Errorf("EnterCount = %d; want 1", term.EnterCount())
	}
}

func TestRun_EmptyRing(t *testing.T) {
	t.Parallel()

	term := terminal.NewVirtualTerminal(24, 80)
	s := New(term, keys("\t", "x", "\x03"), nil)
	if err := s.Run(); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if s.Ring().Len() != 0 {
		t.Errorf("Len = %d; want 0", s.Ring().Len())
	}
}

func TestState_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		s    State
		want string
	}{
		{StateIdle, "idle"},
		{StateRunning, "running"},
		{StateTerminated, "terminated"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("%d.String() = %q; want %q", tt.s, got, tt.want)
		}
	}
}
