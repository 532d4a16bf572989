// ABOUTME: Screen runs the input event loop: one blocking key read, one dispatch, one render per iteration
// ABOUTME: Raw mode and the alternate screen are held for exactly the running period and always released

package screen

import (
	"errors"
	"fmt"
	"io"

	"github.com/mauromedda/focusterm/internal/help"
	"github.com/mauromedda/focusterm/internal/journal"
	"github.com/mauromedda/focusterm/internal/log"
	"github.com/mauromedda/focusterm/pkg/tui"
	"github.com/mauromedda/focusterm/pkg/tui/focus"
	"github.com/mauromedda/focusterm/pkg/tui/input"
	"github.com/mauromedda/focusterm/pkg/tui/key"
	"github.com/mauromedda/focusterm/pkg/tui/terminal"
	"github.com/mauromedda/focusterm/pkg/tui/theme"
	"github.com/mauromedda/focusterm/pkg/tui/widget"
)

// ErrAlreadyRun is returned when Run is called on a screen that has
// already run.
var ErrAlreadyRun = errors.New("screen: Run called more than once")

// State is the lifecycle state of a Screen.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return "idle"
	}
}

// Screen owns a terminal, an input stream and a focus ring for one run.
// It is single-threaded: callbacks run on the goroutine that called Run.
type Screen struct {
	term     terminal.Terminal
	reader   *input.Reader
	ring     *focus.Ring
	renderer *tui.Renderer

	quitKeys []key.Key
	nextKeys []key.Key
	prevKeys []key.Key
	helpKeys []key.Key

	helpText     string
	helpShown    bool
	helpRenderer *help.Renderer
	helpPosition tui.OverlayPosition
	theme        *theme.Theme
	data         any
	recorder     journal.Recorder
	statusBar    bool
	status       string
	state        State
}

// New creates a Screen reading keys from in and drawing on term.
func New(term terminal.Terminal, in io.Reader, ring *focus.Ring, opts ...Option) *Screen {
	if ring == nil {
		ring = focus.New()
	}
	s := &Screen{
		term:      term,
		reader:    input.NewReader(in),
		ring:      ring,
		quitKeys:  []key.Key{{Type: key.KeyCtrlC, Ctrl: true}},
		nextKeys:  []key.Key{{Type: key.KeyTab}},
		prevKeys:  []key.Key{{Type: key.KeyBackTab, Shift: true}},
		helpKeys:  []key.Key{{Type: key.KeyCtrlG, Ctrl: true}},
		theme:     theme.Current(),
		statusBar: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State reports the lifecycle state.
func (s *Screen) State() State {
	return s.state
}

// Ring returns the focus ring.
func (s *Screen) Ring() *focus.Ring {
	return s.ring
}

// Status returns the current status bar message.
func (s *Screen) Status() string {
	return s.status
}

// SetStatus replaces the status bar message.
func (s *Screen) SetStatus(msg string) {
	s.status = msg
}

// Run queries the window size, takes the terminal into raw mode and the
// alternate screen, and dispatches keys until a quit key is pressed or
// the input fails. The terminal mode is restored exactly once on every
// exit path. Terminal failures are *terminal.Error; input failures are
// *input.ReadError.
func (s *Screen) Run() error {
	if s.state != StateIdle {
		return ErrAlreadyRun
	}

	rows, cols, err := s.term.WindowSize()
	if err != nil {
		s.state = StateTerminated
		var te *terminal.Error
		if !errors.As(err, &te) {
			err = &terminal.Error{Op: "query window size", Err: err}
		}
		return err
	}
	s.renderer = tui.NewRenderer(s.term, rows, cols)

	err = terminal.WithRawMode(s.term, s.loop)
	s.state = StateTerminated
	return err
}

func (s *Screen) loop() error {
	s.state = StateRunning
	log.Debug("screen: running with %d widgets", s.ring.Len())

	if err := s.write(terminal.AltScreenEnter + terminal.BracketedPasteEnable + terminal.KittyKeysEnable +
		terminal.CursorHide + terminal.ClearScreen); err != nil {
		return err
	}
	defer func() {
		s.ring.Leave(s.context(key.Key{}))
		_ = s.write(terminal.StyleReset + terminal.CursorShow + terminal.KittyKeysDisable +
			terminal.BracketedPasteDisable + terminal.AltScreenLeave)
	}()

	s.ring.Enter(s.context(key.Key{}))
	s.checkPlacement()

	for {
		if err := s.render(); err != nil {
			return err
		}
		k, err := s.reader.ReadKey()
		if err != nil {
			log.Debug("screen: input closed: %v", err)
			return err
		}
		s.record(k)
		if !s.dispatch(k) {
			log.Debug("screen: quit on %s", k)
			return nil
		}
	}
}

// dispatch handles one key and reports whether the loop should continue.
func (s *Screen) dispatch(k key.Key) bool {
	ctx := s.context(k)
	switch {
	case matchesAny(k, s.quitKeys):
		return false
	case s.helpShown:
		s.toggleHelp()
	case matchesAny(k, s.helpKeys):
		s.toggleHelp()
	case matchesAny(k, s.nextKeys):
		s.ring.Advance(focus.Forward, ctx)
		s.checkPlacement()
	case matchesAny(k, s.prevKeys):
		s.ring.Advance(focus.Backward, ctx)
		s.checkPlacement()
	default:
		if w, ok := s.ring.Current(); ok {
			widget.HandleKey(w, k, ctx)
		}
	}
	return true
}

func (s *Screen) context(k key.Key) widget.Context {
	return widget.Context{Key: k, Data: s.data, Status: s.SetStatus}
}

// checkPlacement validates the focused widget against the current grid.
// Problems are reported, not fatal: the widget keeps focus.
func (s *Screen) checkPlacement() {
	w, ok := s.ring.Current()
	if !ok {
		return
	}
	rows, cols := s.renderer.Size()
	if s.statusBar {
		rows--
	}
	if err := widget.Validate(w, rows, cols); err != nil {
		log.Warn("screen: %v", err)
		s.SetStatus(err.Error())
	}
}

func (s *Screen) record(k key.Key) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.Record(k); err != nil {
		log.Warn("screen: journal: %v", err)
	}
}

// poll picks up a new window size. A failed query keeps the last size.
func (s *Screen) poll() {
	rows, cols, err := s.term.WindowSize()
	if err != nil {
		log.Debug("screen: window size: %v", err)
		return
	}
	s.renderer.Resize(rows, cols)
}

func (s *Screen) render() error {
	s.poll()
	p := s.theme.Palette

	var blocks []tui.Block
	for _, w := range s.ring.Widgets() {
		buf := tui.AcquireBuffer()
		w.Render(buf, p)
		lines := buf.Detach()
		tui.ReleaseBuffer(buf)
		blocks = append(blocks, tui.Block{Rect: w.Rect(), Lines: lines})
	}
	if s.statusBar {
		rows, cols := s.renderer.Size()
		blocks = append(blocks, tui.Block{
			Rect:  tui.Rect{X: 0, Y: rows - 1, Width: cols, Height: 1},
			Lines: []string{s.statusLine(cols, p)},
		})
	}

	if err := s.renderer.Render(blocks); err != nil {
		return &terminal.Error{Op: "render", Err: err}
	}
	return nil
}

func (s *Screen) write(seq string) error {
	if _, err := s.term.Write([]byte(seq)); err != nil {
		return &terminal.Error{Op: "write", Err: fmt.Errorf("control sequence: %w", err)}
	}
	return nil
}

func matchesAny(k key.Key, bindings []key.Key) bool {
	for _, b := range bindings {
		if k.Matches(b) {
			return true
		}
	}
	return false
}
