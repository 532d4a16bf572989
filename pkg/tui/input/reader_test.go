// ABOUTME: Tests for Reader key decoding from an io.Reader.
// ABOUTME: Uses in-memory readers for deterministic input; covers sequences, chunking, paste, and read errors.

package input

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/mauromedda/focusterm/pkg/tui/key"
)

// chunkReader returns one predefined chunk per Read call, then io.EOF.
type chunkReader struct {
	chunks []string
}

func (c *chunkReader) Read(p []byte) (int, error) {
	if len(c.chunks) == 0 {
		return 0, io.EOF
	}
	n := copy(p, c.chunks[0])
	c.chunks[0] = c.chunks[0][n:]
	if c.chunks[0] == "" {
		c.chunks = c.chunks[1:]
	}
	return n, nil
}

// readAll decodes keys until the reader fails and returns them with the error.
func readAll(t *testing.T, rd *Reader) ([]key.Key, error) {
	t.Helper()
	var keys []key.Key
	for range 1000 {
		k, err := rd.ReadKey()
		if err != nil {
			return keys, err
		}
		keys = append(keys, k)
	}
	t.Fatal("reader did not terminate")
	return nil, nil
}

func TestReader_Sequences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []key.KeyType
	}{
		{name: "single rune", input: "a", want: []key.KeyType{key.KeyRune}},
		{name: "runes", input: "abc", want: []key.KeyType{key.KeyRune, key.KeyRune, key.KeyRune}},
		{name: "arrow up", input: "\x1b[A", want: []key.KeyType{key.KeyUp}},
		{name: "arrow then rune", input: "\x1b[Bx", want: []key.KeyType{key.KeyDown, key.KeyRune}},
		{name: "tab and backtab", input: "\t\x1b[Z", want: []key.KeyType{key.KeyTab, key.KeyBackTab}},
		{name: "lone escape", input: "\x1b", want: []key.KeyType{key.KeyEscape}},
		{name: "ss3 home", input: "\x1bOH", want: []key.KeyType{key.KeyHome}},
		{name: "kitty ctrl+c", input: "\x1b[99;5u", want: []key.KeyType{key.KeyCtrlC}},
		{name: "page down", input: "\x1b[6~", want: []key.KeyType{key.KeyPageDown}},
		{name: "vt home then rune", input: "\x1b[1~x", want: []key.KeyType{key.KeyHome, key.KeyRune}},
		{name: "vt end", input: "\x1b[4~", want: []key.KeyType{key.KeyEnd}},
		{name: "rxvt home", input: "\x1b[7~", want: []key.KeyType{key.KeyHome}},
		{name: "rxvt end", input: "\x1b[8~", want: []key.KeyType{key.KeyEnd}},
		{name: "unsupported csi skipped", input: "\x1b[99Zq", want: []key.KeyType{key.KeyRune}},
		{name: "bracketed paste skipped", input: "\x1b[200~pasted\x1b[201~z", want: []key.KeyType{key.KeyRune}},
		{name: "multibyte rune", input: "ñ", want: []key.KeyType{key.KeyRune}},
		{name: "enter", input: "\r", want: []key.KeyType{key.KeyEnter}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rd := NewReader(strings.NewReader(tt.input))

			keys, err := readAll(t, rd)
			if !errors.Is(err, io.EOF) {
				t.Fatalf("final error = %v, want io.EOF", err)
			}
			if len(keys) != len(tt.want) {
				t.Fatalf("got %d keys %v, want %d", len(keys), keys, len(tt.want))
			}
			for i, k := range keys {
				if k.Type != tt.want[i] {
					t.Errorf("key %d = %v, want type %v", i, k, tt.want[i])
				}
			}
		})
	}
}

func TestReader_SplitSequenceAcrossReads(t *testing.T) {
	t.Parallel()

	rd := NewReader(&chunkReader{chunks: []string{"\x1b[", "A", "\x1b[1;", "2B"}})

	k, err := rd.ReadKey()
	if err != nil || k.Type != key.KeyUp {
		t.Fatalf("first key = %v, %v; want Up", k, err)
	}
	k, err = rd.ReadKey()
	if err != nil || k.Type != key.KeyDown || !k.Shift {
		t.Fatalf("second key = %+v, %v; want Shift+Down", k, err)
	}
}

func TestReader_SplitUTF8AcrossReads(t *testing.T) {
	t.Parallel()

	b := []byte("é")
	rd := NewReader(&chunkReader{chunks: []string{string(b[:1]), string(b[1:])}})

	k, err := rd.ReadKey()
	if err != nil {
		t.Fatal(err)
	}
	if k.Type != key.KeyRune || k.Rune != 'é' {
		t.Errorf("got %+v, want rune é", k)
	}
}

func TestReader_EscapeAtEndOfChunkIsEscapeKey(t *testing.T) {
	t.Parallel()

	rd := NewReader(&chunkReader{chunks: []string{"\x1b", "a"}})

	k, err := rd.ReadKey()
	if err != nil || k.Type != key.KeyEscape {
		t.Fatalf("first key = %v, %v; want Escape", k, err)
	}
	k, err = rd.ReadKey()
	if err != nil || k.Type != key.KeyRune || k.Rune != 'a' {
		t.Fatalf("second key = %v, %v; want a", k, err)
	}
}

func TestReader_ReadErrorIsTyped(t *testing.T) {
	t.Parallel()

	errDevice := errors.New("device closed")
	rd := NewReader(iotest.ErrReader(errDevice))

	_, err := rd.ReadKey()
	var readErr *ReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("expected *ReadError, got %T (%v)", err, err)
	}
	if !errors.Is(err, errDevice) {
		t.Errorf("error should wrap the device error, got %v", err)
	}

	// The error is sticky.
	if _, err := rd.ReadKey(); !errors.Is(err, errDevice) {
		t.Errorf("second ReadKey() = %v, want sticky error", err)
	}
}

func TestReader_PendingBytesDeliveredBeforeError(t *testing.T) {
	t.Parallel()

	// DataErrReader returns the final data together with io.EOF.
	rd := NewReader(iotest.DataErrReader(strings.NewReader("x\x1b[")))

	keys, err := readAll(t, rd)
	if !errors.Is(err, io.EOF) {
		t.Fatalf("final error = %v, want io.EOF", err)
	}
	want := []key.KeyType{key.KeyRune, key.KeyEscape, key.KeyRune}
	if len(keys) != len(want) {
		t.Fatalf("got %v, want %d keys", keys, len(want))
	}
	for i, k := range keys {
		if k.Type != want[i] {
			t.Errorf("key %d = %v, want %v", i, k, want[i])
		}
	}
	if rd.Buffered() != 0 {
		t.Errorf("Buffered() = %d, want 0", rd.Buffered())
	}
}

func TestReader_OneReadPerCall(t *testing.T) {
	t.Parallel()

	cr := &countingReader{r: strings.NewReader("ab")}
	rd := NewReader(cr)

	if _, err := rd.ReadKey(); err != nil {
		t.Fatal(err)
	}
	if cr.calls != 1 {
		t.Fatalf("Read calls after first key = %d, want 1", cr.calls)
	}
	// Second key is already buffered: no further read.
	if _, err := rd.ReadKey(); err != nil {
		t.Fatal(err)
	}
	if cr.calls != 1 {
		t.Errorf("Read calls after buffered key = %d, want 1", cr.calls)
	}
}

type countingReader struct {
	r     io.Reader
	calls int
}

func (c *countingReader) Read(p []byte) (int, error) {
	c.calls++
	return c.r.Read(p)
}
