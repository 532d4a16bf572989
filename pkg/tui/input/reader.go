// ABOUTME: Reader performs one blocking read at a time and decodes exactly one key per ReadKey call.
// ABOUTME: Escape sequences are decoded before return; bracketed paste is skipped; no timers or goroutines.

package input

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/mauromedda/focusterm/pkg/tui/key"
)

const (
	readBufSize  = 256
	maxSeqLen    = 16
	bracketStart = "\x1b[200~"
	bracketEnd   = "\x1b[201~"
)

// ReadError reports a failed read from the input stream. The event loop
// terminates on the first ReadError; it is never retried.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("input: read key: %v", e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Reader decodes key events from a raw terminal input stream.
// It is not safe for concurrent use; one loop owns it.
type Reader struct {
	r   io.Reader
	buf []byte
	tmp []byte
	err error // sticky read error, reported once the buffer is drained
}

// NewReader creates a Reader on r.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		r:   r,
		buf: make([]byte, 0, readBufSize),
		tmp: make([]byte, readBufSize),
	}
}

// ReadKey blocks until one complete key is available and returns it.
// When the underlying reader fails, pending bytes are still delivered
// first; after that every call returns a *ReadError.
func (rd *Reader) ReadKey() (key.Key, error) {
	for {
		if len(rd.buf) > 0 {
			consumed, k, needMore := rd.tryParse()
			if consumed > 0 {
				rd.buf = rd.buf[consumed:]
				if k.Type == key.KeyUnknown && consumed > 1 {
					// Swallowed paste block or unsupported sequence.
					continue
				}
				return k, nil
			}
			if needMore && rd.err != nil {
				// Nothing more will arrive; drain the stuck prefix.
				return rd.drainOne(), nil
			}
		}

		if rd.err != nil {
			return key.Key{}, &ReadError{Err: rd.err}
		}
		rd.fill()
	}
}

// Buffered returns the number of bytes read but not yet decoded.
func (rd *Reader) Buffered() int {
	return len(rd.buf)
}

// fill performs exactly one Read on the underlying stream.
func (rd *Reader) fill() {
	n, err := rd.r.Read(rd.tmp)
	if n > 0 {
		rd.buf = append(rd.buf, rd.tmp[:n]...)
	}
	if err != nil {
		rd.err = err
	}
	if n == 0 && err == nil {
		// A reader returning (0, nil) forever would spin; treat it as EOF.
		rd.err = io.ErrNoProgress
	}
}

// tryParse attempts to decode one key from the front of rd.buf.
// Returns (consumed bytes, key, needs-more-bytes flag).
func (rd *Reader) tryParse() (int, key.Key, bool) {
	if consumed, complete := rd.bracketedPaste(); consumed > 0 || !complete {
		if !complete {
			return 0, key.Key{}, true
		}
		return consumed, key.Key{Type: key.KeyUnknown}, false
	}

	if rd.buf[0] == 0x1b {
		if len(rd.buf) == 1 {
			// The read ended on ESC: terminals deliver sequences in one
			// write, so a trailing ESC is the Escape key.
			return 1, key.Key{Type: key.KeyEscape}, false
		}
		return rd.parseEscape()
	}

	if !utf8.FullRune(rd.buf) {
		return 0, key.Key{}, true
	}
	r, size := utf8.DecodeRune(rd.buf)
	if r == utf8.RuneError && size <= 1 {
		return 1, key.Key{Type: key.KeyUnknown}, false
	}
	return size, key.ParseKey(string(rd.buf[:size])), false
}

// parseEscape decodes an ESC-prefixed sequence; len(rd.buf) >= 2.
// ESC [ and ESC O always start a CSI/SS3 sequence, never Alt+[ or Alt+O.
func (rd *Reader) parseEscape() (int, key.Key, bool) {
	limit := min(len(rd.buf), maxSeqLen)
	intro := rd.buf[1] == '[' || rd.buf[1] == 'O'

	// Longest match first.
	for end := limit; end >= 2; end-- {
		if end == 2 && intro {
			break
		}
		k := key.ParseKey(string(rd.buf[:end]))
		if k.Type != key.KeyUnknown {
			return end, k, false
		}
	}

	if !intro {
		// Unknown sequence: deliver ESC and let the rest be re-parsed.
		return 1, key.Key{Type: key.KeyEscape}, false
	}

	// A short CSI/SS3 prefix may still be arriving.
	if len(rd.buf) <= 3 && !(rd.buf[1] == 'O' && len(rd.buf) == 3) {
		return 0, key.Key{}, true
	}

	if rd.buf[1] == 'O' {
		return 3, key.Key{Type: key.KeyUnknown}, false
	}

	// Unsupported CSI: skip through its final byte.
	for i := 2; i < len(rd.buf); i++ {
		if b := rd.buf[i]; b >= 0x40 && b <= 0x7e {
			return i + 1, key.Key{Type: key.KeyUnknown}, false
		}
	}
	if len(rd.buf) < maxSeqLen {
		return 0, key.Key{}, true
	}
	return 1, key.Key{Type: key.KeyEscape}, false
}

// bracketedPaste reports how many bytes a complete paste block at the front
// of the buffer spans. complete is false while the end marker is missing.
func (rd *Reader) bracketedPaste() (consumed int, complete bool) {
	s := string(rd.buf)
	if len(s) < len(bracketStart) || s[:len(bracketStart)] != bracketStart {
		return 0, true
	}
	for i := len(bracketStart); i <= len(s)-len(bracketEnd); i++ {
		if s[i:i+len(bracketEnd)] == bracketEnd {
			return i + len(bracketEnd), true
		}
	}
	return 0, false
}

// drainOne consumes the head of a buffer that can no longer be completed.
func (rd *Reader) drainOne() key.Key {
	b := rd.buf[0]
	rd.buf = rd.buf[1:]
	if b == 0x1b {
		return key.Key{Type: key.KeyEscape}
	}
	return key.Key{Type: key.KeyUnknown}
}
