// ABOUTME: Key journal: records decoded keys as JSON lines and replays them through an io.Reader
// ABOUTME: Replay yields one key per Read so the input reader sees the original key boundaries

package journal

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/mailru/easyjson"

	"github.com/mauromedda/focusterm/pkg/tui/key"
)

// Recorder receives every key a screen dispatches.
type Recorder interface {
	Record(k key.Key) error
}

// Writer is a Recorder that appends one JSON line per key to w.
type Writer struct {
	w   io.Writer
	seq int
	now func() time.Time
}

// NewWriter creates a Writer on w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, now: time.Now}
}

// Record writes k. Keys without a byte encoding are skipped.
func (jw *Writer) Record(k key.Key) error {
	raw := key.Encode(k)
	if raw == "" {
		return nil
	}
	jw.seq++
	line, err := easyjson.Marshal(Entry{
		Seq:  jw.seq,
		At:   jw.now().UnixMilli(),
		Name: k.String(),
		Raw:  raw,
	})
	if err != nil {
		return fmt.Errorf("encoding journal entry %d: %w", jw.seq, err)
	}
	line = append(line, '\n')
	if _, err := jw.w.Write(line); err != nil {
		return fmt.Errorf("writing journal entry %d: %w", jw.seq, err)
	}
	return nil
}

// Read parses a journal. Blank lines are ignored.
func Read(r io.Reader) ([]Entry, error) {
	var entries []Entry
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		var e Entry
		if err := easyjson.Unmarshal(line, &e); err != nil {
			return nil, fmt.Errorf("journal line %d: %w", lineNo, err)
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading journal: %w", err)
	}
	return entries, nil
}

// Keys decodes the raw bytes of each entry.
func Keys(entries []Entry) []key.Key {
	keys := make([]key.Key, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, key.ParseKey(e.Raw))
	}
	return keys
}

// Replay returns a reader that yields the raw bytes of one entry per
// Read call and io.EOF after the last one.
func Replay(entries []Entry) io.Reader {
	chunks := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Raw != "" {
			chunks = append(chunks, e.Raw)
		}
	}
	return &replayReader{chunks: chunks}
}

type replayReader struct {
	chunks []string
}

func (r *replayReader) Read(p []byte) (int, error) {
	if len(r.chunks) == 0 {
		return 0, io.EOF
	}
	n := copy(p, r.chunks[0])
	r.chunks[0] = r.chunks[0][n:]
	if r.chunks[0] == "" {
		r.chunks = r.chunks[1:]
	}
	return n, nil
}
