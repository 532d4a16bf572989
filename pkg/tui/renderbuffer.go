// ABOUTME: RenderBuffer collects the lines one widget or overlay draws in a frame
// ABOUTME: Buffers are recycled through a sync.Pool between frames

package tui

import "sync"

// RenderBuffer receives the lines a component draws, top to bottom.
type RenderBuffer struct {
	Lines []string
}

var buffers = sync.Pool{
	New: func() any { return &RenderBuffer{Lines: make([]string, 0, 16)} },
}

// AcquireBuffer returns an empty buffer from the pool.
func AcquireBuffer() *RenderBuffer {
	b := buffers.Get().(*RenderBuffer)
	b.Reset()
	return b
}

// ReleaseBuffer hands b back to the pool. b must not be used afterwards.
func ReleaseBuffer(b *RenderBuffer) {
	if b == nil {
		return
	}
	b.Reset()
	buffers.Put(b)
}

func (b *RenderBuffer) WriteLine(line string) { b.Lines = append(b.Lines, line) }

func (b *RenderBuffer) WriteLines(lines []string) { b.Lines = append(b.Lines, lines...) }

func (b *RenderBuffer) Reset() { b.Lines = b.Lines[:0] }

func (b *RenderBuffer) Len() int { return len(b.Lines) }

// Detach returns a copy of the lines that outlives the buffer's release.
func (b *RenderBuffer) Detach() []string {
	out := make([]string, len(b.Lines))
	copy(out, b.Lines)
	return out
}
