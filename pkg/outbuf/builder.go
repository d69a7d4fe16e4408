// Package outbuf provides the text accumulator message renderers write
// into. A Builder wraps a caller-owned byte buffer and is append-only apart
// from two escape hatches: trimming the tail and patching already-written
// bytes, both of which renderers need for fixed-width or deferred-value
// fields that are emitted before their final content is known.
package outbuf

import (
	"fmt"
	"unicode/utf8"
)

// Builder accumulates rendered text into an external buffer. The buffer
// outlives the builder and holds the final output once rendering completes.
//
// Builder satisfies io.Writer, io.StringWriter and io.ByteWriter so generic
// formatting helpers can target it without depending on the concrete type;
// every writer method grows the buffer and always returns a nil error.
type Builder struct {
	dst *[]byte
}

// New creates a Builder appending to the supplied buffer.
func New(dst *[]byte) *Builder {
	if dst == nil {
		panic("outbuf: nil destination buffer")
	}
	return &Builder{dst: dst}
}

// Write appends p to the buffer. It implements io.Writer and never fails.
func (b *Builder) Write(p []byte) (int, error) {
	*b.dst = append(*b.dst, p...)
	return len(p), nil
}

// WriteString appends s to the buffer. It implements io.StringWriter and
// never fails.
func (b *Builder) WriteString(s string) (int, error) {
	*b.dst = append(*b.dst, s...)
	return len(s), nil
}

// WriteByte appends a single byte. It implements io.ByteWriter and never
// fails.
func (b *Builder) WriteByte(c byte) error {
	*b.dst = append(*b.dst, c)
	return nil
}

// WriteRune UTF-8 encodes r and appends the resulting bytes, reporting how
// many were written. Invalid scalar values encode as U+FFFD.
func (b *Builder) WriteRune(r rune) (int, error) {
	before := len(*b.dst)
	*b.dst = utf8.AppendRune(*b.dst, r)
	return len(*b.dst) - before, nil
}

// TruncateLast removes the trailing min(n, Len()) bytes. It clamps instead
// of failing so callers can trim back to a known length without checking
// the current size first.
func (b *Builder) TruncateLast(n int) {
	if n <= 0 {
		return
	}
	if n > len(*b.dst) {
		n = len(*b.dst)
	}
	*b.dst = (*b.dst)[:len(*b.dst)-n]
}

// Len reports the current length of the accumulated output. It is the
// index the next appended byte will occupy.
func (b *Builder) Len() int {
	return len(*b.dst)
}

// Grow reserves capacity for at least n more bytes.
func (b *Builder) Grow(n int) {
	if n <= 0 {
		return
	}
	if cap(*b.dst)-len(*b.dst) < n {
		grown := make([]byte, len(*b.dst), 2*cap(*b.dst)+n)
		copy(grown, *b.dst)
		*b.dst = grown
	}
}

// ByteAt returns the already-written byte at index i.
func (b *Builder) ByteAt(i int) byte {
	b.check(i)
	return (*b.dst)[i]
}

// SetByte patches the already-written byte at index i, e.g. to fix up a
// placeholder width field after the fact. It must never be used to write
// past the current end; that is what the writer methods are for.
func (b *Builder) SetByte(i int, c byte) {
	b.check(i)
	(*b.dst)[i] = c
}

// Bytes returns the accumulated output.
func (b *Builder) Bytes() []byte {
	return *b.dst
}

// String returns the accumulated output as a string.
func (b *Builder) String() string {
	return string(*b.dst)
}

func (b *Builder) check(i int) {
	if i < 0 || i >= len(*b.dst) {
		panic(fmt.Sprintf("outbuf: index %d out of range (len %d)", i, len(*b.dst)))
	}
}
