package outbuf

import (
	"bytes"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var (
	_ io.Writer       = (*Builder)(nil)
	_ io.StringWriter = (*Builder)(nil)
	_ io.ByteWriter   = (*Builder)(nil)
)

func TestBuilder_AppendForms(t *testing.T) {
	var single, bulk []byte

	one := New(&single)
	for _, c := range []byte("héllo") {
		if err := one.WriteByte(c); err != nil {
			t.Fatalf("WriteByte: %v", err)
		}
	}

	many := New(&bulk)
	if _, err := many.WriteString("h"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	if _, err := many.WriteRune('é'); err != nil {
		t.Fatalf("WriteRune: %v", err)
	}
	if _, err := many.Write([]byte("llo")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if diff := cmp.Diff(single, bulk); diff != "" {
		t.Fatalf("byte-wise and bulk appends diverged (-single +bulk):\n%s", diff)
	}
}

func TestBuilder_WriteRuneEncoding(t *testing.T) {
	var buf []byte
	b := New(&buf)

	n, err := b.WriteRune('€')
	if err != nil {
		t.Fatalf("WriteRune: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 encoded bytes, got %d", n)
	}
	if !bytes.Equal(buf, []byte{0xE2, 0x82, 0xAC}) {
		t.Fatalf("unexpected encoding: % x", buf)
	}
}

func TestBuilder_TruncateLast(t *testing.T) {
	var buf []byte
	b := New(&buf)
	b.WriteString("abc")

	b.TruncateLast(2)
	if got := b.String(); got != "a" {
		t.Fatalf("expected %q, got %q", "a", got)
	}

	b.WriteString("bc")
	b.TruncateLast(100)
	if got := b.Len(); got != 0 {
		t.Fatalf("oversized truncate must clamp to empty, got len %d", got)
	}
}

func TestBuilder_LenTracksAppends(t *testing.T) {
	var buf []byte
	b := New(&buf)

	if got := b.Len(); got != 0 {
		t.Fatalf("fresh builder must be empty, got %d", got)
	}
	b.WriteString("abc")
	if got := b.Len(); got != 3 {
		t.Fatalf("expected len 3, got %d", got)
	}
	b.WriteByte('d')
	if got := b.Len(); got != len(buf) {
		t.Fatalf("Len must mirror the accumulator, got %d vs %d", got, len(buf))
	}
}

func TestBuilder_PatchByte(t *testing.T) {
	var buf []byte
	b := New(&buf)
	b.WriteString("abcdef")

	if got := b.ByteAt(0); got != 'a' {
		t.Fatalf("expected 'a', got %q", got)
	}
	b.SetByte(0, 'X')
	if got := b.String(); got != "Xbcdef" {
		t.Fatalf("expected %q, got %q", "Xbcdef", got)
	}

	mustPanic(t, "patch past the current end", func() {
		b.SetByte(b.Len(), '!')
	})
}

func TestBuilder_GrowPreservesContent(t *testing.T) {
	var buf []byte
	b := New(&buf)
	b.WriteString("abc")

	b.Grow(1024)
	if got := b.String(); got != "abc" {
		t.Fatalf("grow must not alter content, got %q", got)
	}
	if cap(buf)-len(buf) < 1024 {
		t.Fatalf("expected at least 1024 spare bytes, got %d", cap(buf)-len(buf))
	}
}

func TestBuilder_AccumulatorOutlivesBuilder(t *testing.T) {
	var buf []byte
	func() {
		b := New(&buf)
		b.WriteString("rendered")
	}()

	if got := string(buf); got != "rendered" {
		t.Fatalf("the external accumulator must hold the final text, got %q", got)
	}
}

func TestBuilder_NilDestinationPanics(t *testing.T) {
	mustPanic(t, "nil destination", func() {
		New(nil)
	})
}

func mustPanic(t *testing.T, what string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic: %s", what)
		}
	}()
	fn()
}
