// Package render defines the seams between the argument/output core and
// template interpreters. It deliberately contains no template-syntax logic:
// a Renderer owns the interpretation of control codes, while this package
// supplies the contracts it consumes (argument windows, output sinks,
// string sources) and a driver for one-shot rendering passes.
package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/goliatone/go-msgfmt/pkg/catalog"
	"github.com/goliatone/go-msgfmt/pkg/outbuf"
	"github.com/goliatone/go-msgfmt/pkg/params"
)

// Sink is the capability an output destination must provide so generic
// formatting helpers can emit text without depending on a concrete type.
// *outbuf.Builder satisfies it.
type Sink interface {
	io.Writer
	io.StringWriter
	io.ByteWriter
	WriteRune(r rune) (int, error)
}

var _ Sink = (*outbuf.Builder)(nil)

// Source resolves opaque template identifiers to template text, typically
// backed by a catalog.Table.
type Source interface {
	Lookup(locale string, id catalog.StringID) (string, bool)
}

// Renderer interprets a template string, pulling typed arguments from args
// in template-defined order and emitting output into out.
type Renderer interface {
	Render(tmpl string, args *params.List, out *outbuf.Builder) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(tmpl string, args *params.List, out *outbuf.Builder) error

// Render implements Renderer.
func (f RendererFunc) Render(tmpl string, args *params.List, out *outbuf.Builder) error {
	return f(tmpl, args, out)
}

// Verbatim returns a Renderer that copies the template text unchanged and
// consumes no arguments. It is the degenerate interpreter used by the CLI
// tools and as a stand-in while a real interpreter is wired up.
func Verbatim() Renderer {
	return RendererFunc(func(tmpl string, _ *params.List, out *outbuf.Builder) error {
		_, err := out.WriteString(tmpl)
		return err
	})
}

// Annotated returns a Renderer that copies the template text and then
// appends every unread argument in brackets. The preview tool uses it to
// show which slots a template has been handed.
func Annotated() Renderer {
	return RendererFunc(func(tmpl string, args *params.List, out *outbuf.Builder) error {
		out.WriteString(tmpl)
		if args == nil {
			return nil
		}
		for args.Remaining() > 0 {
			out.WriteString(" [")
			out.WriteString(strconv.FormatInt(args.NextInt64(), 10))
			out.WriteByte(']')
		}
		return nil
	})
}

// GetString performs one full rendering pass: it resolves id for the
// requested locale, hands the template plus argument window to the
// renderer, and returns the accumulated text. Identifiers the source does
// not define render as the source's undefined-string marker rather than
// failing.
func GetString(src Source, r Renderer, locale string, id catalog.StringID, args *params.List) (string, error) {
	if src == nil {
		return "", errors.New("render: source is required")
	}
	if r == nil {
		return "", errors.New("render: renderer is required")
	}

	tmpl, ok := src.Lookup(locale, id)
	if !ok {
		tmpl = catalog.DefaultMarker
		if marked, ok := src.(interface{ Marker() string }); ok {
			tmpl = marked.Marker()
		}
	}

	var acc []byte
	out := outbuf.New(&acc)
	if err := r.Render(tmpl, args, out); err != nil {
		return "", fmt.Errorf("render: string %d: %w", id, err)
	}
	return out.String(), nil
}
