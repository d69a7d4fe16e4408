// Package msgfmt provides the runtime substrate for rendering localized,
// parameterized message templates: positional argument windows
// (pkg/params), an incremental output accumulator (pkg/outbuf), a
// locale-keyed template catalog (pkg/catalog) and the renderer seams that
// tie them together (pkg/render). The root package re-exports the common
// types and offers one-shot helpers for callers that do not need to import
// the subpackages directly.
package msgfmt

import (
	"io/fs"

	"github.com/goliatone/go-msgfmt/pkg/catalog"
	"github.com/goliatone/go-msgfmt/pkg/outbuf"
	"github.com/goliatone/go-msgfmt/pkg/params"
	"github.com/goliatone/go-msgfmt/pkg/render"
)

// Tag is the opaque per-slot type identifier carried by argument windows.
type Tag = params.Tag

// List is a positional window over 64-bit argument slots.
type List = params.List

// Pack assembles one-shot argument lists from Go values.
type Pack = params.Pack

// Builder is the incremental output accumulator renderers write into.
type Builder = outbuf.Builder

// StringID is an opaque template identifier.
type StringID = catalog.StringID

// Table is the locale-keyed template lookup table.
type Table = catalog.Table

// Renderer interprets template text against an argument window.
type Renderer = render.Renderer

// NewBuilder creates a Builder appending to the supplied accumulator.
func NewBuilder(dst *[]byte) *Builder {
	return outbuf.New(dst)
}

// LoadCatalog walks fsys for catalog documents and returns the assembled
// lookup table.
func LoadCatalog(fsys fs.FS, opts ...catalog.Option) (*catalog.Table, error) {
	return catalog.Load(fsys, opts...)
}

// GetString resolves id for the requested locale and renders it with the
// supplied renderer and arguments. It is the simplest entry point for
// callers that just want the final text.
func GetString(src render.Source, r Renderer, locale string, id StringID, args *List) (string, error) {
	return render.GetString(src, r, locale, id, args)
}
