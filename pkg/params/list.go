// Package params implements positional argument windows for message
// rendering. A List exposes an ordered array of 64-bit slots whose
// interpretation (integer, string handle, date) is decided by whichever
// template control code consumes them, optionally cross-checked against a
// parallel array of type tags. Renderers pull values in template order
// through the cursor accessors and carve sub-views over the unconsumed tail
// to scope nested expansions such as plural branches.
package params

import "fmt"

// Tag identifies the expected kind of a slot. Tags are opaque control-code
// identifiers owned by the renderer's vocabulary; this package stores and
// compares them but never interprets them.
type Tag uint32

// List is a read window over argument slots. A root List borrows
// caller-owned storage; a sub-view shares its parent's backing arrays and
// must not outlive it.
//
// Out-of-range access indicates a template/argument mismatch and panics.
type List struct {
	parent *List
	data   []uint64
	types  []Tag
	offset int
	closed bool
}

// New creates a root List over the supplied slots. The types array may be
// nil when no type information is tracked; when present it must parallel
// values exactly. The List borrows both arrays, it does not copy.
func New(values []uint64, types []Tag) *List {
	if types != nil && len(types) != len(values) {
		panic(fmt.Sprintf("params: type window length %d does not match value window length %d", len(types), len(values)))
	}
	return &List{data: values, types: types}
}

// FromInt64s creates a root List with no type information from plain signed
// values. Slots hold the two's-complement bit patterns; readers decide
// signedness at access time.
func FromInt64s(values []int64) *List {
	data := make([]uint64, len(values))
	for i, v := range values {
		data[i] = uint64(v)
	}
	return &List{data: data}
}

// Len reports the number of slots visible to this window.
func (l *List) Len() int {
	return len(l.data)
}

// Remaining reports the number of unread slots.
func (l *List) Remaining() int {
	return len(l.data) - l.offset
}

// NextInt64 returns the slot at the cursor as a signed 64-bit integer and
// advances the cursor.
func (l *List) NextInt64() int64 {
	if l.offset >= len(l.data) {
		panic(fmt.Sprintf("params: read past the end of the argument window (len %d)", len(l.data)))
	}
	v := int64(l.data[l.offset])
	l.offset++
	return v
}

// NextInt32 returns the slot at the cursor narrowed to 32 bits and advances
// the cursor.
func (l *List) NextInt32() int32 {
	return int32(l.NextInt64())
}

// SlotAt returns a mutable reference to the slot at the absolute index i,
// bypassing the cursor. Callers such as argument-reordering control codes
// use it for direct addressing.
func (l *List) SlotAt(i int) *uint64 {
	l.check(i)
	return &l.data[i]
}

// Value returns the slot at the absolute index i without moving the cursor.
func (l *List) Value(i int) uint64 {
	l.check(i)
	return l.data[i]
}

// SetValue overwrites the slot at the absolute index i without moving the
// cursor. Writes through a sub-view are visible to the parent.
func (l *List) SetValue(i int, v uint64) {
	l.check(i)
	l.data[i] = v
}

// HasTypeInfo reports whether type tags are tracked for this window.
func (l *List) HasTypeInfo() bool {
	return l.types != nil
}

// TypeAt returns the tag for the slot at the absolute index i. It panics
// when no type information is tracked or i is out of range.
func (l *List) TypeAt(i int) Tag {
	if l.types == nil {
		panic("params: argument window has no type information")
	}
	l.check(i)
	return l.types[i]
}

// ClearTypeInfo drops the type channel for this window, silencing later
// TypeAt checks once a caller has fully validated the declared kinds.
func (l *List) ClearTypeInfo() {
	l.types = nil
}

// Sub carves a child view of size slots starting at the cursor. The child
// shares this list's backing storage; it must be Closed before this list is
// read past the delegated region and must not outlive it. Constructing the
// child does not advance this list's cursor, only Close does.
func (l *List) Sub(size int) *List {
	if size < 0 || size > l.Remaining() {
		panic(fmt.Sprintf("params: sub-view of %d slots exceeds the %d remaining", size, l.Remaining()))
	}
	child := &List{
		parent: l,
		data:   l.data[l.offset : l.offset+size],
	}
	if l.types != nil {
		child.types = l.types[l.offset : l.offset+size]
	}
	return child
}

// Close commits the view back to its parent, advancing the parent's cursor
// past the whole delegated window regardless of how many slots were read.
// Close is idempotent and a no-op on a root list.
func (l *List) Close() {
	if l.parent == nil || l.closed {
		return
	}
	l.parent.offset += len(l.data)
	l.closed = true
}

// Consume runs fn against a sub-view of size slots and guarantees the
// commit back to this list on all exit paths, including panics.
func (l *List) Consume(size int, fn func(*List)) {
	child := l.Sub(size)
	defer child.Close()
	fn(child)
}

// Rest returns an independent root window over the unconsumed tail. It
// shares storage with this list, so indexed writes remain visible, but its
// reads commit nothing back.
func (l *List) Rest() *List {
	rest := &List{data: l.data[l.offset:]}
	if l.types != nil {
		rest.types = l.types[l.offset:]
	}
	return rest
}

func (l *List) check(i int) {
	if i < 0 || i >= len(l.data) {
		panic(fmt.Sprintf("params: slot %d out of range (window size %d)", i, len(l.data)))
	}
}
