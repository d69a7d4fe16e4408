package params

import "fmt"

// Pack assembles a one-shot argument list from Go values. It owns the slot
// storage plus a string pool: string arguments are interned into the pool
// and their slot holds the pool handle, so a slot is always a plain 64-bit
// value regardless of the argument kind. The Pack must outlive any List
// produced from it.
type Pack struct {
	values []uint64
	types  []Tag
	pool   []string
}

// NewPack creates a pack of size slots with no type channel.
func NewPack(size int) *Pack {
	if size < 0 {
		panic(fmt.Sprintf("params: negative pack size %d", size))
	}
	return &Pack{values: make([]uint64, size)}
}

// NewTypedPack creates a pack of size slots that also records a type tag
// per slot.
func NewTypedPack(size int) *Pack {
	p := NewPack(size)
	p.types = make([]Tag, size)
	return p
}

// Len reports the number of slots in the pack.
func (p *Pack) Len() int {
	return len(p.values)
}

// SetUint64 stores a raw 64-bit value in slot i.
func (p *Pack) SetUint64(i int, v uint64) {
	p.check(i)
	p.values[i] = v
}

// SetInt64 stores a signed value in slot i as its two's-complement bit
// pattern.
func (p *Pack) SetInt64(i int, v int64) {
	p.SetUint64(i, uint64(v))
}

// SetString interns s into the pack's pool and stores the pool handle in
// slot i. Use StringAt to resolve the handle back.
func (p *Pack) SetString(i int, s string) {
	p.check(i)
	p.values[i] = uint64(len(p.pool))
	p.pool = append(p.pool, s)
}

// SetTag records the declared kind for slot i. It panics when the pack was
// created without a type channel.
func (p *Pack) SetTag(i int, t Tag) {
	if p.types == nil {
		panic("params: pack has no type channel")
	}
	p.check(i)
	p.types[i] = t
}

// StringAt resolves a string handle previously stored by SetString.
func (p *Pack) StringAt(handle uint64) string {
	if handle >= uint64(len(p.pool)) {
		panic(fmt.Sprintf("params: unknown string handle %d (pool size %d)", handle, len(p.pool)))
	}
	return p.pool[handle]
}

// List returns a root List over the pack's storage. The list borrows the
// pack's arrays; multiple calls yield independent cursors over the same
// slots.
func (p *Pack) List() *List {
	return New(p.values, p.types)
}

func (p *Pack) check(i int) {
	if i < 0 || i >= len(p.values) {
		panic(fmt.Sprintf("params: pack slot %d out of range (size %d)", i, len(p.values)))
	}
}
