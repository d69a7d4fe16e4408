// Package catalog implements the locale-keyed lookup table that resolves
// opaque template identifiers to template strings. It stores templates
// verbatim: interpreting their control codes is the renderer's concern.
package catalog

import (
	"fmt"
	"sort"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/language"
)

// StringID is an opaque template identifier. The numbering scheme belongs
// to the producers of catalog documents; this package only stores and
// compares identifiers.
type StringID uint32

// DefaultMarker substitutes for templates that no loaded locale defines.
// Rendering a marker instead of failing keeps a malformed or incomplete
// catalog from propagating faults into the renderer.
const DefaultMarker = "(undefined string)"

// Option customises a Table.
type Option func(*Table)

// WithDefaultLocale sets the locale consulted when the requested one has no
// match or lacks the requested string.
func WithDefaultLocale(locale string) Option {
	return func(t *Table) {
		if tag, err := language.Parse(locale); err == nil {
			t.fallback = tag.String()
		}
	}
}

// WithMarker overrides the text substituted for undefined strings.
func WithMarker(marker string) Option {
	return func(t *Table) {
		t.marker = marker
	}
}

// WithSanitizer applies a bluemonday policy to every template at
// registration time. Catalogs destined for HTML surfaces use it to strip
// markup smuggled in through translation files.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(t *Table) {
		t.sanitizer = policy
	}
}

// Table maps locale plus StringID to template text. Registration is
// guarded so catalogs can be assembled from several documents; lookups use
// BCP 47 matching to pick the best loaded locale for a request.
type Table struct {
	mu        sync.RWMutex
	locales   map[string]map[StringID]string
	keys      []string // canonical locale keys, parallel to tags
	tags      []language.Tag
	matcher   language.Matcher
	fallback  string
	marker    string
	sanitizer *bluemonday.Policy
}

// New creates an empty Table. Without options the fallback locale is "en"
// and undefined strings resolve to DefaultMarker.
func New(opts ...Option) *Table {
	t := &Table{
		locales:  make(map[string]map[StringID]string),
		fallback: language.English.String(),
		marker:   DefaultMarker,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
	return t
}

// Register adds template strings for a locale, merging with any previously
// registered document for the same locale. Redefining an identifier within
// a locale is an error so conflicting catalog documents surface early.
func (t *Table) Register(locale string, strings map[StringID]string) error {
	tag, err := language.Parse(locale)
	if err != nil {
		return fmt.Errorf("catalog: invalid locale %q: %w", locale, err)
	}
	key := tag.String()

	t.mu.Lock()
	defer t.mu.Unlock()

	// Validate the whole document before touching any table state so a
	// failed registration leaves the table unchanged.
	bucket, exists := t.locales[key]
	for id := range strings {
		if _, dup := bucket[id]; dup {
			return fmt.Errorf("catalog: duplicate string %d in locale %s", id, key)
		}
	}

	if !exists {
		bucket = make(map[StringID]string, len(strings))
		t.locales[key] = bucket
		t.keys = append(t.keys, key)
		t.tags = append(t.tags, tag)
		t.matcher = language.NewMatcher(t.tags)
	}

	for id, text := range strings {
		if t.sanitizer != nil {
			text = t.sanitizer.Sanitize(text)
		}
		bucket[id] = text
	}
	return nil
}

// Locales lists the canonical names of every registered locale, sorted.
func (t *Table) Locales() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := append([]string(nil), t.keys...)
	sort.Strings(out)
	return out
}

// Strings returns a copy of the template map for the given locale.
func (t *Table) Strings(locale string) map[StringID]string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	key := locale
	if tag, err := language.Parse(locale); err == nil {
		key = tag.String()
	}
	bucket, ok := t.locales[key]
	if !ok {
		return nil
	}
	out := make(map[StringID]string, len(bucket))
	for id, text := range bucket {
		out[id] = text
	}
	return out
}

// Lookup resolves id for the best match of the requested locale, falling
// back to the table's default locale when the matched one lacks the string.
func (t *Table) Lookup(locale string, id StringID) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if key, ok := t.matchLocked(locale); ok {
		if text, ok := t.locales[key][id]; ok {
			return text, true
		}
	}
	if text, ok := t.locales[t.fallback][id]; ok {
		return text, true
	}
	return "", false
}

// Marker reports the text this table substitutes for undefined strings.
func (t *Table) Marker() string {
	return t.marker
}

// Resolve behaves like Lookup but substitutes the undefined-string marker
// instead of reporting failure.
func (t *Table) Resolve(locale string, id StringID) string {
	if text, ok := t.Lookup(locale, id); ok {
		return text
	}
	return t.marker
}

func (t *Table) matchLocked(locale string) (string, bool) {
	if locale == "" || t.matcher == nil {
		return "", false
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return "", false
	}
	_, index, conf := t.matcher.Match(tag)
	if conf == language.No || index < 0 || index >= len(t.keys) {
		return "", false
	}
	return t.keys[index], true
}
