package catalog

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestLoad_ParsesYAMLAndJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"en.yaml": &fstest.MapFile{Data: []byte(strings.TrimSpace(`
locale: en
strings:
  1: "hello {NAME}"
  2: "goodbye"
`))},
		"de.json": &fstest.MapFile{Data: []byte(`{"locale":"de","strings":{"1":"hallo {NAME}"}}`)},
	}

	table, err := Load(fsys)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if diff := cmp.Diff([]string{"de", "en"}, table.Locales()); diff != "" {
		t.Fatalf("unexpected locales (-want +got):\n%s", diff)
	}
	if got := table.Resolve("de", 1); got != "hallo {NAME}" {
		t.Fatalf("expected the German template, got %q", got)
	}
	if got := table.Resolve("de", 2); got != "goodbye" {
		t.Fatalf("expected fallback to English, got %q", got)
	}
}

func TestLoad_MergesDocumentsPerLocale(t *testing.T) {
	fsys := fstest.MapFS{
		"core/en.yaml":  &fstest.MapFile{Data: []byte("locale: en\nstrings:\n  1: one\n")},
		"extra/en.yaml": &fstest.MapFile{Data: []byte("locale: en\nstrings:\n  2: two\n")},
		"README.md":     &fstest.MapFile{Data: []byte("not a catalog document")},
	}

	table, err := Load(fsys)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := map[StringID]string{1: "one", 2: "two"}
	if diff := cmp.Diff(want, table.Strings("en")); diff != "" {
		t.Fatalf("unexpected strings (-want +got):\n%s", diff)
	}
}

func TestLoad_RejectsDuplicateIDs(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml": &fstest.MapFile{Data: []byte("locale: en\nstrings:\n  1: one\n")},
		"b.yaml": &fstest.MapFile{Data: []byte("locale: en\nstrings:\n  1: uno\n")},
	}

	if _, err := Load(fsys); err == nil {
		t.Fatalf("expected a duplicate id error")
	}
}

func TestLoad_RejectsMissingLocale(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml": &fstest.MapFile{Data: []byte("strings:\n  1: one\n")},
	}

	if _, err := Load(fsys); err == nil {
		t.Fatalf("expected an error for a document without a locale")
	}
}

func TestLoad_RejectsMalformedDocuments(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml": &fstest.MapFile{Data: []byte("   ")},
	}
	if _, err := Load(fsys); err == nil {
		t.Fatalf("expected an error for an empty document")
	}

	fsys = fstest.MapFS{
		"a.json": &fstest.MapFile{Data: []byte("{locale")},
	}
	if _, err := Load(fsys); err == nil {
		t.Fatalf("expected an error for invalid syntax")
	}
}

func TestLoad_NilFilesystem(t *testing.T) {
	table, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := len(table.Locales()); got != 0 {
		t.Fatalf("expected an empty table, got %d locales", got)
	}
}
