package catalog

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type documentFile struct {
	Locale  string            `json:"locale" yaml:"locale"`
	Strings map[uint32]string `json:"strings" yaml:"strings"`
}

// Load walks the provided filesystem and registers every JSON/YAML catalog
// document it finds. When fsys is nil or no documents are present, the
// returned table is empty.
func Load(fsys fs.FS, opts ...Option) (*Table, error) {
	table := New(opts...)
	if fsys == nil {
		return table, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		if !isCatalogFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("catalog: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		locale := strings.TrimSpace(doc.Locale)
		if locale == "" {
			return fmt.Errorf("catalog: file %s does not declare a locale", path)
		}

		entries := make(map[StringID]string, len(doc.Strings))
		for id, text := range doc.Strings {
			entries[StringID(id)] = text
		}
		if err := table.Register(locale, entries); err != nil {
			return fmt.Errorf("%w (file %s)", err, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return table, nil
}

func isCatalogFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("catalog: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("catalog: parse %s: invalid JSON or YAML", source)
}
