package dataset

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	ferrors "github.com/aadarsh214/seogen/internal/foundation/errors"
)

// Source is one record file: a batch of records generated with a single
// template into a single category.
type Source struct {
	Category string   `json:"category" yaml:"category"`
	Template string   `json:"template" yaml:"template"`
	Records  []Record `json:"records" yaml:"records"`
}

// LoadFile reads a record file. JSON and YAML are supported, selected
// by extension.
func LoadFile(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ferrors.Wrap(err, ferrors.CategoryFileSystem, "reading record file").
			WithContext("path", path).
			Build()
	}

	var src Source
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &src)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &src)
	default:
		return nil, ferrors.New(ferrors.CategoryValidation, "unsupported record file extension").
			WithContext("path", path).
			Build()
	}
	if err != nil {
		return nil, ferrors.Wrap(err, ferrors.CategoryValidation, "parsing record file").
			WithContext("path", path).
			Build()
	}

	if src.Category == "" {
		src.Category = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if src.Template == "" {
		return nil, ferrors.New(ferrors.CategoryValidation, "record file names no template").
			WithContext("path", path).
			Build()
	}
	return &src, nil
}

// LoadDir reads every record file in dir, non-recursively, in lexical
// order. Files with unrelated extensions are skipped.
func LoadDir(dir string) ([]*Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, ferrors.Wrap(err, ferrors.CategoryFileSystem, "reading data directory").
			WithContext("dir", dir).
			Build()
	}

	var sources []*Source
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".json", ".yaml", ".yml":
		default:
			continue
		}
		src, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	return sources, nil
}
