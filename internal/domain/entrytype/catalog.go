package entrytype

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed standard.yaml
var standardYAML []byte

type catalogFile struct {
	Types []catalogType `yaml:"types"`
}

type catalogType struct {
	Name     string   `yaml:"name"`
	Required []string `yaml:"required"`
	Optional []string `yaml:"optional"`
}

// StandardTypes returns the built-in BibTeX entry types in catalog order.
func StandardTypes() ([]FieldSchema, error) {
	return LoadCatalog(bytes.NewReader(standardYAML))
}

// LoadStandard returns the catalog at path, or the built-in catalog when
// path is empty.
func LoadStandard(path string) ([]FieldSchema, error) {
	if path == "" {
		return StandardTypes()
	}
	return LoadCatalogFile(path)
}

// LoadCatalogFile reads a standard-type catalog from a YAML file on disk.
func LoadCatalogFile(path string) ([]FieldSchema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog %s: %w", path, err)
	}
	defer f.Close()

	schemas, err := LoadCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return schemas, nil
}

// LoadCatalog decodes a catalog document of the form
//
//	types:
//	  - name: article
//	    required: [author, title, journal, year]
//	    optional: [volume, number]
//
// Unknown keys are rejected. Every type is returned as a standard schema.
func LoadCatalog(r io.Reader) ([]FieldSchema, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc catalogFile
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("decoding catalog: empty document")
		}
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	schemas := make([]FieldSchema, 0, len(doc.Types))
	for i, t := range doc.Types {
		s, err := NewFieldSchema(t.Name, t.Required, t.Optional, false)
		if err != nil {
			return nil, fmt.Errorf("catalog type %d: %w", i, err)
		}
		if s.Name() == "" {
			return nil, fmt.Errorf("catalog type %d: %w", i, ErrEmptyName)
		}
		schemas = append(schemas, s)
	}
	return schemas, nil
}
