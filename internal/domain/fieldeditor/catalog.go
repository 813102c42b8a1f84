package fieldeditor

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed fields.yaml
var fieldsYAML []byte

// Catalog maps field names to their capability tags and option sets to
// their values. A Catalog is read-only after loading.
type Catalog struct {
	properties map[string][]Property
	options    map[OptionSet][]string
}

type catalogFile struct {
	Fields  map[string][]string `yaml:"fields"`
	Options map[string][]string `yaml:"options"`
}

// DefaultCatalog returns the built-in field catalog.
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(bytes.NewReader(fieldsYAML))
}

// LoadCatalog decodes a field catalog document. Unknown keys, unknown
// property tags and missing option sets are rejected.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc catalogFile
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("decoding field catalog: empty document")
		}
		return nil, fmt.Errorf("decoding field catalog: %w", err)
	}

	c := &Catalog{
		properties: make(map[string][]Property, len(doc.Fields)),
		options:    make(map[OptionSet][]string, len(doc.Options)),
	}

	var errs []error
	for field, tags := range doc.Fields {
		props := make([]Property, 0, len(tags))
		for _, tag := range tags {
			p := Property(tag)
			if !p.IsValid() {
				errs = append(errs, fmt.Errorf("field %q: unknown property %q", field, tag))
				continue
			}
			props = append(props, p)
		}
		c.properties[strings.ToLower(field)] = props
	}
	for set, values := range doc.Options {
		c.options[OptionSet(set)] = values
	}
	for _, set := range []OptionSet{
		OptionsYesNo, OptionsMonth, OptionsGender, OptionsEditorType,
		OptionsPagination, OptionsType, OptionsPatentType,
	} {
		if len(c.options[set]) == 0 {
			errs = append(errs, fmt.Errorf("option set %q: no values", set))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("field catalog: %w", err)
	}
	return c, nil
}

// Properties returns the capability tags of field. Unknown fields have none.
func (c *Catalog) Properties(field string) []Property {
	return slices.Clone(c.properties[strings.ToLower(field)])
}

// Has reports whether field carries the property p.
func (c *Catalog) Has(field string, p Property) bool {
	return slices.Contains(c.properties[strings.ToLower(field)], p)
}

// Options returns the values of an option set.
func (c *Catalog) Options(set OptionSet) []string {
	return slices.Clone(c.options[set])
}

// CatalogHealthCheckName identifies the field catalog in readiness checks.
const CatalogHealthCheckName = "field-catalog"

// Name implements a readiness check name.
func (c *Catalog) Name() string { return CatalogHealthCheckName }

// HealthCheck reports a catalog that tags no fields as unhealthy.
func (c *Catalog) HealthCheck(_ context.Context) error {
	if len(c.properties) == 0 {
		return errors.New("field catalog tags no fields")
	}
	return nil
}
