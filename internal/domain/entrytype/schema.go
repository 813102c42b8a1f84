// Package entrytype models bibliographic entry types: the field schema of a
// single type and the registry that maps type names to schemas.
//
// Type names are case-insensitive. The registry keys every type by its
// lower-cased name and keeps the caller's casing as the display name.
// Standard (built-in) types are seeded once and can be shadowed but never
// removed; custom types come and go at runtime.
package entrytype

import (
	"slices"
	"strings"
)

// FieldDelimiter separates field names in delimited field text.
const FieldDelimiter = ";"

// FieldSchema describes which fields an entry of one type must and may carry.
// A FieldSchema is an immutable value: accessors return copies and there are
// no setters, so schemas can be shared freely between goroutines.
type FieldSchema struct {
	name     string
	required []string
	optional []string
	custom   bool
}

// NewFieldSchema builds a schema from listed field names. Names are stripped
// of whitespace, empty names are dropped and repeated names keep their first
// occurrence. A field present in both lists (compared case-insensitively)
// yields an *InvalidSchemaError.
func NewFieldSchema(name string, required, optional []string, custom bool) (FieldSchema, error) {
	display := strings.TrimSpace(name)
	req := normalizeFields(required)
	opt := normalizeFields(optional)

	if overlap := overlapping(req, opt); len(overlap) > 0 {
		return FieldSchema{}, &InvalidSchemaError{Name: display, Overlap: overlap}
	}

	return FieldSchema{
		name:     display,
		required: req,
		optional: opt,
		custom:   custom,
	}, nil
}

// ParseFieldSchema builds a schema from delimited field text such as
// "author;\ntitle;year".
func ParseFieldSchema(name, required, optional string, custom bool) (FieldSchema, error) {
	return NewFieldSchema(name, SplitFields(required), SplitFields(optional), custom)
}

// SplitFields splits delimited field text into raw segments. Segments are
// normalized when a schema is constructed.
func SplitFields(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return strings.Split(text, FieldDelimiter)
}

// FormatFields renders field names one per line, the way the definition
// editor shows them.
func FormatFields(fields []string) string {
	return strings.Join(fields, FieldDelimiter+"\n")
}

// Name returns the display name.
func (s FieldSchema) Name() string { return s.name }

// Key returns the case-insensitive lookup key of the schema's name.
func (s FieldSchema) Key() string { return Key(s.name) }

// RequiredFields returns the required field names in definition order.
func (s FieldSchema) RequiredFields() []string { return slices.Clone(s.required) }

// OptionalFields returns the optional field names in definition order.
func (s FieldSchema) OptionalFields() []string { return slices.Clone(s.optional) }

// AllFields returns required fields followed by optional fields.
func (s FieldSchema) AllFields() []string {
	all := make([]string, 0, len(s.required)+len(s.optional))
	all = append(all, s.required...)
	return append(all, s.optional...)
}

// IsCustom reports whether the schema was user-defined.
func (s FieldSchema) IsCustom() bool { return s.custom }

// IsRequired reports whether field is required, ignoring case.
func (s FieldSchema) IsRequired(field string) bool {
	return containsFold(s.required, field)
}

// HasField reports whether field is required or optional, ignoring case.
func (s FieldSchema) HasField(field string) bool {
	return containsFold(s.required, field) || containsFold(s.optional, field)
}

// Equal reports whether two schemas describe the same fields with the same
// origin. Display names are not compared: renaming a type's casing does not
// change what its entries must carry.
func (s FieldSchema) Equal(other FieldSchema) bool {
	return s.custom == other.custom &&
		slices.Equal(s.required, other.required) &&
		slices.Equal(s.optional, other.optional)
}

// Key normalizes a type name into its registry key.
func Key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func normalizeFields(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, r := range raw {
		field := strings.Join(strings.Fields(r), "")
		if field == "" {
			continue
		}
		k := strings.ToLower(field)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, field)
	}
	return out
}

// overlapping returns the names of required that also appear in optional,
// in required order.
func overlapping(required, optional []string) []string {
	var overlap []string
	for _, f := range required {
		if containsFold(optional, f) {
			overlap = append(overlap, f)
		}
	}
	return overlap
}

func containsFold(fields []string, field string) bool {
	return slices.ContainsFunc(fields, func(f string) bool {
		return strings.EqualFold(f, field)
	})
}
