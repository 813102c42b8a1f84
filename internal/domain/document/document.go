// Package document models bibliography entries and how they resolve against
// the entry-type registry.
package document

import (
	"strings"

	"github.com/jsamuelsen11/bibtypes/internal/domain"
	"github.com/jsamuelsen11/bibtypes/internal/domain/entrytype"
)

// Entry is a bibliography entry. Its type is a name reference resolved
// against the registry on demand; it never holds a schema of its own.
type Entry struct {
	ID       string
	TypeName string
	Fields   map[string]string
}

// Validate checks business rules for the Entry.
// Returns a *domain.ValidationError with per-field details, or nil.
func (e *Entry) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(e.TypeName) == "" {
		fields["type"] = domain.MsgRequired
	}
	for name := range e.Fields {
		if strings.TrimSpace(name) == "" {
			fields["fields"] = "field names must not be blank"
			break
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Resolved is an entry together with the schema its type name currently
// resolves to. A Typeless entry refers to a type that no longer exists.
type Resolved struct {
	Entry
	Schema          entrytype.FieldSchema
	Typeless        bool
	MissingRequired []string
}

// Lookup resolves a type name to its effective schema.
type Lookup func(name string) (entrytype.FieldSchema, bool)

// Resolve resolves e's type reference with lookup.
func Resolve(e Entry, lookup Lookup) Resolved {
	schema, ok := lookup(e.TypeName)
	if !ok {
		return Resolved{Entry: e, Typeless: true}
	}

	var missing []string
	for _, f := range schema.RequiredFields() {
		if strings.TrimSpace(fieldValue(e.Fields, f)) == "" {
			missing = append(missing, f)
		}
	}

	return Resolved{Entry: e, Schema: schema, MissingRequired: missing}
}

// SameResolution reports whether two resolutions of one entry give it the
// same effective schema.
func SameResolution(a, b Resolved) bool {
	if a.Typeless || b.Typeless {
		return a.Typeless == b.Typeless
	}
	return a.Schema.Equal(b.Schema)
}

// Snapshot is a point-in-time view of an open document.
type Snapshot struct {
	ID      string
	Name    string
	Dirty   bool
	Entries []Resolved
}

func fieldValue(fields map[string]string, name string) string {
	if v, ok := fields[name]; ok {
		return v
	}
	for k, v := range fields {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}
