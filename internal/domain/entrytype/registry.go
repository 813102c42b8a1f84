package entrytype

import (
	"fmt"
	"slices"
	"strings"
)

const (
	// NewTypeSentinel is the synthetic first listing that stands for "define
	// a new type" in selection lists.
	NewTypeSentinel = "<new>"

	// CustomMarker is appended to the label of custom types in listings.
	CustomMarker = " *"
)

// Listing is one row of Registry.List.
type Listing struct {
	Name     string
	Label    string
	Custom   bool
	Sentinel bool
	Schema   FieldSchema
}

// Registry maps case-insensitive type names to field schemas.
//
// Standard types are seeded by NewRegistry and live for the registry's
// lifetime. A custom definition with the same key as a standard type shadows
// it; removing the custom definition brings the standard one back.
//
// Registry does no locking. Callers that share it between goroutines must
// serialize mutations together with the change notification that follows
// them (see app.EntryTypeService).
type Registry struct {
	standard map[string]FieldSchema
	custom   map[string]FieldSchema
	order    []string
}

// NewRegistry creates a registry seeded with the given standard types in the
// given order. Seeds are forced to non-custom. A blank or repeated seed name
// is an error.
func NewRegistry(standard ...FieldSchema) (*Registry, error) {
	r := &Registry{
		standard: make(map[string]FieldSchema, len(standard)),
		custom:   make(map[string]FieldSchema),
		order:    make([]string, 0, len(standard)),
	}

	for _, s := range standard {
		k := s.Key()
		if k == "" {
			return nil, fmt.Errorf("seeding standard types: %w", ErrEmptyName)
		}
		if _, dup := r.standard[k]; dup {
			return nil, fmt.Errorf("seeding standard types: duplicate type %q", s.Name())
		}
		s.custom = false
		r.standard[k] = s
		r.order = append(r.order, k)
	}

	return r, nil
}

// Define stores a custom type, overwriting any earlier custom definition with
// the same key. The stored display name is name as given, trimmed.
// Returns ErrEmptyName for a blank name, ErrReservedName for the sentinel
// name and *InvalidSchemaError for overlapping field lists; the registry is
// unchanged on error.
func (r *Registry) Define(name string, required, optional []string) (FieldSchema, error) {
	if strings.TrimSpace(name) == "" {
		return FieldSchema{}, ErrEmptyName
	}
	if Key(name) == Key(NewTypeSentinel) {
		return FieldSchema{}, ErrReservedName
	}

	schema, err := NewFieldSchema(name, required, optional, true)
	if err != nil {
		return FieldSchema{}, err
	}

	r.put(schema)
	return schema, nil
}

// DefineText is Define for delimited field text.
func (r *Registry) DefineText(name, required, optional string) (FieldSchema, error) {
	return r.Define(name, SplitFields(required), SplitFields(optional))
}

func (r *Registry) put(schema FieldSchema) {
	k := schema.Key()
	if !r.known(k) {
		r.order = append(r.order, k)
	}
	r.custom[k] = schema
}

// Lookup returns the effective schema for name. Custom definitions take
// precedence over standard ones. The boolean is false when no type with the
// name exists.
func (r *Registry) Lookup(name string) (FieldSchema, bool) {
	k := Key(name)
	if s, ok := r.custom[k]; ok {
		return s, true
	}
	s, ok := r.standard[k]
	return s, ok
}

// IsCustom reports whether name resolves to a custom definition.
func (r *Registry) IsCustom(name string) bool {
	s, ok := r.Lookup(name)
	return ok && s.IsCustom()
}

// Standard returns the standard schema seeded under name, ignoring any custom
// definition that shadows it.
func (r *Registry) Standard(name string) (FieldSchema, bool) {
	s, ok := r.standard[Key(name)]
	return s, ok
}

// HasStandardFallback reports whether a standard type shares name. When it
// does, removing a custom definition of that name restores the standard
// type instead of leaving entries typeless.
func (r *Registry) HasStandardFallback(name string) bool {
	_, ok := r.standard[Key(name)]
	return ok
}

// Remove deletes the custom definition of name.
//
// Returns *NotFoundError when no type with the name exists and
// *NotCustomError when only a standard type does. Confirmation that entries
// may become typeless is the caller's responsibility; Remove does not ask.
func (r *Registry) Remove(name string) error {
	k := Key(name)

	if _, ok := r.custom[k]; ok {
		delete(r.custom, k)
		if _, std := r.standard[k]; !std {
			r.order = slices.DeleteFunc(r.order, func(o string) bool { return o == k })
		}
		return nil
	}

	if s, ok := r.standard[k]; ok {
		return &NotCustomError{Name: s.Name()}
	}

	return &NotFoundError{Name: strings.TrimSpace(name)}
}

// List returns the NewTypeSentinel row followed by every known type in
// registration order. A custom definition that shadows a standard type keeps
// the standard type's position.
func (r *Registry) List() []Listing {
	out := make([]Listing, 0, len(r.order)+1)
	out = append(out, Listing{
		Name:     NewTypeSentinel,
		Label:    NewTypeSentinel,
		Sentinel: true,
	})

	for _, k := range r.order {
		s, ok := r.Lookup(k)
		if !ok {
			continue
		}
		label := s.Name()
		if s.IsCustom() {
			label += CustomMarker
		}
		out = append(out, Listing{
			Name:   s.Name(),
			Label:  label,
			Custom: s.IsCustom(),
			Schema: s,
		})
	}

	return out
}

// Len returns the number of known types, not counting the sentinel.
func (r *Registry) Len() int {
	return len(r.order)
}

// StandardLen returns the number of seeded standard types.
func (r *Registry) StandardLen() int {
	return len(r.standard)
}

func (r *Registry) known(k string) bool {
	if _, ok := r.custom[k]; ok {
		return true
	}
	_, ok := r.standard[k]
	return ok
}
