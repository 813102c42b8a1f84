// Package memdoc provides in-memory open documents that hold bibliography
// entries and revalidate them when entry types change.
package memdoc

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/bibtypes/internal/domain"
	"github.com/jsamuelsen11/bibtypes/internal/domain/document"
	"github.com/jsamuelsen11/bibtypes/internal/domain/entrytype"
	"github.com/jsamuelsen11/bibtypes/internal/domain/fieldeditor"
	"github.com/jsamuelsen11/bibtypes/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.EntryDocument   = (*Document)(nil)
	_ ports.DocumentFactory = (*Factory)(nil)
)

// Factory creates documents that resolve types with one resolver.
type Factory struct {
	resolver ports.TypeResolver
	editors  *fieldeditor.Factory
}

// NewFactory creates a Factory. resolver is read without locking; callers
// must exclude entry-type mutations while using the documents it creates.
func NewFactory(resolver ports.TypeResolver, editors *fieldeditor.Factory) *Factory {
	return &Factory{resolver: resolver, editors: editors}
}

// New creates an empty document with a random ID.
func (f *Factory) New(name string) ports.EntryDocument {
	return New(uuid.NewString(), name, f.resolver, f.editors)
}

// Document is an in-memory bibliography document. Each entry keeps the
// resolution it last observed so revalidation can tell whether its
// effective schema changed.
type Document struct {
	mu       sync.Mutex
	id       string
	name     string
	resolver ports.TypeResolver
	editors  *fieldeditor.Factory

	entries []document.Resolved
	dirty   bool

	// layouts caches editor layouts by type key.
	layouts map[string][]fieldeditor.Descriptor
}

// New creates an empty document.
func New(id, name string, resolver ports.TypeResolver, editors *fieldeditor.Factory) *Document {
	return &Document{
		id:       id,
		name:     name,
		resolver: resolver,
		editors:  editors,
		layouts:  make(map[string][]fieldeditor.Descriptor),
	}
}

// ID returns the document ID.
func (d *Document) ID() string { return d.id }

// Name returns the document's display name.
func (d *Document) Name() string { return d.name }

// AddEntry resolves and stores entry, assigning an ID when it has none.
// Adding an entry marks the document dirty.
func (d *Document) AddEntry(entry document.Entry) (document.Resolved, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if d.indexOf(entry.ID) >= 0 {
		return document.Resolved{}, fmt.Errorf("%w: entry %s already exists", domain.ErrConflict, entry.ID)
	}
	entry.Fields = maps.Clone(entry.Fields)

	resolved := document.Resolve(entry, d.resolver.Lookup)
	d.entries = append(d.entries, resolved)
	d.dirty = true
	return resolved, nil
}

// RevalidateEntriesForType re-resolves every entry of typeName and reports
// whether any entry's effective schema changed. The cached editor layout for
// the type is dropped either way. A change marks the document dirty.
func (d *Document) RevalidateEntriesForType(typeName string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	key := entrytype.Key(typeName)
	delete(d.layouts, key)

	changed := false
	for i, prev := range d.entries {
		if entrytype.Key(prev.TypeName) != key {
			continue
		}
		next := document.Resolve(prev.Entry, d.resolver.Lookup)
		if !document.SameResolution(prev, next) {
			changed = true
		}
		d.entries[i] = next
	}

	if changed {
		d.dirty = true
	}
	return changed
}

// EntryEditors returns the editor layout for an entry's type.
func (d *Document) EntryEditors(entryID string) ([]fieldeditor.Descriptor, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	i := d.indexOf(entryID)
	if i < 0 {
		return nil, fmt.Errorf("%w: entry %s", domain.ErrNotFound, entryID)
	}
	e := d.entries[i]
	if e.Typeless {
		return nil, fmt.Errorf("%w: entry %s has no type", domain.ErrNotFound, entryID)
	}

	key := entrytype.Key(e.TypeName)
	if layout, ok := d.layouts[key]; ok {
		return slices.Clone(layout), nil
	}
	layout := d.editors.Layout(e.Schema)
	d.layouts[key] = layout
	return slices.Clone(layout), nil
}

// Snapshot returns the document's current state.
func (d *Document) Snapshot() document.Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	entries := make([]document.Resolved, len(d.entries))
	for i, e := range d.entries {
		e.Fields = maps.Clone(e.Fields)
		entries[i] = e
	}
	return document.Snapshot{
		ID:      d.id,
		Name:    d.name,
		Dirty:   d.dirty,
		Entries: entries,
	}
}

// MarkSaved clears the dirty flag.
func (d *Document) MarkSaved() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dirty = false
}

func (d *Document) indexOf(entryID string) int {
	return slices.IndexFunc(d.entries, func(e document.Resolved) bool { return e.ID == entryID })
}
