package ports

import (
	"github.com/jsamuelsen11/bibtypes/internal/domain/document"
	"github.com/jsamuelsen11/bibtypes/internal/domain/entrytype"
	"github.com/jsamuelsen11/bibtypes/internal/domain/fieldeditor"
)

// Document is the hook an open document exposes to entry-type change
// propagation.
type Document interface {
	// ID returns the document's stable identifier.
	ID() string

	// RevalidateEntriesForType re-resolves the type reference of every entry
	// whose type name matches typeName (case-insensitively) and reports
	// whether any entry's effective schema differs from before the call.
	// It is only called while entry-type mutations are excluded.
	RevalidateEntriesForType(typeName string) bool
}

// EntryDocument is an open document holding bibliography entries.
type EntryDocument interface {
	Document

	// Name returns the document's display name.
	Name() string

	// AddEntry stores an entry and returns it resolved against the
	// registry. The entry ID is assigned by the document when empty.
	AddEntry(entry document.Entry) (document.Resolved, error)

	// EntryEditors returns the editor layout for one entry's current type.
	// Layouts are cached per type until the type changes.
	// Returns domain.ErrNotFound if the entry does not exist or is typeless.
	EntryEditors(entryID string) ([]fieldeditor.Descriptor, error)

	// Snapshot returns the document's current state.
	Snapshot() document.Snapshot

	// MarkSaved clears the dirty flag.
	MarkSaved()
}

// DocumentFactory creates empty documents.
type DocumentFactory interface {
	New(name string) EntryDocument
}

// TypeResolver resolves entry-type names to schemas.
type TypeResolver interface {
	Lookup(name string) (entrytype.FieldSchema, bool)
}

// DocumentTracker keeps the set of open documents that receive entry-type
// change notifications, in the order they were opened.
type DocumentTracker interface {
	// Open adds doc. Returns domain.ErrConflict if a document with the same
	// ID is already open.
	Open(doc Document) error

	// Close removes the document with the given ID.
	// Returns domain.ErrNotFound if no such document is open.
	Close(id string) error
}

// DocumentChange records whether one document's entries changed during
// propagation.
type DocumentChange struct {
	DocumentID string
	Changed    bool
}

// PropagationReport is the outcome of notifying open documents that an
// entry type changed.
type PropagationReport struct {
	TypeName  string
	Documents []DocumentChange
}

// AnyChanged reports whether at least one document changed.
func (r PropagationReport) AnyChanged() bool {
	for _, d := range r.Documents {
		if d.Changed {
			return true
		}
	}
	return false
}
