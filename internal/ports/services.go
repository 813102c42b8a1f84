package ports

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/bibtypes/internal/domain/document"
	"github.com/jsamuelsen11/bibtypes/internal/domain/entrytype"
	"github.com/jsamuelsen11/bibtypes/internal/domain/fieldeditor"
)

// ChangeNotifier propagates an entry-type change to every open document.
// Implemented by the typechange package; called by EntryTypeService while it
// holds its mutation lock.
type ChangeNotifier interface {
	// Notify revalidates every open document for typeName synchronously, in
	// open order, and reports which documents changed.
	Notify(ctx context.Context, typeName string) PropagationReport
}

// RemovalConfirmer asks whoever requested a removal whether entries of a
// custom type may become typeless. It is consulted only when no standard
// type of the same name would take the removed type's place.
type RemovalConfirmer interface {
	ConfirmRemoval(ctx context.Context, typeName string) bool
}

// ConfirmFunc adapts a function to RemovalConfirmer.
type ConfirmFunc func(ctx context.Context, typeName string) bool

// ConfirmRemoval calls f.
func (f ConfirmFunc) ConfirmRemoval(ctx context.Context, typeName string) bool {
	return f(ctx, typeName)
}

// AlwaysConfirm approves every removal. For headless callers.
var AlwaysConfirm RemovalConfirmer = ConfirmFunc(func(context.Context, string) bool { return true })

// RemovalPrompt is the question put to a RemovalConfirmer.
func RemovalPrompt(typeName string) string {
	return fmt.Sprintf("All entries of type %q will be declared typeless. Continue?", typeName)
}

// EntryTypeService defines the service port for entry-type operations.
// Implemented by the application layer; called by inbound adapters.
// Every mutation and the change notification that follows it form one
// atomic unit with respect to all other operations.
type EntryTypeService interface {
	// Define stores a custom entry type and notifies open documents.
	// Returns domain.ErrValidation for a blank name or overlapping fields;
	// nothing changes and no notification runs on error.
	Define(ctx context.Context, name string, required, optional []string) (entrytype.FieldSchema, PropagationReport, error)

	// Remove deletes a custom entry type and notifies open documents.
	// Returns domain.ErrNotFound for an unknown type, domain.ErrForbidden for
	// a standard type and domain.ErrConflict when confirm declines.
	Remove(ctx context.Context, name string, confirm RemovalConfirmer) (PropagationReport, error)

	// Lookup returns the effective schema for name.
	Lookup(ctx context.Context, name string) (entrytype.FieldSchema, bool)

	// IsCustom reports whether name resolves to a custom type.
	IsCustom(ctx context.Context, name string) bool

	// List returns the selectable type listing, sentinel first.
	List(ctx context.Context) []entrytype.Listing

	// Editors returns the editor layout of a type.
	// Returns domain.ErrNotFound if the type does not exist.
	Editors(ctx context.Context, name string) ([]fieldeditor.Descriptor, error)

	// View runs fn while mutations are excluded. fn must not call back
	// into the service.
	View(fn func())
}

// DocumentService defines the service port for open documents.
type DocumentService interface {
	// Create opens a new empty document.
	// Returns domain.ErrValidation if name is blank.
	Create(ctx context.Context, name string) (document.Snapshot, error)

	// List returns snapshots of all open documents in open order.
	List(ctx context.Context) []document.Snapshot

	// Get returns a snapshot of one document.
	// Returns domain.ErrNotFound if the document is not open.
	Get(ctx context.Context, id string) (document.Snapshot, error)

	// Close closes a document; it no longer receives change notifications.
	// Returns domain.ErrNotFound if the document is not open.
	Close(ctx context.Context, id string) error

	// AddEntry adds an entry to a document.
	// Returns domain.ErrNotFound if the document is not open and
	// domain.ErrValidation if the entry fails validation.
	AddEntry(ctx context.Context, id string, entry document.Entry) (document.Resolved, error)

	// EntryEditors returns the editor layout of one entry.
	// Returns domain.ErrNotFound if the document or entry does not exist or
	// the entry is typeless.
	EntryEditors(ctx context.Context, id, entryID string) ([]fieldeditor.Descriptor, error)

	// Save clears the document's dirty flag.
	// Returns domain.ErrNotFound if the document is not open.
	Save(ctx context.Context, id string) (document.Snapshot, error)
}
