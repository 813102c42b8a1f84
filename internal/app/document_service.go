package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/jsamuelsen11/bibtypes/internal/domain"
	"github.com/jsamuelsen11/bibtypes/internal/domain/document"
	"github.com/jsamuelsen11/bibtypes/internal/domain/fieldeditor"
	"github.com/jsamuelsen11/bibtypes/internal/platform/logging"
	"github.com/jsamuelsen11/bibtypes/internal/ports"
)

// Compile-time check that DocumentService implements ports.DocumentService.
var _ ports.DocumentService = (*DocumentService)(nil)

// DocumentService implements ports.DocumentService. Open documents are
// registered with the tracker so they receive entry-type change
// notifications. Every document access that resolves entry types runs
// inside entryTypes.View so it never interleaves with a mutation.
type DocumentService struct {
	mu         sync.RWMutex
	docs       map[string]ports.EntryDocument
	order      []string
	factory    ports.DocumentFactory
	tracker    ports.DocumentTracker
	entryTypes ports.EntryTypeService
	logger     *slog.Logger
}

// NewDocumentService creates a DocumentService. A nil logger discards output.
func NewDocumentService(
	factory ports.DocumentFactory,
	tracker ports.DocumentTracker,
	entryTypes ports.EntryTypeService,
	logger *slog.Logger,
) *DocumentService {
	return &DocumentService{
		docs:       make(map[string]ports.EntryDocument),
		factory:    factory,
		tracker:    tracker,
		entryTypes: entryTypes,
		logger:     logging.OrDiscard(logger),
	}
}

// Create opens a new empty document.
func (s *DocumentService) Create(ctx context.Context, name string) (document.Snapshot, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return document.Snapshot{}, &domain.ValidationError{Fields: map[string]string{"name": domain.MsgRequired}}
	}

	s.logger.InfoContext(ctx, "opening document", slog.String("name", name))

	doc := s.factory.New(name)

	s.mu.Lock()
	if err := s.tracker.Open(doc); err != nil {
		s.mu.Unlock()
		s.logger.ErrorContext(ctx, "failed to open document",
			slog.String("operation", "Create"),
			slog.String("id", doc.ID()),
			slog.Any("error", err),
		)
		return document.Snapshot{}, err
	}
	s.docs[doc.ID()] = doc
	s.order = append(s.order, doc.ID())
	s.mu.Unlock()

	return s.snapshot(doc), nil
}

// List returns snapshots of all open documents in open order.
func (s *DocumentService) List(_ context.Context) []document.Snapshot {
	s.mu.RLock()
	docs := make([]ports.EntryDocument, 0, len(s.order))
	for _, id := range s.order {
		docs = append(docs, s.docs[id])
	}
	s.mu.RUnlock()

	out := make([]document.Snapshot, 0, len(docs))
	s.entryTypes.View(func() {
		for _, d := range docs {
			out = append(out, d.Snapshot())
		}
	})
	return out
}

// Get returns a snapshot of one document.
func (s *DocumentService) Get(ctx context.Context, id string) (document.Snapshot, error) {
	doc, err := s.find(ctx, "Get", id)
	if err != nil {
		return document.Snapshot{}, err
	}
	return s.snapshot(doc), nil
}

// Close closes a document.
func (s *DocumentService) Close(ctx context.Context, id string) error {
	s.logger.InfoContext(ctx, "closing document", slog.String("id", id))

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[id]; !ok {
		return notOpen(id)
	}
	if err := s.tracker.Close(id); err != nil {
		s.logger.ErrorContext(ctx, "failed to close document",
			slog.String("operation", "Close"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return err
	}
	delete(s.docs, id)
	s.order = slices.DeleteFunc(s.order, func(o string) bool { return o == id })
	return nil
}

// AddEntry validates entry and adds it to a document.
func (s *DocumentService) AddEntry(ctx context.Context, id string, entry document.Entry) (document.Resolved, error) {
	if err := entry.Validate(); err != nil {
		return document.Resolved{}, err
	}

	doc, err := s.find(ctx, "AddEntry", id)
	if err != nil {
		return document.Resolved{}, err
	}

	var resolved document.Resolved
	s.entryTypes.View(func() {
		resolved, err = doc.AddEntry(entry)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to add entry",
			slog.String("operation", "AddEntry"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return document.Resolved{}, err
	}
	return resolved, nil
}

// EntryEditors returns the editor layout of one entry.
func (s *DocumentService) EntryEditors(ctx context.Context, id, entryID string) ([]fieldeditor.Descriptor, error) {
	doc, err := s.find(ctx, "EntryEditors", id)
	if err != nil {
		return nil, err
	}

	var layout []fieldeditor.Descriptor
	s.entryTypes.View(func() {
		layout, err = doc.EntryEditors(entryID)
	})
	return layout, err
}

// Save clears a document's dirty flag.
func (s *DocumentService) Save(ctx context.Context, id string) (document.Snapshot, error) {
	doc, err := s.find(ctx, "Save", id)
	if err != nil {
		return document.Snapshot{}, err
	}

	doc.MarkSaved()
	s.logger.InfoContext(ctx, "document saved", slog.String("id", id))
	return s.snapshot(doc), nil
}

func (s *DocumentService) find(ctx context.Context, op, id string) (ports.EntryDocument, error) {
	s.mu.RLock()
	doc, ok := s.docs[id]
	s.mu.RUnlock()

	if !ok {
		err := notOpen(id)
		s.logger.ErrorContext(ctx, "document not open",
			slog.String("operation", op),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return doc, nil
}

func (s *DocumentService) snapshot(doc ports.EntryDocument) document.Snapshot {
	var snap document.Snapshot
	s.entryTypes.View(func() { snap = doc.Snapshot() })
	return snap
}

func notOpen(id string) error {
	return fmt.Errorf("%w: document %s is not open", domain.ErrNotFound, id)
}
