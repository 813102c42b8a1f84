// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/bibtypes/internal/domain"
	"github.com/jsamuelsen11/bibtypes/internal/domain/entrytype"
	"github.com/jsamuelsen11/bibtypes/internal/domain/fieldeditor"
	"github.com/jsamuelsen11/bibtypes/internal/platform/logging"
	"github.com/jsamuelsen11/bibtypes/internal/platform/telemetry"
	"github.com/jsamuelsen11/bibtypes/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.EntryTypeService = (*EntryTypeService)(nil)
	_ ports.HealthChecker    = (*EntryTypeService)(nil)
)

// ErrRemovalDeclined is returned by Remove when the confirmer declines.
var ErrRemovalDeclined = fmt.Errorf("%w: removal of entry type was not confirmed", domain.ErrConflict)

// HealthCheckName identifies the entry-type service in readiness checks.
const HealthCheckName = "entry-types"

// EntryTypeService implements ports.EntryTypeService on top of the
// entry-type registry. A single RWMutex serializes every mutation together
// with the change notification that follows it; reads take the read lock,
// so no caller observes a registry change before every open document has.
type EntryTypeService struct {
	mu       sync.RWMutex
	registry *entrytype.Registry
	notifier ports.ChangeNotifier
	editors  *fieldeditor.Factory
	metrics  *telemetry.Metrics
	logger   *slog.Logger
}

// NewEntryTypeService creates an EntryTypeService. The service takes
// ownership of registry: nothing else may use it except documents
// revalidating under the notifier. metrics may be nil; a nil logger
// discards output.
func NewEntryTypeService(
	registry *entrytype.Registry,
	notifier ports.ChangeNotifier,
	editors *fieldeditor.Factory,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *EntryTypeService {
	return &EntryTypeService{
		registry: registry,
		notifier: notifier,
		editors:  editors,
		metrics:  metrics,
		logger:   logging.OrDiscard(logger),
	}
}

// Define stores a custom type and notifies open documents.
func (s *EntryTypeService) Define(
	ctx context.Context, name string, required, optional []string,
) (entrytype.FieldSchema, ports.PropagationReport, error) {
	s.logger.InfoContext(ctx, "defining entry type", slog.String("name", name))

	s.mu.Lock()
	defer s.mu.Unlock()

	schema, err := s.registry.Define(name, required, optional)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to define entry type",
			slog.String("operation", "Define"),
			slog.String("name", name),
			slog.Any("error", err),
		)
		s.record(ctx, "define", err)
		return entrytype.FieldSchema{}, ports.PropagationReport{}, err
	}

	report := s.notifier.Notify(ctx, schema.Name())
	s.record(ctx, "define", nil)

	s.logger.InfoContext(ctx, "stored definition for type",
		slog.String("name", schema.Name()),
		slog.Int("required", len(schema.RequiredFields())),
		slog.Int("optional", len(schema.OptionalFields())),
		slog.Bool("documents_changed", report.AnyChanged()),
	)
	return schema, report, nil
}

// Remove deletes a custom type and notifies open documents. confirm is
// consulted only when no standard type of the same name exists; a nil
// confirm declines. confirm runs with no lock held, so it may read the
// service. The gate is checked again under the write lock; a custom type
// defined while confirm ran counts as declined.
func (s *EntryTypeService) Remove(
	ctx context.Context, name string, confirm ports.RemovalConfirmer,
) (ports.PropagationReport, error) {
	s.logger.InfoContext(ctx, "removing entry type", slog.String("name", name))

	confirmed := false
	if displayName, ask := s.needsConfirmation(name); ask {
		if confirm == nil || !confirm.ConfirmRemoval(ctx, displayName) {
			return ports.PropagationReport{}, s.declined(ctx, name)
		}
		confirmed = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, _ := s.registry.Lookup(name)

	if s.losesType(name) && !confirmed {
		return ports.PropagationReport{}, s.declined(ctx, name)
	}

	if err := s.registry.Remove(name); err != nil {
		s.logger.ErrorContext(ctx, "failed to remove entry type",
			slog.String("operation", "Remove"),
			slog.String("name", name),
			slog.Any("error", err),
		)
		s.record(ctx, "remove", err)
		return ports.PropagationReport{}, err
	}

	report := s.notifier.Notify(ctx, existing.Name())
	s.record(ctx, "remove", nil)

	s.logger.InfoContext(ctx, "removed entry type",
		slog.String("name", existing.Name()),
		slog.Bool("documents_changed", report.AnyChanged()),
	)
	return report, nil
}

// needsConfirmation reports whether removing name would leave its entries
// typeless, and the display name to ask about.
func (s *EntryTypeService) needsConfirmation(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.losesType(name) {
		return "", false
	}
	existing, _ := s.registry.Lookup(name)
	return existing.Name(), true
}

// losesType reports whether name is a custom type with no standard type to
// fall back to. Callers hold s.mu.
func (s *EntryTypeService) losesType(name string) bool {
	return s.registry.IsCustom(name) && !s.registry.HasStandardFallback(name)
}

func (s *EntryTypeService) declined(ctx context.Context, name string) error {
	s.logger.InfoContext(ctx, "entry type removal declined", slog.String("name", name))
	s.record(ctx, "remove", ErrRemovalDeclined)
	return ErrRemovalDeclined
}

// Lookup returns the effective schema for name.
func (s *EntryTypeService) Lookup(_ context.Context, name string) (entrytype.FieldSchema, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry.Lookup(name)
}

// IsCustom reports whether name resolves to a custom type.
func (s *EntryTypeService) IsCustom(_ context.Context, name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry.IsCustom(name)
}

// List returns the selectable type listing.
func (s *EntryTypeService) List(_ context.Context) []entrytype.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry.List()
}

// Editors returns the editor layout for the type called name.
func (s *EntryTypeService) Editors(_ context.Context, name string) ([]fieldeditor.Descriptor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	schema, ok := s.registry.Lookup(name)
	if !ok {
		return nil, &entrytype.NotFoundError{Name: name}
	}
	return s.editors.Layout(schema), nil
}

// View runs fn under the read lock.
func (s *EntryTypeService) View(fn func()) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn()
}

// Name implements ports.HealthChecker.
func (s *EntryTypeService) Name() string { return HealthCheckName }

// HealthCheck reports the service unhealthy when no standard types are
// seeded.
func (s *EntryTypeService) HealthCheck(_ context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.registry.StandardLen() == 0 {
		return errors.New("no standard entry types loaded")
	}
	return nil
}

func (s *EntryTypeService) record(ctx context.Context, op string, err error) {
	if s.metrics == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	s.metrics.EntryTypeMutationTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrOperation.String(op),
		telemetry.AttrResult.String(result),
	))
}
