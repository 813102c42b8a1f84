// Package typechange propagates entry-type changes to open documents.
//
// The Notifier keeps open documents in the order they were opened and, on
// each change, asks every one of them to revalidate its entries of the
// changed type. Revalidation is synchronous and ordered: when Notify
// returns, every open document has observed the change.
package typechange

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/bibtypes/internal/domain"
	"github.com/jsamuelsen11/bibtypes/internal/platform/logging"
	"github.com/jsamuelsen11/bibtypes/internal/platform/telemetry"
	"github.com/jsamuelsen11/bibtypes/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.ChangeNotifier  = (*Notifier)(nil)
	_ ports.DocumentTracker = (*Notifier)(nil)
)

const tracerName = "github.com/jsamuelsen11/bibtypes/internal/app/typechange"

// Notifier tracks open documents and notifies them of entry-type changes.
// Safe for concurrent use; the open-document list has its own lock so that
// documents can be opened and closed while a notification is in flight.
type Notifier struct {
	mu      sync.Mutex
	docs    []ports.Document
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New creates a Notifier with no open documents. metrics may be nil; a nil
// logger discards output.
func New(metrics *telemetry.Metrics, logger *slog.Logger) *Notifier {
	return &Notifier{metrics: metrics, logger: logging.OrDiscard(logger)}
}

// Open adds doc to the end of the notification order.
func (n *Notifier) Open(doc ports.Document) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.indexOf(doc.ID()) >= 0 {
		return fmt.Errorf("%w: document %s is already open", domain.ErrConflict, doc.ID())
	}
	n.docs = append(n.docs, doc)
	return nil
}

// Close removes the document with the given ID.
func (n *Notifier) Close(id string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	i := n.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: document %s is not open", domain.ErrNotFound, id)
	}
	n.docs = slices.Delete(n.docs, i, i+1)
	return nil
}

// Documents returns the open documents in open order.
func (n *Notifier) Documents() []ports.Document {
	n.mu.Lock()
	defer n.mu.Unlock()
	return slices.Clone(n.docs)
}

// Notify revalidates every open document for typeName, in open order, and
// reports which documents changed. Documents opened or closed during the
// call do not affect the set being notified.
func (n *Notifier) Notify(ctx context.Context, typeName string) ports.PropagationReport {
	ctx, span := otel.GetTracerProvider().Tracer(tracerName).Start(ctx, "typechange.Notify",
		trace.WithAttributes(attribute.String("entry_type.name", typeName)),
	)
	defer span.End()

	docs := n.Documents()
	report := ports.PropagationReport{
		TypeName:  typeName,
		Documents: make([]ports.DocumentChange, 0, len(docs)),
	}

	for _, doc := range docs {
		changed := doc.RevalidateEntriesForType(typeName)
		report.Documents = append(report.Documents, ports.DocumentChange{
			DocumentID: doc.ID(),
			Changed:    changed,
		})
		n.record(ctx, changed)
	}

	span.SetAttributes(
		attribute.Int("document.count", len(docs)),
		attribute.Bool("document.any_changed", report.AnyChanged()),
	)

	n.logger.DebugContext(ctx, "entry type change propagated",
		slog.String("type", typeName),
		slog.Int("documents", len(docs)),
		slog.Bool("any_changed", report.AnyChanged()),
	)

	return report
}

func (n *Notifier) record(ctx context.Context, changed bool) {
	if n.metrics == nil {
		return
	}
	n.metrics.DocumentsRevalidatedTotal.Add(ctx, 1,
		metric.WithAttributes(telemetry.AttrChanged.Bool(changed)),
	)
}

func (n *Notifier) indexOf(id string) int {
	return slices.IndexFunc(n.docs, func(d ports.Document) bool { return d.ID() == id })
}
