// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/bibtypes/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	entryTypeHandler *handlers.EntryTypeHandler,
	documentHandler *handlers.DocumentHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		// Entry-type definitions.
		r.Get("/entry-types", entryTypeHandler.ListEntryTypes)
		r.Get("/entry-types/{name}", entryTypeHandler.GetEntryType)
		r.Put("/entry-types/{name}", entryTypeHandler.DefineEntryType)
		r.Delete("/entry-types/{name}", entryTypeHandler.RemoveEntryType)
		r.Get("/entry-types/{name}/editors", entryTypeHandler.EntryTypeEditors)

		// Open documents.
		r.Get("/documents", documentHandler.ListDocuments)
		r.Post("/documents", documentHandler.CreateDocument)
		r.Get("/documents/{id}", documentHandler.GetDocument)
		r.Delete("/documents/{id}", documentHandler.CloseDocument)
		r.Post("/documents/{id}/save", documentHandler.SaveDocument)

		// Entries within a document.
		r.Post("/documents/{id}/entries", documentHandler.AddEntry)
		r.Get("/documents/{id}/entries/{entryID}/editors", documentHandler.EntryEditors)
	})

	return r
}
