package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/bibtypes/internal/adapters/http/dto"
	"github.com/jsamuelsen11/bibtypes/internal/ports"
)

// DocumentHandler handles HTTP requests for open documents and their entries.
type DocumentHandler struct {
	svc ports.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler with the given service port.
func NewDocumentHandler(svc ports.DocumentService) *DocumentHandler {
	return &DocumentHandler{svc: svc}
}

// ListDocuments handles GET /api/v1/documents.
func (h *DocumentHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.ToDocumentListResponse(h.svc.List(r.Context())))
}

// CreateDocument handles POST /api/v1/documents.
func (h *DocumentHandler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDocumentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	snap, err := h.svc.Create(r.Context(), req.Name)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToDocumentResponse(snap))
}

// GetDocument handles GET /api/v1/documents/{id}.
func (h *DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToDocumentResponse(snap))
}

// CloseDocument handles DELETE /api/v1/documents/{id}.
func (h *DocumentHandler) CloseDocument(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Close(r.Context(), chi.URLParam(r, "id")); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddEntry handles POST /api/v1/documents/{id}/entries.
func (h *DocumentHandler) AddEntry(w http.ResponseWriter, r *http.Request) {
	var req dto.AddEntryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resolved, err := h.svc.AddEntry(r.Context(), chi.URLParam(r, "id"), req.ToEntry())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToEntryResponse(resolved))
}

// EntryEditors handles GET /api/v1/documents/{id}/entries/{entryID}/editors.
func (h *DocumentHandler) EntryEditors(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	entryID := chi.URLParam(r, "entryID")

	layout, err := h.svc.EntryEditors(r.Context(), id, entryID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToEntryEditorLayoutResponse(entryID, layout))
}

// SaveDocument handles POST /api/v1/documents/{id}/save.
func (h *DocumentHandler) SaveDocument(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Save(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToDocumentResponse(snap))
}
