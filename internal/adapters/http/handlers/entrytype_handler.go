// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/bibtypes/internal/adapters/http/dto"
	"github.com/jsamuelsen11/bibtypes/internal/domain"
	"github.com/jsamuelsen11/bibtypes/internal/domain/entrytype"
	"github.com/jsamuelsen11/bibtypes/internal/ports"
)

// EntryTypeHandler handles HTTP requests for entry-type definitions.
type EntryTypeHandler struct {
	svc ports.EntryTypeService
}

// NewEntryTypeHandler creates a new EntryTypeHandler with the given service port.
func NewEntryTypeHandler(svc ports.EntryTypeService) *EntryTypeHandler {
	return &EntryTypeHandler{svc: svc}
}

// ListEntryTypes handles GET /api/v1/entry-types.
func (h *EntryTypeHandler) ListEntryTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.ToEntryTypeListResponse(h.svc.List(r.Context())))
}

// GetEntryType handles GET /api/v1/entry-types/{name}.
func (h *EntryTypeHandler) GetEntryType(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	schema, ok := h.svc.Lookup(r.Context(), name)
	if !ok {
		dto.WriteErrorResponse(w, r, &entrytype.NotFoundError{Name: name})
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToEntryTypeResponse(schema))
}

// DefineEntryType handles PUT /api/v1/entry-types/{name}.
func (h *EntryTypeHandler) DefineEntryType(w http.ResponseWriter, r *http.Request) {
	var req dto.DefineEntryTypeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	required, optional := req.Fields()
	schema, report, err := h.svc.Define(r.Context(), chi.URLParam(r, "name"), required, optional)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToDefineEntryTypeResponse(schema, report))
}

// RemoveEntryType handles DELETE /api/v1/entry-types/{name}?confirm=true.
// Without confirm, removing a custom type that has no standard fallback is
// refused with 409 and the confirmation prompt as detail.
func (h *EntryTypeHandler) RemoveEntryType(w http.ResponseWriter, r *http.Request) {
	confirmed, err := parseConfirm(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var asked string
	confirmer := ports.ConfirmFunc(func(_ context.Context, typeName string) bool {
		asked = typeName
		return confirmed
	})

	report, err := h.svc.Remove(r.Context(), chi.URLParam(r, "name"), confirmer)
	if err != nil {
		if asked != "" && !confirmed {
			err = &promptError{prompt: ports.RemovalPrompt(asked), err: err}
		}
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToRemoveEntryTypeResponse(report))
}

// EntryTypeEditors handles GET /api/v1/entry-types/{name}/editors.
func (h *EntryTypeHandler) EntryTypeEditors(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	layout, err := h.svc.Editors(r.Context(), name)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToEditorLayoutResponse(name, layout))
}

func parseConfirm(r *http.Request) (bool, error) {
	raw := r.URL.Query().Get("confirm")
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, &domain.ValidationError{
			Fields: map[string]string{"confirm": "must be a boolean"},
		}
	}
	return v, nil
}

// promptError replaces an error's message with the question the caller
// must answer before retrying.
type promptError struct {
	prompt string
	err    error
}

func (e *promptError) Error() string { return e.prompt }

func (e *promptError) Unwrap() error { return e.err }
