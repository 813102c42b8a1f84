package handlers_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/bibtypes/internal/adapters/http/dto"
	"github.com/jsamuelsen11/bibtypes/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/bibtypes/internal/domain"
	"github.com/jsamuelsen11/bibtypes/internal/domain/entrytype"
	"github.com/jsamuelsen11/bibtypes/internal/domain/fieldeditor"
	"github.com/jsamuelsen11/bibtypes/internal/ports"
	"github.com/jsamuelsen11/bibtypes/mocks"
)

func newEntryTypeHandler(t *testing.T) (*handlers.EntryTypeHandler, *mocks.MockEntryTypeService) {
	t.Helper()
	svc := mocks.NewMockEntryTypeService(t)
	return handlers.NewEntryTypeHandler(svc), svc
}

// removeConsulting makes the mocked Remove ask the confirmer the way the
// service does for a custom type without a standard fallback.
func removeConsulting(typeName string) func(context.Context, string, ports.RemovalConfirmer) (ports.PropagationReport, error) {
	return func(ctx context.Context, _ string, c ports.RemovalConfirmer) (ports.PropagationReport, error) {
		if !c.ConfirmRemoval(ctx, typeName) {
			return ports.PropagationReport{}, fmt.Errorf("%w: removal not confirmed", domain.ErrConflict)
		}
		return ports.PropagationReport{
			TypeName:  typeName,
			Documents: []ports.DocumentChange{{DocumentID: "doc-1", Changed: true}},
		}, nil
	}
}

// --- ListEntryTypes ---

func TestListEntryTypes_Success(t *testing.T) {
	t.Parallel()
	h, svc := newEntryTypeHandler(t)

	svc.EXPECT().List(mock.Anything).Return([]entrytype.Listing{
		{Name: entrytype.NewTypeSentinel, Label: entrytype.NewTypeSentinel, Sentinel: true},
		{Name: "article", Label: "article"},
		{Name: "Patent", Label: "Patent *", Custom: true},
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/entry-types", nil)
	h.ListEntryTypes(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.EntryTypeListResponse](t, rec)
	if resp.Count != 2 {
		t.Errorf("Count = %d, want 2", resp.Count)
	}
	if resp.EntryTypes[2].Label != "Patent *" {
		t.Errorf("EntryTypes[2].Label = %q, want %q", resp.EntryTypes[2].Label, "Patent *")
	}
}

// --- GetEntryType ---

func TestGetEntryType_Success(t *testing.T) {
	t.Parallel()
	h, svc := newEntryTypeHandler(t)

	svc.EXPECT().Lookup(mock.Anything, "PATENT").Return(patentSchema(t), true)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/entry-types/PATENT", nil)
	req = withChiParams(req, map[string]string{"name": "PATENT"})
	h.GetEntryType(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.EntryTypeResponse](t, rec)
	if resp.Name != "Patent" || !resp.Custom {
		t.Errorf("resp = %+v, want custom Patent", resp)
	}
}

func TestGetEntryType_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newEntryTypeHandler(t)

	svc.EXPECT().Lookup(mock.Anything, "nosuch").Return(entrytype.FieldSchema{}, false)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/entry-types/nosuch", nil)
	req = withChiParams(req, map[string]string{"name": "nosuch"})
	h.GetEntryType(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if resp.Detail != `there is no entry type "nosuch" defined` {
		t.Errorf("Detail = %q", resp.Detail)
	}
}

// --- DefineEntryType ---

func TestDefineEntryType_TextFields(t *testing.T) {
	t.Parallel()
	h, svc := newEntryTypeHandler(t)

	svc.EXPECT().
		Define(mock.Anything, "Patent", []string{"title", "\nyear"}, []string{"note"}).
		Return(patentSchema(t), ports.PropagationReport{TypeName: "Patent"}, nil)

	body := jsonBody(t, dto.DefineEntryTypeRequest{Required: "title;\nyear", Optional: "note"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/entry-types/Patent", body)
	req = withChiParams(req, map[string]string{"name": "Patent"})
	h.DefineEntryType(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.DefineEntryTypeResponse](t, rec)
	if resp.Message != "Stored definition for type 'Patent'." {
		t.Errorf("Message = %q", resp.Message)
	}
	if !slices.Equal(resp.EntryType.RequiredFields, []string{"title", "year"}) {
		t.Errorf("RequiredFields = %v, want [title year]", resp.EntryType.RequiredFields)
	}
}

func TestDefineEntryType_ListFields(t *testing.T) {
	t.Parallel()
	h, svc := newEntryTypeHandler(t)

	svc.EXPECT().
		Define(mock.Anything, "Patent", []string{"title", "year"}, []string{"note"}).
		Return(patentSchema(t), ports.PropagationReport{
			TypeName:  "Patent",
			Documents: []ports.DocumentChange{{DocumentID: "doc-1", Changed: true}},
		}, nil)

	body := jsonBody(t, dto.DefineEntryTypeRequest{
		RequiredFields: []string{"title", "year"},
		OptionalFields: []string{"note"},
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/entry-types/Patent", body)
	req = withChiParams(req, map[string]string{"name": "Patent"})
	h.DefineEntryType(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.DefineEntryTypeResponse](t, rec)
	if !resp.Propagation.AnyChanged {
		t.Error("Propagation.AnyChanged = false, want true")
	}
}

func TestDefineEntryType_BadBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		wantDetail string
	}{
		{"malformed", "{bad", "invalid JSON"},
		{"unknown field", `{"required":"title","mandatory":"year"}`, `unknown field "mandatory"`},
		{"too large", `{"required":"` + strings.Repeat("a", 1<<20) + `"}`, "exceeds 1048576 bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, _ := newEntryTypeHandler(t)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, "/api/v1/entry-types/Patent", bytes.NewBufferString(tt.body))
			req = withChiParams(req, map[string]string{"name": "Patent"})
			h.DefineEntryType(rec, req)

			requireStatus(t, rec, http.StatusBadRequest)
			problem := decodeJSON[dto.ErrorResponse](t, rec)
			if len(problem.Errors) != 1 || problem.Errors[0].Message != tt.wantDetail {
				t.Errorf("Errors = %+v, want body: %s", problem.Errors, tt.wantDetail)
			}
		})
	}
}

func TestDefineEntryType_TextAndListRejected(t *testing.T) {
	t.Parallel()
	h, _ := newEntryTypeHandler(t)

	body := jsonBody(t, dto.DefineEntryTypeRequest{Required: "title", RequiredFields: []string{"year"}})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/entry-types/Patent", body)
	req = withChiParams(req, map[string]string{"name": "Patent"})
	h.DefineEntryType(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestDefineEntryType_ServiceErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"blank name", entrytype.ErrEmptyName, http.StatusBadRequest},
		{"overlap", &entrytype.InvalidSchemaError{Name: "Patent", Overlap: []string{"title"}}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newEntryTypeHandler(t)

			svc.EXPECT().Define(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
				Return(entrytype.FieldSchema{}, ports.PropagationReport{}, tt.err)

			body := jsonBody(t, dto.DefineEntryTypeRequest{Required: "title", Optional: "title"})
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, "/api/v1/entry-types/x", body)
			req = withChiParams(req, map[string]string{"name": "x"})
			h.DefineEntryType(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

// --- RemoveEntryType ---

func TestRemoveEntryType_Confirmed(t *testing.T) {
	t.Parallel()
	h, svc := newEntryTypeHandler(t)

	svc.EXPECT().Remove(mock.Anything, "patent", mock.Anything).RunAndReturn(removeConsulting("Patent"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/entry-types/patent?confirm=true", nil)
	req = withChiParams(req, map[string]string{"name": "patent"})
	h.RemoveEntryType(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.RemoveEntryTypeResponse](t, rec)
	if resp.Message != dto.MsgRemoved {
		t.Errorf("Message = %q, want %q", resp.Message, dto.MsgRemoved)
	}
	if !resp.Propagation.AnyChanged {
		t.Error("Propagation.AnyChanged = false, want true")
	}
}

func TestRemoveEntryType_UnconfirmedIsConflictWithPrompt(t *testing.T) {
	t.Parallel()
	h, svc := newEntryTypeHandler(t)

	svc.EXPECT().Remove(mock.Anything, "patent", mock.Anything).RunAndReturn(removeConsulting("Patent"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/entry-types/patent", nil)
	req = withChiParams(req, map[string]string{"name": "patent"})
	h.RemoveEntryType(rec, req)

	requireStatus(t, rec, http.StatusConflict)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if resp.Detail != ports.RemovalPrompt("Patent") {
		t.Errorf("Detail = %q, want %q", resp.Detail, ports.RemovalPrompt("Patent"))
	}
}

func TestRemoveEntryType_ShadowNeedsNoConfirm(t *testing.T) {
	t.Parallel()
	h, svc := newEntryTypeHandler(t)

	svc.EXPECT().Remove(mock.Anything, "article", mock.Anything).
		Return(ports.PropagationReport{TypeName: "article"}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/entry-types/article", nil)
	req = withChiParams(req, map[string]string{"name": "article"})
	h.RemoveEntryType(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestRemoveEntryType_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
	}{
		{"standard type", &entrytype.NotCustomError{Name: "article"}, http.StatusForbidden, dto.ProblemStandardType},
		{"unknown type", &entrytype.NotFoundError{Name: "nosuch"}, http.StatusNotFound, "about:blank"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newEntryTypeHandler(t)

			svc.EXPECT().Remove(mock.Anything, "x", mock.Anything).Return(ports.PropagationReport{}, tt.err)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodDelete, "/api/v1/entry-types/x?confirm=true", nil)
			req = withChiParams(req, map[string]string{"name": "x"})
			h.RemoveEntryType(rec, req)

			requireStatus(t, rec, tt.wantStatus)
			resp := decodeJSON[dto.ErrorResponse](t, rec)
			if resp.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", resp.Type, tt.wantType)
			}
			if resp.Detail != tt.err.Error() {
				t.Errorf("Detail = %q, want %q", resp.Detail, tt.err.Error())
			}
		})
	}
}

func TestRemoveEntryType_BadConfirmParam(t *testing.T) {
	t.Parallel()
	h, _ := newEntryTypeHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/entry-types/patent?confirm=maybe", nil)
	req = withChiParams(req, map[string]string{"name": "patent"})
	h.RemoveEntryType(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- EntryTypeEditors ---

func TestEntryTypeEditors_Success(t *testing.T) {
	t.Parallel()
	h, svc := newEntryTypeHandler(t)

	svc.EXPECT().Editors(mock.Anything, "patent").Return([]fieldeditor.Descriptor{
		{Field: "title", Kind: fieldeditor.KindSimple, SingleLine: true, Required: true},
		{Field: "type", Kind: fieldeditor.KindOption, Options: fieldeditor.OptionsPatentType},
	}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/entry-types/patent/editors", nil)
	req = withChiParams(req, map[string]string{"name": "patent"})
	h.EntryTypeEditors(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.EditorLayoutResponse](t, rec)
	if len(resp.Editors) != 2 || resp.Editors[1].Options != "patent_type" {
		t.Errorf("Editors = %+v", resp.Editors)
	}
}

func TestEntryTypeEditors_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newEntryTypeHandler(t)

	svc.EXPECT().Editors(mock.Anything, "nosuch").Return(nil, &entrytype.NotFoundError{Name: "nosuch"})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/entry-types/nosuch/editors", nil)
	req = withChiParams(req, map[string]string{"name": "nosuch"})
	h.EntryTypeEditors(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}
