package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/bibtypes/internal/domain/document"
	"github.com/jsamuelsen11/bibtypes/internal/domain/entrytype"
)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func patentSchema(t *testing.T) entrytype.FieldSchema {
	t.Helper()
	s, err := entrytype.NewFieldSchema("Patent", []string{"title", "year"}, []string{"note"}, true)
	if err != nil {
		t.Fatalf("NewFieldSchema() error = %v", err)
	}
	return s
}

func validSnapshot(t *testing.T) document.Snapshot {
	t.Helper()
	return document.Snapshot{
		ID:   "doc-1",
		Name: "refs.bib",
		Entries: []document.Resolved{{
			Entry:  document.Entry{ID: "e1", TypeName: "patent", Fields: map[string]string{"title": "Widget", "year": "2020"}},
			Schema: patentSchema(t),
		}},
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
