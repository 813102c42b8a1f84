package http_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/bibtypes/internal/adapters/http"
	"github.com/jsamuelsen11/bibtypes/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/bibtypes/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/bibtypes/internal/domain/entrytype"
	"github.com/jsamuelsen11/bibtypes/internal/ports"
	"github.com/jsamuelsen11/bibtypes/mocks"
)

type routerMocks struct {
	entryTypes *mocks.MockEntryTypeService
	documents  *mocks.MockDocumentService
	health     *mocks.MockHealthRegistry
}

func newTestRouter(t *testing.T, middlewares ...func(http.Handler) http.Handler) (http.Handler, routerMocks) {
	t.Helper()
	m := routerMocks{
		entryTypes: mocks.NewMockEntryTypeService(t),
		documents:  mocks.NewMockDocumentService(t),
		health:     mocks.NewMockHealthRegistry(t),
	}

	router := adapthttp.NewRouter(
		handlers.NewEntryTypeHandler(m.entryTypes),
		handlers.NewDocumentHandler(m.documents),
		handlers.NewHealthHandler(m.health),
		middlewares...,
	)
	return router, m
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodGet, "/api/v1/entry-types"},
		{http.MethodGet, "/api/v1/entry-types/{name}"},
		{http.MethodPut, "/api/v1/entry-types/{name}"},
		{http.MethodDelete, "/api/v1/entry-types/{name}"},
		{http.MethodGet, "/api/v1/entry-types/{name}/editors"},
		{http.MethodGet, "/api/v1/documents"},
		{http.MethodPost, "/api/v1/documents"},
		{http.MethodGet, "/api/v1/documents/{id}"},
		{http.MethodDelete, "/api/v1/documents/{id}"},
		{http.MethodPost, "/api/v1/documents/{id}/save"},
		{http.MethodPost, "/api/v1/documents/{id}/entries"},
		{http.MethodGet, "/api/v1/documents/{id}/entries/{entryID}/editors"},
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router, m := newTestRouter(t, testMW)

	m.health.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_IntegrationListEntryTypes(t *testing.T) {
	t.Parallel()

	router, m := newTestRouter(t)

	m.entryTypes.EXPECT().List(mock.Anything).Return([]entrytype.Listing{
		{Name: entrytype.NewTypeSentinel, Label: entrytype.NewTypeSentinel, Sentinel: true},
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/entry-types", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_NameParamReachesService(t *testing.T) {
	t.Parallel()

	router, m := newTestRouter(t)

	schema, err := entrytype.NewFieldSchema("Patent", []string{"title"}, nil, true)
	if err != nil {
		t.Fatalf("NewFieldSchema() error = %v", err)
	}
	m.entryTypes.EXPECT().Define(mock.Anything, "Patent", []string{"title"}, []string(nil)).
		Return(schema, ports.PropagationReport{TypeName: "Patent"}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/entry-types/Patent",
		bytes.NewBufferString(`{"required":"title"}`))
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/entry-types", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestRouter_PanicBehindTimeoutBecomesProblem(t *testing.T) {
	t.Parallel()

	router, m := newTestRouter(t,
		middleware.Recovery(slog.New(slog.DiscardHandler)),
		middleware.Timeout(time.Second),
	)
	m.entryTypes.EXPECT().List(mock.Anything).RunAndReturn(func(context.Context) []entrytype.Listing {
		panic("registry listing failed")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/entry-types", http.NoBody)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}
}
