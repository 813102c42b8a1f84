package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResponseWriter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		run         func(rw *responseWriter)
		wantStatus  int
		wantWritten int64
		wantHeader  bool
	}{
		{
			name:       "untouched defaults to 200",
			run:        func(*responseWriter) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "explicit status",
			run:        func(rw *responseWriter) { rw.WriteHeader(http.StatusNoContent) },
			wantStatus: http.StatusNoContent,
			wantHeader: true,
		},
		{
			name: "first status wins",
			run: func(rw *responseWriter) {
				rw.WriteHeader(http.StatusCreated)
				rw.WriteHeader(http.StatusConflict)
			},
			wantStatus: http.StatusCreated,
			wantHeader: true,
		},
		{
			name: "writes accumulate with implicit 200",
			run: func(rw *responseWriter) {
				_, _ = rw.Write([]byte(`{"count":`))
				_, _ = rw.Write([]byte(`14}`))
			},
			wantStatus:  http.StatusOK,
			wantWritten: 12,
			wantHeader:  true,
		},
		{
			name: "status then body",
			run: func(rw *responseWriter) {
				rw.WriteHeader(http.StatusNotFound)
				_, _ = rw.Write([]byte("{}"))
			},
			wantStatus:  http.StatusNotFound,
			wantWritten: 2,
			wantHeader:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			rw := newResponseWriter(rec)
			tt.run(rw)

			if rw.statusCode != tt.wantStatus {
				t.Errorf("statusCode = %d, want %d", rw.statusCode, tt.wantStatus)
			}
			if rw.written != tt.wantWritten {
				t.Errorf("written = %d, want %d", rw.written, tt.wantWritten)
			}
			if rw.headerWritten != tt.wantHeader {
				t.Errorf("headerWritten = %v, want %v", rw.headerWritten, tt.wantHeader)
			}
			if tt.wantHeader && rec.Code != tt.wantStatus {
				t.Errorf("recorder Code = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestResponseWriter_Unwrap(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	if newResponseWriter(rec).Unwrap() != rec {
		t.Error("Unwrap() did not return the underlying writer")
	}
}
