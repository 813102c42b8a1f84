package middleware

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/bibtypes/internal/adapters/http/dto"
)

// Timeout returns middleware that bounds each request by timeout. The handler
// sees the deadline on its context. When it misses the deadline the client
// gets a 504 problem response and anything the handler writes afterwards is
// discarded.
//
// The handler runs in its own goroutine and writes into a buffer; a mutex
// shared with the timeout path decides which of the two reaches the client.
// A panic in the handler is re-raised on the serving goroutine so Recovery
// sees it. Once the deadline has passed the 504 is already sent and a later
// panic is dropped.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			bw := &bufferedWriter{header: make(http.Header)}
			done := make(chan struct{})

			var panicVal any
			go func() {
				defer func() {
					panicVal = recover()
					close(done)
				}()
				next.ServeHTTP(bw, r.WithContext(ctx))
			}()

			select {
			case <-done:
				if panicVal != nil {
					panic(panicVal)
				}
				bw.mu.Lock()
				defer bw.mu.Unlock()
				bw.copyTo(w)
			case <-ctx.Done():
				bw.mu.Lock()
				defer bw.mu.Unlock()
				bw.abandoned = true
				if errors.Is(ctx.Err(), context.DeadlineExceeded) {
					dto.WriteErrorResponse(w, r,
						fmt.Errorf("request exceeded %s: %w", timeout, context.DeadlineExceeded))
				}
			}
		})
	}
}

// bufferedWriter holds a handler's response until Timeout decides to send it.
type bufferedWriter struct {
	mu          sync.Mutex
	header      http.Header
	body        []byte
	status      int
	wroteHeader bool
	abandoned   bool
}

func (bw *bufferedWriter) Header() http.Header {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	return bw.header
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if bw.abandoned {
		return 0, http.ErrHandlerTimeout
	}
	if !bw.wroteHeader {
		bw.status = http.StatusOK
		bw.wroteHeader = true
	}
	bw.body = append(bw.body, b...)
	return len(b), nil
}

func (bw *bufferedWriter) WriteHeader(code int) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if bw.abandoned || bw.wroteHeader {
		return
	}
	bw.status = code
	bw.wroteHeader = true
}

// copyTo sends the buffered response. Callers hold bw.mu.
func (bw *bufferedWriter) copyTo(w http.ResponseWriter) {
	maps.Copy(w.Header(), bw.header)
	if bw.wroteHeader {
		w.WriteHeader(bw.status)
	}
	if len(bw.body) > 0 {
		_, _ = w.Write(bw.body)
	}
}
