package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jsamuelsen11/bibtypes/internal/platform/logging"
)

const redacted = "[REDACTED]"

// Logging returns middleware that logs request start and completion events.
// It creates a child logger enriched with the request ID from context,
// stores it via logging.WithLogger for downstream use, and logs completion
// with method, path, status code, and duration. Request headers are logged
// at debug level with credential headers redacted.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(slog.String("request_id", RequestIDFromContext(ctx)))
			ctx = logging.WithLogger(ctx, child)

			child.InfoContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)

			if child.Enabled(ctx, slog.LevelDebug) {
				child.DebugContext(ctx, "request headers", headerGroup(r.Header))
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			child.InfoContext(ctx, "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rw.statusCode),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

// headerGroup renders headers as one "headers" group. Multi-value headers
// are joined with a comma.
func headerGroup(headers http.Header) slog.Attr {
	attrs := make([]any, 0, len(headers))
	for key, vals := range headers {
		v := strings.Join(vals, ",")
		if logging.IsSensitiveHeader(key) {
			v = redacted
		}
		attrs = append(attrs, slog.String(key, v))
	}
	return slog.Group("headers", attrs...)
}
