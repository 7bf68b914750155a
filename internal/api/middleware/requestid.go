package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"blogapi/pkg/logger"
)

type requestIDKey struct{}

// RequestIDMiddleware assigns a request id to every request, exposes it
// on the X-Request-ID response header and the request context, and logs
// request completion with it.
func RequestIDMiddleware(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = uuid.NewString()
			}

			w.Header().Set("X-Request-ID", requestID)

			rw := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)
			next.ServeHTTP(rw, r.WithContext(ctx))

			log.Debug("Request completed", map[string]interface{}{
				"request_id": requestID,
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     rw.statusCode,
			})
		})
	}
}

// RequestIDFromContext returns the request id set by RequestIDMiddleware,
// or an empty string.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}
