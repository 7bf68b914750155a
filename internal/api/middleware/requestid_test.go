package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogapi/internal/api/middleware"
	"blogapi/pkg/logger"
)

func TestRequestIDMiddlewareAssignsID(t *testing.T) {
	log := logger.New(logger.ErrorLevel, io.Discard)

	var seen string
	handler := middleware.RequestIDMiddleware(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = middleware.RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/users", nil))

	header := rec.Header().Get("X-Request-ID")
	require.NotEmpty(t, header)
	assert.Equal(t, header, seen)

	_, err := uuid.Parse(header)
	assert.NoError(t, err)
}

func TestRequestIDMiddlewareKeepsCallerID(t *testing.T) {
	log := logger.New(logger.ErrorLevel, io.Discard)

	handler := middleware.RequestIDMiddleware(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	req.Header.Set("X-Request-ID", "caller-supplied")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "caller-supplied", rec.Header().Get("X-Request-ID"))
}
