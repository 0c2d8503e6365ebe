package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"games-catalog-service/internal/logging"
	"games-catalog-service/internal/metrics"
)

func TestLoggingMiddlewareSetsRequestIDHeader(t *testing.T) {
	var seenID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	handler := LoggingMiddleware(logging.NewLogger(logging.Config{}), metrics.NewRecorder(), next)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/games", nil))

	headerID := rec.Header().Get("X-Request-ID")
	if headerID == "" {
		t.Fatalf("expected X-Request-ID header")
	}
	if seenID != headerID {
		t.Fatalf("context id %q does not match header %q", seenID, headerID)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status not propagated: %d", rec.Code)
	}
}

func TestLoggingMiddlewareKeepsValidIncomingID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	handler := LoggingMiddleware(nil, nil, next)

	req := httptest.NewRequest("GET", "/games", nil)
	req.Header.Set("X-Request-ID", "caller-id-42")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") != "caller-id-42" {
		t.Fatalf("valid incoming id replaced: %q", rec.Header().Get("X-Request-ID"))
	}
}

func TestLoggingMiddlewareInjectsContextLogger(t *testing.T) {
	var gotLogger bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLogger = logging.FromContext(r.Context(), nil) != nil
	})
	handler := LoggingMiddleware(logging.NewLogger(logging.Config{}), nil, next)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/games", nil))
	if !gotLogger {
		t.Fatalf("expected request-scoped logger in context")
	}
}

func TestRequestIDFromContextMissing(t *testing.T) {
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
	if got := RequestIDFromContext(nil); got != "" { //nolint:staticcheck
		t.Fatalf("expected empty for nil context, got %q", got)
	}
}

func TestNormalizePath(t *testing.T) {
	cases := map[string]string{
		"/games":        "/games",
		"/health":       "/health",
		"/ready":        "/ready",
		"/admin/export": "/admin/export",
		"/weird/path":   "other",
		"":              "",
	}
	for input, want := range cases {
		if got := normalizePath(input); got != want {
			t.Fatalf("normalizePath(%q) = %q, want %q", input, got, want)
		}
	}
}
