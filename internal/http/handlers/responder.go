package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"games-catalog-service/internal/catalog"
	"games-catalog-service/internal/http/middleware"
	"games-catalog-service/internal/logging"
	"games-catalog-service/internal/store"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get("X-Request-ID")
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// respondError maps a failure to the uniform error envelope: catalog
// errors carry their own status, persistence failures and anything
// unclassified surface as a generic server error.
func respondError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	if cerr, ok := catalog.AsError(err); ok {
		writeError(w, r, cerr.Status, cerr.Message, logger)
		return
	}
	if _, ok := store.AsPersistenceError(err); ok {
		writeError(w, r, http.StatusInternalServerError, "failed to persist catalog", logger)
		return
	}
	writeError(w, r, http.StatusInternalServerError, "internal server error", logger)
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
