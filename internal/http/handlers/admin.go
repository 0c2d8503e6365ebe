package handlers

import (
	"log/slog"
	"net/http"

	"games-catalog-service/internal/domain"
	"games-catalog-service/internal/http/requestutil"
	"games-catalog-service/internal/logging"
	"games-catalog-service/internal/store"
)

// CollectionReader supplies the current full collection for export.
type CollectionReader interface {
	Read() []domain.Game
}

// AdminHandler exposes operator-only endpoints. Export pulls a durable
// copy of the live collection out of the process, which is the only way
// to recover writes made in a restricted environment.
type AdminHandler struct {
	reader     CollectionReader
	exportPath string
	token      string
	logger     *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(reader CollectionReader, exportPath, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		reader:     reader,
		exportPath: exportPath,
		token:      token,
		logger:     logger,
	}
}

// Export writes the current collection to the configured export path.
// Guarded by ADMIN_TOKEN; returns 401 if missing/invalid.
func (h *AdminHandler) Export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.reader == nil || h.exportPath == "" {
		writeError(w, r, http.StatusServiceUnavailable, "export not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	games := h.reader.Read()
	if err := store.WriteCollection(h.exportPath, games); err != nil {
		logging.Error(logger, "admin export failed", err,
			slog.String(logging.FieldPath, h.exportPath),
			slog.Int(logging.FieldCount, len(games)),
		)
		writeError(w, r, http.StatusInternalServerError, "failed to write export", logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"path":   h.exportPath,
		"count":  len(games),
	}, logger)
	logging.Info(logger, "admin export written",
		slog.String(logging.FieldPath, h.exportPath),
		slog.Int(logging.FieldCount, len(games)),
	)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	return r.Header.Get("Authorization") == "Bearer "+h.token
}
