package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"games-catalog-service/internal/catalog"
	"games-catalog-service/internal/domain"
	"games-catalog-service/internal/logging"
)

// Handler wires HTTP verbs on the games resource to the catalog service.
type Handler struct {
	svc     *catalog.Service
	backend string
	logger  *slog.Logger
}

// NewHandler constructs a Handler. backend names the active persistence
// backend for the health payload.
func NewHandler(svc *catalog.Service, backend string, logger *slog.Logger) *Handler {
	return &Handler{
		svc:     svc,
		backend: backend,
		logger:  logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	resp := map[string]string{"status": "ok", "backend": h.backend}
	writeJSON(w, http.StatusOK, resp, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes). The
// store never blocks startup, so readiness follows process liveness.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// Games dispatches the verb-based catalog operations on the games
// resource.
func (h *Handler) Games(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.getGames(w, r)
	case http.MethodPost:
		h.createGame(w, r)
	case http.MethodPut:
		h.updateGame(w, r)
	case http.MethodDelete:
		h.deleteGames(w, r)
	default:
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

func (h *Handler) getGames(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	logger := loggerFromContext(r, h.logger)

	if id := params.Get("id"); id != "" {
		game, err := h.svc.Get(id)
		if err != nil {
			respondError(w, r, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, game, logger)
		return
	}

	page := h.svc.List(catalog.Query{
		Category: params.Get("category"),
		Search:   params.Get("search"),
		Page:     intParam(params.Get("page")),
		Limit:    intParam(params.Get("limit")),
	})
	logging.Info(logger, "served games",
		slog.Int(logging.FieldCount, len(page.Games)),
		slog.Int("total", page.Pagination.Total),
	)
	writeJSON(w, http.StatusOK, page, logger)
}

func (h *Handler) createGame(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)

	var game domain.Game
	if err := json.NewDecoder(r.Body).Decode(&game); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", logger)
		return
	}

	created, err := h.svc.Create(game)
	if err != nil {
		respondError(w, r, err, logger)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"game":    created,
	}, logger)
}

func (h *Handler) updateGame(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)

	var patch map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", logger)
		return
	}

	updated, err := h.svc.Update(patch)
	if err != nil {
		respondError(w, r, err, logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"game":    updated,
	}, logger)
}

func (h *Handler) deleteGames(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)

	var req struct {
		ID  *string   `json:"id"`
		IDs *[]string `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", logger)
		return
	}

	var (
		count int
		err   error
	)
	switch {
	case req.IDs != nil:
		count, err = h.svc.Delete(*req.IDs)
	case req.ID != nil:
		count, err = h.svc.DeleteOne(*req.ID)
	default:
		writeError(w, r, http.StatusBadRequest, "id or ids required", logger)
		return
	}
	if err != nil {
		respondError(w, r, err, logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"deletedCount": count,
	}, logger)
}

// intParam coerces a query value to an int; anything unparseable falls
// back to zero and picks up the service default.
func intParam(raw string) int {
	if raw == "" {
		return 0
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return val
}
