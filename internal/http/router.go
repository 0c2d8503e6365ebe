package http

import (
	nethttp "net/http"

	"games-catalog-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. The admin handler is
// optional and only mounted when present.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/games", handler.Games)
	if admin != nil {
		mux.HandleFunc("/admin/export", admin.Export)
	}
	return mux
}
