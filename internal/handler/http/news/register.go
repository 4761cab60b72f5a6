package news

import (
	"log/slog"
	"net/http"

	"newsdesk/internal/common/pagination"
	newsUC "newsdesk/internal/usecase/news"
)

// Register registers all news HTTP handlers with the given mux.
// It sets up routes for listing, getting, creating, updating, and deleting
// news items.
func Register(mux *http.ServeMux, svc *newsUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET    /news", ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("GET    /news/", GetHandler{svc})

	mux.Handle("POST   /news", CreateHandler{svc})
	mux.Handle("PUT    /news/", UpdateHandler{svc})
	mux.Handle("DELETE /news/", DeleteHandler{svc})
}
