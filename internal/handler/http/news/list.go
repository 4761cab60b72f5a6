package news

import (
	"log/slog"
	"net/http"
	"time"

	"newsdesk/internal/common/pagination"
	"newsdesk/internal/handler/http/requestid"
	"newsdesk/internal/handler/http/respond"
	"newsdesk/internal/observability/logging"
	"newsdesk/internal/repository"
	newsUC "newsdesk/internal/usecase/news"
)

type ListHandler struct {
	Svc           *newsUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP returns a page of news items as a plain JSON array.
// The query parameters page, limit, order and title are normalized, never
// rejected: bad or absent page/limit fall back to the defaults, and any
// order other than "asc" sorts by publication date descending.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()

	reqID := requestid.FromContext(ctx)
	logger := logging.WithRequestID(ctx, h.Logger)

	params := pagination.ParseQueryParams(r, h.PaginationCfg)

	logger.Info("Paginated news list request",
		"page", params.Page,
		"limit", params.Limit,
		"ascending", params.Ascending,
		"request_id", reqID)

	items, err := h.Svc.List(ctx, repository.ListQuery{
		Offset:      params.Offset(),
		Limit:       params.Limit,
		Ascending:   params.Ascending,
		TitleFilter: params.Title,
	})
	if err != nil {
		logger.Error("Failed to list news",
			"error", err.Error(),
			"page", params.Page,
			"limit", params.Limit,
			"request_id", reqID)
		pagination.RecordError("database")
		respond.DomainError(w, err)
		return
	}

	// An empty page marshals as [], never null.
	dtos := make([]DTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, toDTO(item))
	}

	duration := time.Since(startTime)
	pagination.RecordRequest(http.StatusOK, params.Page)
	pagination.RecordDuration("handler", duration.Seconds())

	logger.Info("Paginated response",
		"page", params.Page,
		"limit", params.Limit,
		"returned_count", len(dtos),
		"duration_ms", duration.Milliseconds(),
		"status", http.StatusOK,
		"request_id", reqID)

	respond.JSON(w, http.StatusOK, dtos)
}
