package news

import (
	"net/http"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	newsUC "newsdesk/internal/usecase/news"
)

type GetHandler struct{ Svc *newsUC.Service }

// ServeHTTP returns a single news item by its numeric ID.
// A non-numeric or non-positive ID is rejected before storage is touched.
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/news/")
	if err != nil {
		respond.DomainError(w, entity.E(entity.KindBadRequest, "Id is not valid."))
		return
	}

	item, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.DomainError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(item))
}
