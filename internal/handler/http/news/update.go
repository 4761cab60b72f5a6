package news

import (
	"net/http"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	newsUC "newsdesk/internal/usecase/news"
)

type UpdateHandler struct{ Svc *newsUC.Service }

// ServeHTTP replaces an existing news item and returns the updated entity.
// The existence check runs before validation, so an update to a missing ID is
// always 404 regardless of how broken the payload's field values are.
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/news/")
	if err != nil {
		respond.DomainError(w, entity.E(entity.KindBadRequest, "Id is not valid."))
		return
	}

	in, err := decodeInput(r.Body)
	if err != nil {
		respond.DomainError(w, err)
		return
	}

	item, err := h.Svc.Update(r.Context(), id, in)
	if err != nil {
		respond.DomainError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(item))
}
