package news

import (
	"net/http"

	"newsdesk/internal/handler/http/respond"
	newsUC "newsdesk/internal/usecase/news"
)

type CreateHandler struct{ Svc *newsUC.Service }

// ServeHTTP creates a news item and returns it with its assigned ID and
// creation timestamp. Shape failures (bad JSON, missing fields) surface as
// 422; rule failures (short text, past date) as 400; a duplicate title as 409.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	in, err := decodeInput(r.Body)
	if err != nil {
		respond.DomainError(w, err)
		return
	}

	item, err := h.Svc.Create(r.Context(), in)
	if err != nil {
		respond.DomainError(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toDTO(item))
}
