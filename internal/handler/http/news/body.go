package news

import (
	"encoding/json"
	"io"
	"time"

	"newsdesk/internal/domain/entity"
	newsUC "newsdesk/internal/usecase/news"
)

// requestBody is the JSON payload accepted by create and update. Both
// operations take the full field set; there are no partial updates.
type requestBody struct {
	Author          string `json:"author"`
	Title           string `json:"title"`
	Text            string `json:"text"`
	PublicationDate string `json:"publicationDate"`
	FirstHand       bool   `json:"firstHand"`
}

// decodeInput reads and shapes the request body. A body that cannot be
// decoded, or that is missing author, title, text or publicationDate,
// is an unprocessable entity; the core validation rules never see it.
func decodeInput(r io.Reader) (newsUC.Input, error) {
	var req requestBody
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return newsUC.Input{}, entity.E(entity.KindUnprocessableEntity, "Invalid request body.")
	}
	if req.Author == "" || req.Title == "" || req.Text == "" {
		return newsUC.Input{}, entity.E(entity.KindUnprocessableEntity,
			"Author, title and text are required.")
	}
	if req.PublicationDate == "" {
		return newsUC.Input{}, entity.E(entity.KindUnprocessableEntity,
			"Publication date is required.")
	}

	pubAt, err := time.Parse(time.RFC3339, req.PublicationDate)
	if err != nil {
		return newsUC.Input{}, entity.E(entity.KindUnprocessableEntity,
			"Publication date must be in RFC3339 format.")
	}

	return newsUC.Input{
		Author:          req.Author,
		Title:           req.Title,
		Text:            req.Text,
		PublicationDate: pubAt,
		FirstHand:       req.FirstHand,
	}, nil
}
