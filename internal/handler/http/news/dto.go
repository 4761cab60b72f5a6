// Package news provides HTTP handlers for news-related endpoints.
// It includes handlers for listing, getting, creating, updating, and
// deleting news items.
package news

import (
	"time"

	"newsdesk/internal/domain/entity"
)

// DTO represents the JSON structure for news data transfer.
type DTO struct {
	ID              int64     `json:"id" example:"1"`
	Author          string    `json:"author" example:"Jane Reporter"`
	Title           string    `json:"title" example:"Go 1.25 released"`
	Text            string    `json:"text" example:"The Go team has released..."`
	PublicationDate time.Time `json:"publicationDate" example:"2026-09-01T10:00:00Z"`
	FirstHand       bool      `json:"firstHand" example:"true"`
	CreatedAt       time.Time `json:"createdAt" example:"2026-08-31T12:00:00Z"`
}

func toDTO(item *entity.News) DTO {
	return DTO{
		ID:              item.ID,
		Author:          item.Author,
		Title:           item.Title,
		Text:            item.Text,
		PublicationDate: item.PublicationDate,
		FirstHand:       item.FirstHand,
		CreatedAt:       item.CreatedAt,
	}
}
