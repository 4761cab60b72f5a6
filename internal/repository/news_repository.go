// Package repository declares the persistence interfaces consumed by the
// usecase layer. Implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"

	"newsdesk/internal/domain/entity"
)

// ListQuery is the normalized, bounded query plan for listing news.
// It is produced by the pagination normalizer and never carries raw user input.
type ListQuery struct {
	Offset int
	Limit  int
	// Ascending orders by publication date ascending when true,
	// descending otherwise.
	Ascending bool
	// TitleFilter, when non-empty, restricts results to titles containing the
	// substring case-insensitively.
	TitleFilter string
}

type NewsRepository interface {
	// List retrieves news per the given query plan, ordered and sliced.
	List(ctx context.Context, q ListQuery) ([]*entity.News, error)
	// GetByID retrieves one news item by id.
	// Returns (nil, nil) if no news with that id exists.
	GetByID(ctx context.Context, id int64) (*entity.News, error)
	// GetByTitle retrieves one news item by exact title match.
	// Returns (nil, nil) if no news with that title exists.
	GetByTitle(ctx context.Context, title string) (*entity.News, error)
	// Count returns the total number of news items.
	// Used for operational metrics, not for listing responses.
	Count(ctx context.Context) (int64, error)
	// Create persists a new item and fills in the system-assigned
	// ID and CreatedAt on the passed entity.
	Create(ctx context.Context, news *entity.News) error
	// Update replaces author, title, text, publication date and the
	// first-hand flag of the row identified by news.ID.
	Update(ctx context.Context, news *entity.News) error
	Delete(ctx context.Context, id int64) error
}
