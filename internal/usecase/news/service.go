package news

import (
	"context"
	"fmt"
	"time"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
	"newsdesk/internal/utils/text"
)

// Input represents the caller-settable fields of a news item.
// Create and Update both take the full set; there are no partial updates.
type Input struct {
	Author          string
	Title           string
	Text            string
	PublicationDate time.Time
	FirstHand       bool
}

// Service provides news management use cases.
// It gates every write behind the validation pipeline and delegates
// persistence to the repository.
type Service struct {
	Repo repository.NewsRepository

	// Now supplies the validation-time clock reading for the
	// publication-date rule. Nil means time.Now.
	Now func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// List retrieves news per the normalized query plan.
// The plan never rejects; any error here is a repository failure.
func (s *Service) List(ctx context.Context, q repository.ListQuery) ([]*entity.News, error) {
	items, err := s.Repo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	return items, nil
}

// Get retrieves a single news item by its ID.
// Returns a NotFound failure if the item does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.News, error) {
	item, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get news: %w", err)
	}
	if item == nil {
		return nil, ErrNewsNotFound(id)
	}
	return item, nil
}

// Create validates the input and persists a new news item.
// The title-uniqueness check always runs on create. On success the returned
// entity carries the system-assigned ID and CreatedAt.
func (s *Service) Create(ctx context.Context, in Input) (*entity.News, error) {
	if err := s.validate(ctx, in, true); err != nil {
		return nil, err
	}

	item := &entity.News{
		Author:          in.Author,
		Title:           in.Title,
		Text:            in.Text,
		PublicationDate: in.PublicationDate.UTC(),
		FirstHand:       in.FirstHand,
	}
	if err := s.Repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create news: %w", err)
	}
	return item, nil
}

// Update replaces the mutable fields of an existing news item.
// Returns NotFound if the item does not exist. The title-uniqueness check runs
// only when the incoming title differs from the stored one, so saving an item
// under its own unchanged title never conflicts with itself.
func (s *Service) Update(ctx context.Context, id int64, in Input) (*entity.News, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	titleChanged := current.Title != in.Title
	if err := s.validate(ctx, in, titleChanged); err != nil {
		return nil, err
	}

	item := &entity.News{
		ID:              id,
		Author:          in.Author,
		Title:           in.Title,
		Text:            in.Text,
		PublicationDate: in.PublicationDate.UTC(),
		FirstHand:       in.FirstHand,
		CreatedAt:       current.CreatedAt,
	}
	if err := s.Repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update news: %w", err)
	}
	return item, nil
}

// Delete removes a news item by its ID.
// Returns NotFound if the item does not exist; deletion never succeeds silently.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete news: %w", err)
	}
	return nil
}

// validate runs the write-gating rules in their fixed order: title uniqueness,
// text length, publication date. The first failing rule wins; later rules are
// still well-defined but never reported alongside an earlier failure.
//
// The uniqueness lookup is a check-then-act fast path; the storage layer's
// unique constraint closes the race window between concurrent writers.
func (s *Service) validate(ctx context.Context, in Input, checkTitle bool) error {
	if checkTitle {
		existing, err := s.Repo.GetByTitle(ctx, in.Title)
		if err != nil {
			return fmt.Errorf("check title: %w", err)
		}
		if existing != nil {
			return ErrDuplicateTitle(in.Title)
		}
	}

	if text.CountRunes(in.Text) < entity.MinTextLength {
		return ErrTextTooShort()
	}

	if in.PublicationDate.Before(s.now()) {
		return ErrPastPublicationDate()
	}

	return nil
}
