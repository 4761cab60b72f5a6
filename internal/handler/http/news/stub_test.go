package news_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
	newsUC "newsdesk/internal/usecase/news"
)

// stubRepo is an in-memory repository with per-method error injection.
type stubRepo struct {
	items  map[int64]*entity.News
	nextID int64

	listErr   error
	getErr    error
	createErr error
	updateErr error
	deleteErr error
}

func newStubRepo() *stubRepo {
	return &stubRepo{items: map[int64]*entity.News{}, nextID: 1}
}

func (s *stubRepo) List(_ context.Context, q repository.ListQuery) ([]*entity.News, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	all := make([]*entity.News, 0, len(s.items))
	for _, item := range s.items {
		if q.TitleFilter != "" &&
			!strings.Contains(strings.ToLower(item.Title), strings.ToLower(q.TitleFilter)) {
			continue
		}
		all = append(all, item)
	}
	sort.Slice(all, func(i, j int) bool {
		if q.Ascending {
			return all[i].PublicationDate.Before(all[j].PublicationDate)
		}
		return all[j].PublicationDate.Before(all[i].PublicationDate)
	})
	if q.Offset >= len(all) {
		return nil, nil
	}
	all = all[q.Offset:]
	if q.Limit < len(all) {
		all = all[:q.Limit]
	}
	return all, nil
}

func (s *stubRepo) GetByID(_ context.Context, id int64) (*entity.News, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.items[id], nil
}

func (s *stubRepo) GetByTitle(_ context.Context, title string) (*entity.News, error) {
	for _, item := range s.items {
		if item.Title == title {
			return item, nil
		}
	}
	return nil, nil
}

func (s *stubRepo) Count(_ context.Context) (int64, error) {
	return int64(len(s.items)), nil
}

func (s *stubRepo) Create(_ context.Context, item *entity.News) error {
	if s.createErr != nil {
		return s.createErr
	}
	item.ID = s.nextID
	item.CreatedAt = testClock
	s.nextID++
	s.items[item.ID] = item
	return nil
}

func (s *stubRepo) Update(_ context.Context, item *entity.News) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.items[item.ID] = item
	return nil
}

func (s *stubRepo) Delete(_ context.Context, id int64) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.items, id)
	return nil
}

// testClock is the fixed "now" used by the service under test.
var testClock = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newService(repo *stubRepo) *newsUC.Service {
	return &newsUC.Service{Repo: repo, Now: func() time.Time { return testClock }}
}

// validText is exactly long enough to satisfy the minimum length rule.
var validText = strings.Repeat("a", entity.MinTextLength)

// seed inserts a stored item and returns it.
func seed(repo *stubRepo, title string, pubAt time.Time) *entity.News {
	item := &entity.News{
		Author:          "Jane Reporter",
		Title:           title,
		Text:            validText,
		PublicationDate: pubAt,
		FirstHand:       true,
	}
	_ = repo.Create(context.Background(), item)
	return item
}
