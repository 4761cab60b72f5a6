package news_test

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"newsdesk/internal/common/pagination"
	"newsdesk/internal/handler/http/news"
)

func newListHandler(repo *stubRepo) news.ListHandler {
	return news.ListHandler{
		Svc:           newService(repo),
		PaginationCfg: pagination.Config{DefaultPage: 1, DefaultLimit: 10},
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func listTitles(t *testing.T, rr *httptest.ResponseRecorder) []string {
	t.Helper()
	var dtos []news.DTO
	if err := json.NewDecoder(rr.Body).Decode(&dtos); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	titles := make([]string, 0, len(dtos))
	for _, d := range dtos {
		titles = append(titles, d.Title)
	}
	return titles
}

func TestListHandler_EmptyIsArray(t *testing.T) {
	handler := newListHandler(newStubRepo())

	req := httptest.NewRequest(http.MethodGet, "/news", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := strings.TrimSpace(rr.Body.String()); got != "[]" {
		t.Errorf("body = %s, want []", got)
	}
}

func TestListHandler_DefaultOrderIsDescending(t *testing.T) {
	repo := newStubRepo()
	seed(repo, "older", testClock.Add(24*time.Hour))
	seed(repo, "newer", testClock.Add(48*time.Hour))
	handler := newListHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/news", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	titles := listTitles(t, rr)
	if len(titles) != 2 || titles[0] != "newer" || titles[1] != "older" {
		t.Errorf("titles = %v, want [newer older]", titles)
	}
}

func TestListHandler_OrderAscCaseInsensitive(t *testing.T) {
	for _, order := range []string{"asc", "ASC", "Asc"} {
		t.Run(order, func(t *testing.T) {
			repo := newStubRepo()
			seed(repo, "older", testClock.Add(24*time.Hour))
			seed(repo, "newer", testClock.Add(48*time.Hour))
			handler := newListHandler(repo)

			req := httptest.NewRequest(http.MethodGet, "/news?order="+order, nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			titles := listTitles(t, rr)
			if len(titles) != 2 || titles[0] != "older" {
				t.Errorf("titles = %v, want [older newer]", titles)
			}
		})
	}
}

func TestListHandler_Pagination(t *testing.T) {
	repo := newStubRepo()
	for i := 1; i <= 25; i++ {
		seed(repo, fmt.Sprintf("story %02d", i), testClock.Add(time.Duration(i)*time.Hour))
	}
	handler := newListHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/news?page=3&limit=10", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	titles := listTitles(t, rr)
	if len(titles) != 5 {
		t.Fatalf("len(titles) = %d, want 5", len(titles))
	}
	// Descending by publication date: page 3 of 10 holds the 5 oldest.
	if titles[0] != "story 05" || titles[4] != "story 01" {
		t.Errorf("titles = %v", titles)
	}
}

func TestListHandler_MalformedParamsFallBack(t *testing.T) {
	repo := newStubRepo()
	seed(repo, "only one", testClock.Add(24*time.Hour))
	handler := newListHandler(repo)

	// Garbage paging input is normalized to the defaults, never rejected.
	req := httptest.NewRequest(http.MethodGet, "/news?page=banana&limit=-3&order=sideways", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
	}
	if titles := listTitles(t, rr); len(titles) != 1 {
		t.Errorf("len(titles) = %d, want 1", len(titles))
	}
}

func TestListHandler_TitleFilter(t *testing.T) {
	repo := newStubRepo()
	seed(repo, "Go 1.25 released", testClock.Add(24*time.Hour))
	seed(repo, "Weather report", testClock.Add(48*time.Hour))
	handler := newListHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/news?title=go+1.25", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	titles := listTitles(t, rr)
	if len(titles) != 1 || titles[0] != "Go 1.25 released" {
		t.Errorf("titles = %v, want [Go 1.25 released]", titles)
	}
}

func TestListHandler_RepositoryFailure(t *testing.T) {
	repo := newStubRepo()
	repo.listErr = fmt.Errorf("pq: connection refused")
	handler := newListHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/news", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	if strings.Contains(rr.Body.String(), "connection refused") {
		t.Error("response leaked the underlying repository error")
	}
}
