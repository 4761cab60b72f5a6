package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestMetricsMiddleware_PathNormalization verifies that ID-bearing paths are
// collapsed into a single label so that per-item URLs cannot blow up metric
// cardinality.
func TestMetricsMiddleware_PathNormalization(t *testing.T) {
	httpRequestsTotal.Reset()
	httpRequestDuration.Reset()

	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	newsIDs := []string{"1", "2", "123", "456", "789", "999", "1000", "5678"}
	for _, id := range newsIDs {
		req := httptest.NewRequest("GET", "/news/"+id, nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
	}

	// All eight requests collapse onto the single /news/:id series.
	count := testutil.CollectAndCount(httpRequestsTotal)
	if count != 1 {
		t.Errorf("metric series = %d, want 1 (got one per ID?)", count)
	}
}

func TestMetricsMiddleware_StaticPathsKeepTheirLabel(t *testing.T) {
	httpRequestsTotal.Reset()

	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, path := range []string{"/health", "/news", "/news?page=2&limit=5"} {
		req := httptest.NewRequest("GET", path, nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	// /health plus /news; query parameters never become part of the label.
	count := testutil.CollectAndCount(httpRequestsTotal)
	if count != 2 {
		t.Errorf("metric series = %d, want 2", count)
	}
}

func TestMetricsMiddleware_RecordsStatusCode(t *testing.T) {
	httpRequestsTotal.Reset()

	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	req := httptest.NewRequest("GET", "/news/42", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/news/:id", "404"))
	if got != 1 {
		t.Errorf("counter for 404 = %v, want 1", got)
	}
}

func TestRecordDBQuery(t *testing.T) {
	dbQueryDuration.Reset()

	RecordDBQuery("count_news", 25*time.Millisecond)
	RecordDBQuery("count_news", 50*time.Millisecond)

	if count := testutil.CollectAndCount(dbQueryDuration); count != 1 {
		t.Errorf("metric series = %d, want 1", count)
	}
}

func TestUpdateNewsTotal(t *testing.T) {
	UpdateNewsTotal(37)
	if got := testutil.ToFloat64(newsTotal); got != 37 {
		t.Errorf("news_total = %v, want 37", got)
	}

	UpdateNewsTotal(0)
	if got := testutil.ToFloat64(newsTotal); got != 0 {
		t.Errorf("news_total = %v, want 0", got)
	}
}
