package http_test

import (
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpmw "newsdesk/internal/handler/http"
)

func TestTimeout_FastRequestCompletes(t *testing.T) {
	handler := httpmw.Timeout(time.Second)(stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		w.WriteHeader(stdhttp.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, "/news", nil))

	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, stdhttp.StatusOK)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("body = %q, want %q", rec.Body.String(), "ok")
	}
}

func TestTimeout_SlowRequestGets504(t *testing.T) {
	release := make(chan struct{})
	handler := httpmw.Timeout(20*time.Millisecond)(stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		<-release
		_, _ = w.Write([]byte("too late"))
	}))
	defer close(release)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, "/news", nil))

	if rec.Code != stdhttp.StatusGatewayTimeout {
		t.Fatalf("status = %d, want %d", rec.Code, stdhttp.StatusGatewayTimeout)
	}
	if rec.Body.String() != `{"error":"request timeout"}` {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestTimeout_ContextCanceledForHandler(t *testing.T) {
	canceled := make(chan struct{})
	handler := httpmw.Timeout(20*time.Millisecond)(stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		<-r.Context().Done()
		close(canceled)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, "/news", nil))

	select {
	case <-canceled:
	case <-time.After(time.Second):
		t.Fatal("handler context was not canceled after timeout")
	}
}
