package http

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// Timeout returns middleware enforcing a per-request deadline. When the
// handler overruns it, the client gets a 504 and the request context is
// canceled so downstream work can stop; any late handler writes are dropped.
func Timeout(duration time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), duration)
			defer cancel()

			guard := &guardedWriter{inner: w}
			done := make(chan struct{})

			go func() {
				defer close(done)
				next.ServeHTTP(guard, r.WithContext(ctx))
			}()

			select {
			case <-done:
			case <-ctx.Done():
				guard.timeOut()
			}
		})
	}
}

// guardedWriter serializes access to the response between the handler
// goroutine and the timeout path; whichever writes first wins.
type guardedWriter struct {
	inner http.ResponseWriter

	mu       sync.Mutex
	started  bool // headers sent by the handler
	timedOut bool
}

func (g *guardedWriter) Header() http.Header {
	return g.inner.Header()
}

func (g *guardedWriter) WriteHeader(statusCode int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.timedOut || g.started {
		return
	}
	g.started = true
	g.inner.WriteHeader(statusCode)
}

func (g *guardedWriter) Write(data []byte) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if !g.started {
		g.started = true
		g.inner.WriteHeader(http.StatusOK)
	}
	return g.inner.Write(data)
}

// timeOut claims the response for the 504 unless the handler already wrote.
func (g *guardedWriter) timeOut() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.timedOut = true
	if g.started {
		return
	}
	g.inner.Header().Set("Content-Type", "application/json")
	g.inner.WriteHeader(http.StatusGatewayTimeout)
	_, _ = g.inner.Write([]byte(`{"error":"request timeout"}`))
}
