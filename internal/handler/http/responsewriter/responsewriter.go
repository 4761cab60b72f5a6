// Package responsewriter wraps http.ResponseWriter to observe what a handler
// wrote: the status code and the body size, which the logging, metrics and
// tracing middleware all need after the fact.
package responsewriter

import "net/http"

// ResponseWriter records the response outcome while delegating to the
// underlying writer. The zero status is 200, matching net/http's implicit
// WriteHeader.
type ResponseWriter struct {
	http.ResponseWriter
	status int
	bytes  int
	sent   bool
}

// Wrap returns w wrapped for outcome recording.
func Wrap(w http.ResponseWriter) *ResponseWriter {
	return &ResponseWriter{ResponseWriter: w, status: http.StatusOK}
}

func (w *ResponseWriter) WriteHeader(statusCode int) {
	if w.sent {
		return
	}
	w.sent = true
	w.status = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *ResponseWriter) Write(b []byte) (int, error) {
	if !w.sent {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// StatusCode returns the status the handler sent (200 if it never called
// WriteHeader explicitly).
func (w *ResponseWriter) StatusCode() int {
	return w.status
}

// BytesWritten returns the body size written so far.
func (w *ResponseWriter) BytesWritten() int {
	return w.bytes
}

// Unwrap exposes the underlying writer for http.ResponseController.
func (w *ResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
