package middleware

import (
	"net/http"
	"time"
)

const (
	// DefaultRequestTimeout is the default request timeout (30 seconds)
	DefaultRequestTimeout = 30 * time.Second
)

// timeoutBody is what a client sees when a handler overruns its budget
const timeoutBody = `{"detail":"Request Timeout"}`

// Timeout creates a middleware that enforces a timeout on request handlers.
// http.TimeoutHandler also cancels the request context when the budget runs out.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	return func(next http.Handler) http.Handler {
		th := http.TimeoutHandler(next, timeout, timeoutBody)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			th.ServeHTTP(&timeoutResponseWriter{ResponseWriter: w}, r)
		})
	}
}

// timeoutResponseWriter labels the bare 503 written by http.TimeoutHandler as JSON.
// Handler responses arrive with their own headers already copied in.
type timeoutResponseWriter struct {
	http.ResponseWriter
}

func (tw *timeoutResponseWriter) WriteHeader(code int) {
	if code == http.StatusServiceUnavailable && tw.Header().Get("Content-Type") == "" {
		tw.Header().Set("Content-Type", "application/json")
	}
	tw.ResponseWriter.WriteHeader(code)
}
