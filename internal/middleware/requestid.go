package middleware

import (
	"net/http"

	"github.com/benvon/gtm-copilot/internal/request"
	"github.com/google/uuid"
)

// RequestIDHeader carries the per-request correlation id
const RequestIDHeader = "X-Request-ID"

// maxRequestIDLength bounds client-supplied ids before they are echoed or logged
const maxRequestIDLength = 128

// RequestID assigns every request an id, reusing a sane incoming X-Request-ID,
// and echoes it on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(request.WithRequestID(r.Context(), id)))
	})
}
