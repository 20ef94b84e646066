package handlers

import (
	"net/http"

	"github.com/benvon/gtm-copilot/internal/middleware"
)

// NotFound answers requests for unknown paths
func NotFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteError(w, http.StatusNotFound, "Not Found", nil)
	})
}

// MethodNotAllowed answers requests whose path exists under another method.
// gorilla/mux does not set Allow, so callers pass the allowed methods per path.
func MethodNotAllowed(allowed func(path string) []string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if allowed != nil {
			for _, m := range allowed(r.URL.Path) {
				w.Header().Add("Allow", m)
			}
		}
		middleware.WriteError(w, http.StatusMethodNotAllowed, "Method Not Allowed", nil)
	})
}
