package middleware

import (
	"encoding/json"
	"net/http"

	logpkg "github.com/benvon/gtm-copilot/internal/logger"
	"github.com/benvon/gtm-copilot/internal/request"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every error the service generates itself
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ErrorHandler creates panic-recovery middleware
func ErrorHandler(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}
					// Details stay server-side
					logger.Error("panic_recovered",
						zap.Any("error", err),
						zap.String("path", logpkg.SanitizePath(r.URL.Path)),
						zap.String("method", r.Method),
						zap.String("request_id", request.RequestIDFromContext(r.Context())),
					)
					WriteError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), logger)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// WriteError sends a compact JSON error body of the form {"detail": "..."}
// with no trailing newline
func WriteError(w http.ResponseWriter, status int, detail string, logger *zap.Logger) {
	body, err := json.Marshal(ErrorResponse{Detail: detail})
	if err != nil {
		if logger != nil {
			logger.Error("failed_to_encode_error_response",
				zap.Error(err),
				zap.Int("status_code", status),
			)
		}
		http.Error(w, http.StatusText(status), status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
