package middleware

import (
	"net/http"

	"github.com/benvon/gtm-copilot/internal/logger"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// AllMethods is every request method the CORS policy admits. rs/cors has no
// method wildcard, so extension methods such as PROPFIND are not admitted.
var AllMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodConnect,
	http.MethodOptions,
	http.MethodTrace,
}

// CORSOptions describes the cross-origin policy applied to every response
type CORSOptions struct {
	AllowedOrigins []string
	// MaxAge is the preflight cache lifetime in seconds; 0 omits the header
	MaxAge int
	Debug  bool
	Logger *zap.Logger
}

// Options translates the policy into rs/cors options: the listed origins,
// credentials allowed, every method and every request header.
// Origins are matched by AllowOriginFunc so rs/cors always echoes the request
// origin and never sends a literal "*" next to credentials.
func (o CORSOptions) Options() cors.Options {
	opts := cors.Options{
		AllowOriginFunc:  o.originAllowed(),
		AllowCredentials: true,
		AllowedMethods:   AllMethods,
		AllowedHeaders:   []string{"*"},
		MaxAge:           o.MaxAge,
		Debug:            o.Debug,
	}
	if o.Debug {
		opts.Logger = logger.StdLogger(o.Logger, "cors")
	}
	return opts
}

// originAllowed matches origins exactly and case-sensitively. An entry of "*"
// admits any origin; "*" inside an entry is an ordinary character.
func (o CORSOptions) originAllowed() func(string) bool {
	allowed := make(map[string]struct{}, len(o.AllowedOrigins))
	for _, origin := range o.AllowedOrigins {
		if origin == "*" {
			return func(origin string) bool { return origin != "" }
		}
		allowed[origin] = struct{}{}
	}
	return func(origin string) bool {
		_, ok := allowed[origin]
		return ok
	}
}

// CORS wraps next with the rs/cors policy described by opts.
// Preflight requests are answered here and never reach next.
func CORS(opts CORSOptions) func(http.Handler) http.Handler {
	c := cors.New(opts.Options())
	if opts.Logger != nil {
		opts.Logger.Info("cors_policy_configured",
			zap.Strings("allowed_origins", opts.AllowedOrigins),
			zap.Bool("allow_credentials", true),
			zap.Int("max_age", opts.MaxAge),
		)
	}
	return c.Handler
}
