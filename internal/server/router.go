package server

import (
	"fmt"
	"net/http"

	"github.com/benvon/gtm-copilot/internal/config"
	"github.com/benvon/gtm-copilot/internal/handlers"
	"github.com/benvon/gtm-copilot/internal/middleware"
	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/zap"
)

// RouterOption configures optional parts of the router
type RouterOption func(*routerOptions)

type routerOptions struct {
	tracing     bool
	openAPIDoc  []byte
	serviceName string
}

// WithTracing adds otelmux spans to every matched route
func WithTracing(enabled bool) RouterOption {
	return func(o *routerOptions) {
		o.tracing = enabled
	}
}

// WithOpenAPIDocument serves doc at /openapi.yaml and /openapi.json
func WithOpenAPIDocument(doc []byte) RouterOption {
	return func(o *routerOptions) {
		o.openAPIDoc = doc
	}
}

// NewRouter builds the complete HTTP handler: routes, the CORS policy and the
// ambient middleware. The CORS and logging layers wrap the router itself so
// preflights, 404s and 405s get the same treatment as matched routes.
func NewRouter(cfg *config.Config, logger *zap.Logger, opts ...RouterOption) (http.Handler, error) {
	o := routerOptions{serviceName: cfg.ServiceName}
	for _, opt := range opts {
		opt(&o)
	}

	r := mux.NewRouter()

	// mux runs middleware in registration order, first registered outermost
	if o.tracing {
		r.Use(otelmux.Middleware(o.serviceName))
	}
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.ErrorHandler(logger))

	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)

	if o.openAPIDoc != nil {
		openAPIHandler, err := handlers.NewOpenAPIHandler(o.openAPIDoc)
		if err != nil {
			return nil, fmt.Errorf("openapi handler: %w", err)
		}
		openAPIHandler.RegisterRoutes(r)
	}

	r.NotFoundHandler = handlers.NotFound()
	r.MethodNotAllowedHandler = handlers.MethodNotAllowed(allowedMethods(r))

	var h http.Handler = r
	h = middleware.CORS(middleware.CORSOptions{
		AllowedOrigins: cfg.AllowedOrigins,
		MaxAge:         cfg.CORSMaxAge,
		Debug:          cfg.ServerDebugMode,
		Logger:         logger,
	})(h)
	h = middleware.SecurityHeaders(cfg.EnableHSTS)(h)
	h = middleware.Logging(logger)(h)
	h = middleware.RequestID(h)

	return h, nil
}

// allowedMethods reports the methods registered for an exact path
func allowedMethods(r *mux.Router) func(path string) []string {
	return func(path string) []string {
		var methods []string
		_ = r.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
			tpl, err := route.GetPathTemplate()
			if err != nil || tpl != path {
				return nil
			}
			ms, err := route.GetMethods()
			if err != nil {
				return nil
			}
			methods = append(methods, ms...)
			return nil
		})
		return methods
	}
}
