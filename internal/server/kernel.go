package server

import (
	"net/http"
	"time"

	"github.com/shashiranjanraj/dinehub/app/routes"
	"github.com/shashiranjanraj/dinehub/config"
	"github.com/shashiranjanraj/dinehub/pkg/metrics"
	"github.com/shashiranjanraj/dinehub/pkg/middleware"
	"github.com/shashiranjanraj/dinehub/pkg/reqid"
	"github.com/shashiranjanraj/dinehub/pkg/router"
	"github.com/shashiranjanraj/dinehub/pkg/storage"
)

// NewRouter builds the router with the global middleware stack, the
// framework endpoints and the API routes.
func NewRouter(d routes.Deps) (*router.Router, error) {
	r := router.New()

	// Global middleware stack (outermost → innermost):
	//  1. Prometheus metrics, for total latency
	//  2. Recovery
	//  3. Request ID, before anything logs
	//  4. Access log
	//  5. CORS
	//  6. Rate limiter
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions(config.CORSAllowedOrigins())))
	r.Use(middleware.RateLimit(config.RateLimitPerMinute(), time.Minute))

	r.Get("/metrics", "metrics", metrics.Handler())
	if root, ok := storage.LocalRoot(); ok {
		r.Static("/storage", root)
	}

	if err := routes.RegisterAPI(r, d); err != nil {
		return nil, err
	}
	return r, nil
}

// Handler is NewRouter's http.Handler.
func Handler(d routes.Deps) (http.Handler, error) {
	r, err := NewRouter(d)
	if err != nil {
		return nil, err
	}
	return r.Handler(), nil
}
