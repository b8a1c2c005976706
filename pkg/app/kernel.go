package app

// pkg/app/kernel.go — builds an http.Handler from the Application config.
// This file has NO imports of project-specific code (models, routes, etc).
// All project dependencies are injected via the Application builder methods.

import (
	"net/http"
	"time"

	"github.com/shashiranjanraj/stockwise/pkg/database"
	"github.com/shashiranjanraj/stockwise/pkg/metrics"
	"github.com/shashiranjanraj/stockwise/pkg/middleware"
	"github.com/shashiranjanraj/stockwise/pkg/reqid"
	"github.com/shashiranjanraj/stockwise/pkg/router"
)

// buildHandler constructs the HTTP handler from the Application config.
// It sets up global middleware, runs auto-migrations, then calls the
// route-registration callbacks.
func buildHandler(a *Application) http.Handler {
	// Auto-migrate supplied models (if DB is available).
	if database.DB != nil && len(a.models) > 0 {
		database.DB.AutoMigrate(a.models...)
	}

	r := router.New()

	// Global middleware stack (outermost → innermost):
	//  1. Prometheus metrics — outermost for accurate total latency
	//  2. Recovery          — catches panics before they kill the goroutine
	//  3. Request ID        — inject unique ID before anything logs
	//  4. Logger            — logs request_id from context
	//  5. CORS              — set CORS headers
	//  6. Rate limiter      — reject abusers early
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(200, time.Minute))

	// Call every route-registration callback.
	for _, fn := range a.routesFns {
		fn(r)
	}

	return r.Handler()
}
