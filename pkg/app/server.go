package app

// pkg/app/server.go — bridges Application → internal/server.
// The handler is built lazily so route callbacks and auto-migrations run
// after config, database and cache have been booted.

import (
	"net/http"

	"github.com/shashiranjanraj/stockwise/internal/server"
)

// startServer hands a lazy handler builder to internal/server.Start, which
// owns the listen+serve lifecycle.
func startServer(a *Application) error {
	return server.Start(func() http.Handler {
		return buildHandler(a)
	})
}
