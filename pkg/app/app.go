// Package app provides the Stockwise application runner.
//
// # Minimal usage
//
//	package main
//
//	import (
//	    "github.com/shashiranjanraj/stockwise/app/routes"
//	    "github.com/shashiranjanraj/stockwise/database/seeders"
//	    "github.com/shashiranjanraj/stockwise/pkg/app"
//	    _ "github.com/shashiranjanraj/stockwise/database/migrations"
//	)
//
//	func main() {
//	    app.New().Routes(routes.RegisterAPI).Seed(seeders.RunAll).Run()
//	}
//
// Then run a command:
//
//	go build -o stockwise-server . && ./stockwise-server serve
//	./stockwise-server migrate
//	./stockwise-server seed
//	./stockwise-server route:list
package app

import (
	"fmt"
	"os"

	"github.com/shashiranjanraj/stockwise/pkg/router"
	"gorm.io/gorm"
)

// ─── Application Builder ──────────────────────────────────────────────────────

// Application is the central configuration object for the server binary.
// Build one with New(), attach your configuration, then call Run().
type Application struct {
	routesFns []func(*router.Router)
	models    []interface{}
	seedFn    func(*gorm.DB) error
}

// New creates a new Application instance with sensible defaults.
func New() *Application {
	return &Application{}
}

// Routes registers a route-registration callback that will be called when
// the HTTP kernel is built. You may call Routes() multiple times; all
// callbacks are executed in order.
func (a *Application) Routes(fn func(*router.Router)) *Application {
	a.routesFns = append(a.routesFns, fn)
	return a
}

// AutoMigrate adds GORM models that will be auto-migrated on server start,
// as a shortcut for environments that skip the migration runner.
// Pass model pointers: app.New().AutoMigrate(&User{}, &InventoryItem{})
func (a *Application) AutoMigrate(models ...interface{}) *Application {
	a.models = append(a.models, models...)
	return a
}

// Seed registers the callback run by the seed command, typically
// seeders.RunAll.
func (a *Application) Seed(fn func(*gorm.DB) error) *Application {
	a.seedFn = fn
	return a
}

// Serve boots and runs the HTTP + gRPC servers directly, bypassing the
// os.Args dispatch. Used by the cobra CLI.
func (a *Application) Serve() error {
	return startServer(a)
}

// Run reads os.Args and dispatches to the appropriate command.
// This is the ONLY function you need to call from your main().
func (a *Application) Run() {
	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	var err error
	switch cmd {
	case "serve", "start", "run", "s":
		err = cmdServe(a)
	case "migrate":
		err = cmdMigrate()
	case "migrate:rollback", "migrate:down":
		err = cmdMigrateRollback()
	case "migrate:status":
		err = cmdMigrateStatus()
	case "seed", "db:seed":
		err = cmdSeed(a)
	case "route:list", "routes":
		err = cmdRouteList(a)
	case "help", "--help", "-h":
		printHelp()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %q\n\nRun with --help for usage.\n", cmd)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Print(`Stockwise — inventory management server

Usage:
  <program> <command>

Commands:
  serve            Start the HTTP + gRPC server  (aliases: start, run)
  migrate          Run all pending database migrations
  migrate:rollback Rollback the last batch of migrations
  migrate:status   Show migration status
  seed             Run all registered database seeders
  route:list       List registered API routes

`)
}
