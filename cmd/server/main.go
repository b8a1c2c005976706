package main

// cmd/server/main.go builds the single deployable Stockwise binary. The
// same binary answers serve/migrate/seed/route:list via os.Args; the
// richer cobra CLI lives in cmd/stockwise.

import (
	"github.com/shashiranjanraj/stockwise/app/routes"
	"github.com/shashiranjanraj/stockwise/database/seeders"
	"github.com/shashiranjanraj/stockwise/pkg/app"

	_ "github.com/shashiranjanraj/stockwise/database/migrations"
)

func main() {
	app.New().
		Routes(routes.RegisterAPI).
		Seed(seeders.RunAll).
		Run()
}
