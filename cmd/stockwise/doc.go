// Package main (cmd/stockwise) provides the Stockwise management CLI.
//
// Install:
//
//	go install github.com/shashiranjanraj/stockwise/cmd/stockwise@latest
//
// Commands:
//
//	stockwise serve            # start the HTTP + gRPC server
//	stockwise migrate          # run pending migrations
//	stockwise migrate:rollback # rollback the last batch
//	stockwise migrate:status   # show migration status
//	stockwise db:seed          # seed default users, thresholds, items
//	stockwise route:list       # list API routes
//	stockwise queue:work       # run only the queue workers
//	stockwise schedule:run     # run only the scheduler
package main
