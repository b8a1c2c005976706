// Package server owns the process lifecycle: boot the shared resources,
// serve HTTP and gRPC, and shut everything down cleanly on SIGINT/SIGTERM.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/stockwise/app/jobs"
	"github.com/shashiranjanraj/stockwise/app/listeners"
	"github.com/shashiranjanraj/stockwise/config"
	"github.com/shashiranjanraj/stockwise/pkg/cache"
	"github.com/shashiranjanraj/stockwise/pkg/database"
	pkggrpc "github.com/shashiranjanraj/stockwise/pkg/grpc"
	"github.com/shashiranjanraj/stockwise/pkg/logger"
	"github.com/shashiranjanraj/stockwise/pkg/notification"
	"github.com/shashiranjanraj/stockwise/pkg/queue"
	"github.com/shashiranjanraj/stockwise/pkg/schedule"
	"github.com/shashiranjanraj/stockwise/pkg/storage"
)

const queueWorkers = 4

// Start boots every shared resource, builds the handler and serves it on
// the configured port until the process is signalled to stop. The handler
// is built through a callback so routes and auto-migrations see a booted
// database and cache.
func Start(buildHandler func() http.Handler) error {
	if err := config.Load(); err != nil {
		return err
	}

	logger.EnableMongo()
	defer logger.Shutdown()

	if err := database.Connect(); err != nil {
		return err
	}
	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, cache and token blacklist disabled", "error", err)
	}
	storage.Connect()
	notification.SetSlackWebhook(config.SlackWebhookURL())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bootQueue(ctx)
	bootSchedule(ctx)
	listeners.Register()

	httpSrv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           buildHandler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	grpcSrv, lis, err := pkggrpc.Start(config.GRPCPort())
	if err != nil {
		logger.Warn("grpc server not started", "error", err)
	} else {
		defer lis.Close()
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", httpSrv.Addr, "env", config.AppEnv())
		if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.Info("shutting down", "signal", sig.String())
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if grpcSrv != nil {
		pkggrpc.Stop(grpcSrv)
	}
	return httpSrv.Shutdown(shutdownCtx)
}

// bootQueue registers job types, picks the driver and starts the workers.
// Redis is used when available so jobs survive restarts; the in-memory
// driver is the dev/test fallback.
func bootQueue(ctx context.Context) {
	jobs.RegisterAll()
	queue.UseDB(database.DB)
	if cache.RDB != nil {
		queue.SetDriver(queue.NewRedisDriver(cache.RDB))
	}
	queue.StartWorkers(ctx, queueWorkers)
}

// bootSchedule registers recurring work and starts the scheduler loop.
func bootSchedule(ctx context.Context) {
	schedule.Daily().
		Name("inventory-snapshot").
		WithoutOverlapping().
		Run(func() {
			if err := queue.Dispatch(&jobs.InventorySnapshot{}); err != nil {
				logger.Error("scheduled snapshot dispatch failed", "error", err)
			}
		})

	schedule.Start(ctx)
}
