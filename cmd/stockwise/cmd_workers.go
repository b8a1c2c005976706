package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/stockwise/app/jobs"
	"github.com/shashiranjanraj/stockwise/pkg/cache"
	"github.com/shashiranjanraj/stockwise/pkg/database"
	"github.com/shashiranjanraj/stockwise/pkg/queue"
	"github.com/shashiranjanraj/stockwise/pkg/schedule"
	"github.com/shashiranjanraj/stockwise/pkg/storage"
)

var queueWorkersFlag int

// bootWorkers prepares the shared resources a standalone worker process
// needs: database, Redis (for the durable queue), and storage for exports.
func bootWorkers() error {
	if err := bootDB(); err != nil {
		return err
	}
	storage.Connect()
	jobs.RegisterAll()
	queue.UseDB(database.DB)
	if err := cache.Connect(); err == nil && cache.RDB != nil {
		queue.SetDriver(queue.NewRedisDriver(cache.RDB))
	}
	return nil
}

// stockwise queue:work
var queueWorkCmd = &cobra.Command{
	Use:   "queue:work",
	Short: "Start the queue worker",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootWorkers(); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		workers := queueWorkersFlag
		if workers < 1 {
			workers = 5
		}

		fmt.Printf("🚀 Queue worker started (%d workers). Press Ctrl+C to stop.\n", workers)
		queue.StartWorkers(ctx, workers)

		<-ctx.Done()
		fmt.Println("\n⚡ Queue worker stopped.")
		return nil
	},
}

// stockwise schedule:run
var scheduleRunCmd = &cobra.Command{
	Use:   "schedule:run",
	Short: "Start the task scheduler",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootWorkers(); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		schedule.Daily().
			Name("inventory-snapshot").
			WithoutOverlapping().
			Run(func() {
				if err := queue.Dispatch(&jobs.InventorySnapshot{}); err != nil {
					fmt.Println("snapshot dispatch failed:", err)
				}
			})

		tasks := schedule.List()
		fmt.Println("Registered scheduled tasks:")
		for _, t := range tasks {
			fmt.Println("  •", t)
		}

		fmt.Println("🕐 Scheduler started. Press Ctrl+C to stop.")
		schedule.Start(ctx)

		<-ctx.Done()
		fmt.Println("\n⚡ Scheduler stopped.")
		return nil
	},
}

func init() {
	queueWorkCmd.Flags().IntVarP(&queueWorkersFlag, "workers", "w", 5, "Number of concurrent workers")
}
