// Package jobs holds the queued background jobs and their registry hook.
package jobs

import (
	"github.com/shashiranjanraj/stockwise/app/services"
	"github.com/shashiranjanraj/stockwise/pkg/logger"
	"github.com/shashiranjanraj/stockwise/pkg/queue"
)

// InventorySnapshot writes a CSV snapshot of the full inventory to the
// configured storage disk. RequestedBy is 0 for scheduled runs.
type InventorySnapshot struct {
	RequestedBy uint `json:"requested_by"`
}

func (j *InventorySnapshot) Handle() error {
	path, err := services.NewExportService().SaveSnapshot()
	if err != nil {
		return err
	}

	logger.Info("inventory snapshot stored", "path", path, "requested_by", j.RequestedBy)
	return nil
}

// RegisterAll registers every job type with the queue. Called once at boot
// so workers can deserialize payloads by name.
func RegisterAll() {
	queue.Register("*jobs.InventorySnapshot", func() queue.Job { return &InventorySnapshot{} })
}
