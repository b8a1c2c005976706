// Package listeners wires the domain events to their side effects:
// dashboard cache invalidation, WebSocket broadcast, and low-stock alerts.
package listeners

import (
	"encoding/json"

	"github.com/shashiranjanraj/stockwise/app/models"
	"github.com/shashiranjanraj/stockwise/app/notifications"
	"github.com/shashiranjanraj/stockwise/app/services"
	"github.com/shashiranjanraj/stockwise/config"
	"github.com/shashiranjanraj/stockwise/pkg/event"
	"github.com/shashiranjanraj/stockwise/pkg/logger"
	"github.com/shashiranjanraj/stockwise/pkg/notification"
	"github.com/shashiranjanraj/stockwise/pkg/ws"
)

// Hub is the dashboard WebSocket hub. Mutation events are broadcast to
// every connected dashboard so widgets can refetch.
var Hub = ws.NewHub()

var mutationEvents = []string{
	"inventory.created",
	"inventory.updated",
	"inventory.deleted",
	"category_level.created",
	"category_level.updated",
	"category_level.deleted",
}

// Register installs all event listeners. Call once at boot, before the
// HTTP server starts accepting requests.
func Register() {
	go Hub.Run()

	for _, name := range mutationEvents {
		name := name
		event.Listen(name, func(payload interface{}) {
			services.FlushDashboardCache()
			broadcast(name)
		})
	}

	event.Listen("inventory.created", checkLowStock)
	event.Listen("inventory.updated", checkLowStock)
	event.Listen("inventory.deleted", checkLowStock)
}

func broadcast(name string) {
	msg, err := json.Marshal(map[string]string{"event": name})
	if err != nil {
		return
	}
	select {
	case Hub.Broadcast <- msg:
	default:
		// hub buffer full, drop rather than block the event bus
	}
}

// checkLowStock re-evaluates the mutated item's category and sends a
// LowStock notification when the total sits at or below the minimum.
func checkLowStock(payload interface{}) {
	item, ok := payload.(models.InventoryItem)
	if !ok {
		return
	}

	status, err := services.NewStockStatusService().EvaluateCategory(item.Category)
	if err != nil {
		logger.Error("low stock check failed", "category", item.Category, "error", err)
		return
	}
	if status.Status != services.StatusLowStock {
		return
	}

	n := &notifications.LowStock{
		Category: status.Category,
		Total:    status.Total,
		Min:      status.MinStockLevel,
	}
	if len(n.Via()) == 0 {
		return
	}
	notification.SendAsync(config.AlertMailTo(), n)
}
