package services

import (
	"fmt"
	"time"

	"github.com/shashiranjanraj/stockwise/app/models"
	"github.com/shashiranjanraj/stockwise/app/repositories"
	"github.com/shashiranjanraj/stockwise/pkg/collection"
)

// recentLogCount is how many feed entries each recent-logs endpoint
// returns.
const recentLogCount = 2

// ActivityLog is one synthetic activity-feed entry. The feed is derived
// from creation timestamps only: updates and deletes leave no trace, and
// the actor is always "System". A real append-only audit record would
// replace this if fidelity ever matters.
type ActivityLog struct {
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
	UserName  string    `json:"user_name"`
}

// ActivityService builds the recent-logs feeds for both entities.
type ActivityService struct {
	items  *repositories.InventoryRepository
	levels *repositories.CategoryStockLevelRepository
}

func NewActivityService() *ActivityService {
	return &ActivityService{
		items:  repositories.NewInventoryRepository(),
		levels: repositories.NewCategoryStockLevelRepository(),
	}
}

// RecentInventoryLogs returns the two most recently created items as feed
// entries.
func (s *ActivityService) RecentInventoryLogs() ([]ActivityLog, error) {
	items, err := s.items.Recent(recentLogCount)
	if err != nil {
		return nil, err
	}

	return collection.Map(items, func(item models.InventoryItem) ActivityLog {
		return ActivityLog{
			Action:    "Item Added",
			Details:   fmt.Sprintf("Added %q to %s (qty %d)", item.Name, item.Category, item.Quantity),
			CreatedAt: item.CreatedAt,
			UserName:  "System",
		}
	}), nil
}

// RecentCategoryLogs returns the two most recently created threshold rows
// as feed entries.
func (s *ActivityService) RecentCategoryLogs() ([]ActivityLog, error) {
	levels, err := s.levels.Recent(recentLogCount)
	if err != nil {
		return nil, err
	}

	return collection.Map(levels, func(lvl models.CategoryStockLevel) ActivityLog {
		return ActivityLog{
			Action:    "Stock Level Added",
			Details:   fmt.Sprintf("Set %s thresholds to min %d / max %d", lvl.Category, lvl.MinStockLevel, lvl.MaxStockLevel),
			CreatedAt: lvl.CreatedAt,
			UserName:  "System",
		}
	}), nil
}
