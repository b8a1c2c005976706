package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/stockwise/app/models"
	"github.com/shashiranjanraj/stockwise/app/repositories"
)

// Status classifies a category's aggregate stock level.
type Status string

const (
	StatusUnknown     Status = "UNKNOWN"
	StatusLowStock    Status = "LOW_STOCK"
	StatusWarning     Status = "WARNING"
	StatusInStock     Status = "IN_STOCK"
	StatusOverstocked Status = "OVERSTOCKED"
)

// EvaluateStatus classifies a category total against its threshold row.
// Pure function, no side effects. A nil threshold is a valid input and
// classifies as UNKNOWN, not an error.
//
// The check order matters: a total exactly at min is LOW_STOCK, not
// WARNING, and a total exactly at max is OVERSTOCKED, not IN_STOCK. The
// warning band upper bound min*1.5 is computed in floating point and
// compared with <=.
func EvaluateStatus(total int, threshold *models.CategoryStockLevel) Status {
	if threshold == nil {
		return StatusUnknown
	}

	switch {
	case total <= threshold.MinStockLevel:
		return StatusLowStock
	case total >= threshold.MaxStockLevel:
		return StatusOverstocked
	case float64(total) <= float64(threshold.MinStockLevel)*1.5:
		return StatusWarning
	default:
		return StatusInStock
	}
}

// CategoryStatus is one category's evaluated stock state as served by the
// status endpoint.
type CategoryStatus struct {
	Category      string `json:"category"`
	Total         int    `json:"total"`
	MinStockLevel int    `json:"min_stock_level"`
	MaxStockLevel int    `json:"max_stock_level"`
	Status        Status `json:"status"`
}

// StockStatusService evaluates every category server-side over the true
// per-category quantity sums, never over a client-visible page of items.
type StockStatusService struct {
	items  *repositories.InventoryRepository
	levels *repositories.CategoryStockLevelRepository
}

func NewStockStatusService() *StockStatusService {
	return &StockStatusService{
		items:  repositories.NewInventoryRepository(),
		levels: repositories.NewCategoryStockLevelRepository(),
	}
}

// EvaluateAll returns the status of every known category: the union of
// categories with items and categories with thresholds. A threshold with no
// items evaluates over total 0; items without a threshold are UNKNOWN.
func (s *StockStatusService) EvaluateAll() ([]CategoryStatus, error) {
	totals, err := s.items.CategoryTotals()
	if err != nil {
		return nil, err
	}
	levels, err := s.levels.All()
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string]*models.CategoryStockLevel, len(levels))
	for i := range levels {
		byCategory[levels[i].Category] = &levels[i]
	}

	seen := make(map[string]bool, len(totals))
	out := make([]CategoryStatus, 0, len(totals)+len(levels))

	for _, t := range totals {
		seen[t.Category] = true
		out = append(out, s.statusFor(t.Category, t.Total, byCategory[t.Category]))
	}
	for _, lvl := range levels {
		if !seen[lvl.Category] {
			out = append(out, s.statusFor(lvl.Category, 0, byCategory[lvl.Category]))
		}
	}

	return out, nil
}

// EvaluateCategory returns the status of a single category.
func (s *StockStatusService) EvaluateCategory(category string) (CategoryStatus, error) {
	totals, err := s.items.CategoryTotals()
	if err != nil {
		return CategoryStatus{}, err
	}

	total := 0
	for _, t := range totals {
		if t.Category == category {
			total = t.Total
			break
		}
	}

	// A missing threshold row is a valid UNKNOWN classification; any other
	// lookup failure is a store fault and surfaces to the caller.
	var threshold *models.CategoryStockLevel
	lvl, err := s.levels.FindByCategory(category)
	switch {
	case err == nil:
		threshold = &lvl
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		return CategoryStatus{}, err
	}

	return s.statusFor(category, total, threshold), nil
}

func (s *StockStatusService) statusFor(category string, total int, threshold *models.CategoryStockLevel) CategoryStatus {
	cs := CategoryStatus{
		Category: category,
		Total:    total,
		Status:   EvaluateStatus(total, threshold),
	}
	if threshold != nil {
		cs.MinStockLevel = threshold.MinStockLevel
		cs.MaxStockLevel = threshold.MaxStockLevel
	}
	return cs
}
