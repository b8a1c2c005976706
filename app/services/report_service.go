package services

import (
	"time"

	"github.com/shashiranjanraj/stockwise/app/repositories"
	"github.com/shashiranjanraj/stockwise/pkg/cache"
)

// dashboard aggregates are cached briefly: they back widgets that poll,
// and a stale minute is acceptable.
const dashboardCacheTTL = time.Minute

func dashboardCacheKey(name string) string {
	return "stockwise:dashboard:" + name
}

// FlushDashboardCache drops every cached aggregate. Mutation listeners
// call this so widgets converge within one request of a write.
func FlushDashboardCache() {
	names := []string{
		"stats", "stock-movement", "category-distribution", "critical-stock",
		"total-quantity", "total-stock-value", "summary", "details", "status",
	}
	for _, n := range names {
		cache.Del(dashboardCacheKey(n))
	}
}

// DashboardStats is the compact headline widget payload. The key casing
// is what the dashboard clients already read.
type DashboardStats struct {
	TotalItems int64 `json:"totalProducts"`
	Categories int64 `json:"categories"`
	// LowStockCount uses the per-item rule: items whose own quantity is
	// below their category minimum. Distinct from the per-category
	// evaluator in stock_status.go.
	LowStockCount int64 `json:"lowStockItems"`
}

// MovementBucket is one month of the stock movement chart.
type MovementBucket struct {
	Month string `json:"month"`
	Total int    `json:"total"`
}

// InventorySummary is the single-row combined aggregate. Unlike the stats
// widget this one serializes snake_case, matching the reporting clients.
type InventorySummary struct {
	TotalItems      int64   `json:"total_items"`
	TotalQuantity   int64   `json:"total_quantity"`
	TotalStockValue float64 `json:"total_value"`
	Categories      int64   `json:"categories_count"`
}

// ReportService answers the read-only dashboard questions. Every method is
// independent and safe to call concurrently; results are served from Redis
// for up to dashboardCacheTTL. Failures surface to the caller untouched,
// nothing is retried and partial results are never cached.
type ReportService struct {
	repo *repositories.InventoryRepository
}

func NewReportService() *ReportService {
	return &ReportService{repo: repositories.NewInventoryRepository()}
}

// Stats returns the headline counts.
func (s *ReportService) Stats() (DashboardStats, error) {
	var stats DashboardStats
	if cache.Get(dashboardCacheKey("stats"), &stats) {
		return stats, nil
	}

	var err error
	if stats.TotalItems, err = s.repo.CountItems(); err != nil {
		return stats, err
	}
	if stats.Categories, err = s.repo.CountCategories(); err != nil {
		return stats, err
	}
	if stats.LowStockCount, err = s.repo.CountBelowMinimum(); err != nil {
		return stats, err
	}

	cache.Set(dashboardCacheKey("stats"), stats, dashboardCacheTTL)
	return stats, nil
}

var monthNames = [13]string{"", "Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// StockMovement returns quantity added per calendar month of created_at,
// ignoring year, ordered January first, with short month names.
func (s *ReportService) StockMovement() ([]MovementBucket, error) {
	var out []MovementBucket
	if cache.Get(dashboardCacheKey("stock-movement"), &out) {
		return out, nil
	}

	buckets, err := s.repo.MonthlyMovement()
	if err != nil {
		return nil, err
	}

	out = make([]MovementBucket, 0, len(buckets))
	for _, b := range buckets {
		if b.Month < 1 || b.Month > 12 {
			continue
		}
		out = append(out, MovementBucket{Month: monthNames[b.Month], Total: b.Total})
	}

	cache.Set(dashboardCacheKey("stock-movement"), out, dashboardCacheTTL)
	return out, nil
}

// CategoryDistribution returns the item row count per category.
func (s *ReportService) CategoryDistribution() ([]repositories.CategoryCount, error) {
	var out []repositories.CategoryCount
	if cache.Get(dashboardCacheKey("category-distribution"), &out) {
		return out, nil
	}

	out, err := s.repo.CategoryDistribution()
	if err != nil {
		return nil, err
	}

	cache.Set(dashboardCacheKey("category-distribution"), out, dashboardCacheTTL)
	return out, nil
}

// CriticalStock lists items below their category minimum. limit <= 0 falls
// back to the compact widget size of 5.
func (s *ReportService) CriticalStock(limit int) ([]repositories.CriticalItem, error) {
	if limit <= 0 {
		limit = 5
	}

	// Only the default widget size is cached; ad-hoc limits hit the store.
	cacheable := limit == 5
	var out []repositories.CriticalItem
	if cacheable && cache.Get(dashboardCacheKey("critical-stock"), &out) {
		return out, nil
	}

	out, err := s.repo.CriticalStock(limit)
	if err != nil {
		return nil, err
	}

	if cacheable {
		cache.Set(dashboardCacheKey("critical-stock"), out, dashboardCacheTTL)
	}
	return out, nil
}

// TotalQuantity sums quantity across all items.
func (s *ReportService) TotalQuantity() (int64, error) {
	var total int64
	if cache.Get(dashboardCacheKey("total-quantity"), &total) {
		return total, nil
	}

	total, err := s.repo.TotalQuantity()
	if err != nil {
		return 0, err
	}

	cache.Set(dashboardCacheKey("total-quantity"), total, dashboardCacheTTL)
	return total, nil
}

// TotalStockValue sums quantity * unit_price across all items.
func (s *ReportService) TotalStockValue() (float64, error) {
	var total float64
	if cache.Get(dashboardCacheKey("total-stock-value"), &total) {
		return total, nil
	}

	total, err := s.repo.TotalStockValue()
	if err != nil {
		return 0, err
	}

	cache.Set(dashboardCacheKey("total-stock-value"), total, dashboardCacheTTL)
	return total, nil
}

// Summary returns the combined single-row aggregate.
func (s *ReportService) Summary() (InventorySummary, error) {
	var sum InventorySummary
	if cache.Get(dashboardCacheKey("summary"), &sum) {
		return sum, nil
	}

	var err error
	if sum.TotalItems, err = s.repo.CountItems(); err != nil {
		return sum, err
	}
	if sum.TotalQuantity, err = s.repo.TotalQuantity(); err != nil {
		return sum, err
	}
	if sum.TotalStockValue, err = s.repo.TotalStockValue(); err != nil {
		return sum, err
	}
	if sum.Categories, err = s.repo.CountCategories(); err != nil {
		return sum, err
	}

	cache.Set(dashboardCacheKey("summary"), sum, dashboardCacheTTL)
	return sum, nil
}

// Details returns the full projection ordered by category then name.
func (s *ReportService) Details() ([]repositories.ItemDetail, error) {
	var out []repositories.ItemDetail
	if cache.Get(dashboardCacheKey("details"), &out) {
		return out, nil
	}

	out, err := s.repo.Details()
	if err != nil {
		return nil, err
	}

	cache.Set(dashboardCacheKey("details"), out, dashboardCacheTTL)
	return out, nil
}
