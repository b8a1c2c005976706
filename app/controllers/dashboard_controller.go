package controllers

import (
	"net/http"
	"strconv"

	"github.com/shashiranjanraj/stockwise/app/jobs"
	"github.com/shashiranjanraj/stockwise/app/services"
	"github.com/shashiranjanraj/stockwise/pkg/middleware"
	"github.com/shashiranjanraj/stockwise/pkg/queue"
	"github.com/shashiranjanraj/stockwise/pkg/response"
)

// DashboardController serves the read-only aggregates. Each endpoint is
// independent; failures surface as 500 with a fixed message and nothing is
// retried.
type DashboardController struct {
	reports *services.ReportService
}

func NewDashboardController() *DashboardController {
	return &DashboardController{reports: services.NewReportService()}
}

func (c *DashboardController) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.reports.Stats()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch dashboard stats")
		return
	}
	response.Success(w, stats)
}

func (c *DashboardController) StockMovement(w http.ResponseWriter, r *http.Request) {
	buckets, err := c.reports.StockMovement()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch stock movement")
		return
	}
	response.Success(w, buckets)
}

func (c *DashboardController) CategoryDistribution(w http.ResponseWriter, r *http.Request) {
	counts, err := c.reports.CategoryDistribution()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch category distribution")
		return
	}
	response.Success(w, counts)
}

func (c *DashboardController) CriticalStock(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	items, err := c.reports.CriticalStock(limit)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch critical stock")
		return
	}
	response.Success(w, items)
}

func (c *DashboardController) TotalQuantity(w http.ResponseWriter, r *http.Request) {
	total, err := c.reports.TotalQuantity()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch total quantity")
		return
	}
	response.Success(w, map[string]int64{"totalQuantity": total})
}

func (c *DashboardController) TotalStockValue(w http.ResponseWriter, r *http.Request) {
	total, err := c.reports.TotalStockValue()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch total stock value")
		return
	}
	response.Success(w, map[string]float64{"totalStockValue": total})
}

func (c *DashboardController) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := c.reports.Summary()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch inventory summary")
		return
	}
	response.Success(w, summary)
}

func (c *DashboardController) Details(w http.ResponseWriter, r *http.Request) {
	details, err := c.reports.Details()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch inventory details")
		return
	}
	response.Success(w, details)
}

// Export queues a CSV snapshot of the full inventory to the configured
// storage disk.
func (c *DashboardController) Export(w http.ResponseWriter, r *http.Request) {
	job := &jobs.InventorySnapshot{RequestedBy: middleware.UserIDFromCtx(r.Context())}
	if err := queue.Dispatch(job); err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to queue inventory export")
		return
	}
	response.Message(w, "Inventory export queued")
}
