package services_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/stockwise/app/models"
	"github.com/shashiranjanraj/stockwise/app/services"
	"github.com/shashiranjanraj/stockwise/pkg/database"
	"github.com/shashiranjanraj/stockwise/pkg/testkit"
	"gorm.io/gorm"
)

// seedReportFixture inserts a small known dataset:
//
//	Electronics (min 10, max 100): Cable qty 4 @ 2.50, Mouse qty 20 @ 10.00
//	Tools       (min 5, max 50):   Hammer qty 2 @ 17.50
//	Misc        (no threshold):    Tape qty 7 @ 1.00
func seedReportFixture(t *testing.T) *gorm.DB {
	t.Helper()
	db := testkit.NewTestDB(t, &models.InventoryItem{}, &models.CategoryStockLevel{})
	database.DB = db

	levels := []models.CategoryStockLevel{
		{Category: "Electronics", MinStockLevel: 10, MaxStockLevel: 100},
		{Category: "Tools", MinStockLevel: 5, MaxStockLevel: 50},
	}
	require.NoError(t, db.Create(&levels).Error)

	year := time.Now().Year()
	items := []struct {
		name     string
		category string
		qty      int
		price    float64
		month    time.Month
	}{
		{"Cable", "Electronics", 4, 2.50, time.January},
		{"Mouse", "Electronics", 20, 10.00, time.March},
		{"Hammer", "Tools", 2, 17.50, time.March},
		{"Tape", "Misc", 7, 1.00, time.July},
	}
	for _, it := range items {
		row := models.InventoryItem{
			Name: it.name, Category: it.category, Quantity: it.qty, UnitPrice: it.price,
		}
		row.CreatedAt = time.Date(year, it.month, 10, 12, 0, 0, 0, time.UTC)
		row.UpdatedAt = row.CreatedAt
		require.NoError(t, db.Create(&row).Error)
	}
	return db
}

func TestStats(t *testing.T) {
	seedReportFixture(t)

	stats, err := services.NewReportService().Stats()
	require.NoError(t, err)

	assert.EqualValues(t, 4, stats.TotalItems)
	assert.EqualValues(t, 3, stats.Categories)
	// Per-item rule: Cable (4 < 10) and Hammer (2 < 5). Mouse is above its
	// minimum and Tape has no threshold row to compare against.
	assert.EqualValues(t, 2, stats.LowStockCount)
}

func TestStockMovement(t *testing.T) {
	seedReportFixture(t)

	buckets, err := services.NewReportService().StockMovement()
	require.NoError(t, err)

	require.Len(t, buckets, 3)
	assert.Equal(t, "Jan", buckets[0].Month)
	assert.Equal(t, 4, buckets[0].Total)
	assert.Equal(t, "Mar", buckets[1].Month)
	assert.Equal(t, 22, buckets[1].Total) // Mouse 20 + Hammer 2
	assert.Equal(t, "Jul", buckets[2].Month)
	assert.Equal(t, 7, buckets[2].Total)
}

func TestCategoryDistribution(t *testing.T) {
	seedReportFixture(t)

	counts, err := services.NewReportService().CategoryDistribution()
	require.NoError(t, err)

	require.Len(t, counts, 3)
	assert.Equal(t, "Electronics", counts[0].Category)
	assert.Equal(t, 2, counts[0].Count)
	assert.Equal(t, "Misc", counts[1].Category)
	assert.Equal(t, 1, counts[1].Count)
	assert.Equal(t, "Tools", counts[2].Category)
	assert.Equal(t, 1, counts[2].Count)
}

func TestCriticalStock(t *testing.T) {
	seedReportFixture(t)

	items, err := services.NewReportService().CriticalStock(0)
	require.NoError(t, err)

	require.Len(t, items, 2)
	// Largest shortfall first: Cable is 6 below, Hammer 3 below.
	assert.Equal(t, "Cable", items[0].Name)
	assert.Equal(t, 10, items[0].MinStockLevel)
	assert.Equal(t, "Hammer", items[1].Name)

	// The alert clients read the minimum under the threshold key.
	raw, err := json.Marshal(items[0])
	require.NoError(t, err)
	var row map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &row))
	assert.EqualValues(t, 10, row["threshold"])
	assert.NotContains(t, row, "min_stock_level")

	limited, err := services.NewReportService().CriticalStock(1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestTotals(t *testing.T) {
	seedReportFixture(t)
	reports := services.NewReportService()

	qty, err := reports.TotalQuantity()
	require.NoError(t, err)
	assert.EqualValues(t, 33, qty)

	value, err := reports.TotalStockValue()
	require.NoError(t, err)
	// 4*2.50 + 20*10.00 + 2*17.50 + 7*1.00
	assert.InDelta(t, 252.00, value, 0.01)
}

func TestSummaryMatchesIndividualAggregates(t *testing.T) {
	seedReportFixture(t)
	reports := services.NewReportService()

	sum, err := reports.Summary()
	require.NoError(t, err)

	assert.EqualValues(t, 4, sum.TotalItems)
	assert.EqualValues(t, 33, sum.TotalQuantity)
	assert.InDelta(t, 252.00, sum.TotalStockValue, 0.01)
	assert.EqualValues(t, 3, sum.Categories)
}

func TestDetailsOrdering(t *testing.T) {
	seedReportFixture(t)

	details, err := services.NewReportService().Details()
	require.NoError(t, err)

	require.Len(t, details, 4)
	// Ordered by category then name.
	assert.Equal(t, "Cable", details[0].Name)
	assert.Equal(t, "Mouse", details[1].Name)
	assert.Equal(t, "Tape", details[2].Name)
	assert.Equal(t, "Hammer", details[3].Name)
}

func TestRecentLogsShape(t *testing.T) {
	seedReportFixture(t)

	logs, err := services.NewActivityService().RecentInventoryLogs()
	require.NoError(t, err)

	require.Len(t, logs, 2)
	for _, log := range logs {
		assert.Equal(t, "System", log.UserName)
		assert.NotEmpty(t, log.Action)
		assert.NotEmpty(t, log.Details)
		assert.False(t, log.CreatedAt.IsZero())
	}
	// Most recent first: Tape was created in July.
	assert.Contains(t, logs[0].Details, "Tape")
}
