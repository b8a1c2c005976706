package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/stockwise/app/controllers"
	"github.com/shashiranjanraj/stockwise/app/models"
	"github.com/shashiranjanraj/stockwise/pkg/database"
	"github.com/shashiranjanraj/stockwise/pkg/testkit"
)

func seedDashboard(t *testing.T) {
	t.Helper()
	setupInventoryDB(t)

	level := models.CategoryStockLevel{Category: "Tools", MinStockLevel: 5, MaxStockLevel: 50}
	require.NoError(t, database.DB.Create(&level).Error)

	items := []models.InventoryItem{
		{Name: "Hammer", Category: "Tools", Quantity: 2, UnitPrice: 17.50},
		{Name: "Wrench", Category: "Tools", Quantity: 8, UnitPrice: 12.00},
	}
	require.NoError(t, database.DB.Create(&items).Error)
}

// The dashboard clients read these exact keys; renaming any of them is a
// breaking change.
func TestStatsWireKeys(t *testing.T) {
	seedDashboard(t)
	c := controllers.NewDashboardController()

	rec := httptest.NewRecorder()
	c.Stats(rec, httptest.NewRequest(http.MethodGet, "/api/inventory/dashboard/stats", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	data := testkit.BodyMap(t, rec)["data"].(map[string]interface{})
	assert.EqualValues(t, 2, data["totalProducts"])
	assert.EqualValues(t, 1, data["categories"])
	assert.EqualValues(t, 1, data["lowStockItems"]) // only Hammer is below min
}

func TestTotalsWireKeys(t *testing.T) {
	seedDashboard(t)
	c := controllers.NewDashboardController()

	rec := httptest.NewRecorder()
	c.TotalQuantity(rec, httptest.NewRequest(http.MethodGet, "/api/inventory/dashboard/total-quantity", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	data := testkit.BodyMap(t, rec)["data"].(map[string]interface{})
	assert.EqualValues(t, 10, data["totalQuantity"])

	rec = httptest.NewRecorder()
	c.TotalStockValue(rec, httptest.NewRequest(http.MethodGet, "/api/inventory/dashboard/total-stock-value", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	data = testkit.BodyMap(t, rec)["data"].(map[string]interface{})
	assert.InDelta(t, 131.00, data["totalStockValue"].(float64), 0.01) // 2*17.50 + 8*12.00
}

func TestSummaryWireKeys(t *testing.T) {
	seedDashboard(t)
	c := controllers.NewDashboardController()

	rec := httptest.NewRecorder()
	c.Summary(rec, httptest.NewRequest(http.MethodGet, "/api/inventory/dashboard/summary", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	data := testkit.BodyMap(t, rec)["data"].(map[string]interface{})
	assert.EqualValues(t, 2, data["total_items"])
	assert.EqualValues(t, 10, data["total_quantity"])
	assert.InDelta(t, 131.00, data["total_value"].(float64), 0.01)
	assert.EqualValues(t, 1, data["categories_count"])
}
