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

func TestStoreCategoryLevel(t *testing.T) {
	setupInventoryDB(t)
	c := controllers.NewCategoryStockLevelController()

	req := testkit.JSONRequest(t, http.MethodPost, "/api/category-levels", map[string]interface{}{
		"category": "Electronics", "min_stock_level": 10, "max_stock_level": 100,
	})
	rec := httptest.NewRecorder()
	c.Store(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	body := testkit.BodyMap(t, rec)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Electronics", data["category"])
	assert.EqualValues(t, 10, data["min_stock_level"])
}

func TestStoreCategoryLevelZeroMinimumAllowed(t *testing.T) {
	setupInventoryDB(t)
	c := controllers.NewCategoryStockLevelController()

	req := testkit.JSONRequest(t, http.MethodPost, "/api/category-levels", map[string]interface{}{
		"category": "Food", "min_stock_level": 0, "max_stock_level": 30,
	})
	rec := httptest.NewRecorder()
	c.Store(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestStoreCategoryLevelMaxMustExceedMin(t *testing.T) {
	setupInventoryDB(t)
	c := controllers.NewCategoryStockLevelController()

	req := testkit.JSONRequest(t, http.MethodPost, "/api/category-levels", map[string]interface{}{
		"category": "Food", "min_stock_level": 30, "max_stock_level": 30,
	})
	rec := httptest.NewRecorder()
	c.Store(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := testkit.BodyMap(t, rec)
	errs := body["errors"].(map[string]interface{})
	assert.Contains(t, errs, "max_stock_level")

	var count int64
	require.NoError(t, database.DB.Model(&models.CategoryStockLevel{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestStoreCategoryLevelDuplicate(t *testing.T) {
	setupInventoryDB(t)
	c := controllers.NewCategoryStockLevelController()

	payload := map[string]interface{}{
		"category": "Tools", "min_stock_level": 15, "max_stock_level": 150,
	}

	rec := httptest.NewRecorder()
	c.Store(rec, testkit.JSONRequest(t, http.MethodPost, "/api/category-levels", payload))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	c.Store(rec, testkit.JSONRequest(t, http.MethodPost, "/api/category-levels", payload))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := testkit.BodyMap(t, rec)
	assert.Equal(t, false, body["success"])
	errs := body["errors"].(map[string]interface{})
	msgs := errs["category"].([]interface{})
	require.Len(t, msgs, 1)
	assert.Equal(t, "The category has already been taken.", msgs[0])

	var count int64
	require.NoError(t, database.DB.Model(&models.CategoryStockLevel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateCategoryLevelNotFound(t *testing.T) {
	setupInventoryDB(t)
	c := controllers.NewCategoryStockLevelController()

	req := testkit.JSONRequest(t, http.MethodPut, "/api/category-levels/42", map[string]interface{}{
		"category": "Tools", "min_stock_level": 1, "max_stock_level": 2,
	})
	rec := httptest.NewRecorder()
	c.Update(rec, withID(req, "42"))

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := testkit.BodyMap(t, rec)
	assert.Equal(t, "Category level not found", body["error"])
}

func TestStatusEndpointShape(t *testing.T) {
	setupInventoryDB(t)
	c := controllers.NewCategoryStockLevelController()

	level := models.CategoryStockLevel{Category: "Electronics", MinStockLevel: 10, MaxStockLevel: 100}
	require.NoError(t, database.DB.Create(&level).Error)
	item := models.InventoryItem{Name: "Cable", Category: "Electronics", Quantity: 4, UnitPrice: 2.50}
	require.NoError(t, database.DB.Create(&item).Error)

	req := httptest.NewRequest(http.MethodGet, "/api/category-levels/status", nil)
	rec := httptest.NewRecorder()
	c.Status(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	body := testkit.BodyMap(t, rec)
	data := body["data"].([]interface{})
	require.Len(t, data, 1)
	row := data[0].(map[string]interface{})
	assert.Equal(t, "Electronics", row["category"])
	assert.EqualValues(t, 4, row["total"])
	assert.Equal(t, "LOW_STOCK", row["status"])
}

func TestRecentLogsFeed(t *testing.T) {
	setupInventoryDB(t)
	c := controllers.NewCategoryStockLevelController()

	levels := []models.CategoryStockLevel{
		{Category: "Electronics", MinStockLevel: 10, MaxStockLevel: 100},
		{Category: "Tools", MinStockLevel: 5, MaxStockLevel: 50},
		{Category: "Food", MinStockLevel: 30, MaxStockLevel: 300},
	}
	require.NoError(t, database.DB.Create(&levels).Error)

	req := httptest.NewRequest(http.MethodGet, "/api/category-levels/recent-logs", nil)
	rec := httptest.NewRecorder()
	c.RecentLogs(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	body := testkit.BodyMap(t, rec)
	assert.Equal(t, true, body["success"])
	data := body["data"].([]interface{})
	require.Len(t, data, 2)
	for _, raw := range data {
		row := raw.(map[string]interface{})
		assert.Equal(t, "System", row["user_name"])
		assert.Equal(t, "Stock Level Added", row["action"])
	}
}
