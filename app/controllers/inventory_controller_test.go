package controllers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/stockwise/app/controllers"
	"github.com/shashiranjanraj/stockwise/app/models"
	"github.com/shashiranjanraj/stockwise/pkg/database"
	"github.com/shashiranjanraj/stockwise/pkg/testkit"
)

// withID injects a chi route parameter so handlers can be called without a
// full router.
func withID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func setupInventoryDB(t *testing.T) {
	t.Helper()
	database.DB = testkit.NewTestDB(t, &models.InventoryItem{}, &models.CategoryStockLevel{})
}

func TestStoreItemSuccess(t *testing.T) {
	setupInventoryDB(t)
	c := controllers.NewInventoryController()

	req := testkit.JSONRequest(t, http.MethodPost, "/api/inventory", map[string]interface{}{
		"name": "USB-C Cable", "category": "Electronics", "quantity": 40, "unit_price": 9.99,
	})
	rec := httptest.NewRecorder()
	c.Store(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	body := testkit.BodyMap(t, rec)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "USB-C Cable", data["name"])
	assert.EqualValues(t, 40, data["quantity"])
}

func TestStoreItemValidationFailureDoesNotWrite(t *testing.T) {
	setupInventoryDB(t)
	c := controllers.NewInventoryController()

	req := testkit.JSONRequest(t, http.MethodPost, "/api/inventory", map[string]interface{}{
		"name": "", "category": "Electronics", "quantity": -5, "unit_price": 9.99,
	})
	rec := httptest.NewRecorder()
	c.Store(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := testkit.BodyMap(t, rec)
	assert.Equal(t, false, body["success"])
	errs := body["errors"].(map[string]interface{})
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "quantity")
	// Field messages are lists, matching the documented envelope.
	assert.IsType(t, []interface{}{}, errs["name"])

	var count int64
	require.NoError(t, database.DB.Model(&models.InventoryItem{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestIndexPaginationMeta(t *testing.T) {
	setupInventoryDB(t)
	c := controllers.NewInventoryController()

	for i := 0; i < 12; i++ {
		item := models.InventoryItem{Name: "Bolt", Category: "Hardware", Quantity: i, UnitPrice: 0.10}
		require.NoError(t, database.DB.Create(&item).Error)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/inventory?page=2&per_page=5", nil)
	rec := httptest.NewRecorder()
	c.Index(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	body := testkit.BodyMap(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["data"], 5)

	meta := body["meta"].(map[string]interface{})
	assert.EqualValues(t, 2, meta["current_page"])
	assert.EqualValues(t, 3, meta["last_page"])
	assert.EqualValues(t, 5, meta["per_page"])
	assert.EqualValues(t, 12, meta["total"])
}

func TestIndexSearchFilter(t *testing.T) {
	setupInventoryDB(t)
	c := controllers.NewInventoryController()

	rows := []models.InventoryItem{
		{Name: "Wireless Mouse", Category: "Electronics", Quantity: 5, UnitPrice: 24.50},
		{Name: "Claw Hammer", Category: "Tools", Quantity: 9, UnitPrice: 17.50},
	}
	require.NoError(t, database.DB.Create(&rows).Error)

	req := httptest.NewRequest(http.MethodGet, "/api/inventory?search=Mouse", nil)
	rec := httptest.NewRecorder()
	c.Index(rec, req)

	body := testkit.BodyMap(t, rec)
	meta := body["meta"].(map[string]interface{})
	assert.EqualValues(t, 1, meta["total"])
}

func TestUpdateItemNotFound(t *testing.T) {
	setupInventoryDB(t)
	c := controllers.NewInventoryController()

	req := testkit.JSONRequest(t, http.MethodPut, "/api/inventory/999", map[string]interface{}{
		"name": "Ghost", "category": "Nowhere", "quantity": 1, "unit_price": 1.00,
	})
	rec := httptest.NewRecorder()
	c.Update(rec, withID(req, "999"))

	require.Equal(t, http.StatusNotFound, rec.Code)

	body := testkit.BodyMap(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Item not found", body["error"])
}

func TestDeleteItem(t *testing.T) {
	setupInventoryDB(t)
	c := controllers.NewInventoryController()

	item := models.InventoryItem{Name: "Tape", Category: "Misc", Quantity: 3, UnitPrice: 1.00}
	require.NoError(t, database.DB.Create(&item).Error)

	req := httptest.NewRequest(http.MethodDelete, "/api/inventory/1", nil)
	rec := httptest.NewRecorder()
	c.Delete(rec, withID(req, "1"))

	require.Equal(t, http.StatusOK, rec.Code)
	body := testkit.BodyMap(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Item deleted successfully", body["message"])

	// Hard delete: the row is gone even for unscoped queries.
	var count int64
	require.NoError(t, database.DB.Unscoped().Model(&models.InventoryItem{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	// Deleting again is a 404.
	rec = httptest.NewRecorder()
	c.Delete(rec, withID(httptest.NewRequest(http.MethodDelete, "/api/inventory/1", nil), "1"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
