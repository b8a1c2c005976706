package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/stockwise/app/models"
	"github.com/shashiranjanraj/stockwise/app/services"
	"github.com/shashiranjanraj/stockwise/pkg/database"
	"github.com/shashiranjanraj/stockwise/pkg/testkit"
)

func newThreshold(min, max int) *models.CategoryStockLevel {
	return &models.CategoryStockLevel{MinStockLevel: min, MaxStockLevel: max}
}

func TestEvaluateStatusBoundaries(t *testing.T) {
	threshold := newThreshold(10, 100)

	cases := []struct {
		total int
		want  services.Status
	}{
		{0, services.StatusLowStock},
		{10, services.StatusLowStock},    // exactly at min is LOW, not WARNING
		{11, services.StatusWarning},
		{15, services.StatusWarning},     // exactly min*1.5
		{16, services.StatusInStock},
		{99, services.StatusInStock},
		{100, services.StatusOverstocked}, // exactly at max is OVER, not IN
		{250, services.StatusOverstocked},
	}

	for _, c := range cases {
		got := services.EvaluateStatus(c.total, threshold)
		assert.Equal(t, c.want, got, "total=%d", c.total)
	}
}

func TestEvaluateStatusMissingThreshold(t *testing.T) {
	for _, total := range []int{0, 10, 1000} {
		assert.Equal(t, services.StatusUnknown, services.EvaluateStatus(total, nil), "total=%d", total)
	}
}

func TestEvaluateStatusIsPure(t *testing.T) {
	threshold := newThreshold(10, 100)
	first := services.EvaluateStatus(42, threshold)
	second := services.EvaluateStatus(42, threshold)
	assert.Equal(t, first, second)
}

func TestEvaluateStatusLowPrecedesWarning(t *testing.T) {
	// min*1.5 overlaps min when min is 0; the LOW check must win at 0.
	assert.Equal(t, services.StatusLowStock, services.EvaluateStatus(0, newThreshold(0, 10)))
}

func TestWidgetsCategoryLifecycle(t *testing.T) {
	database.DB = testkit.NewTestDB(t, &models.InventoryItem{}, &models.CategoryStockLevel{})

	levels := services.NewCategoryService()
	items := services.NewInventoryService()
	status := services.NewStockStatusService()

	level, err := levels.Create(services.CategoryLevelInput{
		Category: "Widgets", MinStockLevel: 10, MaxStockLevel: 50,
	})
	require.NoError(t, err)

	for _, qty := range []int{3, 4, 2} {
		_, err := items.Create(services.InventoryInput{
			Name: "Widget", Category: "Widgets", Quantity: qty, UnitPrice: 1.50,
		})
		require.NoError(t, err)
	}

	cs, err := status.EvaluateCategory("Widgets")
	require.NoError(t, err)
	assert.Equal(t, 9, cs.Total)
	assert.Equal(t, services.StatusLowStock, cs.Status)

	_, err = items.Create(services.InventoryInput{
		Name: "Widget XL", Category: "Widgets", Quantity: 10, UnitPrice: 3.00,
	})
	require.NoError(t, err)

	cs, err = status.EvaluateCategory("Widgets")
	require.NoError(t, err)
	assert.Equal(t, 19, cs.Total)
	assert.Equal(t, services.StatusInStock, cs.Status)

	// Deleting the threshold must succeed despite existing items, and the
	// category then evaluates as UNKNOWN.
	require.NoError(t, levels.Delete(level.ID))

	cs, err = status.EvaluateCategory("Widgets")
	require.NoError(t, err)
	assert.Equal(t, services.StatusUnknown, cs.Status)
}

func TestEvaluateCategorySurfacesStoreFault(t *testing.T) {
	database.DB = testkit.NewTestDB(t, &models.InventoryItem{}, &models.CategoryStockLevel{})

	items := services.NewInventoryService()
	_, err := items.Create(services.InventoryInput{
		Name: "Hammer", Category: "Tools", Quantity: 2, UnitPrice: 17.50,
	})
	require.NoError(t, err)

	// A missing threshold row is a valid UNKNOWN, not an error.
	cs, err := services.NewStockStatusService().EvaluateCategory("Tools")
	require.NoError(t, err)
	assert.Equal(t, services.StatusUnknown, cs.Status)

	// A broken store must surface as an error, never as UNKNOWN.
	require.NoError(t, database.DB.Migrator().DropTable(&models.CategoryStockLevel{}))
	_, err = services.NewStockStatusService().EvaluateCategory("Tools")
	assert.Error(t, err)
}

func TestEvaluateAllCoversUnion(t *testing.T) {
	database.DB = testkit.NewTestDB(t, &models.InventoryItem{}, &models.CategoryStockLevel{})

	levels := services.NewCategoryService()
	items := services.NewInventoryService()

	// Threshold without items evaluates over total 0.
	_, err := levels.Create(services.CategoryLevelInput{
		Category: "Empty", MinStockLevel: 5, MaxStockLevel: 20,
	})
	require.NoError(t, err)

	// Items without a threshold evaluate as UNKNOWN.
	_, err = items.Create(services.InventoryInput{
		Name: "Orphan", Category: "Orphans", Quantity: 7, UnitPrice: 2.00,
	})
	require.NoError(t, err)

	statuses, err := services.NewStockStatusService().EvaluateAll()
	require.NoError(t, err)

	byCategory := map[string]services.CategoryStatus{}
	for _, cs := range statuses {
		byCategory[cs.Category] = cs
	}

	require.Contains(t, byCategory, "Empty")
	assert.Equal(t, 0, byCategory["Empty"].Total)
	assert.Equal(t, services.StatusLowStock, byCategory["Empty"].Status)

	require.Contains(t, byCategory, "Orphans")
	assert.Equal(t, 7, byCategory["Orphans"].Total)
	assert.Equal(t, services.StatusUnknown, byCategory["Orphans"].Status)
}

func TestDuplicateCategoryRejected(t *testing.T) {
	database.DB = testkit.NewTestDB(t, &models.CategoryStockLevel{})

	levels := services.NewCategoryService()

	_, err := levels.Create(services.CategoryLevelInput{
		Category: "Tools", MinStockLevel: 5, MaxStockLevel: 50,
	})
	require.NoError(t, err)

	_, err = levels.Create(services.CategoryLevelInput{
		Category: "Tools", MinStockLevel: 1, MaxStockLevel: 10,
	})
	assert.ErrorIs(t, err, services.ErrDuplicateCategory)

	// The failed create must not have written a second row.
	var count int64
	require.NoError(t, database.DB.Model(&models.CategoryStockLevel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCategoryImmutableOnUpdate(t *testing.T) {
	database.DB = testkit.NewTestDB(t, &models.CategoryStockLevel{})

	levels := services.NewCategoryService()

	level, err := levels.Create(services.CategoryLevelInput{
		Category: "Food", MinStockLevel: 30, MaxStockLevel: 300,
	})
	require.NoError(t, err)

	updated, err := levels.Update(level.ID, services.CategoryLevelInput{
		Category: "Renamed", MinStockLevel: 40, MaxStockLevel: 400,
	})
	require.NoError(t, err)

	assert.Equal(t, "Food", updated.Category)
	assert.Equal(t, 40, updated.MinStockLevel)
	assert.Equal(t, 400, updated.MaxStockLevel)
}
