package seeders

import (
	"time"

	"github.com/shashiranjanraj/stockwise/app/models"
	"github.com/shashiranjanraj/stockwise/pkg/auth"
	"github.com/shashiranjanraj/stockwise/pkg/rbac"
	"gorm.io/gorm"
)

func init() {
	Register("users", SeedUsers)
	Register("category_stock_levels", SeedCategoryStockLevels)
	Register("inventory_items", SeedInventoryItems)
}

// SeedUsers inserts one account per role. All default passwords are
// "password"; change them before exposing the instance.
func SeedUsers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword("password")
	if err != nil {
		return err
	}

	users := []models.User{
		{Name: "Admin", Email: "admin@stockwise.test", Password: hash, Role: rbac.RoleAdmin},
		{Name: "Manager", Email: "manager@stockwise.test", Password: hash, Role: rbac.RoleManager},
		{Name: "Stock Keeper", Email: "keeper@stockwise.test", Password: hash, Role: rbac.RoleStockKeeper},
		{Name: "Viewer", Email: "viewer@stockwise.test", Password: hash, Role: rbac.RoleViewer},
	}
	return db.Create(&users).Error
}

// SeedCategoryStockLevels inserts the default thresholds.
func SeedCategoryStockLevels(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.CategoryStockLevel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	levels := []models.CategoryStockLevel{
		{Category: "Electronics", MinStockLevel: 10, MaxStockLevel: 100},
		{Category: "Clothing", MinStockLevel: 20, MaxStockLevel: 200},
		{Category: "Food", MinStockLevel: 30, MaxStockLevel: 300},
		{Category: "Tools", MinStockLevel: 15, MaxStockLevel: 150},
		{Category: "Other", MinStockLevel: 5, MaxStockLevel: 50},
	}
	return db.Create(&levels).Error
}

// SeedInventoryItems inserts twenty sample items with creation dates
// spread across the year so the stock movement chart has data.
func SeedInventoryItems(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.InventoryItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	type seedItem struct {
		name      string
		category  string
		quantity  int
		unitPrice float64
		month     time.Month
	}

	seeds := []seedItem{
		{"USB-C Cable", "Electronics", 45, 9.99, time.January},
		{"Wireless Mouse", "Electronics", 30, 24.50, time.February},
		{"Mechanical Keyboard", "Electronics", 12, 89.00, time.March},
		{"27\" Monitor", "Electronics", 8, 229.99, time.April},
		{"Cotton T-Shirt", "Clothing", 120, 12.00, time.January},
		{"Denim Jeans", "Clothing", 60, 39.95, time.March},
		{"Wool Sweater", "Clothing", 25, 54.90, time.May},
		{"Rain Jacket", "Clothing", 18, 79.00, time.June},
		{"Canned Beans", "Food", 200, 1.49, time.February},
		{"Pasta 500g", "Food", 150, 2.20, time.April},
		{"Olive Oil 1L", "Food", 80, 8.75, time.June},
		{"Coffee Beans 1kg", "Food", 40, 14.90, time.July},
		{"Claw Hammer", "Tools", 35, 17.50, time.February},
		{"Screwdriver Set", "Tools", 50, 29.99, time.May},
		{"Cordless Drill", "Tools", 10, 119.00, time.July},
		{"Tape Measure", "Tools", 70, 6.49, time.August},
		{"Gift Wrap Roll", "Other", 90, 3.25, time.September},
		{"Notebook A5", "Other", 110, 4.10, time.October},
		{"Desk Lamp", "Other", 22, 32.00, time.November},
		{"Batteries AA 8-pack", "Other", 65, 7.99, time.December},
	}

	year := time.Now().Year()
	for _, s := range seeds {
		item := models.InventoryItem{
			Name:      s.name,
			Category:  s.category,
			Quantity:  s.quantity,
			UnitPrice: s.unitPrice,
		}
		item.CreatedAt = time.Date(year, s.month, 15, 10, 0, 0, 0, time.UTC)
		item.UpdatedAt = item.CreatedAt
		if err := db.Create(&item).Error; err != nil {
			return err
		}
	}
	return nil
}
