package migrations

import (
	"github.com/shashiranjanraj/stockwise/app/models"
	"github.com/shashiranjanraj/stockwise/pkg/migration"
	"gorm.io/gorm"
)

func init() {
	migration.Register("20260101000000_create_users_table", &CreateUsersTable{})
	migration.Register("20260101000001_create_inventory_items_table", &CreateInventoryItemsTable{})
	migration.Register("20260101000002_create_category_stock_levels_table", &CreateCategoryStockLevelsTable{})
}

// -------- 0001: users --------

type CreateUsersTable struct{}

func (m *CreateUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (m *CreateUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("users")
}

// -------- 0002: inventory items --------

type CreateInventoryItemsTable struct{}

func (m *CreateInventoryItemsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.InventoryItem{})
}

func (m *CreateInventoryItemsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("inventory_items")
}

// -------- 0003: category stock levels --------

// The unique index on category is the authority on uniqueness: concurrent
// creates for the same category cannot both commit.
type CreateCategoryStockLevelsTable struct{}

func (m *CreateCategoryStockLevelsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.CategoryStockLevel{})
}

func (m *CreateCategoryStockLevelsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("category_stock_levels")
}
