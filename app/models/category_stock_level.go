package models

import "gorm.io/gorm"

// CategoryStockLevel holds the min/max thresholds for one category.
// Category is unique: a second row for the same category is rejected at
// the database level.
type CategoryStockLevel struct {
	gorm.Model
	Category      string `gorm:"size:255;not null;uniqueIndex" json:"category"`
	MinStockLevel int    `gorm:"not null;default:0"            json:"min_stock_level"`
	MaxStockLevel int    `gorm:"not null;default:0"            json:"max_stock_level"`
}
