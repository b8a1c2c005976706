package models

import "gorm.io/gorm"

// InventoryItem is one tracked stock record. Items in the same category
// share a CategoryStockLevel threshold row.
type InventoryItem struct {
	gorm.Model
	Name      string  `gorm:"size:255;not null"       json:"name"`
	Category  string  `gorm:"size:255;not null;index" json:"category"`
	Quantity  int     `gorm:"not null;default:0"      json:"quantity"`
	UnitPrice float64 `gorm:"not null;default:0"      json:"unit_price"`
	Notes     string  `gorm:"type:text"               json:"notes"`
}
