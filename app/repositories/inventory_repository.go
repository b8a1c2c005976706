package repositories

import (
	"github.com/shashiranjanraj/stockwise/app/models"
	"github.com/shashiranjanraj/stockwise/config"
	"github.com/shashiranjanraj/stockwise/pkg/database"
	"github.com/shashiranjanraj/stockwise/pkg/orm"
)

// InventoryRepository handles database operations for InventoryItem,
// including the raw aggregate queries behind the dashboard endpoints.
type InventoryRepository struct{}

func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{}
}

// Search lists items with an optional substring match on name/category, an
// optional exact category filter, and page-number pagination.
func (r *InventoryRepository) Search(search, category string, page, perPage int) ([]models.InventoryItem, orm.Pagination, error) {
	var items []models.InventoryItem

	q := orm.DB().Model(&models.InventoryItem{})
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("name LIKE ? OR category LIKE ?", like, like)
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}

	pagination, err := q.Order("created_at DESC").GetWithPagination(&items, page, perPage)
	return items, pagination, err
}

// FindByID looks up an item by primary key.
func (r *InventoryRepository) FindByID(id uint) (models.InventoryItem, error) {
	var item models.InventoryItem
	err := orm.DB().Model(&models.InventoryItem{}).Where("id = ?", id).First(&item)
	return item, err
}

// Create persists a new item record.
func (r *InventoryRepository) Create(item *models.InventoryItem) error {
	return orm.DB().Create(item)
}

// Update persists changes to an existing item.
func (r *InventoryRepository) Update(item *models.InventoryItem) error {
	return orm.DB().Save(item)
}

// Delete removes an item permanently.
func (r *InventoryRepository) Delete(item *models.InventoryItem) error {
	return database.DB.Unscoped().Delete(item).Error
}

// Recent returns the n most recently created items.
func (r *InventoryRepository) Recent(n int) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := orm.DB().Model(&models.InventoryItem{}).Order("created_at DESC").Limit(n).Get(&items)
	return items, err
}

// ─── Aggregates ───────────────────────────────────────────────────────────────

// CategoryTotal is one row of the per-category quantity sum feeding the
// stock status evaluator.
type CategoryTotal struct {
	Category string `json:"category"`
	Total    int    `json:"total"`
}

// CategoryTotals sums quantity per category across the whole table.
func (r *InventoryRepository) CategoryTotals() ([]CategoryTotal, error) {
	var totals []CategoryTotal
	err := orm.DB().Model(&models.InventoryItem{}).
		Select("category, COALESCE(SUM(quantity), 0) AS total").
		Group("category").
		Scan(&totals)
	return totals, err
}

// CountItems returns the total number of inventory rows.
func (r *InventoryRepository) CountItems() (int64, error) {
	var n int64
	err := orm.DB().Model(&models.InventoryItem{}).Count(&n)
	return n, err
}

// CountCategories returns the number of distinct category strings in use.
func (r *InventoryRepository) CountCategories() (int64, error) {
	var n int64
	err := database.DB.Model(&models.InventoryItem{}).
		Distinct("category").Count(&n).Error
	return n, err
}

// CountBelowMinimum counts items whose own quantity sits below their
// category minimum. This is a per-item rule; the evaluator's per-category
// total rule is a separate, deliberately different computation.
func (r *InventoryRepository) CountBelowMinimum() (int64, error) {
	var n int64
	err := orm.DB().Model(&models.InventoryItem{}).
		Joins("JOIN category_stock_levels csl ON csl.category = inventory_items.category AND csl.deleted_at IS NULL").
		Where("inventory_items.quantity < csl.min_stock_level").
		Count(&n)
	return n, err
}

// MonthBucket is one calendar-month bucket of the stock movement query.
type MonthBucket struct {
	Month int `json:"month"`
	Total int `json:"total"`
}

// MonthlyMovement sums quantity per calendar month of created_at, ignoring
// year, ordered by month number ascending.
func (r *InventoryRepository) MonthlyMovement() ([]MonthBucket, error) {
	var buckets []MonthBucket
	expr := monthExpr()
	err := orm.DB().Model(&models.InventoryItem{}).
		Select(expr + " AS month, COALESCE(SUM(quantity), 0) AS total").
		Group(expr).
		Order("month ASC").
		Scan(&buckets)
	return buckets, err
}

// monthExpr returns the SQL month-number expression for the active driver.
func monthExpr() string {
	switch config.DatabaseDriver() {
	case "sqlite":
		return "CAST(strftime('%m', created_at) AS INTEGER)"
	case "postgres":
		return "EXTRACT(MONTH FROM created_at)::int"
	default:
		return "MONTH(created_at)"
	}
}

// CategoryCount is one row of the category distribution query.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CategoryDistribution counts item rows per category.
func (r *InventoryRepository) CategoryDistribution() ([]CategoryCount, error) {
	var counts []CategoryCount
	err := orm.DB().Model(&models.InventoryItem{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Order("category ASC").
		Scan(&counts)
	return counts, err
}

// CriticalItem is one item sitting below its category minimum. The alert
// clients read the minimum under the `threshold` key.
type CriticalItem struct {
	Name          string `json:"name"`
	Category      string `json:"category"`
	Quantity      int    `json:"quantity"`
	MinStockLevel int    `json:"threshold"`
}

// CriticalStock lists items below their category minimum, most severe
// (largest shortfall) first, capped at limit.
func (r *InventoryRepository) CriticalStock(limit int) ([]CriticalItem, error) {
	var items []CriticalItem
	err := orm.DB().Model(&models.InventoryItem{}).
		Select("inventory_items.name, inventory_items.category, inventory_items.quantity, csl.min_stock_level").
		Joins("JOIN category_stock_levels csl ON csl.category = inventory_items.category AND csl.deleted_at IS NULL").
		Where("inventory_items.quantity < csl.min_stock_level").
		Order("(csl.min_stock_level - inventory_items.quantity) DESC").
		Limit(limit).
		Scan(&items)
	return items, err
}

// TotalQuantity sums quantity across all items.
func (r *InventoryRepository) TotalQuantity() (int64, error) {
	var total int64
	err := orm.DB().Model(&models.InventoryItem{}).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total)
	return total, err
}

// TotalStockValue sums quantity * unit_price across all items.
func (r *InventoryRepository) TotalStockValue() (float64, error) {
	var total float64
	err := orm.DB().Model(&models.InventoryItem{}).
		Select("COALESCE(SUM(quantity * unit_price), 0)").
		Scan(&total)
	return total, err
}

// ItemDetail is one row of the full details projection.
type ItemDetail struct {
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Details returns the full unpaginated projection ordered by category then
// name, used by the details endpoint and the CSV snapshot job.
func (r *InventoryRepository) Details() ([]ItemDetail, error) {
	var rows []ItemDetail
	err := orm.DB().Model(&models.InventoryItem{}).
		Select("name, category, quantity, unit_price").
		Order("category ASC, name ASC").
		Scan(&rows)
	return rows, err
}
