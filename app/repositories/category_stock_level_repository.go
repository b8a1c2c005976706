package repositories

import (
	"github.com/shashiranjanraj/stockwise/app/models"
	"github.com/shashiranjanraj/stockwise/pkg/database"
	"github.com/shashiranjanraj/stockwise/pkg/orm"
)

// CategoryStockLevelRepository handles database operations for
// CategoryStockLevel.
type CategoryStockLevelRepository struct{}

func NewCategoryStockLevelRepository() *CategoryStockLevelRepository {
	return &CategoryStockLevelRepository{}
}

// Search lists threshold rows with an optional substring match on category
// and page-number pagination.
func (r *CategoryStockLevelRepository) Search(search string, page, perPage int) ([]models.CategoryStockLevel, orm.Pagination, error) {
	var levels []models.CategoryStockLevel

	q := orm.DB().Model(&models.CategoryStockLevel{})
	if search != "" {
		q = q.Where("category LIKE ?", "%"+search+"%")
	}

	pagination, err := q.Order("category ASC").GetWithPagination(&levels, page, perPage)
	return levels, pagination, err
}

// All returns every threshold row, unpaginated, for evaluator passes.
func (r *CategoryStockLevelRepository) All() ([]models.CategoryStockLevel, error) {
	var levels []models.CategoryStockLevel
	err := orm.DB().Model(&models.CategoryStockLevel{}).Order("category ASC").Get(&levels)
	return levels, err
}

// FindByID looks up a threshold row by primary key.
func (r *CategoryStockLevelRepository) FindByID(id uint) (models.CategoryStockLevel, error) {
	var level models.CategoryStockLevel
	err := orm.DB().Model(&models.CategoryStockLevel{}).Where("id = ?", id).First(&level)
	return level, err
}

// FindByCategory looks up the threshold row for one category.
func (r *CategoryStockLevelRepository) FindByCategory(category string) (models.CategoryStockLevel, error) {
	var level models.CategoryStockLevel
	err := orm.DB().Model(&models.CategoryStockLevel{}).Where("category = ?", category).First(&level)
	return level, err
}

// Create persists a new threshold row. The unique index on category makes
// the duplicate check atomic; callers translate the driver error.
func (r *CategoryStockLevelRepository) Create(level *models.CategoryStockLevel) error {
	return orm.DB().Create(level)
}

// Update persists changes to an existing threshold row.
func (r *CategoryStockLevelRepository) Update(level *models.CategoryStockLevel) error {
	return orm.DB().Save(level)
}

// Delete removes a threshold row permanently. No cascade: items keep their
// category string and evaluate as UNKNOWN afterwards.
func (r *CategoryStockLevelRepository) Delete(level *models.CategoryStockLevel) error {
	return database.DB.Unscoped().Delete(level).Error
}

// Recent returns the n most recently created threshold rows.
func (r *CategoryStockLevelRepository) Recent(n int) ([]models.CategoryStockLevel, error) {
	var levels []models.CategoryStockLevel
	err := orm.DB().Model(&models.CategoryStockLevel{}).Order("created_at DESC").Limit(n).Get(&levels)
	return levels, err
}
