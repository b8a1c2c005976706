package services

import (
	"errors"
	"strings"

	"github.com/shashiranjanraj/stockwise/app/models"
	"github.com/shashiranjanraj/stockwise/app/repositories"
	"github.com/shashiranjanraj/stockwise/pkg/event"
	"github.com/shashiranjanraj/stockwise/pkg/metrics"
	"github.com/shashiranjanraj/stockwise/pkg/orm"
	"gorm.io/gorm"
)

// ErrDuplicateCategory is returned when a threshold row already exists for
// the category. The unique index is the source of truth; the driver error
// is translated here so controllers can map it to a validation response.
var ErrDuplicateCategory = errors.New("category already has a stock level")

// CategoryLevelInput is the request body for threshold create and update.
// Category is ignored on update: the field is immutable once created.
type CategoryLevelInput struct {
	Category      string `json:"category"        validate:"required,max=255"`
	MinStockLevel int    `json:"min_stock_level" validate:"gte=0"`
	MaxStockLevel int    `json:"max_stock_level" validate:"required,gt_field=min_stock_level"`
}

// CategoryService implements validated CRUD over CategoryStockLevel.
type CategoryService struct {
	repo *repositories.CategoryStockLevelRepository
}

func NewCategoryService() *CategoryService {
	return &CategoryService{repo: repositories.NewCategoryStockLevelRepository()}
}

// List returns one page of threshold rows matching the search filter.
func (s *CategoryService) List(search string, page, perPage int) ([]models.CategoryStockLevel, orm.Pagination, error) {
	return s.repo.Search(search, page, perPage)
}

// Get returns a single threshold row by id.
func (s *CategoryService) Get(id uint) (models.CategoryStockLevel, error) {
	level, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return level, ErrNotFound
	}
	return level, err
}

// Create persists a new threshold row. Duplicate categories surface as
// ErrDuplicateCategory via the unique index, which makes the check atomic
// under concurrent creates.
func (s *CategoryService) Create(in CategoryLevelInput) (models.CategoryStockLevel, error) {
	level := models.CategoryStockLevel{
		Category:      in.Category,
		MinStockLevel: in.MinStockLevel,
		MaxStockLevel: in.MaxStockLevel,
	}

	if err := s.repo.Create(&level); err != nil {
		if isDuplicateKeyError(err) {
			return level, ErrDuplicateCategory
		}
		return level, err
	}

	metrics.RecordMutation("category_stock_level", "create")
	event.FireAsync("category_level.created", level)
	return level, nil
}

// Update applies new min/max values to an existing threshold row. The
// category field of the input is ignored.
func (s *CategoryService) Update(id uint, in CategoryLevelInput) (models.CategoryStockLevel, error) {
	level, err := s.Get(id)
	if err != nil {
		return level, err
	}

	level.MinStockLevel = in.MinStockLevel
	level.MaxStockLevel = in.MaxStockLevel

	if err := s.repo.Update(&level); err != nil {
		return level, err
	}

	metrics.RecordMutation("category_stock_level", "update")
	event.FireAsync("category_level.updated", level)
	return level, nil
}

// Delete removes a threshold row by id. Items in the category keep their
// rows and evaluate as UNKNOWN from then on.
func (s *CategoryService) Delete(id uint) error {
	level, err := s.Get(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(&level); err != nil {
		return err
	}

	metrics.RecordMutation("category_stock_level", "delete")
	event.FireAsync("category_level.deleted", level)
	return nil
}

// isDuplicateKeyError matches the unique-constraint message of each
// supported driver.
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique failed") ||
		strings.Contains(msg, "duplicate entry") ||
		strings.Contains(msg, "duplicate key")
}
