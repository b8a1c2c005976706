package services

import (
	"errors"

	"github.com/shashiranjanraj/stockwise/app/models"
	"github.com/shashiranjanraj/stockwise/app/repositories"
	"github.com/shashiranjanraj/stockwise/pkg/event"
	"github.com/shashiranjanraj/stockwise/pkg/metrics"
	"github.com/shashiranjanraj/stockwise/pkg/orm"
	"gorm.io/gorm"
)

// ErrNotFound is returned when an id does not resolve to a row.
var ErrNotFound = errors.New("record not found")

// InventoryInput is the request body for item create and update.
type InventoryInput struct {
	Name      string  `json:"name"       validate:"required,max=255"`
	Category  string  `json:"category"   validate:"required,max=255"`
	Quantity  int     `json:"quantity"   validate:"gte=0"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
	Notes     string  `json:"notes"      validate:"nullable,max=1000"`
}

// InventoryService implements validated CRUD over InventoryItem. Writes
// fire domain events and bump the mutation counter; reads go straight to
// the repository.
type InventoryService struct {
	repo *repositories.InventoryRepository
}

func NewInventoryService() *InventoryService {
	return &InventoryService{repo: repositories.NewInventoryRepository()}
}

// List returns one page of items matching the search/category filters.
func (s *InventoryService) List(search, category string, page, perPage int) ([]models.InventoryItem, orm.Pagination, error) {
	return s.repo.Search(search, category, page, perPage)
}

// Get returns a single item by id.
func (s *InventoryService) Get(id uint) (models.InventoryItem, error) {
	item, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return item, ErrNotFound
	}
	return item, err
}

// Create persists a new item from validated input.
func (s *InventoryService) Create(in InventoryInput) (models.InventoryItem, error) {
	item := models.InventoryItem{
		Name:      in.Name,
		Category:  in.Category,
		Quantity:  in.Quantity,
		UnitPrice: in.UnitPrice,
		Notes:     in.Notes,
	}

	if err := s.repo.Create(&item); err != nil {
		return item, err
	}

	metrics.RecordMutation("inventory_item", "create")
	event.FireAsync("inventory.created", item)
	return item, nil
}

// Update applies validated input to an existing item.
func (s *InventoryService) Update(id uint, in InventoryInput) (models.InventoryItem, error) {
	item, err := s.Get(id)
	if err != nil {
		return item, err
	}

	item.Name = in.Name
	item.Category = in.Category
	item.Quantity = in.Quantity
	item.UnitPrice = in.UnitPrice
	item.Notes = in.Notes

	if err := s.repo.Update(&item); err != nil {
		return item, err
	}

	metrics.RecordMutation("inventory_item", "update")
	event.FireAsync("inventory.updated", item)
	return item, nil
}

// Delete removes an item by id. A missing id is ErrNotFound; the row is
// removed permanently, no soft delete.
func (s *InventoryService) Delete(id uint) error {
	item, err := s.Get(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(&item); err != nil {
		return err
	}

	metrics.RecordMutation("inventory_item", "delete")
	event.FireAsync("inventory.deleted", item)
	return nil
}
