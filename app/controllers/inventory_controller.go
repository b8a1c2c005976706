package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/stockwise/app/resources"
	"github.com/shashiranjanraj/stockwise/app/services"
	"github.com/shashiranjanraj/stockwise/pkg/bind"
	"github.com/shashiranjanraj/stockwise/pkg/resource"
	"github.com/shashiranjanraj/stockwise/pkg/response"
)

type InventoryController struct {
	service  *services.InventoryService
	activity *services.ActivityService
}

func NewInventoryController() *InventoryController {
	return &InventoryController{
		service:  services.NewInventoryService(),
		activity: services.NewActivityService(),
	}
}

// Index lists items with search/category filters and pagination.
func (c *InventoryController) Index(w http.ResponseWriter, r *http.Request) {
	page, perPage := pageParams(r)
	search := r.URL.Query().Get("search")
	category := r.URL.Query().Get("category")

	items, pagination, err := c.service.List(search, category, page, perPage)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch inventory items")
		return
	}

	response.Paginated(w, items, pagination)
}

// Show returns a single item.
func (c *InventoryController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w, "Item not found")
		return
	}

	item, err := c.service.Get(id)
	if errors.Is(err, services.ErrNotFound) {
		response.NotFound(w, "Item not found")
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch inventory items")
		return
	}

	response.Success(w, item)
}

// Store creates a new item.
func (c *InventoryController) Store(w http.ResponseWriter, r *http.Request) {
	var in services.InventoryInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	item, err := c.service.Create(in)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to create inventory item")
		return
	}

	response.Created(w, item)
}

// Update replaces an existing item's fields.
func (c *InventoryController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w, "Item not found")
		return
	}

	var in services.InventoryInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	item, err := c.service.Update(id, in)
	if errors.Is(err, services.ErrNotFound) {
		response.NotFound(w, "Item not found")
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to update inventory item")
		return
	}

	response.Success(w, item)
}

// Delete removes an item permanently.
func (c *InventoryController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w, "Item not found")
		return
	}

	err := c.service.Delete(id)
	if errors.Is(err, services.ErrNotFound) {
		response.NotFound(w, "Item not found")
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to delete inventory item")
		return
	}

	response.Message(w, "Item deleted successfully")
}

// RecentLogs serves the synthetic item activity feed.
func (c *InventoryController) RecentLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := c.activity.RecentInventoryLogs()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch recent logs")
		return
	}
	resource.CollectionOf(&resources.ActivityLogResource{}, logs).Respond(w)
}
