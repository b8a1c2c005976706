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

type CategoryStockLevelController struct {
	service  *services.CategoryService
	status   *services.StockStatusService
	activity *services.ActivityService
}

func NewCategoryStockLevelController() *CategoryStockLevelController {
	return &CategoryStockLevelController{
		service:  services.NewCategoryService(),
		status:   services.NewStockStatusService(),
		activity: services.NewActivityService(),
	}
}

// Index lists threshold rows with a search filter and pagination.
func (c *CategoryStockLevelController) Index(w http.ResponseWriter, r *http.Request) {
	page, perPage := pageParams(r)
	search := r.URL.Query().Get("search")

	levels, pagination, err := c.service.List(search, page, perPage)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch category stock levels")
		return
	}

	response.Paginated(w, levels, pagination)
}

// Store creates a new threshold row. Duplicate categories come back as a
// field-level validation error, same shape as tag failures.
func (c *CategoryStockLevelController) Store(w http.ResponseWriter, r *http.Request) {
	var in services.CategoryLevelInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	level, err := c.service.Create(in)
	if errors.Is(err, services.ErrDuplicateCategory) {
		response.ValidationError(w, map[string]string{
			"category": "The category has already been taken.",
		})
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to create category stock level")
		return
	}

	response.Created(w, level)
}

// Update changes min/max on an existing row. Category is immutable.
func (c *CategoryStockLevelController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w, "Category level not found")
		return
	}

	var in services.CategoryLevelInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	level, err := c.service.Update(id, in)
	if errors.Is(err, services.ErrNotFound) {
		response.NotFound(w, "Category level not found")
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to update category stock level")
		return
	}

	response.Success(w, level)
}

// Delete removes a threshold row. Items keep their category string and
// evaluate as UNKNOWN afterwards.
func (c *CategoryStockLevelController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w, "Category level not found")
		return
	}

	err := c.service.Delete(id)
	if errors.Is(err, services.ErrNotFound) {
		response.NotFound(w, "Category level not found")
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to delete category stock level")
		return
	}

	response.Message(w, "Category level deleted successfully")
}

// Status evaluates every category server-side over true per-category
// totals.
func (c *CategoryStockLevelController) Status(w http.ResponseWriter, r *http.Request) {
	statuses, err := c.status.EvaluateAll()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to evaluate stock status")
		return
	}
	response.Success(w, statuses)
}

// RecentLogs serves the synthetic threshold activity feed.
func (c *CategoryStockLevelController) RecentLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := c.activity.RecentCategoryLogs()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch recent logs")
		return
	}
	resource.CollectionOf(&resources.ActivityLogResource{}, logs).Respond(w)
}
