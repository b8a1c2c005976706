package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/stockwise/app/services"
	"github.com/shashiranjanraj/stockwise/pkg/bind"
	"github.com/shashiranjanraj/stockwise/pkg/response"
)

// UserController is the admin-only user management surface.
type UserController struct {
	service *services.UserService
}

func NewUserController() *UserController {
	return &UserController{service: services.NewUserService()}
}

// Index lists users with a search filter and pagination.
func (c *UserController) Index(w http.ResponseWriter, r *http.Request) {
	page, perPage := pageParams(r)
	search := r.URL.Query().Get("search")

	users, pagination, err := c.service.List(search, page, perPage)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}

	response.Paginated(w, users, pagination)
}

// Store creates a user with an explicit role.
func (c *UserController) Store(w http.ResponseWriter, r *http.Request) {
	var in services.UserInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, err := c.service.Create(in)
	if errors.Is(err, services.ErrEmailTaken) {
		response.ValidationError(w, map[string]string{
			"email": "The email has already been taken.",
		})
		return
	}
	if errors.Is(err, services.ErrInvalidCredentials) {
		response.ValidationError(w, map[string]string{
			"password": "The password field is required.",
		})
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	response.Created(w, user)
}

// Update changes a user's name, email, role and optionally password.
func (c *UserController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w, "User not found")
		return
	}

	var in services.UserInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, err := c.service.Update(id, in)
	if errors.Is(err, services.ErrNotFound) {
		response.NotFound(w, "User not found")
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to update user")
		return
	}

	response.Success(w, user)
}

// Delete removes a user.
func (c *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w, "User not found")
		return
	}

	err := c.service.Delete(id)
	if errors.Is(err, services.ErrNotFound) {
		response.NotFound(w, "User not found")
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	response.Message(w, "User deleted successfully")
}
