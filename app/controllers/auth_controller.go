package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/stockwise/app/services"
	"github.com/shashiranjanraj/stockwise/pkg/bind"
	"github.com/shashiranjanraj/stockwise/pkg/middleware"
	"github.com/shashiranjanraj/stockwise/pkg/response"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController() *AuthController {
	return &AuthController{service: services.NewAuthService()}
}

// Register creates an account and returns the user plus a fresh token.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var in services.RegisterInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, token, err := c.service.Register(in)
	if errors.Is(err, services.ErrEmailTaken) {
		response.ValidationError(w, map[string]string{
			"email": "The email has already been taken.",
		})
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	response.Created(w, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

// Login exchanges credentials for a token.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var in services.LoginInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, token, err := c.service.Login(in)
	if errors.Is(err, services.ErrInvalidCredentials) {
		response.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	response.Success(w, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

// Logout blacklists the presented token for its remaining lifetime.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	c.service.Logout(middleware.BearerToken(r))
	response.Message(w, "Logged out successfully")
}
