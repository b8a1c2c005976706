package services

import (
	"errors"

	"github.com/shashiranjanraj/stockwise/app/models"
	"github.com/shashiranjanraj/stockwise/app/repositories"
	"github.com/shashiranjanraj/stockwise/pkg/auth"
	"github.com/shashiranjanraj/stockwise/pkg/cache"
	"github.com/shashiranjanraj/stockwise/pkg/middleware"
	"github.com/shashiranjanraj/stockwise/pkg/rbac"
	"gorm.io/gorm"
)

// ErrInvalidCredentials is returned for a bad email/password pair. Login
// never reveals which half was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrEmailTaken is returned when registering with an existing email.
var ErrEmailTaken = errors.New("email already registered")

// RegisterInput is the request body for account registration.
type RegisterInput struct {
	Name     string `json:"name"     validate:"required,max=255"`
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"nullable,in=Admin,Manager,Stock Keeper,Viewer"`
}

// LoginInput is the request body for login.
type LoginInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthService issues and revokes JWTs. Revocation is a Redis blacklist
// entry that outlives the token's own expiry.
type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService() *AuthService {
	return &AuthService{users: repositories.NewUserRepository()}
}

// Register creates a user with a bcrypt-hashed password and returns a
// fresh token. An omitted role defaults to Viewer.
func (s *AuthService) Register(in RegisterInput) (models.User, string, error) {
	if _, err := s.users.FindByEmail(in.Email); err == nil {
		return models.User{}, "", ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, "", err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.User{}, "", err
	}

	role := in.Role
	if role == "" {
		role = rbac.RoleViewer
	}

	user := models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		Role:     role,
	}
	if err := s.users.Create(&user); err != nil {
		return user, "", err
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	return user, token, err
}

// Login checks credentials and returns the user plus a fresh token.
func (s *AuthService) Login(in LoginInput) (models.User, string, error) {
	user, err := s.users.FindByEmail(in.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user, "", ErrInvalidCredentials
	}
	if err != nil {
		return user, "", err
	}

	if !auth.CheckPassword(user.Password, in.Password) {
		return user, "", ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	return user, token, err
}

// Logout blacklists the presented token until it would have expired.
func (s *AuthService) Logout(token string) {
	if token == "" {
		return
	}
	cache.Set(middleware.BlacklistKey(token), true, auth.TokenTTL)
}
