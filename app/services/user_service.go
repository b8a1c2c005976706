package services

import (
	"errors"

	"github.com/shashiranjanraj/stockwise/app/models"
	"github.com/shashiranjanraj/stockwise/app/repositories"
	"github.com/shashiranjanraj/stockwise/pkg/auth"
	"github.com/shashiranjanraj/stockwise/pkg/orm"
	"gorm.io/gorm"
)

// UserInput is the request body for admin user create/update. Password is
// optional on update; leaving it empty keeps the current hash.
type UserInput struct {
	Name     string `json:"name"     validate:"required,max=255"`
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"nullable,min=8"`
	Role     string `json:"role"     validate:"required,in=Admin,Manager,Stock Keeper,Viewer"`
}

// UserService implements admin-side user management.
type UserService struct {
	repo *repositories.UserRepository
}

func NewUserService() *UserService {
	return &UserService{repo: repositories.NewUserRepository()}
}

// List returns one page of users matching the search filter.
func (s *UserService) List(search string, page, perPage int) ([]models.User, orm.Pagination, error) {
	return s.repo.Search(search, page, perPage)
}

// Get returns a single user by id.
func (s *UserService) Get(id uint) (models.User, error) {
	user, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user, ErrNotFound
	}
	return user, err
}

// Create persists a new user from validated input. Password is required
// here even though the input tag allows empty, because there is no
// existing hash to fall back on.
func (s *UserService) Create(in UserInput) (models.User, error) {
	if in.Password == "" {
		return models.User{}, ErrInvalidCredentials
	}
	if _, err := s.repo.FindByEmail(in.Email); err == nil {
		return models.User{}, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		Role:     in.Role,
	}
	err = s.repo.Create(&user)
	return user, err
}

// Update applies validated input to an existing user.
func (s *UserService) Update(id uint, in UserInput) (models.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return user, err
	}

	user.Name = in.Name
	user.Email = in.Email
	user.Role = in.Role
	if in.Password != "" {
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return user, err
		}
		user.Password = hash
	}

	err = s.repo.Update(&user)
	return user, err
}

// Delete removes a user by id.
func (s *UserService) Delete(id uint) error {
	user, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(&user)
}
