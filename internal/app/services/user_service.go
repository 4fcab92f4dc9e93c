package services

import (
	"context"

	"github.com/ravenlog/ravenlog/internal/app/models"
)

type userAdminStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
	SetActive(ctx context.Context, userID int64, active bool) error
}

// UserService covers administrative account operations
type UserService struct {
	users userAdminStore
}

// NewUserService creates a new user service
func NewUserService(users userAdminStore) *UserService {
	return &UserService{users: users}
}

// GetUser retrieves an account
func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

// ListUsers returns accounts with pagination
func (s *UserService) ListUsers(ctx context.Context, offset, limit int) ([]*models.User, int64, error) {
	return s.users.List(ctx, offset, limit)
}

// SetActive enables or disables an account. Disabled accounts cannot log
// in or refresh tokens.
func (s *UserService) SetActive(ctx context.Context, id int64, active bool) error {
	return s.users.SetActive(ctx, id, active)
}
