package ports

import (
	"context"

	"github.com/comanda/ordering-system/internal/core/domain"
)

// CreateUserInput carries the data needed to register a new account.
// Role is not caller-controlled; every new account starts as standard.
type CreateUserInput struct {
	Username    string
	Password    string
	DateOfBirth *string
}

// UpdateUserInput is a partial update: nil fields are left untouched.
type UpdateUserInput struct {
	Username    *string
	Password    *string
	DateOfBirth *string
}

// UserService defines use-case operations for user accounts.
type UserService interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	GetUser(ctx context.Context, id uint) (*domain.User, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, id uint, input UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id uint) error
}
