package ports

import (
	"context"

	"github.com/taskdeck/todo-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Username and email are unique by index; Create returns
// domain.ErrUserExists when either collides.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	UpdatePhoneNumber(ctx context.Context, id, phoneNumber string) error
}
