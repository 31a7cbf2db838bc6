package ports

import (
	"context"

	"github.com/taskdeck/todo-api/internal/core/domain"
)

// UserService defines self-service account operations for an authenticated
// caller. ChangePassword verifies the current password before re-hashing the
// new one and returns domain.ErrInvalidCredentials on mismatch.
type UserService interface {
	Profile(ctx context.Context, userID string) (*domain.User, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	ChangePhoneNumber(ctx context.Context, userID, phoneNumber string) error
}
