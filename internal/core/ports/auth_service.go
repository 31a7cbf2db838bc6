package ports

import (
	"context"

	"github.com/taskdeck/todo-api/internal/core/domain"
)

// RegisterInput carries everything needed to create an account.
type RegisterInput struct {
	Email       string
	Username    string
	FirstName   string
	LastName    string
	Password    string
	Role        string
	PhoneNumber string
}

// AuthService implements registration and credential exchange.
//
// Authenticate distinguishes domain.ErrUserNotFound from
// domain.ErrInvalidCredentials so the outcomes are testable; the HTTP layer
// presents both identically to avoid leaking which usernames exist.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
