package ports

import (
	"context"

	"github.com/taskdeck/todo-api/internal/core/domain"
)

// TodoRepository defines persistence operations for todo items.
// Every lookup and mutation takes the caller's user id and filters the query
// by owner_id; a todo owned by someone else surfaces as domain.ErrTodoNotFound.
type TodoRepository interface {
	Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error)
	FindByID(ctx context.Context, id, ownerID string) (*domain.Todo, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Todo, error)
	Update(ctx context.Context, todo *domain.Todo) error
	Delete(ctx context.Context, id, ownerID string) error
}
