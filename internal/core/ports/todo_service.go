package ports

import (
	"context"

	"github.com/taskdeck/todo-api/internal/core/domain"
)

// TodoInput carries the mutable attributes of a todo plus the owner the
// operation is scoped to. For updates, ID names the target item.
type TodoInput struct {
	ID          string
	Title       string
	Description string
	Priority    int
	Complete    bool
	OwnerID     string
}

// TodoService defines owner-scoped use-case operations for todos.
type TodoService interface {
	Create(ctx context.Context, in TodoInput) (*domain.Todo, error)
	Get(ctx context.Context, id, ownerID string) (*domain.Todo, error)
	List(ctx context.Context, ownerID string) ([]*domain.Todo, error)
	Update(ctx context.Context, in TodoInput) error
	Delete(ctx context.Context, id, ownerID string) error
}
