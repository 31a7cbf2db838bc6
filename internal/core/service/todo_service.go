package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/taskdeck/todo-api/internal/core/domain"
	"github.com/taskdeck/todo-api/internal/core/ports"
)

// TodoCache abstracts the per-owner list cache (Redis). A miss is (nil, nil).
type TodoCache interface {
	GetList(ctx context.Context, ownerID string) ([]*domain.Todo, error)
	SetList(ctx context.Context, ownerID string, todos []*domain.Todo) error
	Invalidate(ctx context.Context, ownerID string) error
}

// TodoService implements owner-scoped todo CRUD. Ownership is enforced by
// the repository queries themselves, not checked after the fact.
type TodoService struct {
	repo  ports.TodoRepository
	cache TodoCache
	log   zerolog.Logger
}

func NewTodoService(repo ports.TodoRepository, cache TodoCache, log zerolog.Logger) *TodoService {
	return &TodoService{repo: repo, cache: cache, log: log}
}

func (s *TodoService) Create(ctx context.Context, in ports.TodoInput) (*domain.Todo, error) {
	todo := &domain.Todo{
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
		Complete:    in.Complete,
		OwnerID:     in.OwnerID,
	}

	created, err := s.repo.Create(ctx, todo)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create todo")
		return nil, err
	}

	s.invalidate(ctx, in.OwnerID)
	s.log.Info().Str("todo_id", created.ID).Str("owner_id", in.OwnerID).Msg("todo created")
	return created, nil
}

func (s *TodoService) Get(ctx context.Context, id, ownerID string) (*domain.Todo, error) {
	return s.repo.FindByID(ctx, id, ownerID)
}

// List returns the caller's todos, serving from the cache when possible.
// Cache failures degrade to a repository read.
func (s *TodoService) List(ctx context.Context, ownerID string) ([]*domain.Todo, error) {
	cached, err := s.cache.GetList(ctx, ownerID)
	if err != nil {
		s.log.Warn().Err(err).Str("owner_id", ownerID).Msg("todo cache read failed")
	} else if cached != nil {
		return cached, nil
	}

	todos, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetList(ctx, ownerID, todos); err != nil {
		s.log.Warn().Err(err).Str("owner_id", ownerID).Msg("todo cache write failed")
	}
	return todos, nil
}

func (s *TodoService) Update(ctx context.Context, in ports.TodoInput) error {
	todo := &domain.Todo{
		ID:          in.ID,
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
		Complete:    in.Complete,
		OwnerID:     in.OwnerID,
	}

	if err := s.repo.Update(ctx, todo); err != nil {
		return err
	}

	s.invalidate(ctx, in.OwnerID)
	return nil
}

func (s *TodoService) Delete(ctx context.Context, id, ownerID string) error {
	if err := s.repo.Delete(ctx, id, ownerID); err != nil {
		return err
	}

	s.invalidate(ctx, ownerID)
	s.log.Info().Str("todo_id", id).Str("owner_id", ownerID).Msg("todo deleted")
	return nil
}

func (s *TodoService) invalidate(ctx context.Context, ownerID string) {
	if err := s.cache.Invalidate(ctx, ownerID); err != nil {
		s.log.Warn().Err(err).Str("owner_id", ownerID).Msg("todo cache invalidation failed")
	}
}
