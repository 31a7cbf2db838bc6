package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/taskdeck/todo-api/internal/core/domain"
	"github.com/taskdeck/todo-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs
// ---------------------------------------------------------------------------

type stubTodoRepo struct {
	todos  map[string]*domain.Todo
	nextID int
}

func newStubTodoRepo() *stubTodoRepo {
	return &stubTodoRepo{todos: make(map[string]*domain.Todo)}
}

func (r *stubTodoRepo) Create(_ context.Context, todo *domain.Todo) (*domain.Todo, error) {
	clone := *todo
	r.nextID++
	clone.ID = fmt.Sprintf("todo_%d", r.nextID)
	r.todos[clone.ID] = &clone
	out := clone
	return &out, nil
}

// FindByID mirrors the real Mongo query: the owner filter is part of the
// lookup, so a foreign todo is simply not found.
func (r *stubTodoRepo) FindByID(_ context.Context, id, ownerID string) (*domain.Todo, error) {
	t, ok := r.todos[id]
	if !ok || t.OwnerID != ownerID {
		return nil, domain.ErrTodoNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *stubTodoRepo) ListByOwner(_ context.Context, ownerID string) ([]*domain.Todo, error) {
	var out []*domain.Todo
	for _, t := range r.todos {
		if t.OwnerID == ownerID {
			clone := *t
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubTodoRepo) Update(_ context.Context, todo *domain.Todo) error {
	t, ok := r.todos[todo.ID]
	if !ok || t.OwnerID != todo.OwnerID {
		return domain.ErrTodoNotFound
	}
	clone := *todo
	r.todos[todo.ID] = &clone
	return nil
}

func (r *stubTodoRepo) Delete(_ context.Context, id, ownerID string) error {
	t, ok := r.todos[id]
	if !ok || t.OwnerID != ownerID {
		return domain.ErrTodoNotFound
	}
	delete(r.todos, id)
	return nil
}

type stubTodoCache struct {
	lists       map[string][]*domain.Todo
	invalidated int
	getErr      error
}

func newStubTodoCache() *stubTodoCache {
	return &stubTodoCache{lists: make(map[string][]*domain.Todo)}
}

func (c *stubTodoCache) GetList(_ context.Context, ownerID string) ([]*domain.Todo, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.lists[ownerID], nil
}

func (c *stubTodoCache) SetList(_ context.Context, ownerID string, todos []*domain.Todo) error {
	c.lists[ownerID] = todos
	return nil
}

func (c *stubTodoCache) Invalidate(_ context.Context, ownerID string) error {
	c.invalidated++
	delete(c.lists, ownerID)
	return nil
}

func newTestTodoService() (*TodoService, *stubTodoRepo, *stubTodoCache) {
	repo := newStubTodoRepo()
	cache := newStubTodoCache()
	return NewTodoService(repo, cache, zerolog.Nop()), repo, cache
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestTodoService_CreateAndGet(t *testing.T) {
	svc, _, cache := newTestTodoService()

	created, err := svc.Create(context.Background(), ports.TodoInput{
		Title: "buy milk", Description: "two liters", Priority: 3, OwnerID: "user_1",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if cache.invalidated == 0 {
		t.Fatalf("expected cache invalidation on create")
	}

	got, err := svc.Get(context.Background(), created.ID, "user_1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Title != "buy milk" || got.OwnerID != "user_1" {
		t.Fatalf("unexpected todo: %+v", got)
	}
}

func TestTodoService_Get_OtherOwnerIsNotFound(t *testing.T) {
	svc, _, _ := newTestTodoService()

	created, err := svc.Create(context.Background(), ports.TodoInput{
		Title: "alice's task", Description: "private", Priority: 1, OwnerID: "user_1",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := svc.Get(context.Background(), created.ID, "user_2"); !errors.Is(err, domain.ErrTodoNotFound) {
		t.Fatalf("expected ErrTodoNotFound for foreign owner, got %v", err)
	}
}

func TestTodoService_List_UsesCache(t *testing.T) {
	svc, repo, cache := newTestTodoService()

	if _, err := svc.Create(context.Background(), ports.TodoInput{Title: "a", Description: "aa", Priority: 1, OwnerID: "user_1"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	// First read populates the cache from the repository.
	first, err := svc.List(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("expected 1 todo, got %d", len(first))
	}
	if cache.lists["user_1"] == nil {
		t.Fatalf("expected cache to be populated")
	}

	// Mutate the repo behind the cache; a second read must serve the cached list.
	repo.todos = map[string]*domain.Todo{}
	second, err := svc.List(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(second) != 1 {
		t.Fatalf("expected cached list, got %d todos", len(second))
	}
}

func TestTodoService_List_CacheFailureDegrades(t *testing.T) {
	svc, _, cache := newTestTodoService()
	cache.getErr = errors.New("redis down")

	if _, err := svc.Create(context.Background(), ports.TodoInput{Title: "a", Description: "aa", Priority: 1, OwnerID: "user_1"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	todos, err := svc.List(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("List should degrade to repo read, got error: %v", err)
	}
	if len(todos) != 1 {
		t.Fatalf("expected 1 todo, got %d", len(todos))
	}
}

func TestTodoService_Update_Ownership(t *testing.T) {
	svc, _, _ := newTestTodoService()

	created, _ := svc.Create(context.Background(), ports.TodoInput{Title: "a", Description: "aa", Priority: 1, OwnerID: "user_1"})

	err := svc.Update(context.Background(), ports.TodoInput{
		ID: created.ID, Title: "b", Description: "bb", Priority: 2, Complete: true, OwnerID: "user_1",
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	got, _ := svc.Get(context.Background(), created.ID, "user_1")
	if got.Title != "b" || !got.Complete {
		t.Fatalf("update not applied: %+v", got)
	}

	err = svc.Update(context.Background(), ports.TodoInput{
		ID: created.ID, Title: "x", Description: "xx", Priority: 1, OwnerID: "user_2",
	})
	if !errors.Is(err, domain.ErrTodoNotFound) {
		t.Fatalf("expected ErrTodoNotFound for foreign owner, got %v", err)
	}
}

func TestTodoService_Delete_Ownership(t *testing.T) {
	svc, _, cache := newTestTodoService()

	created, _ := svc.Create(context.Background(), ports.TodoInput{Title: "a", Description: "aa", Priority: 1, OwnerID: "user_1"})

	if err := svc.Delete(context.Background(), created.ID, "user_2"); !errors.Is(err, domain.ErrTodoNotFound) {
		t.Fatalf("expected ErrTodoNotFound for foreign owner, got %v", err)
	}

	before := cache.invalidated
	if err := svc.Delete(context.Background(), created.ID, "user_1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if cache.invalidated != before+1 {
		t.Fatalf("expected cache invalidation on delete")
	}

	if _, err := svc.Get(context.Background(), created.ID, "user_1"); !errors.Is(err, domain.ErrTodoNotFound) {
		t.Fatalf("expected todo to be gone, got %v", err)
	}
}
