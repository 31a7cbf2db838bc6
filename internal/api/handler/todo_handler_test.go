package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/taskdeck/todo-api/internal/core/domain"
	"github.com/taskdeck/todo-api/internal/core/ports"
)

// stubTodoService serves from a fixed set of todos and applies the same
// owner filter the real service does.
type stubTodoService struct {
	todos   map[string]*domain.Todo
	created []ports.TodoInput
}

func newStubTodoService(todos ...*domain.Todo) *stubTodoService {
	s := &stubTodoService{todos: make(map[string]*domain.Todo)}
	for _, todo := range todos {
		s.todos[todo.ID] = todo
	}
	return s
}

func (s *stubTodoService) Create(_ context.Context, in ports.TodoInput) (*domain.Todo, error) {
	s.created = append(s.created, in)
	return &domain.Todo{
		ID:          "t-new",
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
		Complete:    in.Complete,
		OwnerID:     in.OwnerID,
	}, nil
}

func (s *stubTodoService) Get(_ context.Context, id, ownerID string) (*domain.Todo, error) {
	todo, ok := s.todos[id]
	if !ok || todo.OwnerID != ownerID {
		return nil, domain.ErrTodoNotFound
	}
	return todo, nil
}

func (s *stubTodoService) List(_ context.Context, ownerID string) ([]*domain.Todo, error) {
	var out []*domain.Todo
	for _, todo := range s.todos {
		if todo.OwnerID == ownerID {
			out = append(out, todo)
		}
	}
	return out, nil
}

func (s *stubTodoService) Update(_ context.Context, in ports.TodoInput) error {
	todo, ok := s.todos[in.ID]
	if !ok || todo.OwnerID != in.OwnerID {
		return domain.ErrTodoNotFound
	}
	todo.Title = in.Title
	todo.Description = in.Description
	todo.Priority = in.Priority
	todo.Complete = in.Complete
	return nil
}

func (s *stubTodoService) Delete(_ context.Context, id, ownerID string) error {
	todo, ok := s.todos[id]
	if !ok || todo.OwnerID != ownerID {
		return domain.ErrTodoNotFound
	}
	delete(s.todos, id)
	return nil
}

func authedContext(t *testing.T, method, path, body string, ident *domain.Identity) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	c, rec := newJSONContext(t, method, path, body)
	if ident != nil {
		c.Set("identity", ident)
	}
	return c, rec
}

var aliceIdent = &domain.Identity{UserID: "u1", Username: "alice", Role: "user"}

func fixtureTodo() *domain.Todo {
	return &domain.Todo{
		ID:          "t1",
		Title:       "water the plants",
		Description: "the ones on the balcony",
		Priority:    2,
		OwnerID:     "u1",
	}
}

func TestGetTodoOwned(t *testing.T) {
	h := NewTodoHandler(newStubTodoService(fixtureTodo()))

	c, rec := authedContext(t, http.MethodGet, "/todo/t1", "", aliceIdent)
	c.SetParamNames("id")
	c.SetParamValues("t1")

	if err := h.Get(c); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp todoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.ID != "t1" || resp.Title != "water the plants" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

// A todo owned by someone else must look exactly like a missing todo.
func TestGetTodoForeignOwner(t *testing.T) {
	h := NewTodoHandler(newStubTodoService(fixtureTodo()))

	bob := &domain.Identity{UserID: "u2", Username: "bob", Role: "user"}
	c, _ := authedContext(t, http.MethodGet, "/todo/t1", "", bob)
	c.SetParamNames("id")
	c.SetParamValues("t1")

	if err := h.Get(c); !errors.Is(err, domain.ErrTodoNotFound) {
		t.Fatalf("expected ErrTodoNotFound, got %v", err)
	}
}

func TestGetTodoWithoutIdentity(t *testing.T) {
	h := NewTodoHandler(newStubTodoService())

	c, _ := authedContext(t, http.MethodGet, "/todo/t1", "", nil)
	err := h.Get(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestListTodosScopedToCaller(t *testing.T) {
	other := &domain.Todo{ID: "t2", Title: "someone else's", Description: "x", Priority: 1, OwnerID: "u2"}
	h := NewTodoHandler(newStubTodoService(fixtureTodo(), other))

	c, rec := authedContext(t, http.MethodGet, "/todos", "", aliceIdent)
	if err := h.List(c); err != nil {
		t.Fatalf("List: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp []todoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp) != 1 || resp[0].ID != "t1" {
		t.Errorf("expected only t1, got %+v", resp)
	}
}

func TestCreateTodoStampsOwner(t *testing.T) {
	svc := newStubTodoService()
	h := NewTodoHandler(svc)

	body := `{"title": "buy milk", "description": "two liters", "priority": 3}`
	c, rec := authedContext(t, http.MethodPost, "/create-todo", body, aliceIdent)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if len(svc.created) != 1 || svc.created[0].OwnerID != "u1" {
		t.Errorf("owner not taken from identity: %+v", svc.created)
	}
}

func TestCreateTodoRejectsPriorityOutOfRange(t *testing.T) {
	h := NewTodoHandler(newStubTodoService())

	body := `{"title": "buy milk", "description": "two liters", "priority": 6}`
	c, _ := authedContext(t, http.MethodPost, "/create-todo", body, aliceIdent)
	err := h.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError, got %v", err)
	}
}

func TestUpdateTodoNoContent(t *testing.T) {
	h := NewTodoHandler(newStubTodoService(fixtureTodo()))

	body := `{"title": "water the plants", "description": "done already", "priority": 1, "complete": true}`
	c, rec := authedContext(t, http.MethodPut, "/edit-todo/t1", body, aliceIdent)
	c.SetParamNames("id")
	c.SetParamValues("t1")

	if err := h.Update(c); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
}

func TestUpdateTodoForeignOwner(t *testing.T) {
	h := NewTodoHandler(newStubTodoService(fixtureTodo()))

	bob := &domain.Identity{UserID: "u2", Username: "bob", Role: "user"}
	body := `{"title": "hijack", "description": "not yours", "priority": 1}`
	c, _ := authedContext(t, http.MethodPut, "/edit-todo/t1", body, bob)
	c.SetParamNames("id")
	c.SetParamValues("t1")

	if err := h.Update(c); !errors.Is(err, domain.ErrTodoNotFound) {
		t.Fatalf("expected ErrTodoNotFound, got %v", err)
	}
}

func TestDeleteTodoNoContent(t *testing.T) {
	svc := newStubTodoService(fixtureTodo())
	h := NewTodoHandler(svc)

	admin := &domain.Identity{UserID: "u1", Username: "alice", Role: domain.RoleAdmin}
	c, rec := authedContext(t, http.MethodDelete, "/delete-todo/t1", "", admin)
	c.SetParamNames("id")
	c.SetParamValues("t1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if _, ok := svc.todos["t1"]; ok {
		t.Error("todo still present after delete")
	}
}
