package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskdeck/todo-api/internal/core/domain"
	"github.com/taskdeck/todo-api/internal/core/ports"
)

// PageHandler renders the server-side HTML pages. Identity resolution for
// these routes runs in the PageAuth middleware, which redirects to the login
// page instead of returning errors to the browser.
type PageHandler struct {
	todoService ports.TodoService
}

func NewPageHandler(todoService ports.TodoService) *PageHandler {
	return &PageHandler{todoService: todoService}
}

// Home redirects / to the todo page.
func (h *PageHandler) Home(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/todo-page")
}

// LoginPage renders the login form.
func (h *PageHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", nil)
}

// RegisterPage renders the registration form.
func (h *PageHandler) RegisterPage(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", nil)
}

// TodoPage renders the caller's todo list.
func (h *PageHandler) TodoPage(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	todos, err := h.todoService.List(c.Request().Context(), ident.UserID)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "todo.html", map[string]any{
		"User":  ident,
		"Todos": todos,
	})
}

// AddTodoPage renders the new-todo form.
func (h *PageHandler) AddTodoPage(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "add-todo.html", map[string]any{
		"User": ident,
	})
}

// EditTodoPage renders the edit form for one of the caller's todos. A todo
// that is absent or owned by someone else bounces back to the list.
func (h *PageHandler) EditTodoPage(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	todo, err := h.todoService.Get(c.Request().Context(), c.Param("id"), ident.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrTodoNotFound) {
			return c.Redirect(http.StatusFound, "/todo-page")
		}
		return err
	}

	return c.Render(http.StatusOK, "edit-todo.html", map[string]any{
		"User": ident,
		"Todo": todo,
	})
}
