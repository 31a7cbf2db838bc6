package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskdeck/todo-api/internal/api/metrics"
	"github.com/taskdeck/todo-api/internal/core/domain"
	"github.com/taskdeck/todo-api/internal/core/ports"
)

// TodoHandler handles todo CRUD. Every operation is scoped to the caller's
// identity; ownership is enforced by the service's queries, so a foreign todo
// comes back as domain.ErrTodoNotFound and renders as 404.
type TodoHandler struct {
	todoService ports.TodoService
}

func NewTodoHandler(todoService ports.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

// Get handles GET /todo/:id.
//
// @Summary      Get a todo by id
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Todo id"
// @Success      200  {object}  todoResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /todo/{id} [get]
func (h *TodoHandler) Get(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	todo, err := h.todoService.Get(c.Request().Context(), c.Param("id"), ident.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTodoResponse(todo))
}

// List handles GET /todos — all of the caller's todos.
//
// @Summary      List the caller's todos
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   todoResponse
// @Failure      401  {object}  errorResponse
// @Router       /todos [get]
func (h *TodoHandler) List(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	todos, err := h.todoService.List(c.Request().Context(), ident.UserID)
	if err != nil {
		return err
	}

	out := make([]todoResponse, len(todos))
	for i, t := range todos {
		out[i] = toTodoResponse(t)
	}
	return c.JSON(http.StatusOK, out)
}

// Create handles POST /create-todo.
//
// @Summary      Create a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      todoRequest  true  "Todo details"
// @Success      201   {object}  todoResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /create-todo [post]
func (h *TodoHandler) Create(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req todoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	todo, err := h.todoService.Create(c.Request().Context(), ports.TodoInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Complete:    req.Complete,
		OwnerID:     ident.UserID,
	})
	if err != nil {
		return err
	}

	metrics.TodosCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toTodoResponse(todo))
}

// Update handles PUT /edit-todo/:id.
//
// @Summary      Update a todo
// @Tags         todos
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  string       true  "Todo id"
// @Param        body  body  todoRequest  true  "Todo details"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /edit-todo/{id} [put]
func (h *TodoHandler) Update(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req todoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	err = h.todoService.Update(c.Request().Context(), ports.TodoInput{
		ID:          c.Param("id"),
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Complete:    req.Complete,
		OwnerID:     ident.UserID,
	})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /delete-todo/:id. The route carries RequireRole
// ("admin"), so by the time this runs the caller is an authenticated admin;
// the owner filter still applies.
//
// @Summary      Delete a todo (admin only)
// @Tags         todos
// @Security     BearerAuth
// @Param        id  path  string  true  "Todo id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /delete-todo/{id} [delete]
func (h *TodoHandler) Delete(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.todoService.Delete(c.Request().Context(), c.Param("id"), ident.UserID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toTodoResponse(t *domain.Todo) todoResponse {
	return todoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Complete:    t.Complete,
	}
}
