package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskdeck/todo-api/internal/core/domain"
	"github.com/taskdeck/todo-api/internal/core/ports"
)

// UserHandler handles self-service account operations for the caller
// resolved by the Auth middleware.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Me returns the caller's own profile.
//
// @Summary      Get the authenticated user's profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Router       /get-user [get]
func (h *UserHandler) Me(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.userService.Profile(c.Request().Context(), ident.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// ChangePassword verifies the current password and stores a new one.
//
// @Summary      Change the authenticated user's password
// @Tags         users
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  changePasswordRequest  true  "Current and new password"
// @Success      200
// @Failure      401  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /update-password [put]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	err = h.userService.ChangePassword(c.Request().Context(), ident.UserID, req.Password, req.NewPassword)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
		}
		return err
	}
	return c.NoContent(http.StatusOK)
}

// ChangePhoneNumber updates the caller's contact phone.
//
// @Summary      Update the authenticated user's phone number
// @Tags         users
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  changePhoneNumberRequest  true  "New phone number"
// @Success      200
// @Failure      401  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /update-phone-number [put]
func (h *UserHandler) ChangePhoneNumber(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req changePhoneNumberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.userService.ChangePhoneNumber(c.Request().Context(), ident.UserID, req.PhoneNumber); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}
