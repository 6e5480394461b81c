package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Maksym-Tomusiak/Diploma-API/internal/adapters/http/middleware"
	"github.com/Maksym-Tomusiak/Diploma-API/internal/usecase"
	res "github.com/Maksym-Tomusiak/Diploma-API/pkg/http"
)

type UserHandler struct {
	service usecase.UserService
}

func NewUserHandler(service usecase.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) GetAll(c echo.Context) error {
	users, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return res.JSON(c, http.StatusOK, users)
}

func (h *UserHandler) Me(c echo.Context) error {
	return res.JSON(c, http.StatusOK, middleware.CurrentUser(c))
}

// Get returns a user profile. Non-admins may only read their own record.
func (h *UserHandler) Get(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	current := middleware.CurrentUser(c)
	if !current.IsAdmin() && current.ID != userID {
		return respondError(c, fmt.Errorf("%w: not your profile", usecase.ErrForbidden))
	}
	user, err := h.service.Get(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return res.JSON(c, http.StatusOK, user)
}

func (h *UserHandler) Delete(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	user, err := h.service.Delete(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return res.JSON(c, http.StatusOK, user)
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s", usecase.ErrValidation, name)
	}
	return id, nil
}
