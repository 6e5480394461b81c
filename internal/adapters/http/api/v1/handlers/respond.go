package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Maksym-Tomusiak/Diploma-API/internal/usecase"
	res "github.com/Maksym-Tomusiak/Diploma-API/pkg/http"
)

// respondError maps the usecase error kinds to HTTP statuses. Credential
// failures always produce the same body regardless of what went wrong with
// the token.
func respondError(c echo.Context, err error) error {
	reqID := requestIDFromCtx(c)
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return res.ErrorJSON(c, http.StatusBadRequest, "bad_request", err.Error(), reqID)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return res.ErrorJSON(c, http.StatusUnauthorized, "unauthorized", "could not validate credentials", reqID)
	case errors.Is(err, usecase.ErrForbidden):
		return res.ErrorJSON(c, http.StatusForbidden, "access_denied", err.Error(), reqID)
	case errors.Is(err, usecase.ErrNotFound):
		return res.ErrorJSON(c, http.StatusNotFound, "not_found", err.Error(), reqID)
	case errors.Is(err, usecase.ErrConflict):
		return res.ErrorJSON(c, http.StatusConflict, "conflict", err.Error(), reqID)
	case errors.Is(err, usecase.ErrOAuthDisabled):
		return res.ErrorJSON(c, http.StatusServiceUnavailable, "oauth_disabled", "google login is not configured", reqID)
	default:
		return res.ErrorJSON(c, http.StatusInternalServerError, "internal_error", "internal error", reqID)
	}
}

func requestIDFromCtx(c echo.Context) string {
	if reqID := c.Response().Header().Get(echo.HeaderXRequestID); reqID != "" {
		return reqID
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}
