package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Maksym-Tomusiak/Diploma-API/internal/domain"
	"github.com/Maksym-Tomusiak/Diploma-API/internal/usecase"
	res "github.com/Maksym-Tomusiak/Diploma-API/pkg/http"
)

const userContextKey = "current_user"

// AuthMiddleware authenticates requests from a bearer access token. The token
// subject is re-resolved against the user directory on every request, so role
// and email always reflect current directory state rather than token claims.
type AuthMiddleware struct {
	auth usecase.AuthService
}

func NewAuthMiddleware(auth usecase.AuthService) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

func (m *AuthMiddleware) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authz := c.Request().Header.Get(echo.HeaderAuthorization)
		parts := strings.SplitN(authz, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return res.ErrorJSON(c, http.StatusUnauthorized, "unauthorized", "missing bearer token", requestIDFromCtx(c))
		}
		user, err := m.auth.CurrentUser(c.Request().Context(), parts[1])
		if err != nil {
			return res.ErrorJSON(c, http.StatusUnauthorized, "unauthorized", "could not validate credentials", requestIDFromCtx(c))
		}
		c.Set(userContextKey, user)
		return next(c)
	}
}

// RequireAdmin must be chained after RequireUser.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := m.auth.RequireAdmin(CurrentUser(c)); err != nil {
			return res.ErrorJSON(c, http.StatusForbidden, "access_denied", "admin access required", requestIDFromCtx(c))
		}
		return next(c)
	}
}

// CurrentUser returns the authenticated user stored by RequireUser, or nil.
func CurrentUser(c echo.Context) *domain.User {
	user, _ := c.Get(userContextKey).(*domain.User)
	return user
}

func requestIDFromCtx(c echo.Context) string {
	if reqID := c.Response().Header().Get(echo.HeaderXRequestID); reqID != "" {
		return reqID
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}
