package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Maksym-Tomusiak/Diploma-API/internal/adapters/http/middleware"
	"github.com/Maksym-Tomusiak/Diploma-API/internal/usecase"
	res "github.com/Maksym-Tomusiak/Diploma-API/pkg/http"
)

type AuthHandler struct {
	service  usecase.AuthService
	basePath string
}

func NewAuthHandler(service usecase.AuthService, basePath string) *AuthHandler {
	return &AuthHandler{service: service, basePath: basePath}
}

type authURLResponse struct {
	AuthorizationURL string `json:"authorization_url"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Login returns the Google consent-screen URL. The callback URL is derived
// from the incoming request so the exchange later binds to the same URI.
func (h *AuthHandler) Login(c echo.Context) error {
	url, err := h.service.AuthorizationURL(h.callbackURL(c))
	if err != nil {
		return respondError(c, err)
	}
	return res.JSON(c, http.StatusOK, authURLResponse{AuthorizationURL: url})
}

// Callback exchanges the authorization code and returns a fresh token pair.
func (h *AuthHandler) Callback(c echo.Context) error {
	code := c.QueryParam("code")
	if code == "" {
		return respondError(c, fmt.Errorf("%w: code query parameter is required", usecase.ErrValidation))
	}
	_, tokens, err := h.service.ProcessCallback(c.Request().Context(), code, h.callbackURL(c))
	if err != nil {
		return respondError(c, err)
	}
	return res.JSON(c, http.StatusOK, tokens)
}

func (h *AuthHandler) Refresh(c echo.Context) error {
	req := new(refreshRequest)
	if err := c.Bind(req); err != nil {
		return respondError(c, fmt.Errorf("%w: invalid payload", usecase.ErrValidation))
	}
	tokens, err := h.service.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return respondError(c, err)
	}
	return res.JSON(c, http.StatusOK, tokens)
}

func (h *AuthHandler) Me(c echo.Context) error {
	return res.JSON(c, http.StatusOK, middleware.CurrentUser(c))
}

// Logout exists for client symmetry only; tokens are stateless and remain
// valid until expiry, the client just discards them.
func (h *AuthHandler) Logout(c echo.Context) error {
	return res.JSON(c, http.StatusOK, map[string]string{"message": "successfully logged out"})
}

func (h *AuthHandler) callbackURL(c echo.Context) string {
	return fmt.Sprintf("%s://%s%s/auth/callback", c.Scheme(), c.Request().Host, h.basePath)
}
