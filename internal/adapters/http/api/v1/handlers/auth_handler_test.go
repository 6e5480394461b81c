package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maksym-Tomusiak/Diploma-API/internal/domain"
	"github.com/Maksym-Tomusiak/Diploma-API/internal/usecase"
	res "github.com/Maksym-Tomusiak/Diploma-API/pkg/http"
)

type stubAuthService struct {
	url          string
	urlErr       error
	user         *domain.User
	tokens       *usecase.Tokens
	callbackErr  error
	refreshErr   error
	lastRedirect string
}

func (s *stubAuthService) AuthorizationURL(redirectURI string) (string, error) {
	s.lastRedirect = redirectURI
	return s.url, s.urlErr
}

func (s *stubAuthService) ProcessCallback(_ context.Context, _, redirectURI string) (*domain.User, *usecase.Tokens, error) {
	s.lastRedirect = redirectURI
	if s.callbackErr != nil {
		return nil, nil, s.callbackErr
	}
	return s.user, s.tokens, nil
}

func (s *stubAuthService) Refresh(context.Context, string) (*usecase.Tokens, error) {
	if s.refreshErr != nil {
		return nil, s.refreshErr
	}
	return s.tokens, nil
}

func (s *stubAuthService) CurrentUser(context.Context, string) (*domain.User, error) {
	return s.user, nil
}

func (s *stubAuthService) RequireAdmin(user *domain.User) (*domain.User, error) {
	return user, nil
}

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLoginBuildsCallbackFromRequest(t *testing.T) {
	svc := &stubAuthService{url: "https://accounts.google.com/o/oauth2/auth?x=1"}
	h := NewAuthHandler(svc, "/api/v1")

	c, rec := newContext(http.MethodGet, "http://api.test/api/v1/auth/login", "")
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://api.test/api/v1/auth/callback", svc.lastRedirect)

	var resp struct {
		AuthorizationURL string `json:"authorization_url"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, svc.url, resp.AuthorizationURL)
}

func TestLoginOAuthDisabled(t *testing.T) {
	svc := &stubAuthService{urlErr: usecase.ErrOAuthDisabled}
	h := NewAuthHandler(svc, "/api/v1")

	c, rec := newContext(http.MethodGet, "http://api.test/api/v1/auth/login", "")
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCallbackMissingCode(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, "/api/v1")

	c, rec := newContext(http.MethodGet, "http://api.test/api/v1/auth/callback", "")
	require.NoError(t, h.Callback(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCallbackReturnsTokenPair(t *testing.T) {
	svc := &stubAuthService{
		user:   &domain.User{ID: 1, Email: "a@x.com", Role: domain.RoleUser},
		tokens: &usecase.Tokens{AccessToken: "at", RefreshToken: "rt", TokenType: "bearer", ExpiresIn: 3600},
	}
	h := NewAuthHandler(svc, "/api/v1")

	c, rec := newContext(http.MethodGet, "http://api.test/api/v1/auth/callback?code=abc", "")
	require.NoError(t, h.Callback(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var tokens usecase.Tokens
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tokens))
	assert.Equal(t, "at", tokens.AccessToken)
	assert.Equal(t, "rt", tokens.RefreshToken)
	assert.Equal(t, int64(3600), tokens.ExpiresIn)
}

func TestCallbackExchangeFailure(t *testing.T) {
	svc := &stubAuthService{callbackErr: usecase.ErrInvalidCredentials}
	h := NewAuthHandler(svc, "/api/v1")

	c, rec := newContext(http.MethodGet, "http://api.test/api/v1/auth/callback?code=used", "")
	require.NoError(t, h.Callback(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var errResp res.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "could not validate credentials", errResp.Error.Message)
}

func TestRefreshInvalidToken(t *testing.T) {
	svc := &stubAuthService{refreshErr: usecase.ErrInvalidCredentials}
	h := NewAuthHandler(svc, "/api/v1")

	c, rec := newContext(http.MethodPost, "http://api.test/api/v1/auth/refresh", `{"refresh_token":"stale"}`)
	require.NoError(t, h.Refresh(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRefreshReturnsNewPair(t *testing.T) {
	svc := &stubAuthService{tokens: &usecase.Tokens{AccessToken: "at2", RefreshToken: "rt2", TokenType: "bearer", ExpiresIn: 3600}}
	h := NewAuthHandler(svc, "/api/v1")

	c, rec := newContext(http.MethodPost, "http://api.test/api/v1/auth/refresh", `{"refresh_token":"rt"}`)
	require.NoError(t, h.Refresh(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var tokens usecase.Tokens
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tokens))
	assert.Equal(t, "at2", tokens.AccessToken)
	assert.Equal(t, "rt2", tokens.RefreshToken)
}
