package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/Maksym-Tomusiak/Diploma-API/config"
	"github.com/Maksym-Tomusiak/Diploma-API/internal/adapters/google"
	repo "github.com/Maksym-Tomusiak/Diploma-API/internal/adapters/postgres"
	"github.com/Maksym-Tomusiak/Diploma-API/internal/domain"
	pkglog "github.com/Maksym-Tomusiak/Diploma-API/pkg/log"
)

type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

type AuthService interface {
	AuthorizationURL(redirectURI string) (string, error)
	ProcessCallback(ctx context.Context, code, redirectURI string) (*domain.User, *Tokens, error)
	Refresh(ctx context.Context, refreshToken string) (*Tokens, error)
	CurrentUser(ctx context.Context, accessToken string) (*domain.User, error)
	RequireAdmin(user *domain.User) (*domain.User, error)
}

type authService struct {
	cfg    *config.Config
	logger pkglog.Logger
	users  repo.UserRepository
	google google.Client
	codec  *TokenCodec
}

func NewAuthService(cfg *config.Config, logger pkglog.Logger, users repo.UserRepository, googleClient google.Client, codec *TokenCodec) AuthService {
	return &authService{cfg: cfg, logger: logger, users: users, google: googleClient, codec: codec}
}

func (s *authService) AuthorizationURL(redirectURI string) (string, error) {
	if !s.cfg.OAuthEnabled() {
		return "", ErrOAuthDisabled
	}
	if u, err := url.Parse(redirectURI); err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: malformed redirect uri", ErrValidation)
	}
	return s.google.AuthCodeURL(redirectURI), nil
}

func (s *authService) ProcessCallback(ctx context.Context, code, redirectURI string) (*domain.User, *Tokens, error) {
	if !s.cfg.OAuthEnabled() {
		return nil, nil, ErrOAuthDisabled
	}
	creds, err := s.google.Exchange(ctx, code, redirectURI)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: code exchange failed", ErrInvalidCredentials)
	}
	email, err := s.google.FetchEmail(ctx, creds)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: userinfo fetch failed", ErrInvalidCredentials)
	}
	if email == "" {
		return nil, nil, fmt.Errorf("%w: provider returned no email", ErrInvalidCredentials)
	}

	user, err := s.saveProviderTokens(ctx, email, creds)
	if err != nil {
		return nil, nil, err
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	s.logger.Info().Int64("user_id", user.ID).Msg("oauth callback processed")
	return user, tokens, nil
}

// saveProviderTokens finds or creates the user and stores the provider tokens
// in one transaction. A previously stored refresh token survives exchanges on
// which Google omits one. A lost insert race on a concurrent first login for
// the same email is resolved by retrying against the now-existing row.
func (s *authService) saveProviderTokens(ctx context.Context, email string, creds *google.Credentials) (*domain.User, error) {
	var user *domain.User
	apply := func() error {
		return s.users.Transaction(ctx, func(tx repo.UserRepository) error {
			u, err := tx.FindByEmail(ctx, email)
			if errors.Is(err, repo.ErrNotFound) {
				u = &domain.User{Email: email, Role: domain.RoleUser}
				if err := tx.Create(ctx, u); err != nil {
					return err
				}
				s.logger.Info().Str("email", email).Msg("user created")
			} else if err != nil {
				return err
			}
			u.GoogleToken = &creds.AccessToken
			if creds.RefreshToken != "" {
				refresh := creds.RefreshToken
				u.GoogleRefreshToken = &refresh
			}
			if err := tx.Update(ctx, u); err != nil {
				return err
			}
			user = u
			return nil
		})
	}
	err := apply()
	if errors.Is(err, repo.ErrDuplicate) {
		err = apply()
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*Tokens, error) {
	payload, err := s.codec.Verify(refreshToken, TokenRefresh)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCredentials, err)
	}
	user, err := s.resolveSubject(ctx, payload)
	if err != nil {
		return nil, err
	}
	// no rotation: the presented refresh token stays valid until expiry
	return s.issueTokens(user)
}

// CurrentUser resolves the bearer of an access token to the live directory
// record. The token's email claim is never trusted for identity or role
// decisions; the directory is the source of truth.
func (s *authService) CurrentUser(ctx context.Context, accessToken string) (*domain.User, error) {
	payload, err := s.codec.Verify(accessToken, TokenAccess)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCredentials, err)
	}
	return s.resolveSubject(ctx, payload)
}

func (s *authService) resolveSubject(ctx context.Context, payload *TokenPayload) (*domain.User, error) {
	if payload.Subject == "" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCredentials, ErrSubjectMissing)
	}
	userID, err := strconv.ParseInt(payload.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed subject", ErrInvalidCredentials)
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		// account deleted after issuance; still a credential failure
		return nil, fmt.Errorf("%w: user not found", ErrInvalidCredentials)
	}
	return user, nil
}

func (s *authService) RequireAdmin(user *domain.User) (*domain.User, error) {
	if user == nil || !user.IsAdmin() {
		return nil, fmt.Errorf("%w: admin access required", ErrForbidden)
	}
	return user, nil
}

func (s *authService) issueTokens(user *domain.User) (*Tokens, error) {
	subject := strconv.FormatInt(user.ID, 10)
	access, err := s.codec.Issue(subject, user.Email, TokenAccess, s.cfg.AccessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.codec.Issue(subject, user.Email, TokenRefresh, s.cfg.RefreshTTL)
	if err != nil {
		return nil, err
	}
	return &Tokens{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
		ExpiresIn:    int64(s.cfg.AccessTTL.Seconds()),
	}, nil
}
