package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type TokenType string

const (
	TokenAccess  TokenType = "access"
	TokenRefresh TokenType = "refresh"
)

var (
	// ErrInvalidToken covers malformed tokens, bad signatures and expired
	// tokens alike. Callers never learn which aspect failed.
	ErrInvalidToken   = errors.New("invalid token")
	ErrWrongTokenType = errors.New("wrong token type")
	ErrSubjectMissing = errors.New("token subject missing")
)

// TokenPayload is the decoded content of a signed token. It is never persisted;
// verification is a pure function of the token string, the secret and the clock.
type TokenPayload struct {
	Subject   string
	Email     string
	Type      TokenType
	ExpiresAt time.Time
}

type tokenClaims struct {
	Email string    `json:"email"`
	Type  TokenType `json:"type"`
	jwt.RegisteredClaims
}

// TokenCodec issues and verifies HS256-signed tokens carrying a subject,
// an email and a type tag.
type TokenCodec struct {
	secret []byte
	now    func() time.Time
}

func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{secret: []byte(secret), now: time.Now}
}

// NewTokenCodecWithClock is used by tests to control expiry.
func NewTokenCodecWithClock(secret string, now func() time.Time) *TokenCodec {
	return &TokenCodec{secret: []byte(secret), now: now}
}

func (c *TokenCodec) Issue(subject, email string, typ TokenType, ttl time.Duration) (string, error) {
	now := c.now().UTC()
	claims := tokenClaims{
		Email: email,
		Type:  typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify decodes and validates the token, then checks its type tag against
// expected. Signature and expiry failures are not distinguished.
func (c *TokenCodec) Verify(tokenStr string, expected TokenType) (*TokenPayload, error) {
	claims := &tokenClaims{}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
		jwt.WithExpirationRequired(),
	)
	token, err := parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Type != expected {
		return nil, ErrWrongTokenType
	}
	return &TokenPayload{
		Subject:   claims.Subject,
		Email:     claims.Email,
		Type:      claims.Type,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
