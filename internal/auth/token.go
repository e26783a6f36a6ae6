package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/namminarasimhamurthy/ApiEvent/internal/domain"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

type claims struct {
	Username  string `json:"username,omitempty"`
	IsAdmin   bool   `json:"is_admin,omitempty"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256 access/refresh token pairs.
// Refresh tokens carry a jti that must stay registered server-side to be
// honoured, so they can be revoked by deleting the row.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenManager(secret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (m *TokenManager) NewAccessToken(user *domain.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Username:  user.Username,
		IsAdmin:   user.IsAdmin,
		TokenType: tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
		},
	})

	return token.SignedString(m.secret)
}

// NewRefreshToken returns the signed token together with its jti and expiry,
// which the caller persists.
func (m *TokenManager) NewRefreshToken(userID string) (token string, jti string, expiresAt time.Time, err error) {
	now := time.Now()
	jti = uuid.New().String()
	expiresAt = now.Add(m.refreshTTL)

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		TokenType: tokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	token, err = t.SignedString(m.secret)
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("sign refresh token: %w", err)
	}

	return token, jti, expiresAt, nil
}

// ParseAccess verifies an access token and returns the identity it carries.
func (m *TokenManager) ParseAccess(token string) (domain.Identity, error) {
	c, err := m.parse(token)
	if err != nil {
		return domain.Identity{}, err
	}
	if c.TokenType != tokenTypeAccess {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	return domain.Identity{
		UserID:   c.Subject,
		Username: c.Username,
		IsAdmin:  c.IsAdmin,
	}, nil
}

// ParseRefresh verifies a refresh token and returns its jti and subject.
func (m *TokenManager) ParseRefresh(token string) (jti string, userID string, err error) {
	c, err := m.parse(token)
	if err != nil {
		return "", "", err
	}
	if c.TokenType != tokenTypeRefresh || c.ID == "" {
		return "", "", domain.ErrInvalidToken
	}

	return c.ID, c.Subject, nil
}

func (m *TokenManager) parse(token string) (*claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	c, ok := parsed.Claims.(*claims)
	if !ok {
		return nil, domain.ErrInvalidToken
	}

	return c, nil
}
