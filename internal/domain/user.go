package domain

import "time"

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreateUserInput struct {
	Username string
	Email    string
	Password string
}

// Identity is the authenticated principal resolved from an access token.
type Identity struct {
	UserID   string
	Username string
	IsAdmin  bool
}

// TokenPair is what a successful login returns.
type TokenPair struct {
	AccessToken  string `json:"access"`
	RefreshToken string `json:"refresh"`
}

// RefreshToken is the persisted part of an issued refresh JWT: its jti.
// A refresh token is only honoured while its jti row is alive.
type RefreshToken struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}
