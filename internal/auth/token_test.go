package auth

import (
	"testing"
	"time"

	"github.com/namminarasimhamurthy/ApiEvent/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager() *TokenManager {
	return NewTokenManager("test-secret", 15*time.Minute, 24*time.Hour)
}

func TestTokenManager_AccessRoundtrip(t *testing.T) {
	tm := newManager()

	user := &domain.User{ID: "u1", Username: "alice", IsAdmin: true}
	token, err := tm.NewAccessToken(user)
	require.NoError(t, err)

	ident, err := tm.ParseAccess(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", ident.UserID)
	assert.Equal(t, "alice", ident.Username)
	assert.True(t, ident.IsAdmin)
}

func TestTokenManager_TamperedTokenRejected(t *testing.T) {
	tm := newManager()

	token, err := tm.NewAccessToken(&domain.User{ID: "u1", Username: "alice"})
	require.NoError(t, err)

	_, err = tm.ParseAccess(token + "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenManager_WrongSecretRejected(t *testing.T) {
	tm := newManager()
	other := NewTokenManager("other-secret", 15*time.Minute, 24*time.Hour)

	token, err := tm.NewAccessToken(&domain.User{ID: "u1", Username: "alice"})
	require.NoError(t, err)

	_, err = other.ParseAccess(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenManager_ExpiredAccessRejected(t *testing.T) {
	tm := NewTokenManager("test-secret", -time.Minute, 24*time.Hour)

	token, err := tm.NewAccessToken(&domain.User{ID: "u1", Username: "alice"})
	require.NoError(t, err)

	_, err = tm.ParseAccess(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenManager_RefreshNotValidAsAccess(t *testing.T) {
	tm := newManager()

	refresh, jti, _, err := tm.NewRefreshToken("u1")
	require.NoError(t, err)
	assert.NotEmpty(t, jti)

	_, err = tm.ParseAccess(refresh)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenManager_AccessNotValidAsRefresh(t *testing.T) {
	tm := newManager()

	access, err := tm.NewAccessToken(&domain.User{ID: "u1", Username: "alice"})
	require.NoError(t, err)

	_, _, err = tm.ParseRefresh(access)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenManager_RefreshRoundtrip(t *testing.T) {
	tm := newManager()

	refresh, jti, expiresAt, err := tm.NewRefreshToken("u1")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, time.Minute)

	parsedJTI, userID, err := tm.ParseRefresh(refresh)
	require.NoError(t, err)
	assert.Equal(t, jti, parsedJTI)
	assert.Equal(t, "u1", userID)
}

func TestHashPassword_Roundtrip(t *testing.T) {
	hash, err := HashPassword("secretpass")
	require.NoError(t, err)
	assert.NotEqual(t, "secretpass", hash)

	assert.True(t, CheckPassword("secretpass", hash))
	assert.False(t, CheckPassword("wrong", hash))
}
