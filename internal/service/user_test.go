package service

import (
	"context"
	"testing"
	"time"

	"github.com/namminarasimhamurthy/ApiEvent/internal/auth"
	"github.com/namminarasimhamurthy/ApiEvent/internal/domain"
	"github.com/namminarasimhamurthy/ApiEvent/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestTokenManager() *auth.TokenManager {
	return auth.NewTokenManager("test-secret", 15*time.Minute, 24*time.Hour)
}

func TestUserService_Register_Success(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo, nil, newTestTokenManager(), newTestLogger(t))

	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Username == "alice" && u.Email == "alice@example.com" &&
			u.PasswordHash != "" && u.PasswordHash != "secretpass" && !u.IsAdmin
	})).Return(nil)

	user, err := svc.Register(context.Background(), domain.CreateUserInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secretpass",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.True(t, auth.CheckPassword("secretpass", user.PasswordHash))
}

func TestUserService_Register_ShortPassword(t *testing.T) {
	svc := NewUserService(nil, nil, newTestTokenManager(), newTestLogger(t))

	_, err := svc.Register(context.Background(), domain.CreateUserInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "short",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Register_UsernameTaken(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo, nil, newTestTokenManager(), newTestLogger(t))

	userRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrUsernameTaken)

	_, err := svc.Register(context.Background(), domain.CreateUserInput{
		Username: "taken",
		Email:    "taken@example.com",
		Password: "secretpass",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func registeredUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return &domain.User{
		ID:           "u1",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: hash,
	}
}

func TestUserService_Login_Success(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	tokenRepo := mocks.NewMockTokenRepo(t)
	tm := newTestTokenManager()
	svc := NewUserService(userRepo, tokenRepo, tm, newTestLogger(t))

	userRepo.On("GetByUsername", mock.Anything, "alice").Return(registeredUser(t, "secretpass"), nil)
	tokenRepo.On("Save", mock.Anything, mock.MatchedBy(func(rt *domain.RefreshToken) bool {
		return rt.UserID == "u1" && rt.ID != ""
	})).Return(nil)

	pair, err := svc.Login(context.Background(), "alice", "secretpass")

	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	ident, err := tm.ParseAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "u1", ident.UserID)
	assert.Equal(t, "alice", ident.Username)
	assert.False(t, ident.IsAdmin)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo, nil, newTestTokenManager(), newTestLogger(t))

	userRepo.On("GetByUsername", mock.Anything, "alice").Return(registeredUser(t, "secretpass"), nil)

	_, err := svc.Login(context.Background(), "alice", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownUser(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo, nil, newTestTokenManager(), newTestLogger(t))

	userRepo.On("GetByUsername", mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Login(context.Background(), "ghost", "whatever")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUserService_Refresh_Success(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	tokenRepo := mocks.NewMockTokenRepo(t)
	tm := newTestTokenManager()
	svc := NewUserService(userRepo, tokenRepo, tm, newTestLogger(t))

	refresh, jti, expiresAt, err := tm.NewRefreshToken("u1")
	require.NoError(t, err)

	tokenRepo.On("Get", mock.Anything, jti).Return(&domain.RefreshToken{
		ID:        jti,
		UserID:    "u1",
		ExpiresAt: expiresAt,
	}, nil)
	userRepo.On("GetByID", mock.Anything, "u1").Return(registeredUser(t, "secretpass"), nil)

	pair, err := svc.Refresh(context.Background(), refresh)

	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)

	ident, err := tm.ParseAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "u1", ident.UserID)
}

func TestUserService_Refresh_SameTokenUsableRepeatedly(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	tokenRepo := mocks.NewMockTokenRepo(t)
	tm := newTestTokenManager()
	svc := NewUserService(userRepo, tokenRepo, tm, newTestLogger(t))

	refresh, jti, expiresAt, err := tm.NewRefreshToken("u1")
	require.NoError(t, err)

	tokenRepo.On("Get", mock.Anything, jti).Return(&domain.RefreshToken{
		ID:        jti,
		UserID:    "u1",
		ExpiresAt: expiresAt,
	}, nil).Twice()
	userRepo.On("GetByID", mock.Anything, "u1").Return(registeredUser(t, "secretpass"), nil).Twice()

	first, err := svc.Refresh(context.Background(), refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, first.AccessToken)

	second, err := svc.Refresh(context.Background(), refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, second.AccessToken)
}

func TestUserService_Refresh_ExpiredTokenRemoved(t *testing.T) {
	tokenRepo := mocks.NewMockTokenRepo(t)
	tm := newTestTokenManager()
	svc := NewUserService(nil, tokenRepo, tm, newTestLogger(t))

	refresh, jti, _, err := tm.NewRefreshToken("u1")
	require.NoError(t, err)

	tokenRepo.On("Get", mock.Anything, jti).Return(&domain.RefreshToken{
		ID:        jti,
		UserID:    "u1",
		ExpiresAt: time.Now().Add(-time.Hour),
	}, nil)
	tokenRepo.On("Delete", mock.Anything, jti).Return(nil)

	_, err = svc.Refresh(context.Background(), refresh)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestUserService_Refresh_UnknownJTI(t *testing.T) {
	tokenRepo := mocks.NewMockTokenRepo(t)
	tm := newTestTokenManager()
	svc := NewUserService(nil, tokenRepo, tm, newTestLogger(t))

	refresh, jti, _, err := tm.NewRefreshToken("u1")
	require.NoError(t, err)

	// Token was already rotated or revoked.
	tokenRepo.On("Get", mock.Anything, jti).Return(nil, domain.ErrInvalidToken)

	_, err = svc.Refresh(context.Background(), refresh)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestUserService_Refresh_GarbageToken(t *testing.T) {
	svc := NewUserService(nil, nil, newTestTokenManager(), newTestLogger(t))

	_, err := svc.Refresh(context.Background(), "not-a-jwt")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestUserService_Refresh_AccessTokenRejected(t *testing.T) {
	tm := newTestTokenManager()
	svc := NewUserService(nil, nil, tm, newTestLogger(t))

	access, err := tm.NewAccessToken(&domain.User{ID: "u1", Username: "alice"})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), access)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestUserService_GetByID_Success(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo, nil, newTestTokenManager(), newTestLogger(t))

	userRepo.On("GetByID", mock.Anything, "u1").Return(&domain.User{ID: "u1", Username: "alice"}, nil)

	user, err := svc.GetByID(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}
