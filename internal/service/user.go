package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/namminarasimhamurthy/ApiEvent/internal/auth"
	"github.com/namminarasimhamurthy/ApiEvent/internal/domain"
	"github.com/namminarasimhamurthy/ApiEvent/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type UserService struct {
	userRepo  ports.UserRepo
	tokenRepo ports.TokenRepo
	tokens    *auth.TokenManager
	logger    logger.Logger
}

func NewUserService(
	userRepo ports.UserRepo,
	tokenRepo ports.TokenRepo,
	tokens *auth.TokenManager,
	logger logger.Logger,
) *UserService {
	return &UserService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		tokens:    tokens,
		logger:    logger,
	}
}

func (s *UserService) Register(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	if input.Username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if input.Email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if len(input.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", domain.ErrValidation)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		IsAdmin:      false,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user registered", logger.String("user_id", user.ID))

	return user, nil
}

// Login verifies credentials and issues an access/refresh pair. The refresh
// jti is persisted so the token can be revoked server-side.
func (s *UserService) Login(ctx context.Context, username, password string) (*domain.TokenPair, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	pair, err := s.issuePair(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", logger.String("user_id", user.ID))

	return pair, nil
}

// Refresh exchanges a live refresh token for a new access token. The token
// stays usable until its expiry, so a client can refresh any number of
// times with the same token; an expired row is removed on sight.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	jti, userID, err := s.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return nil, err
	}

	stored, err := s.tokenRepo.Get(ctx, jti)
	if err != nil {
		return nil, err
	}
	if stored.UserID != userID {
		return nil, domain.ErrInvalidToken
	}
	if time.Now().After(stored.ExpiresAt) {
		if err := s.tokenRepo.Delete(ctx, jti); err != nil {
			s.logger.Error("delete expired refresh token",
				logger.String("error", err.Error()),
			)
		}
		return nil, domain.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	access, err := s.tokens.NewAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	return &domain.TokenPair{AccessToken: access}, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) issuePair(ctx context.Context, user *domain.User) (*domain.TokenPair, error) {
	access, err := s.tokens.NewAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	refresh, jti, expiresAt, err := s.tokens.NewRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	if err := s.tokenRepo.Save(ctx, &domain.RefreshToken{
		ID:        jti,
		UserID:    user.ID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		return nil, fmt.Errorf("save refresh token: %w", err)
	}

	return &domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
