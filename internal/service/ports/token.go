package ports

import (
	"context"

	"github.com/namminarasimhamurthy/ApiEvent/internal/domain"
)

type TokenRepo interface {
	Save(ctx context.Context, t *domain.RefreshToken) error
	Get(ctx context.Context, id string) (*domain.RefreshToken, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context) (int64, error)
}
