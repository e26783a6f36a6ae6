package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/namminarasimhamurthy/ApiEvent/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type TokenRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTokenRepo(db *dbpg.DB) *TokenRepository {
	return &TokenRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *TokenRepository) Save(ctx context.Context, t *domain.RefreshToken) error {
	query := `INSERT INTO refresh_tokens (id, user_id, expires_at, created_at)
			  VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, t.ID, t.UserID, t.ExpiresAt, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert refresh token: %w", err)
	}

	return nil
}

func (r *TokenRepository) Get(ctx context.Context, id string) (*domain.RefreshToken, error) {
	query := `SELECT id, user_id, expires_at, created_at
			  FROM refresh_tokens
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get refresh token: %w", err)
	}

	var t domain.RefreshToken
	if err = row.Scan(&t.ID, &t.UserID, &t.ExpiresAt, &t.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvalidToken
		}
		return nil, fmt.Errorf("scan refresh token: %w", err)
	}

	return &t, nil
}

func (r *TokenRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM refresh_tokens WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete refresh token: %w", err)
	}

	return nil
}

func (r *TokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM refresh_tokens WHERE expires_at < NOW()`)
	if err != nil {
		return 0, fmt.Errorf("delete expired refresh tokens: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("expired tokens rows affected: %w", err)
	}

	return rows, nil
}
