package ports

import (
	"context"
	"time"

	"github.com/namminarasimhamurthy/ApiEvent/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.EventDetails, error)
	ExistsByTitleDateLocation(ctx context.Context, title string, date time.Time, location string) (bool, error)
	Count(ctx context.Context) (int, error)
}
