package ports

import (
	"context"

	"github.com/namminarasimhamurthy/ApiEvent/internal/domain"
)

type BookingRepo interface {
	// Book atomically checks the event exists, the user has no booking for
	// it and capacity is not exhausted, then inserts. Returns the number of
	// slots remaining after the insert.
	Book(ctx context.Context, b *domain.Booking) (remaining int, err error)
	ListByUser(ctx context.Context, userID string) ([]*domain.UserBooking, error)
	ListAll(ctx context.Context) ([]*domain.AdminBooking, error)
	Count(ctx context.Context) (int, error)
}
