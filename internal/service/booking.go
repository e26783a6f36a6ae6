package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/namminarasimhamurthy/ApiEvent/internal/domain"
	"github.com/namminarasimhamurthy/ApiEvent/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	logger      logger.Logger
}

func NewBookingService(bookingRepo ports.BookingRepo, logger logger.Logger) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Book reserves one slot for the user. The repository performs the whole
// exists/duplicate/capacity check and the insert atomically; remaining is
// the slot count left after this booking.
func (s *BookingService) Book(ctx context.Context, eventID, userID string) (*domain.Booking, int, error) {
	booking := &domain.Booking{
		ID:       uuid.New().String(),
		EventID:  eventID,
		UserID:   userID,
		BookedAt: time.Now().UTC(),
	}

	remaining, err := s.bookingRepo.Book(ctx, booking)
	if err != nil {
		return nil, 0, fmt.Errorf("book event: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
		logger.Int("remaining_slots", remaining),
	)

	return booking, remaining, nil
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.UserBooking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}
