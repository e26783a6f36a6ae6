package service

import (
	"context"
	"fmt"

	"github.com/namminarasimhamurthy/ApiEvent/internal/domain"
	"github.com/namminarasimhamurthy/ApiEvent/internal/service/ports"
)

type AdminService struct {
	userRepo    ports.UserRepo
	eventRepo   ports.EventRepo
	bookingRepo ports.BookingRepo
}

func NewAdminService(userRepo ports.UserRepo, eventRepo ports.EventRepo, bookingRepo ports.BookingRepo) *AdminService {
	return &AdminService{
		userRepo:    userRepo,
		eventRepo:   eventRepo,
		bookingRepo: bookingRepo,
	}
}

func (s *AdminService) Stats(ctx context.Context) (*domain.Stats, error) {
	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	events, err := s.eventRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}

	bookings, err := s.bookingRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	return &domain.Stats{
		TotalUsers:    users,
		TotalEvents:   events,
		TotalBookings: bookings,
	}, nil
}

func (s *AdminService) ListBookings(ctx context.Context) ([]*domain.AdminBooking, error) {
	return s.bookingRepo.ListAll(ctx)
}
