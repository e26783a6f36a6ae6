package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/namminarasimhamurthy/ApiEvent/internal/domain"
	"github.com/namminarasimhamurthy/ApiEvent/internal/service/ports"
)

type EventService struct {
	repo ports.EventRepo
}

func NewEventService(repo ports.EventRepo) *EventService {
	return &EventService{repo: repo}
}

func (s *EventService) Create(ctx context.Context, input domain.CreateEventInput, creatorID string) (*domain.EventDetails, error) {
	if err := validateEventInput(input); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByTitleDateLocation(ctx, input.Title, input.Date, input.Location)
	if err != nil {
		return nil, fmt.Errorf("check duplicate event: %w", err)
	}
	if exists {
		return nil, domain.ErrDuplicateEvent
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		Date:        input.Date,
		Capacity:    input.Capacity,
		CreatedBy:   creatorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return s.repo.GetDetails(ctx, event.ID)
}

// Update replaces every mutable field. Uniqueness is not re-checked here,
// matching create-time-only validation; the database constraint still
// rejects a colliding triple.
func (s *EventService) Update(ctx context.Context, id string, input domain.CreateEventInput) (*domain.EventDetails, error) {
	if err := validateEventInput(input); err != nil {
		return nil, err
	}

	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	event.Title = input.Title
	event.Description = input.Description
	event.Location = input.Location
	event.Date = input.Date
	event.Capacity = input.Capacity
	event.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	return s.repo.GetDetails(ctx, event.ID)
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	return nil
}

func (s *EventService) List(ctx context.Context) ([]*domain.EventDetails, error) {
	return s.repo.List(ctx)
}

func validateEventInput(input domain.CreateEventInput) error {
	if input.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.Location == "" {
		return fmt.Errorf("%w: location is required", domain.ErrValidation)
	}
	if input.Date.IsZero() {
		return fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	if input.Capacity < 0 {
		return fmt.Errorf("%w: capacity must be non-negative", domain.ErrValidation)
	}

	return nil
}
