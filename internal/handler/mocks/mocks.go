// Package mocks provides testify-backed mocks of the handler's service
// interfaces for route-level tests.
package mocks

import (
	"context"
	"testing"

	"github.com/namminarasimhamurthy/ApiEvent/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockEventSvc struct {
	mock.Mock
}

func NewMockEventSvc(t *testing.T) *MockEventSvc {
	t.Helper()
	m := &MockEventSvc{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockEventSvc) Create(ctx context.Context, input domain.CreateEventInput, creatorID string) (*domain.EventDetails, error) {
	args := m.Called(ctx, input, creatorID)
	if d := args.Get(0); d != nil {
		return d.(*domain.EventDetails), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEventSvc) Update(ctx context.Context, id string, input domain.CreateEventInput) (*domain.EventDetails, error) {
	args := m.Called(ctx, id, input)
	if d := args.Get(0); d != nil {
		return d.(*domain.EventDetails), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEventSvc) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEventSvc) List(ctx context.Context) ([]*domain.EventDetails, error) {
	args := m.Called(ctx)
	if l := args.Get(0); l != nil {
		return l.([]*domain.EventDetails), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockBookingSvc struct {
	mock.Mock
}

func NewMockBookingSvc(t *testing.T) *MockBookingSvc {
	t.Helper()
	m := &MockBookingSvc{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockBookingSvc) Book(ctx context.Context, eventID, userID string) (*domain.Booking, int, error) {
	args := m.Called(ctx, eventID, userID)
	if b := args.Get(0); b != nil {
		return b.(*domain.Booking), args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

func (m *MockBookingSvc) ListByUser(ctx context.Context, userID string) ([]*domain.UserBooking, error) {
	args := m.Called(ctx, userID)
	if l := args.Get(0); l != nil {
		return l.([]*domain.UserBooking), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockUserSvc struct {
	mock.Mock
}

func NewMockUserSvc(t *testing.T) *MockUserSvc {
	t.Helper()
	m := &MockUserSvc{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockUserSvc) Register(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserSvc) Login(ctx context.Context, username, password string) (*domain.TokenPair, error) {
	args := m.Called(ctx, username, password)
	if p := args.Get(0); p != nil {
		return p.(*domain.TokenPair), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserSvc) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if p := args.Get(0); p != nil {
		return p.(*domain.TokenPair), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserSvc) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockAdminSvc struct {
	mock.Mock
}

func NewMockAdminSvc(t *testing.T) *MockAdminSvc {
	t.Helper()
	m := &MockAdminSvc{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAdminSvc) Stats(ctx context.Context) (*domain.Stats, error) {
	args := m.Called(ctx)
	if s := args.Get(0); s != nil {
		return s.(*domain.Stats), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminSvc) ListBookings(ctx context.Context) ([]*domain.AdminBooking, error) {
	args := m.Called(ctx)
	if l := args.Get(0); l != nil {
		return l.([]*domain.AdminBooking), args.Error(1)
	}
	return nil, args.Error(1)
}
