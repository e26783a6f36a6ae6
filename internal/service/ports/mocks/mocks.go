// Package mocks provides testify-backed mocks of the repository ports for
// service tests.
package mocks

import (
	"context"
	"testing"
	"time"

	"github.com/namminarasimhamurthy/ApiEvent/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockEventRepo struct {
	mock.Mock
}

func NewMockEventRepo(t *testing.T) *MockEventRepo {
	t.Helper()
	m := &MockEventRepo{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockEventRepo) Create(ctx context.Context, e *domain.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if e := args.Get(0); e != nil {
		return e.(*domain.Event), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEventRepo) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	args := m.Called(ctx, id)
	if d := args.Get(0); d != nil {
		return d.(*domain.EventDetails), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEventRepo) Update(ctx context.Context, e *domain.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEventRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEventRepo) List(ctx context.Context) ([]*domain.EventDetails, error) {
	args := m.Called(ctx)
	if l := args.Get(0); l != nil {
		return l.([]*domain.EventDetails), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEventRepo) ExistsByTitleDateLocation(ctx context.Context, title string, date time.Time, location string) (bool, error) {
	args := m.Called(ctx, title, date, location)
	return args.Bool(0), args.Error(1)
}

func (m *MockEventRepo) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockBookingRepo struct {
	mock.Mock
}

func NewMockBookingRepo(t *testing.T) *MockBookingRepo {
	t.Helper()
	m := &MockBookingRepo{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockBookingRepo) Book(ctx context.Context, b *domain.Booking) (int, error) {
	args := m.Called(ctx, b)
	return args.Int(0), args.Error(1)
}

func (m *MockBookingRepo) ListByUser(ctx context.Context, userID string) ([]*domain.UserBooking, error) {
	args := m.Called(ctx, userID)
	if l := args.Get(0); l != nil {
		return l.([]*domain.UserBooking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepo) ListAll(ctx context.Context) ([]*domain.AdminBooking, error) {
	args := m.Called(ctx)
	if l := args.Get(0); l != nil {
		return l.([]*domain.AdminBooking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepo) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockUserRepo struct {
	mock.Mock
}

func NewMockUserRepo(t *testing.T) *MockUserRepo {
	t.Helper()
	m := &MockUserRepo{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepo) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockTokenRepo struct {
	mock.Mock
}

func NewMockTokenRepo(t *testing.T) *MockTokenRepo {
	t.Helper()
	m := &MockTokenRepo{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTokenRepo) Save(ctx context.Context, token *domain.RefreshToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockTokenRepo) Get(ctx context.Context, id string) (*domain.RefreshToken, error) {
	args := m.Called(ctx, id)
	if t := args.Get(0); t != nil {
		return t.(*domain.RefreshToken), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTokenRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTokenRepo) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
