package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/namminarasimhamurthy/ApiEvent/internal/domain"
	"github.com/namminarasimhamurthy/ApiEvent/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestBookingService_Book_Success(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	svc := NewBookingService(repo, newTestLogger(t))

	repo.On("Book", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.EventID == "e1" && b.UserID == "u1" && b.ID != "" && !b.BookedAt.IsZero()
	})).Return(4, nil)

	booking, remaining, err := svc.Book(context.Background(), "e1", "u1")

	require.NoError(t, err)
	assert.Equal(t, "e1", booking.EventID)
	assert.Equal(t, "u1", booking.UserID)
	assert.Equal(t, 4, remaining)
}

func TestBookingService_Book_EventNotFound(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	svc := NewBookingService(repo, newTestLogger(t))

	repo.On("Book", mock.Anything, mock.Anything).Return(0, domain.ErrEventNotFound)

	_, _, err := svc.Book(context.Background(), "missing", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestBookingService_Book_AlreadyBooked(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	svc := NewBookingService(repo, newTestLogger(t))

	repo.On("Book", mock.Anything, mock.Anything).Return(0, domain.ErrAlreadyBooked)

	_, _, err := svc.Book(context.Background(), "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyBooked)
}

func TestBookingService_Book_EventFull(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	svc := NewBookingService(repo, newTestLogger(t))

	repo.On("Book", mock.Anything, mock.Anything).Return(0, domain.ErrEventFull)

	_, _, err := svc.Book(context.Background(), "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventFull)
}

func TestBookingService_ListByUser_Success(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	svc := NewBookingService(repo, newTestLogger(t))

	bookings := []*domain.UserBooking{
		{Booking: domain.Booking{ID: "b2", BookedAt: time.Now()}, EventTitle: "Second"},
		{Booking: domain.Booking{ID: "b1", BookedAt: time.Now().Add(-time.Hour)}, EventTitle: "First"},
	}
	repo.On("ListByUser", mock.Anything, "u1").Return(bookings, nil)

	result, err := svc.ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "b2", result[0].ID)
}

// fakeBookingRepo mimics the transactional repository: one mutex per store
// stands in for the row lock, so duplicate and capacity checks observe the
// same count the insert uses.
type fakeBookingRepo struct {
	mu       sync.Mutex
	capacity int
	byUser   map[string]bool
	count    int
}

func newFakeBookingRepo(capacity int) *fakeBookingRepo {
	return &fakeBookingRepo{capacity: capacity, byUser: make(map[string]bool)}
}

func (f *fakeBookingRepo) Book(_ context.Context, b *domain.Booking) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.byUser[b.UserID] {
		return 0, domain.ErrAlreadyBooked
	}
	if f.count >= f.capacity {
		return 0, domain.ErrEventFull
	}

	f.byUser[b.UserID] = true
	f.count++
	return f.capacity - f.count, nil
}

func (f *fakeBookingRepo) ListByUser(context.Context, string) ([]*domain.UserBooking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) ListAll(context.Context) ([]*domain.AdminBooking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) Count(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.count, nil
}

func TestBookingService_Book_ConcurrentNeverOversells(t *testing.T) {
	const capacity = 10
	const extra = 7

	repo := newFakeBookingRepo(capacity)
	svc := NewBookingService(repo, newTestLogger(t))

	var wg sync.WaitGroup
	results := make(chan error, capacity+extra)

	for i := 0; i < capacity+extra; i++ {
		wg.Add(1)
		go func(user int) {
			defer wg.Done()
			_, _, err := svc.Book(context.Background(), "e1", fmt.Sprintf("user-%d", user))
			results <- err
		}(i)
	}
	wg.Wait()
	close(results)

	var booked, full int
	for err := range results {
		switch {
		case err == nil:
			booked++
		case errors.Is(err, domain.ErrEventFull):
			full++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, capacity, booked)
	assert.Equal(t, extra, full)

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, capacity, count)
}

func TestBookingService_Book_SecondBookingSameUserRejected(t *testing.T) {
	repo := newFakeBookingRepo(5)
	svc := NewBookingService(repo, newTestLogger(t))

	_, remaining, err := svc.Book(context.Background(), "e1", "u1")
	require.NoError(t, err)
	assert.Equal(t, 4, remaining)

	_, _, err = svc.Book(context.Background(), "e1", "u1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyBooked)
}
