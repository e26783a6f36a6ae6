package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/namminarasimhamurthy/ApiEvent/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Book runs the whole check-then-insert sequence in one transaction.
// The FOR UPDATE lock on the event row serializes concurrent bookings for
// the same event, so the capacity count it reads stays authoritative until
// commit. Check order is fixed: not-found, duplicate, capacity.
func (r *BookingRepository) Book(ctx context.Context, b *domain.Booking) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var capacity int
	lockQuery := `SELECT capacity FROM events WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, b.EventID).Scan(&capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrEventNotFound
		}
		return 0, fmt.Errorf("lock event: %w", err)
	}

	var alreadyBooked bool
	dupQuery := `SELECT EXISTS(SELECT 1 FROM bookings WHERE event_id = $1 AND user_id = $2)`
	if err = tx.QueryRowContext(ctx, dupQuery, b.EventID, b.UserID).Scan(&alreadyBooked); err != nil {
		return 0, fmt.Errorf("check duplicate booking: %w", err)
	}
	if alreadyBooked {
		return 0, domain.ErrAlreadyBooked
	}

	var booked int
	countQuery := `SELECT COUNT(*) FROM bookings WHERE event_id = $1`
	if err = tx.QueryRowContext(ctx, countQuery, b.EventID).Scan(&booked); err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	if booked >= capacity {
		return 0, domain.ErrEventFull
	}

	insertQuery := `INSERT INTO bookings (id, event_id, user_id, booked_at)
			  VALUES ($1, $2, $3, $4)`
	_, err = tx.ExecContext(ctx, insertQuery, b.ID, b.EventID, b.UserID, b.BookedAt)
	if err != nil {
		// Unique index backstop, in case the duplicate check raced.
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, domain.ErrAlreadyBooked
		}
		return 0, fmt.Errorf("insert booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit booking: %w", err)
	}

	return capacity - booked - 1, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.UserBooking, error) {
	query := `SELECT b.id, b.event_id, b.user_id, b.booked_at,
					 e.title, e.event_date, e.location
			  FROM bookings b
			  JOIN events e ON e.id = b.event_id
			  WHERE b.user_id = $1
			  ORDER BY b.booked_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}
	defer rows.Close()

	var res []*domain.UserBooking
	for rows.Next() {
		var b domain.UserBooking
		if err = rows.Scan(
			&b.ID, &b.EventID, &b.UserID, &b.BookedAt,
			&b.EventTitle, &b.EventDate, &b.Location,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

func (r *BookingRepository) ListAll(ctx context.Context) ([]*domain.AdminBooking, error) {
	query := `SELECT b.id, b.event_id, b.user_id, b.booked_at,
					 e.title, e.event_date, e.location,
					 u.username, u.email
			  FROM bookings b
			  JOIN events e ON e.id = b.event_id
			  JOIN users u ON u.id = b.user_id
			  ORDER BY b.booked_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list all bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.AdminBooking
	for rows.Next() {
		var b domain.AdminBooking
		if err = rows.Scan(
			&b.ID, &b.EventID, &b.UserID, &b.BookedAt,
			&b.EventTitle, &b.EventDate, &b.Location,
			&b.Username, &b.Email,
		); err != nil {
			return nil, fmt.Errorf("scan admin booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

func (r *BookingRepository) Count(ctx context.Context) (int, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT COUNT(*) FROM bookings`)
	if err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	var n int
	if err = row.Scan(&n); err != nil {
		return 0, fmt.Errorf("scan bookings count: %w", err)
	}

	return n, nil
}
