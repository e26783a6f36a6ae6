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

const uniqueViolation = "23505"

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, title, description, location, event_date, capacity, created_by, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.Location, e.Date,
		e.Capacity, e.CreatedBy, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrDuplicateEvent
		}
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT id, title, description, location, event_date, capacity, created_by, created_at, updated_at
			  FROM events
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	var e domain.Event
	if err = row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Location, &e.Date,
		&e.Capacity, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return &e, nil
}

func (r *EventRepository) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	query := `
		SELECT
            e.id, e.title, e.description, e.location, e.event_date,
            e.capacity, e.created_by, e.created_at, e.updated_at,
            e.capacity - COUNT(b.id) AS available_slots,
            u.username
        FROM events e
        JOIN users u ON u.id = e.created_by
        LEFT JOIN bookings b ON b.event_id = e.id
        WHERE e.id = $1
        GROUP BY e.id, u.username`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event details: %w", err)
	}

	var d domain.EventDetails
	if err = row.Scan(
		&d.Event.ID, &d.Event.Title, &d.Event.Description, &d.Event.Location,
		&d.Event.Date, &d.Event.Capacity, &d.Event.CreatedBy,
		&d.Event.CreatedAt, &d.Event.UpdatedAt,
		&d.AvailableSlots, &d.CreatedByName,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event details: %w", err)
	}

	return &d, nil
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events
			  SET title=$2, description=$3, location=$4, event_date=$5, capacity=$6, updated_at=$7
			  WHERE id=$1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.Location, e.Date, e.Capacity, e.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrDuplicateEvent
		}
		return fmt.Errorf("update event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	// Bookings go with the event via ON DELETE CASCADE.
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM events WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.EventDetails, error) {
	query := `
		SELECT
            e.id, e.title, e.description, e.location, e.event_date,
            e.capacity, e.created_by, e.created_at, e.updated_at,
            e.capacity - COUNT(b.id) AS available_slots,
            u.username
        FROM events e
        JOIN users u ON u.id = e.created_by
        LEFT JOIN bookings b ON b.event_id = e.id
        GROUP BY e.id, u.username
        ORDER BY e.event_date ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.EventDetails
	for rows.Next() {
		var d domain.EventDetails
		if err = rows.Scan(
			&d.Event.ID, &d.Event.Title, &d.Event.Description, &d.Event.Location,
			&d.Event.Date, &d.Event.Capacity, &d.Event.CreatedBy,
			&d.Event.CreatedAt, &d.Event.UpdatedAt,
			&d.AvailableSlots, &d.CreatedByName,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, &d)
	}

	return res, rows.Err()
}

func (r *EventRepository) ExistsByTitleDateLocation(ctx context.Context, title string, date time.Time, location string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM events WHERE title=$1 AND event_date=$2 AND location=$3)`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, title, date, location)
	if err != nil {
		return false, fmt.Errorf("check event exists: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan event exists: %w", err)
	}

	return exists, nil
}

func (r *EventRepository) Count(ctx context.Context) (int, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT COUNT(*) FROM events`)
	if err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}

	var n int
	if err = row.Scan(&n); err != nil {
		return 0, fmt.Errorf("scan events count: %w", err)
	}

	return n, nil
}
