package domain

import "time"

type Booking struct {
	ID       string    `json:"id"`
	EventID  string    `json:"event_id"`
	UserID   string    `json:"user_id"`
	BookedAt time.Time `json:"booked_at"`
}

// UserBooking is a booking enriched with event fields for the owner's view.
type UserBooking struct {
	Booking
	EventTitle string    `json:"event_title"`
	EventDate  time.Time `json:"event_date"`
	Location   string    `json:"location"`
}

// AdminBooking additionally carries the booking owner's identity for
// the admin roster. Enrichment is a read-side join, nothing is stored.
type AdminBooking struct {
	UserBooking
	Username string `json:"username"`
	Email    string `json:"email"`
}
