package domain

import "time"

type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Date        time.Time `json:"date"`
	Capacity    int       `json:"capacity"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventDetails is the read model for event responses: the event itself plus
// the derived slot count and the creator's username.
type EventDetails struct {
	Event          Event  `json:"event"`
	AvailableSlots int    `json:"available_slots"`
	CreatedByName  string `json:"created_by_name"`
}

type CreateEventInput struct {
	Title       string
	Description string
	Location    string
	Date        time.Time
	Capacity    int
}

type Stats struct {
	TotalUsers    int `json:"total_users"`
	TotalEvents   int `json:"total_events"`
	TotalBookings int `json:"total_bookings"`
}
