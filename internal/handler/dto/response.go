package dto

import (
	"time"

	"github.com/namminarasimhamurthy/ApiEvent/internal/domain"
)

const dateLayout = "2006-01-02"

type EventResponse struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Location       string `json:"location"`
	Date           string `json:"date"`
	Capacity       int    `json:"capacity"`
	AvailableSlots int    `json:"available_slots"`
	CreatedBy      string `json:"created_by"`
}

type BookResponse struct {
	Message        string `json:"message"`
	RemainingSlots int    `json:"remaining_slots"`
}

type UserBookingResponse struct {
	ID         string `json:"id"`
	EventID    string `json:"event"`
	EventTitle string `json:"event_title"`
	EventDate  string `json:"event_date"`
	Location   string `json:"location"`
	BookedAt   string `json:"booked_at"`
}

type AdminBookingResponse struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	EventTitle string `json:"event_title"`
	EventDate  string `json:"event_date"`
	Location   string `json:"location"`
	BookedAt   string `json:"booked_at"`
}

type TokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type AccessTokenResponse struct {
	Access string `json:"access"`
}

type MeResponse struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

type StatsResponse struct {
	TotalUsers    int `json:"total_users"`
	TotalEvents   int `json:"total_events"`
	TotalBookings int `json:"total_bookings"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(d *domain.EventDetails) EventResponse {
	return EventResponse{
		ID:             d.Event.ID,
		Title:          d.Event.Title,
		Description:    d.Event.Description,
		Location:       d.Event.Location,
		Date:           d.Event.Date.Format(dateLayout),
		Capacity:       d.Event.Capacity,
		AvailableSlots: d.AvailableSlots,
		CreatedBy:      d.CreatedByName,
	}
}

func ToUserBookingResponse(b *domain.UserBooking) UserBookingResponse {
	return UserBookingResponse{
		ID:         b.ID,
		EventID:    b.EventID,
		EventTitle: b.EventTitle,
		EventDate:  b.EventDate.Format(dateLayout),
		Location:   b.Location,
		BookedAt:   b.BookedAt.Format(time.RFC3339),
	}
}

func ToAdminBookingResponse(b *domain.AdminBooking) AdminBookingResponse {
	return AdminBookingResponse{
		ID:         b.ID,
		Username:   b.Username,
		Email:      b.Email,
		EventTitle: b.EventTitle,
		EventDate:  b.EventDate.Format(dateLayout),
		Location:   b.Location,
		BookedAt:   b.BookedAt.Format(time.RFC3339),
	}
}

func ToStatsResponse(s *domain.Stats) StatsResponse {
	return StatsResponse{
		TotalUsers:    s.TotalUsers,
		TotalEvents:   s.TotalEvents,
		TotalBookings: s.TotalBookings,
	}
}
