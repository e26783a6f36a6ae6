package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/namminarasimhamurthy/ApiEvent/internal/domain"
	"github.com/namminarasimhamurthy/ApiEvent/internal/handler/dto"
	"github.com/namminarasimhamurthy/ApiEvent/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

const dateLayout = "2006-01-02"

type EventSvc interface {
	Create(ctx context.Context, input domain.CreateEventInput, creatorID string) (*domain.EventDetails, error)
	Update(ctx context.Context, id string, input domain.CreateEventInput) (*domain.EventDetails, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.EventDetails, error)
}

type BookingSvc interface {
	Book(ctx context.Context, eventID, userID string) (*domain.Booking, int, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.UserBooking, error)
}

type UserSvc interface {
	Register(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type AdminSvc interface {
	Stats(ctx context.Context) (*domain.Stats, error)
	ListBookings(ctx context.Context) ([]*domain.AdminBooking, error)
}

type Handler struct {
	eventService   EventSvc
	bookingService BookingSvc
	userService    UserSvc
	adminService   AdminSvc
}

func NewHandler(eventService EventSvc, bookingService BookingSvc, userService UserSvc, adminService AdminSvc) *Handler {
	return &Handler{
		eventService:   eventService,
		bookingService: bookingService,
		userService:    userService,
		adminService:   adminService,
	}
}

// Auth

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}

	if _, err := h.userService.Register(c.Request.Context(), input); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "User registered successfully"})
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	pair, err := h.userService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenPairResponse{
		Access:  pair.AccessToken,
		Refresh: pair.RefreshToken,
	})
}

func (h *Handler) Refresh(c *ginext.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrInvalidToken.Error()})
		return
	}

	pair, err := h.userService.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AccessTokenResponse{Access: pair.AccessToken})
}

func (h *Handler) Me(c *ginext.Context) {
	ident, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrInvalidToken.Error()})
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), ident.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MeResponse{Username: user.Username, IsAdmin: user.IsAdmin})
}

// Events

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateEvent(c *ginext.Context) {
	ident, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrInvalidToken.Error()})
		return
	}

	input, ok := h.bindEventInput(c)
	if !ok {
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), input, ident.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id, ok := h.eventIDParam(c)
	if !ok {
		return
	}

	input, ok := h.bindEventInput(c)
	if !ok {
		return
	}

	event, err := h.eventService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id, ok := h.eventIDParam(c)
	if !ok {
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Event deleted successfully"})
}

// Bookings

func (h *Handler) BookEvent(c *ginext.Context) {
	ident, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrInvalidToken.Error()})
		return
	}

	eventID, ok := h.eventIDParam(c)
	if !ok {
		return
	}

	_, remaining, err := h.bookingService.Book(c.Request.Context(), eventID, ident.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.BookResponse{
		Message:        "Event booked successfully",
		RemainingSlots: remaining,
	})
}

func (h *Handler) MyBookings(c *ginext.Context) {
	ident, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrInvalidToken.Error()})
		return
	}

	bookings, err := h.bookingService.ListByUser(c.Request.Context(), ident.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserBookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToUserBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// Admin

func (h *Handler) AdminDashboard(c *ginext.Context) {
	stats, err := h.adminService.Stats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatsResponse(stats))
}

func (h *Handler) AdminBookings(c *ginext.Context) {
	bookings, err := h.adminService.ListBookings(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AdminBookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToAdminBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) bindEventInput(c *ginext.Context) (domain.CreateEventInput, bool) {
	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return domain.CreateEventInput{}, false
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date format, expected YYYY-MM-DD",
		})
		return domain.CreateEventInput{}, false
	}

	return domain.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Date:        date,
		Capacity:    *req.Capacity,
	}, true
}

// eventIDParam validates the :id segment. A malformed id cannot reference
// any event, so it reports not-found rather than a validation error.
func (h *Handler) eventIDParam(c *ginext.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		h.handleError(c, domain.ErrEventNotFound)
		return "", false
	}

	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrDuplicateEvent),
		errors.Is(err, domain.ErrAlreadyBooked),
		errors.Is(err, domain.ErrEventFull),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
