package domain

import "errors"

var (
	ErrEventNotFound = errors.New("event not found")
	ErrUserNotFound  = errors.New("user not found")
)

var (
	ErrEventFull      = errors.New("event is fully booked")
	ErrAlreadyBooked  = errors.New("you already booked this event")
	ErrDuplicateEvent = errors.New("an event with the same title, date and location already exists")
)

var (
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

var ErrValidation = errors.New("validation error")
