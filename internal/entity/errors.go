package entity

import "errors"

var (
	// Rsvp errors
	ErrRsvpNotFound       = errors.New("rsvp not found")
	ErrNotPrimary         = errors.New("rsvp is not a primary record")
	ErrNoNames            = errors.New("at least one name is required")
	ErrConfirmationNeeded = errors.New("confirmation required for delete")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized access")

	// General errors
	ErrInvalidInput  = errors.New("invalid input")
	ErrDatabaseError = errors.New("database error")
)
