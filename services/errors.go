package services

import "errors"

// Domain errors surfaced to controllers, which map them to HTTP codes.
var (
	// ErrInvalidRange means check_in/check_out are missing or check_in is
	// not strictly before check_out. Detected before any query runs.
	ErrInvalidRange = errors.New("check_in must be strictly before check_out")

	// ErrNotAvailable means the room is in maintenance or an active booking
	// overlaps the requested range at check time.
	ErrNotAvailable = errors.New("room is not available for the requested period")

	ErrRoomNotFound        = errors.New("room not found")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrDuplicateRoomNumber = errors.New("room number already exists")
	ErrInvalidTransition   = errors.New("booking status transition not allowed")
)
