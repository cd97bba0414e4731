package domain

import "errors"

var (
	ErrFlightNotFound   = errors.New("flight not found")
	ErrInvalidCategory  = errors.New("invalid booking category")
	ErrSeatUnavailable  = errors.New("seat is not available")
	ErrNoSeatsAvailable = errors.New("no seats available in category")
	ErrBookingNotFound  = errors.New("booking not found")

	// ErrSeatNotBooked signals that a seat release was attempted for a seat
	// the flight does not list as booked. The ledger and the flight seat set
	// have diverged, which is a bug, not a user-facing condition.
	ErrSeatNotBooked = errors.New("seat is not booked on flight")
)
