package usecase

import (
	"errors"

	"seat-booking/internal/data/repository"
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrUnauthenticated       = errors.New("authentication required")
	ErrForbidden             = errors.New("admin access required")
	ErrSeatAlreadyBooked     = errors.New("seat already booked")
	ErrUserAlreadyHasBooking = errors.New("you already have a seat booked, cancel it first to book another")
	ErrSeatNotBooked         = errors.New("seat is not booked")
	ErrNotOwner              = errors.New("you can only cancel your own bookings")
	ErrInvalidSeat           = errors.New("seat does not exist")

	// ErrStoreUnavailable is the only infrastructure fault; callers may retry.
	ErrStoreUnavailable = repository.ErrStoreUnavailable
)

func isStoreFault(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}
