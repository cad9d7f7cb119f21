package usecase

import (
	"errors"
	"strings"
)

var (
	ErrInvalidActor     = errors.New("invalid user")
	ErrPositionConflict = errors.New("position already taken")
	ErrBookingClosed    = errors.New("booking is closed")
)

// BookingClosedError carries the reasons why a booking cannot be changed.
// It matches ErrBookingClosed with errors.Is.
type BookingClosedError struct {
	Reasons []string
}

func (e *BookingClosedError) Error() string {
	return ErrBookingClosed.Error() + ": " + strings.Join(e.Reasons, " ")
}

func (e *BookingClosedError) Is(target error) bool {
	return target == ErrBookingClosed
}
