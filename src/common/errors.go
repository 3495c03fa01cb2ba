package common

import (
	"errors"
	"fmt"
)

var (
	ErrVenueNotFound      = errors.New("Venue not found")
	ErrEventNotFound      = errors.New("Event not found")
	ErrTicketTypeNotFound = errors.New("Ticket type not found")
	ErrBookingNotFound    = errors.New("Booking not found")

	ErrVenueMismatch = errors.New("Venue does not match event venue")
)

// NotEnoughTicketsError carries the remaining count so handlers can echo it
// back in the response message.
type NotEnoughTicketsError struct {
	Available int
}

func (e *NotEnoughTicketsError) Error() string {
	return fmt.Sprintf("Not enough tickets available. Only %d tickets left.", e.Available)
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrVenueNotFound) ||
		errors.Is(err, ErrEventNotFound) ||
		errors.Is(err, ErrTicketTypeNotFound) ||
		errors.Is(err, ErrBookingNotFound)
}

func IsValidationError(err error) bool {
	var insufficient *NotEnoughTicketsError
	return errors.Is(err, ErrVenueMismatch) || errors.As(err, &insufficient)
}
