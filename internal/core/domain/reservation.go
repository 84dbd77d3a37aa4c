package domain

import (
	"errors"
	"time"
)

// ReservationStatus is the lifecycle state of a booking. The machine has a
// single transition: confirmed → cancelled, which is terminal.
type ReservationStatus string

const (
	StatusConfirmed ReservationStatus = "confirmée"
	StatusCancelled ReservationStatus = "annulée"
)

var ErrReservationNotFound = errors.New("reservation not found")
var ErrPastReservation = errors.New("cannot cancel a past reservation")
var ErrInvalidReservationDate = errors.New("reservation date cannot be in the past")

// Reservation links one user to one service on one calendar date.
type Reservation struct {
	ID              int64             `json:"id"`
	UserID          int64             `json:"userId"`
	ServiceID       int64             `json:"serviceId"`
	DateReservation Date              `json:"dateReservation"`
	Status          ReservationStatus `json:"status"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// CanBeBookedOn reports whether a new reservation may target date. Same-day
// bookings are accepted; the lower bound is yesterday.
func CanBeBookedOn(date Date) bool {
	return !date.Before(Today().AddDays(-1))
}

// IsPast reports whether the reservation's date falls strictly before today,
// in which case it can no longer be cancelled. The check ignores the current
// status: re-cancelling a cancelled future reservation is a no-op, not an
// error.
func (r *Reservation) IsPast() bool {
	return r.DateReservation.Before(Today())
}
