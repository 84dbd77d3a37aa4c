package ports

import (
	"context"

	"github.com/mdtreza/booking-api/internal/core/domain"
)

// CreateReservationInput carries the validated booking payload.
type CreateReservationInput struct {
	UserID          int64
	ServiceID       int64
	DateReservation domain.Date
}

// ReservationService governs the booking lifecycle: confirmed at creation,
// cancellable by the owner while the date has not passed, deletable by an
// admin unconditionally.
type ReservationService interface {
	Create(ctx context.Context, input CreateReservationInput) (*domain.Reservation, error)
	// Cancel transitions the reservation to cancelled. The requester must
	// own it (domain.ErrReservationNotFound otherwise) and the date must not
	// have passed (domain.ErrPastReservation).
	Cancel(ctx context.Context, id, requesterID int64) (*domain.Reservation, error)
	// Delete removes a reservation outright, regardless of date or status.
	Delete(ctx context.Context, id int64) error
	ListForUser(ctx context.Context, userID int64) ([]*UserReservation, error)
	ListAll(ctx context.Context) ([]*AdminReservation, error)
}
