package ports

import (
	"context"

	"github.com/mdtreza/booking-api/internal/core/domain"
)

// ServiceRef is the service display name joined onto reservation listings.
type ServiceRef struct {
	Nom string `json:"nom"`
}

// UserRef is the owner display name joined onto admin reservation listings.
type UserRef struct {
	Prenom string `json:"prenom"`
	Nom    string `json:"nom"`
}

// UserReservation is a reservation joined with its service name, as shown
// to the owning client.
type UserReservation struct {
	domain.Reservation
	Service ServiceRef `json:"service"`
}

// AdminReservation additionally carries the owner's display name.
type AdminReservation struct {
	domain.Reservation
	User    UserRef    `json:"user"`
	Service ServiceRef `json:"service"`
}

// ReservationRepository defines persistence operations for reservations.
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	// FindByIDForUser loads a reservation only when owned by userID;
	// returns domain.ErrReservationNotFound otherwise.
	FindByIDForUser(ctx context.Context, id, userID int64) (*domain.Reservation, error)
	// UpdateStatus persists a status transition.
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	// Delete removes a reservation regardless of status or date.
	Delete(ctx context.Context, id int64) error
	// ListByUser returns the user's reservations joined with service names,
	// ordered by reservation date descending.
	ListByUser(ctx context.Context, userID int64) ([]*UserReservation, error)
	// ListAll returns every reservation joined with owner and service names,
	// ordered by reservation date descending.
	ListAll(ctx context.Context) ([]*AdminReservation, error)
}
