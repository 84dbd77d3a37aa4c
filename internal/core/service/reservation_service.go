package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mdtreza/booking-api/internal/core/domain"
	"github.com/mdtreza/booking-api/internal/core/ports"
)

// ReservationService enforces the booking lifecycle rules on top of the
// reservation and service repositories.
type ReservationService struct {
	reservations ports.ReservationRepository
	services     ports.ServiceRepository
	logger       zerolog.Logger
}

func NewReservationService(reservations ports.ReservationRepository, services ports.ServiceRepository, logger zerolog.Logger) *ReservationService {
	return &ReservationService{reservations: reservations, services: services, logger: logger}
}

// Create books a service for a user. The service must exist and the date
// must not fall before yesterday.
func (s *ReservationService) Create(ctx context.Context, input ports.CreateReservationInput) (*domain.Reservation, error) {
	svc, err := s.services.FindByID(ctx, input.ServiceID)
	if err != nil {
		return nil, err
	}

	if !domain.CanBeBookedOn(input.DateReservation) {
		return nil, domain.ErrInvalidReservationDate
	}

	created, err := s.reservations.Create(ctx, &domain.Reservation{
		UserID:          input.UserID,
		ServiceID:       svc.ID,
		DateReservation: input.DateReservation,
		Status:          domain.StatusConfirmed,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("reservation_id", created.ID).
		Int64("user_id", created.UserID).
		Int64("service_id", created.ServiceID).
		Str("date", created.DateReservation.String()).
		Msg("reservation created")
	return created, nil
}

// Cancel transitions a reservation to cancelled. Ownership is enforced by
// the lookup; a reservation that is already cancelled passes through
// unchanged as long as its date has not passed.
func (s *ReservationService) Cancel(ctx context.Context, id, requesterID int64) (*domain.Reservation, error) {
	res, err := s.reservations.FindByIDForUser(ctx, id, requesterID)
	if err != nil {
		return nil, err
	}

	if res.IsPast() {
		return nil, domain.ErrPastReservation
	}

	res.Status = domain.StatusCancelled
	if err := s.reservations.UpdateStatus(ctx, res.ID, domain.StatusCancelled); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("reservation_id", res.ID).Int64("user_id", requesterID).Msg("reservation cancelled")
	return res, nil
}

// Delete removes a reservation outright, regardless of date or status.
func (s *ReservationService) Delete(ctx context.Context, id int64) error {
	if err := s.reservations.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("reservation_id", id).Msg("reservation deleted")
	return nil
}

func (s *ReservationService) ListForUser(ctx context.Context, userID int64) ([]*ports.UserReservation, error) {
	return s.reservations.ListByUser(ctx, userID)
}

func (s *ReservationService) ListAll(ctx context.Context) ([]*ports.AdminReservation, error) {
	return s.reservations.ListAll(ctx)
}
