package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mdtreza/booking-api/internal/core/domain"
	"github.com/mdtreza/booking-api/internal/core/ports"
)

// ReservationRepository persists reservations and the joined listings used
// by client and admin views.
type ReservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	const q = `INSERT INTO reservations (user_id, service_id, date_reservation, status) VALUES (?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, q, res.UserID, res.ServiceID, res.DateReservation, res.Status)
	if err != nil {
		return nil, fmt.Errorf("insert reservation: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert reservation: %w", err)
	}

	const sel = `SELECT id, user_id, service_id, date_reservation, status, created_at, updated_at
	             FROM reservations WHERE id = ?`
	var created domain.Reservation
	err = r.db.QueryRowContext(ctx, sel, id).Scan(
		&created.ID, &created.UserID, &created.ServiceID,
		&created.DateReservation, &created.Status, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("load reservation: %w", err)
	}
	return &created, nil
}

// FindByIDForUser loads a reservation only when owned by userID. A foreign
// reservation is indistinguishable from a missing one.
func (r *ReservationRepository) FindByIDForUser(ctx context.Context, id, userID int64) (*domain.Reservation, error) {
	const q = `SELECT id, user_id, service_id, date_reservation, status, created_at, updated_at
	           FROM reservations WHERE id = ? AND user_id = ?`
	var res domain.Reservation
	err := r.db.QueryRowContext(ctx, q, id, userID).Scan(
		&res.ID, &res.UserID, &res.ServiceID,
		&res.DateReservation, &res.Status, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("find reservation: %w", err)
	}
	return &res, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	_, err := r.db.ExecContext(ctx, `UPDATE reservations SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("update reservation status: %w", err)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reservations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}
	if affected == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}

func (r *ReservationRepository) ListByUser(ctx context.Context, userID int64) ([]*ports.UserReservation, error) {
	const q = `SELECT r.id, r.user_id, r.service_id, r.date_reservation, r.status, r.created_at, r.updated_at, s.nom
	           FROM reservations r
	           JOIN services s ON s.id = r.service_id
	           WHERE r.user_id = ?
	           ORDER BY r.date_reservation DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	var out []*ports.UserReservation
	for rows.Next() {
		var item ports.UserReservation
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.ServiceID,
			&item.DateReservation, &item.Status, &item.CreatedAt, &item.UpdatedAt,
			&item.Service.Nom,
		); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		out = append(out, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	return out, nil
}

func (r *ReservationRepository) ListAll(ctx context.Context) ([]*ports.AdminReservation, error) {
	const q = `SELECT r.id, r.user_id, r.service_id, r.date_reservation, r.status, r.created_at, r.updated_at,
	                  u.prenom, u.nom, s.nom
	           FROM reservations r
	           JOIN users u ON u.id = r.user_id
	           JOIN services s ON s.id = r.service_id
	           ORDER BY r.date_reservation DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list all reservations: %w", err)
	}
	defer rows.Close()

	var out []*ports.AdminReservation
	for rows.Next() {
		var item ports.AdminReservation
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.ServiceID,
			&item.DateReservation, &item.Status, &item.CreatedAt, &item.UpdatedAt,
			&item.User.Prenom, &item.User.Nom, &item.Service.Nom,
		); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		out = append(out, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list all reservations: %w", err)
	}
	return out, nil
}
