package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mdtreza/booking-api/internal/core/domain"
)

// ServiceRepository persists the bookable service catalog.
type ServiceRepository struct {
	db *sql.DB
}

func NewServiceRepository(db *sql.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) Create(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	const q = `INSERT INTO services (nom, description, prix) VALUES (?, ?, ?)`
	result, err := r.db.ExecContext(ctx, q, svc.Nom, svc.Description, svc.Prix)
	if err != nil {
		return nil, fmt.Errorf("insert service: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert service: %w", err)
	}
	return r.FindByID(ctx, id)
}

func (r *ServiceRepository) FindByID(ctx context.Context, id int64) (*domain.Service, error) {
	const q = `SELECT id, nom, description, prix, created_at, updated_at FROM services WHERE id = ?`
	var svc domain.Service
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&svc.ID, &svc.Nom, &svc.Description, &svc.Prix, &svc.CreatedAt, &svc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, fmt.Errorf("find service: %w", err)
	}
	return &svc, nil
}

func (r *ServiceRepository) List(ctx context.Context) ([]*domain.Service, error) {
	const q = `SELECT id, nom, description, prix, created_at, updated_at FROM services ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var services []*domain.Service
	for rows.Next() {
		var svc domain.Service
		if err := rows.Scan(&svc.ID, &svc.Nom, &svc.Description, &svc.Prix, &svc.CreatedAt, &svc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		services = append(services, &svc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

func (r *ServiceRepository) Update(ctx context.Context, svc *domain.Service) error {
	const q = `UPDATE services SET nom = ?, description = ?, prix = ? WHERE id = ?`
	result, err := r.db.ExecContext(ctx, q, svc.Nom, svc.Description, svc.Prix, svc.ID)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	if _, err := result.RowsAffected(); err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	return nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	if affected == 0 {
		return domain.ErrServiceNotFound
	}
	return nil
}
