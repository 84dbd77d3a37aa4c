package ports

import (
	"context"

	"github.com/mdtreza/booking-api/internal/core/domain"
)

// ServiceRepository defines persistence operations for the service catalog.
type ServiceRepository interface {
	Create(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	FindByID(ctx context.Context, id int64) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
	Update(ctx context.Context, svc *domain.Service) error
	// Delete removes a service. Returns domain.ErrServiceNotFound when absent.
	Delete(ctx context.Context, id int64) error
}
