package ports

import (
	"context"

	"github.com/mdtreza/booking-api/internal/core/domain"
)

// CreateServiceInput carries the validated payload for a new catalog entry.
type CreateServiceInput struct {
	Nom         string
	Description string
	Prix        float64
}

// UpdateServiceInput carries a partial update; nil fields are left unchanged.
type UpdateServiceInput struct {
	Nom         *string
	Description *string
	Prix        *float64
}

// CatalogService manages the bookable service catalog. Reads are public,
// writes are admin-only (enforced at the routing layer).
type CatalogService interface {
	List(ctx context.Context) ([]*domain.Service, error)
	Get(ctx context.Context, id int64) (*domain.Service, error)
	Create(ctx context.Context, input CreateServiceInput) (*domain.Service, error)
	Update(ctx context.Context, id int64, input UpdateServiceInput) (*domain.Service, error)
	Delete(ctx context.Context, id int64) error
}
