package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mdtreza/booking-api/internal/core/domain"
	"github.com/mdtreza/booking-api/internal/core/ports"
)

// CatalogService is thin orchestration over the service repository; the
// admin gate lives in the routing layer.
type CatalogService struct {
	repo   ports.ServiceRepository
	logger zerolog.Logger
}

func NewCatalogService(repo ports.ServiceRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

func (s *CatalogService) List(ctx context.Context) ([]*domain.Service, error) {
	return s.repo.List(ctx)
}

func (s *CatalogService) Get(ctx context.Context, id int64) (*domain.Service, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CatalogService) Create(ctx context.Context, input ports.CreateServiceInput) (*domain.Service, error) {
	created, err := s.repo.Create(ctx, &domain.Service{
		Nom:         input.Nom,
		Description: input.Description,
		Prix:        input.Prix,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("service_id", created.ID).Str("nom", created.Nom).Msg("service created")
	return created, nil
}

// Update applies only the fields present in the input.
func (s *CatalogService) Update(ctx context.Context, id int64, input ports.UpdateServiceInput) (*domain.Service, error) {
	svc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Nom != nil {
		svc.Nom = *input.Nom
	}
	if input.Description != nil {
		svc.Description = *input.Description
	}
	if input.Prix != nil {
		svc.Prix = *input.Prix
	}

	if err := s.repo.Update(ctx, svc); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("service_id", svc.ID).Str("nom", svc.Nom).Msg("service updated")
	return svc, nil
}

func (s *CatalogService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("service_id", id).Msg("service deleted")
	return nil
}
