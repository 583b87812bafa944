package service

import (
	"context"

	"github.com/perugo/perugo-api/internal/domain"
	"github.com/perugo/perugo-api/internal/repo/postgres"
)

type CatalogService interface {
	ListDestinations(ctx context.Context) ([]domain.Destination, error)
	RecentDestinations(ctx context.Context, limit int) ([]domain.Destination, error)
	GetDestination(ctx context.Context, slug string) (*domain.Destination, error)
}

type catalogService struct {
	destinationRepo postgres.DestinationRepository
}

func NewCatalogService(destinationRepo postgres.DestinationRepository) CatalogService {
	return &catalogService{destinationRepo: destinationRepo}
}

func (s *catalogService) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	destinations, err := s.destinationRepo.List(ctx)
	if err != nil {
		return nil, domain.InternalError("Error interno del servidor", err)
	}
	if destinations == nil {
		destinations = []domain.Destination{}
	}
	return destinations, nil
}

func (s *catalogService) RecentDestinations(ctx context.Context, limit int) ([]domain.Destination, error) {
	destinations, err := s.destinationRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, domain.InternalError("Error interno del servidor", err)
	}
	if destinations == nil {
		destinations = []domain.Destination{}
	}
	return destinations, nil
}

func (s *catalogService) GetDestination(ctx context.Context, slug string) (*domain.Destination, error) {
	destination, err := s.destinationRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, domain.InternalError("Error interno del servidor", err)
	}
	if destination == nil {
		return nil, domain.NotFoundError("Destino no encontrado")
	}
	return destination, nil
}
