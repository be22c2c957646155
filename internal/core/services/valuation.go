package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"asset-management-service/internal/core/domain"
	ports "asset-management-service/internal/core/ports/output"
)

type ValuationService struct {
	repo   ports.ValuationRepository
	assets ports.AssetRepository
}

func NewValuationService(repo ports.ValuationRepository, assets ports.AssetRepository) *ValuationService {
	return &ValuationService{repo: repo, assets: assets}
}

func (s *ValuationService) Create(ctx context.Context, v *domain.Valuation) (*domain.Valuation, error) {
	if err := domain.ValidateValueSource(string(v.Source)); err != nil {
		return nil, err
	}
	if _, err := s.assets.GetHub(ctx, v.AssetHubID); err != nil {
		return nil, err
	}

	now := time.Now()
	v.ID = uuid.New()
	v.CreatedAt = now
	v.UpdatedAt = now
	if v.AsOfDate.IsZero() {
		v.AsOfDate = now
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, v.ID)
}

func (s *ValuationService) ListByHub(ctx context.Context, hubID uuid.UUID) ([]*domain.Valuation, error) {
	if _, err := s.assets.GetHub(ctx, hubID); err != nil {
		return nil, err
	}
	return s.repo.ListByHub(ctx, hubID)
}

// Resolved returns the valuation the modeling layer trusts for a hub.
func (s *ValuationService) Resolved(ctx context.Context, hubID uuid.UUID) (*domain.Valuation, error) {
	valuations, err := s.ListByHub(ctx, hubID)
	if err != nil {
		return nil, err
	}
	return domain.ResolveValuation(valuations)
}

func (s *ValuationService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
