package ports

import (
	"context"

	"github.com/google/uuid"

	"asset-management-service/internal/core/domain"
)

type ValuationRepository interface {
	Create(ctx context.Context, valuation *domain.Valuation) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Valuation, error)
	ListByHub(ctx context.Context, hubID uuid.UUID) ([]*domain.Valuation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type AssumptionRepository interface {
	GetState(ctx context.Context, state string) (*domain.StateAssumption, error)
	UpsertState(ctx context.Context, assumption *domain.StateAssumption) error
	ListStates(ctx context.Context) ([]*domain.StateAssumption, error)

	GetGlobal(ctx context.Context) (*domain.GlobalAssumption, error)
	UpsertGlobal(ctx context.Context, assumption *domain.GlobalAssumption) error

	GetOverride(ctx context.Context, hubID uuid.UUID) (*domain.AssetAssumptionOverride, error)
	UpsertOverride(ctx context.Context, override *domain.AssetAssumptionOverride) error
	DeleteOverride(ctx context.Context, hubID uuid.UUID) error
}
