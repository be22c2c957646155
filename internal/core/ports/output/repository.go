package ports

import (
	"context"

	"github.com/google/uuid"

	"asset-management-service/internal/core/domain"
)

type TradeListFilter struct {
	Status string
	Seller string
	Search string
	SortBy string
	Order  string
	Limit  int
	Offset int
}

type AssetListFilter struct {
	TradeID uuid.UUID
	Status  string
	State   string
	Search  string
	SortBy  string
	Order   string
	Limit   int
	Offset  int
}

type TradeRepository interface {
	Create(ctx context.Context, trade *domain.Trade) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Trade, error)
	GetByName(ctx context.Context, name string) (*domain.Trade, error)
	Update(ctx context.Context, trade *domain.Trade) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter TradeListFilter) ([]*domain.Trade, int, error)
	CountAssets(ctx context.Context, tradeID uuid.UUID) (int, error)
}

type AssetRepository interface {
	CreateHub(ctx context.Context, hub *domain.AssetIdHub) error
	GetHub(ctx context.Context, id uuid.UUID) (*domain.AssetIdHub, error)
	GetHubByLoanNumber(ctx context.Context, servicerLoanNumber string) (*domain.AssetIdHub, error)
	UpdateHub(ctx context.Context, hub *domain.AssetIdHub) error
	List(ctx context.Context, filter AssetListFilter) ([]*domain.AssetIdHub, int, error)

	UpsertLoan(ctx context.Context, loan *domain.Loan) error
	GetLoan(ctx context.Context, hubID uuid.UUID) (*domain.Loan, error)

	UpsertProperty(ctx context.Context, property *domain.Property) error
	GetProperty(ctx context.Context, hubID uuid.UUID) (*domain.Property, error)
}
