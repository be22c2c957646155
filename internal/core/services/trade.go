package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"asset-management-service/internal/core/domain"
	ports "asset-management-service/internal/core/ports/output"
)

type TradeService struct {
	repo ports.TradeRepository
}

func NewTradeService(repo ports.TradeRepository) *TradeService {
	return &TradeService{repo: repo}
}

func (s *TradeService) Create(ctx context.Context, name, seller, status string, bidDate, settlementDate *time.Time, purchasePrice, totalUPB decimal.Decimal) (*domain.Trade, error) {
	if name == "" {
		return nil, domain.ErrInvalidTradeName
	}
	if err := domain.ValidateTradeStatus(status); err != nil {
		return nil, err
	}

	st := domain.TradeStatus(status)
	if st == "" {
		st = domain.TradeStatusPending
	}

	now := time.Now()
	trade := &domain.Trade{
		ID:             uuid.New(),
		CreatedAt:      now,
		UpdatedAt:      now,
		Name:           name,
		Seller:         seller,
		Status:         st,
		BidDate:        bidDate,
		SettlementDate: settlementDate,
		PurchasePrice:  purchasePrice,
		TotalUPB:       totalUPB,
	}

	if err := s.repo.Create(ctx, trade); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, trade.ID)
}

func (s *TradeService) Get(ctx context.Context, id uuid.UUID) (*domain.Trade, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TradeService) List(ctx context.Context, filter ports.TradeListFilter) ([]*domain.Trade, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	return s.repo.List(ctx, filter)
}

func (s *TradeService) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*domain.Trade, error) {
	trade, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if v, ok := updates["name"]; ok && v != nil {
		trade.Name = v.(string)
	}
	if v, ok := updates["seller"]; ok && v != nil {
		trade.Seller = v.(string)
	}
	if v, ok := updates["status"]; ok && v != nil {
		status := v.(string)
		if err := domain.ValidateTradeStatus(status); err != nil {
			return nil, err
		}
		trade.Status = domain.TradeStatus(status)
	}
	if v, ok := updates["bid_date"]; ok {
		trade.BidDate, _ = v.(*time.Time)
	}
	if v, ok := updates["settlement_date"]; ok {
		trade.SettlementDate, _ = v.(*time.Time)
	}
	if v, ok := updates["purchase_price"]; ok && v != nil {
		trade.PurchasePrice = v.(decimal.Decimal)
	}
	if v, ok := updates["total_upb"]; ok && v != nil {
		trade.TotalUPB = v.(decimal.Decimal)
	}

	if err := s.repo.Update(ctx, trade); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Delete refuses while tape assets are still attached.
func (s *TradeService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.repo.CountAssets(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrTradeHasAssets
	}

	return s.repo.Delete(ctx, id)
}
