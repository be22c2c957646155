package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"asset-management-service/internal/core/domain"
)

type CreateTradeRequest struct {
	Name           string          `json:"name" binding:"required,max=200"`
	Seller         string          `json:"seller"`
	Status         string          `json:"status"`
	BidDate        *time.Time      `json:"bid_date"`
	SettlementDate *time.Time      `json:"settlement_date"`
	PurchasePrice  decimal.Decimal `json:"purchase_price"`
	TotalUPB       decimal.Decimal `json:"total_upb"`
}

type UpdateTradeRequest struct {
	Name           *string          `json:"name"`
	Seller         *string          `json:"seller"`
	Status         *string          `json:"status"`
	BidDate        *time.Time       `json:"bid_date"`
	SettlementDate *time.Time       `json:"settlement_date"`
	PurchasePrice  *decimal.Decimal `json:"purchase_price"`
	TotalUPB       *decimal.Decimal `json:"total_upb"`
}

type ListTradesResponse struct {
	Items      []*domain.Trade `json:"items"`
	Total      int             `json:"total"`
	PageSize   int             `json:"page_size"`
	NextOffset int             `json:"next_offset"`
}
