package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TradeStatus string

const (
	TradeStatusPending  TradeStatus = "PENDING"
	TradeStatusBidding  TradeStatus = "BIDDING"
	TradeStatusAcquired TradeStatus = "ACQUIRED"
	TradeStatusClosed   TradeStatus = "CLOSED"
)

var validTradeStatuses = map[TradeStatus]bool{
	TradeStatusPending:  true,
	TradeStatusBidding:  true,
	TradeStatusAcquired: true,
	TradeStatusClosed:   true,
}

func ValidateTradeStatus(status string) error {
	if status == "" {
		return nil
	}
	if !validTradeStatuses[TradeStatus(status)] {
		return ErrInvalidTradeStatus
	}
	return nil
}

// Trade is a pool of seller loan-tape assets acquired together. Every asset hub
// belongs to exactly one trade.
type Trade struct {
	ID             uuid.UUID       `json:"id"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	Name           string          `json:"name"`
	Seller         string          `json:"seller"`
	Status         TradeStatus     `json:"status"`
	BidDate        *time.Time      `json:"bid_date"`
	SettlementDate *time.Time      `json:"settlement_date"`
	PurchasePrice  decimal.Decimal `json:"purchase_price"`
	TotalUPB       decimal.Decimal `json:"total_upb"`

	// Computed fields
	AssetCount int `json:"asset_count,omitempty"`
}
