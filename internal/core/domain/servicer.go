package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServicerRecord is one servicing snapshot for a hub, keyed by as-of date.
// The servicer feed upserts these daily.
type ServicerRecord struct {
	ID            uuid.UUID        `json:"id"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	AssetHubID    uuid.UUID        `json:"asset_hub_id"`
	AsOfDate      time.Time        `json:"as_of_date"`
	UPB           decimal.Decimal  `json:"upb"`
	EscrowBalance *decimal.Decimal `json:"escrow_balance"`
	NextDueDate   *time.Time       `json:"next_due_date"`
	LastPaidDate  *time.Time       `json:"last_paid_date"`
	StatusCode    string           `json:"status_code"`
}
