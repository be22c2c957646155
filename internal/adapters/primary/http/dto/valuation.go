package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateValuationRequest struct {
	Source        string           `json:"source" binding:"required"`
	AsOfDate      *time.Time       `json:"as_of_date"`
	AsIsValue     decimal.Decimal  `json:"as_is_value" binding:"required"`
	ARVValue      *decimal.Decimal `json:"arv_value"`
	RehabEstimate *decimal.Decimal `json:"rehab_estimate"`
}
