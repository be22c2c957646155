package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ValueSource string

const (
	ValueSourceInternal  ValueSource = "INTERNAL"
	ValueSourceBPO       ValueSource = "BPO"
	ValueSourceAppraisal ValueSource = "APPRAISAL"
	ValueSourceAVM       ValueSource = "AVM"
	ValueSourceSeller    ValueSource = "SELLER"
)

// ValueSourcePriority orders sources from most to least trusted. Resolution
// walks this list and takes the freshest valuation of the first source present.
var ValueSourcePriority = []ValueSource{
	ValueSourceInternal,
	ValueSourceBPO,
	ValueSourceAppraisal,
	ValueSourceAVM,
	ValueSourceSeller,
}

func ValidateValueSource(source string) error {
	for _, s := range ValueSourcePriority {
		if ValueSource(source) == s {
			return nil
		}
	}
	return ErrInvalidValueSource
}

// Valuation is one opinion of collateral value for a hub.
type Valuation struct {
	ID            uuid.UUID        `json:"id"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	AssetHubID    uuid.UUID        `json:"asset_hub_id"`
	Source        ValueSource      `json:"source"`
	AsOfDate      time.Time        `json:"as_of_date"`
	AsIsValue     decimal.Decimal  `json:"as_is_value"`
	ARVValue      *decimal.Decimal `json:"arv_value"`
	RehabEstimate *decimal.Decimal `json:"rehab_estimate"`
}

// ResolveValuation picks the valuation the modeling layer should trust:
// source priority first, recency within a source. Returns ErrNoValuation when
// the slice is empty.
func ResolveValuation(valuations []*Valuation) (*Valuation, error) {
	for _, source := range ValueSourcePriority {
		var best *Valuation
		for _, v := range valuations {
			if v.Source != source {
				continue
			}
			if best == nil || v.AsOfDate.After(best.AsOfDate) {
				best = v
			}
		}
		if best != nil {
			return best, nil
		}
	}
	return nil, ErrNoValuation
}
