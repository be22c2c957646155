package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OutcomeType string

const (
	OutcomeFC           OutcomeType = "FC"
	OutcomeREO          OutcomeType = "REO"
	OutcomeShortSale    OutcomeType = "SHORT_SALE"
	OutcomeDIL          OutcomeType = "DIL"
	OutcomeModification OutcomeType = "MODIFICATION"
	OutcomeNoteSale     OutcomeType = "NOTE_SALE"
)

// OutcomeTypes lists the disposition paths in summary display order.
var OutcomeTypes = []OutcomeType{
	OutcomeFC,
	OutcomeREO,
	OutcomeShortSale,
	OutcomeDIL,
	OutcomeModification,
	OutcomeNoteSale,
}

func ValidateOutcomeType(t string) error {
	for _, ot := range OutcomeTypes {
		if OutcomeType(t) == ot {
			return nil
		}
	}
	return ErrInvalidOutcomeType
}

type OutcomeStatus string

const (
	OutcomeStatusDraft    OutcomeStatus = "DRAFT"
	OutcomeStatusModeled  OutcomeStatus = "MODELED"
	OutcomeStatusComplete OutcomeStatus = "COMPLETE"
)

// Outcome is one modeled disposition path for a hub. At most one outcome per
// hub is active at a time.
type Outcome struct {
	ID             uuid.UUID       `json:"id"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	AssetHubID     uuid.UUID       `json:"asset_hub_id"`
	Type           OutcomeType     `json:"type"`
	Status         OutcomeStatus   `json:"status"`
	Active         bool            `json:"active"`
	DurationMonths int             `json:"duration_months"`
	GrossProceeds  decimal.Decimal `json:"gross_proceeds"`
	LegalCost      decimal.Decimal `json:"legal_cost"`
	RehabCost      decimal.Decimal `json:"rehab_cost"`
	CarryCost      decimal.Decimal `json:"carry_cost"`
	IncentiveCost  decimal.Decimal `json:"incentive_cost"`
	LiquidationFee decimal.Decimal `json:"liquidation_fee"`
	NetProceeds    decimal.Decimal `json:"net_proceeds"`
	NetPV          decimal.Decimal `json:"net_pv"`
	GrossIRR       decimal.Decimal `json:"gross_irr"`
	NetIRR         decimal.Decimal `json:"net_irr"`
	ModeledAt      *time.Time      `json:"modeled_at"`
}

// OutcomeSummary compares every modeled outcome on a hub and flags the one the
// platform recommends (highest net PV).
type OutcomeSummary struct {
	AssetHubID  uuid.UUID    `json:"asset_hub_id"`
	Outcomes    []*Outcome   `json:"outcomes"`
	Recommended *OutcomeType `json:"recommended"`
}

// FeeLine is one entry in the liquidation-fee waterfall: the charge is the
// greater of the flat fee and the percentage applied to gross proceeds.
type FeeLine struct {
	Name string          `json:"name"`
	Flat decimal.Decimal `json:"flat"`
	Pct  decimal.Decimal `json:"pct"`
}

// Amount applies the waterfall rule for a single line.
func (f FeeLine) Amount(grossProceeds decimal.Decimal) decimal.Decimal {
	pctFee := grossProceeds.Mul(f.Pct)
	if f.Flat.GreaterThan(pctFee) {
		return f.Flat
	}
	return pctFee
}

// LiquidationFees sums the waterfall across fee lines.
func LiquidationFees(grossProceeds decimal.Decimal, lines []FeeLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Amount(grossProceeds))
	}
	return total
}
