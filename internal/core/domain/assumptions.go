package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StateAssumption carries the per-state modeling defaults: foreclosure
// timelines, legal costs and carry-cost percentages.
type StateAssumption struct {
	ID                 uuid.UUID       `json:"id"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
	State              string          `json:"state"`
	FCTimelineMonths   int             `json:"fc_timeline_months"`
	FCLegalCost        decimal.Decimal `json:"fc_legal_cost"`
	REOMarketingMonths int             `json:"reo_marketing_months"`
	RehabCostPerSqft   decimal.Decimal `json:"rehab_cost_per_sqft"`
	RehabCostFlat      decimal.Decimal `json:"rehab_cost_flat"`
	PropertyTaxPct     decimal.Decimal `json:"property_tax_pct"`
	InsurancePct       decimal.Decimal `json:"insurance_pct"`
}

// GlobalAssumption is the deployment-wide fallback row plus the knobs that have
// no per-state variant (discount rate, fee schedule, disposition pricing).
type GlobalAssumption struct {
	ID                  uuid.UUID       `json:"id"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
	DiscountRateAnnual  decimal.Decimal `json:"discount_rate_annual"`
	FCTimelineMonths    int             `json:"fc_timeline_months"`
	FCLegalCost         decimal.Decimal `json:"fc_legal_cost"`
	REOMarketingMonths  int             `json:"reo_marketing_months"`
	RehabCostPerSqft    decimal.Decimal `json:"rehab_cost_per_sqft"`
	RehabCostFlat       decimal.Decimal `json:"rehab_cost_flat"`
	PropertyTaxPct      decimal.Decimal `json:"property_tax_pct"`
	InsurancePct        decimal.Decimal `json:"insurance_pct"`
	ServicingFeeMonthly decimal.Decimal `json:"servicing_fee_monthly"`
	BrokerFeePct        decimal.Decimal `json:"broker_fee_pct"`
	BrokerFeeFlat       decimal.Decimal `json:"broker_fee_flat"`
	ClosingCostPct      decimal.Decimal `json:"closing_cost_pct"`
	ClosingCostFlat     decimal.Decimal `json:"closing_cost_flat"`
	OtherCostPct        decimal.Decimal `json:"other_cost_pct"`
	OtherCostFlat       decimal.Decimal `json:"other_cost_flat"`
	ShortSalePct        decimal.Decimal `json:"short_sale_pct"`
	DILIncentive        decimal.Decimal `json:"dil_incentive"`
	BorrowerIncentive   decimal.Decimal `json:"borrower_incentive"`
	NoteSalePricePct    decimal.Decimal `json:"note_sale_price_pct"`
	ModTermMonths       int             `json:"mod_term_months"`
	ModNoteSaleMult     decimal.Decimal `json:"mod_note_sale_mult"`
}

// AssetAssumptionOverride pins any subset of the modeling inputs at the asset
// level. Nil fields fall through to the sqft/state/global chain.
type AssetAssumptionOverride struct {
	ID                 uuid.UUID        `json:"id"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
	AssetHubID         uuid.UUID        `json:"asset_hub_id"`
	FCTimelineMonths   *int             `json:"fc_timeline_months"`
	FCLegalCost        *decimal.Decimal `json:"fc_legal_cost"`
	REOMarketingMonths *int             `json:"reo_marketing_months"`
	RehabCost          *decimal.Decimal `json:"rehab_cost"`
	PropertyTaxPct     *decimal.Decimal `json:"property_tax_pct"`
	InsurancePct       *decimal.Decimal `json:"insurance_pct"`
	NoteSalePricePct   *decimal.Decimal `json:"note_sale_price_pct"`
	ShortSalePct       *decimal.Decimal `json:"short_sale_pct"`
}

// ResolvedAssumptions is the flattened input set the outcome models consume.
// Every field is concrete: missing data resolves to the global default, and a
// value missing everywhere resolves to zero rather than an error.
type ResolvedAssumptions struct {
	DiscountRateAnnual  decimal.Decimal `json:"discount_rate_annual"`
	FCTimelineMonths    int             `json:"fc_timeline_months"`
	FCLegalCost         decimal.Decimal `json:"fc_legal_cost"`
	REOMarketingMonths  int             `json:"reo_marketing_months"`
	RehabCost           decimal.Decimal `json:"rehab_cost"`
	PropertyTaxPct      decimal.Decimal `json:"property_tax_pct"`
	InsurancePct        decimal.Decimal `json:"insurance_pct"`
	ServicingFeeMonthly decimal.Decimal `json:"servicing_fee_monthly"`
	BrokerFeePct        decimal.Decimal `json:"broker_fee_pct"`
	BrokerFeeFlat       decimal.Decimal `json:"broker_fee_flat"`
	ClosingCostPct      decimal.Decimal `json:"closing_cost_pct"`
	ClosingCostFlat     decimal.Decimal `json:"closing_cost_flat"`
	OtherCostPct        decimal.Decimal `json:"other_cost_pct"`
	OtherCostFlat       decimal.Decimal `json:"other_cost_flat"`
	ShortSalePct        decimal.Decimal `json:"short_sale_pct"`
	DILIncentive        decimal.Decimal `json:"dil_incentive"`
	BorrowerIncentive   decimal.Decimal `json:"borrower_incentive"`
	NoteSalePricePct    decimal.Decimal `json:"note_sale_price_pct"`
	ModTermMonths       int             `json:"mod_term_months"`
	ModNoteSaleMult     decimal.Decimal `json:"mod_note_sale_mult"`
}
