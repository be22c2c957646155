package dto

import (
	"github.com/shopspring/decimal"

	"asset-management-service/internal/core/domain"
)

// UpsertStateAssumptionRequest replaces the full per-state default set. The
// state code itself comes from the path.
type UpsertStateAssumptionRequest struct {
	FCTimelineMonths   int             `json:"fc_timeline_months"`
	FCLegalCost        decimal.Decimal `json:"fc_legal_cost"`
	REOMarketingMonths int             `json:"reo_marketing_months"`
	RehabCostPerSqft   decimal.Decimal `json:"rehab_cost_per_sqft"`
	RehabCostFlat      decimal.Decimal `json:"rehab_cost_flat"`
	PropertyTaxPct     decimal.Decimal `json:"property_tax_pct"`
	InsurancePct       decimal.Decimal `json:"insurance_pct"`
}

func (r *UpsertStateAssumptionRequest) ToDomain(state string) *domain.StateAssumption {
	return &domain.StateAssumption{
		State:              state,
		FCTimelineMonths:   r.FCTimelineMonths,
		FCLegalCost:        r.FCLegalCost,
		REOMarketingMonths: r.REOMarketingMonths,
		RehabCostPerSqft:   r.RehabCostPerSqft,
		RehabCostFlat:      r.RehabCostFlat,
		PropertyTaxPct:     r.PropertyTaxPct,
		InsurancePct:       r.InsurancePct,
	}
}

type UpsertGlobalAssumptionRequest struct {
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

func (r *UpsertGlobalAssumptionRequest) ToDomain() *domain.GlobalAssumption {
	return &domain.GlobalAssumption{
		DiscountRateAnnual:  r.DiscountRateAnnual,
		FCTimelineMonths:    r.FCTimelineMonths,
		FCLegalCost:         r.FCLegalCost,
		REOMarketingMonths:  r.REOMarketingMonths,
		RehabCostPerSqft:    r.RehabCostPerSqft,
		RehabCostFlat:       r.RehabCostFlat,
		PropertyTaxPct:      r.PropertyTaxPct,
		InsurancePct:        r.InsurancePct,
		ServicingFeeMonthly: r.ServicingFeeMonthly,
		BrokerFeePct:        r.BrokerFeePct,
		BrokerFeeFlat:       r.BrokerFeeFlat,
		ClosingCostPct:      r.ClosingCostPct,
		ClosingCostFlat:     r.ClosingCostFlat,
		OtherCostPct:        r.OtherCostPct,
		OtherCostFlat:       r.OtherCostFlat,
		ShortSalePct:        r.ShortSalePct,
		DILIncentive:        r.DILIncentive,
		BorrowerIncentive:   r.BorrowerIncentive,
		NoteSalePricePct:    r.NoteSalePricePct,
		ModTermMonths:       r.ModTermMonths,
		ModNoteSaleMult:     r.ModNoteSaleMult,
	}
}

// UpsertOverrideRequest pins asset-level modeling inputs. Nil fields stay
// unpinned and keep falling through to the state and global defaults.
type UpsertOverrideRequest struct {
	FCTimelineMonths   *int             `json:"fc_timeline_months"`
	FCLegalCost        *decimal.Decimal `json:"fc_legal_cost"`
	REOMarketingMonths *int             `json:"reo_marketing_months"`
	RehabCost          *decimal.Decimal `json:"rehab_cost"`
	PropertyTaxPct     *decimal.Decimal `json:"property_tax_pct"`
	InsurancePct       *decimal.Decimal `json:"insurance_pct"`
	NoteSalePricePct   *decimal.Decimal `json:"note_sale_price_pct"`
	ShortSalePct       *decimal.Decimal `json:"short_sale_pct"`
}

func (r *UpsertOverrideRequest) ToDomain() *domain.AssetAssumptionOverride {
	return &domain.AssetAssumptionOverride{
		FCTimelineMonths:   r.FCTimelineMonths,
		FCLegalCost:        r.FCLegalCost,
		REOMarketingMonths: r.REOMarketingMonths,
		RehabCost:          r.RehabCost,
		PropertyTaxPct:     r.PropertyTaxPct,
		InsurancePct:       r.InsurancePct,
		NoteSalePricePct:   r.NoteSalePricePct,
		ShortSalePct:       r.ShortSalePct,
	}
}
