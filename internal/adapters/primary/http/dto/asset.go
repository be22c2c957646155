package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"asset-management-service/internal/core/domain"
)

type UpdateAssetRequest struct {
	Status string `json:"status"`
}

// LoanPayload carries a full loan upsert. Absent money fields land as zero,
// matching what a blank tape cell produces.
type LoanPayload struct {
	CurrentBalance  decimal.Decimal  `json:"current_balance"`
	DeferredBalance decimal.Decimal  `json:"deferred_balance"`
	TotalDebt       decimal.Decimal  `json:"total_debt"`
	InterestRate    decimal.Decimal  `json:"interest_rate"`
	MonthlyPayment  decimal.Decimal  `json:"monthly_payment"`
	PurchaseBasis   decimal.Decimal  `json:"purchase_basis"`
	EscrowBalance   *decimal.Decimal `json:"escrow_balance"`
	OriginationDate *time.Time       `json:"origination_date"`
	MaturityDate    *time.Time       `json:"maturity_date"`
	NextDueDate     *time.Time       `json:"next_due_date"`
	LastPaidDate    *time.Time       `json:"last_paid_date"`
}

func (p *LoanPayload) ToDomain() *domain.Loan {
	return &domain.Loan{
		CurrentBalance:  p.CurrentBalance,
		DeferredBalance: p.DeferredBalance,
		TotalDebt:       p.TotalDebt,
		InterestRate:    p.InterestRate,
		MonthlyPayment:  p.MonthlyPayment,
		PurchaseBasis:   p.PurchaseBasis,
		EscrowBalance:   p.EscrowBalance,
		OriginationDate: p.OriginationDate,
		MaturityDate:    p.MaturityDate,
		NextDueDate:     p.NextDueDate,
		LastPaidDate:    p.LastPaidDate,
	}
}

type PropertyPayload struct {
	Street       string           `json:"street"`
	City         string           `json:"city"`
	State        string           `json:"state"`
	Zip          string           `json:"zip"`
	PropertyType string           `json:"property_type"`
	SquareFeet   *int             `json:"square_feet"`
	Beds         *int             `json:"beds"`
	Baths        *decimal.Decimal `json:"baths"`
	YearBuilt    *int             `json:"year_built"`
	Occupancy    string           `json:"occupancy"`
}

func (p *PropertyPayload) ToDomain() *domain.Property {
	occupancy := domain.OccupancyStatus(p.Occupancy)
	if occupancy == "" {
		occupancy = domain.OccupancyUnknown
	}
	return &domain.Property{
		Street:       p.Street,
		City:         p.City,
		State:        p.State,
		Zip:          p.Zip,
		PropertyType: p.PropertyType,
		SquareFeet:   p.SquareFeet,
		Beds:         p.Beds,
		Baths:        p.Baths,
		YearBuilt:    p.YearBuilt,
		Occupancy:    occupancy,
	}
}

type ListAssetsResponse struct {
	Items      []*domain.AssetIdHub `json:"items"`
	Total      int                  `json:"total"`
	PageSize   int                  `json:"page_size"`
	NextOffset int                  `json:"next_offset"`
}
