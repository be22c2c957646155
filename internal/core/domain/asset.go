package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AssetStatus string

const (
	AssetStatusActive     AssetStatus = "ACTIVE"
	AssetStatusLiquidated AssetStatus = "LIQUIDATED"
	AssetStatusSold       AssetStatus = "SOLD"
	AssetStatusBoardedOff AssetStatus = "BOARDED_OFF"
)

// AssetIdHub is the central join key. Every loan, property, valuation, outcome,
// servicer record and task hangs off a hub row.
type AssetIdHub struct {
	ID                 uuid.UUID   `json:"id"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
	TradeID            uuid.UUID   `json:"trade_id"`
	ServicerLoanNumber string      `json:"servicer_loan_number"`
	SellerAssetID      string      `json:"seller_asset_id"`
	Status             AssetStatus `json:"status"`

	// Populated on detail reads
	Loan     *Loan     `json:"loan,omitempty"`
	Property *Property `json:"property,omitempty"`
}

// Loan holds the note-level fields from the seller tape and servicer feed.
// Money fields are decimals; nil pointers mean the tape had no value.
type Loan struct {
	ID              uuid.UUID        `json:"id"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	AssetHubID      uuid.UUID        `json:"asset_hub_id"`
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

	// Derived on reads, never stored.
	MonthsDlq int `json:"months_dlq"`
}

// MonthsDelinquent derives delinquency depth from the next due date. A loan due
// in the future (or with no due date on file) is current.
func (l *Loan) MonthsDelinquent(asOf time.Time) int {
	if l.NextDueDate == nil || !l.NextDueDate.Before(asOf) {
		return 0
	}
	months := 0
	d := *l.NextDueDate
	for d.Before(asOf) {
		d = d.AddDate(0, 1, 0)
		months++
	}
	return months
}

// TotalPayoff is the full amount owed: UPB plus deferred balance.
func (l *Loan) TotalPayoff() decimal.Decimal {
	return l.CurrentBalance.Add(l.DeferredBalance)
}

type OccupancyStatus string

const (
	OccupancyOccupied OccupancyStatus = "OCCUPIED"
	OccupancyVacant   OccupancyStatus = "VACANT"
	OccupancyUnknown  OccupancyStatus = "UNKNOWN"
)

// Property holds the collateral-level fields for a hub.
type Property struct {
	ID           uuid.UUID        `json:"id"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	AssetHubID   uuid.UUID        `json:"asset_hub_id"`
	Street       string           `json:"street"`
	City         string           `json:"city"`
	State        string           `json:"state"`
	Zip          string           `json:"zip"`
	PropertyType string           `json:"property_type"`
	SquareFeet   *int             `json:"square_feet"`
	Beds         *int             `json:"beds"`
	Baths        *decimal.Decimal `json:"baths"`
	YearBuilt    *int             `json:"year_built"`
	Occupancy    OccupancyStatus  `json:"occupancy"`
}
