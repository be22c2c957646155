package etl

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"asset-management-service/internal/core/domain"
)

// TapeRow is one parsed seller-tape row. Pointer fields were absent or
// unparseable on the tape.
type TapeRow struct {
	Line               int
	ServicerLoanNumber string
	SellerAssetID      string

	CurrentBalance  *decimal.Decimal
	DeferredBalance *decimal.Decimal
	TotalDebt       *decimal.Decimal
	InterestRate    *decimal.Decimal
	MonthlyPayment  *decimal.Decimal
	PurchaseBasis   *decimal.Decimal
	EscrowBalance   *decimal.Decimal
	OriginationDate *time.Time
	MaturityDate    *time.Time
	NextDueDate     *time.Time
	LastPaidDate    *time.Time

	Street       string
	City         string
	State        string
	Zip          string
	PropertyType string
	SquareFeet   *int
	Beds         *int
	Baths        *decimal.Decimal
	YearBuilt    *int
	Occupancy    string
}

// Stats counts what an import did with its input.
type Stats struct {
	Rows    int      `json:"rows"`
	Parsed  int      `json:"parsed"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

func (s *Stats) skip(line int, reason string) {
	s.Skipped++
	s.Errors = append(s.Errors, fmt.Sprintf("line %d: %s", line, reason))
}

// ParseTape maps and coerces raw rows (header row first) into TapeRows.
// A row without a servicer loan number is skipped and counted; a bad cell
// nulls just that field.
func ParseTape(rows [][]string) ([]TapeRow, Stats) {
	var stats Stats
	if len(rows) == 0 {
		return nil, stats
	}

	mapping := MapTapeHeaders(rows[0])
	parsed := make([]TapeRow, 0, len(rows)-1)

	for i, row := range rows[1:] {
		line := i + 2 // 1-based, after the header
		stats.Rows++

		values := RowValues(row, mapping)
		loanNumber := CoerceString(values[FieldLoanNumber])
		if loanNumber == "" {
			stats.skip(line, domain.ErrMissingKeyColumn.Error())
			continue
		}

		tr := TapeRow{
			Line:               line,
			ServicerLoanNumber: loanNumber,
			SellerAssetID:      CoerceString(values[FieldSellerAssetID]),

			CurrentBalance:  CoerceDecimal(values[FieldCurrentBalance]),
			DeferredBalance: CoerceDecimal(values[FieldDeferredBalance]),
			TotalDebt:       CoerceDecimal(values[FieldTotalDebt]),
			InterestRate:    CoercePercent(values[FieldInterestRate]),
			MonthlyPayment:  CoerceDecimal(values[FieldMonthlyPayment]),
			PurchaseBasis:   CoerceDecimal(values[FieldPurchaseBasis]),
			EscrowBalance:   CoerceDecimal(values[FieldEscrowBalance]),
			OriginationDate: CoerceDate(values[FieldOriginationDate]),
			MaturityDate:    CoerceDate(values[FieldMaturityDate]),
			NextDueDate:     CoerceDate(values[FieldNextDueDate]),
			LastPaidDate:    CoerceDate(values[FieldLastPaidDate]),

			Street:       CoerceString(values[FieldStreet]),
			City:         CoerceString(values[FieldCity]),
			State:        normalizeState(values[FieldState]),
			Zip:          CoerceString(values[FieldZip]),
			PropertyType: CoerceString(values[FieldPropertyType]),
			SquareFeet:   CoerceInt(values[FieldSquareFeet]),
			Beds:         CoerceInt(values[FieldBeds]),
			Baths:        CoerceDecimal(values[FieldBaths]),
			YearBuilt:    CoerceInt(values[FieldYearBuilt]),
			Occupancy:    normalizeOccupancy(values[FieldOccupancy]),
		}

		parsed = append(parsed, tr)
		stats.Parsed++
	}

	return parsed, stats
}
