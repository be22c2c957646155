package etl

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"asset-management-service/internal/core/domain"
)

// ServicerRow is one parsed servicer-feed row.
type ServicerRow struct {
	Line               int
	ServicerLoanNumber string
	AsOfDate           time.Time
	UPB                *decimal.Decimal
	EscrowBalance      *decimal.Decimal
	NextDueDate        *time.Time
	LastPaidDate       *time.Time
	StatusCode         string
}

// ParseServicerFeed maps and coerces a servicer feed (header row first).
// Loan number and as-of date are key columns; rows missing either are skipped.
func ParseServicerFeed(rows [][]string) ([]ServicerRow, Stats) {
	var stats Stats
	if len(rows) == 0 {
		return nil, stats
	}

	mapping := MapServicerHeaders(rows[0])
	parsed := make([]ServicerRow, 0, len(rows)-1)

	for i, row := range rows[1:] {
		line := i + 2
		stats.Rows++

		values := RowValues(row, mapping)
		loanNumber := CoerceString(values[FieldLoanNumber])
		asOf := CoerceDate(values[FieldAsOfDate])
		if loanNumber == "" || asOf == nil {
			stats.skip(line, domain.ErrMissingKeyColumn.Error())
			continue
		}

		parsed = append(parsed, ServicerRow{
			Line:               line,
			ServicerLoanNumber: loanNumber,
			AsOfDate:           *asOf,
			UPB:                CoerceDecimal(values[FieldUPB]),
			EscrowBalance:      CoerceDecimal(values[FieldEscrowBalance]),
			NextDueDate:        CoerceDate(values[FieldNextDueDate]),
			LastPaidDate:       CoerceDate(values[FieldLastPaidDate]),
			StatusCode:         CoerceString(values[FieldStatusCode]),
		})
		stats.Parsed++
	}

	return parsed, stats
}

func normalizeState(s string) string {
	v := strings.ToUpper(CoerceString(s))
	if len(v) == 2 {
		return v
	}
	if full, ok := stateNames[strings.ToLower(CoerceString(s))]; ok {
		return full
	}
	return v
}

var stateNames = map[string]string{
	"alabama": "AL", "alaska": "AK", "arizona": "AZ", "arkansas": "AR",
	"california": "CA", "colorado": "CO", "connecticut": "CT", "delaware": "DE",
	"florida": "FL", "georgia": "GA", "hawaii": "HI", "idaho": "ID",
	"illinois": "IL", "indiana": "IN", "iowa": "IA", "kansas": "KS",
	"kentucky": "KY", "louisiana": "LA", "maine": "ME", "maryland": "MD",
	"massachusetts": "MA", "michigan": "MI", "minnesota": "MN", "mississippi": "MS",
	"missouri": "MO", "montana": "MT", "nebraska": "NE", "nevada": "NV",
	"new hampshire": "NH", "new jersey": "NJ", "new mexico": "NM", "new york": "NY",
	"north carolina": "NC", "north dakota": "ND", "ohio": "OH", "oklahoma": "OK",
	"oregon": "OR", "pennsylvania": "PA", "rhode island": "RI", "south carolina": "SC",
	"south dakota": "SD", "tennessee": "TN", "texas": "TX", "utah": "UT",
	"vermont": "VT", "virginia": "VA", "washington": "WA", "west virginia": "WV",
	"wisconsin": "WI", "wyoming": "WY", "district of columbia": "DC", "puerto rico": "PR",
}

func normalizeOccupancy(s string) string {
	switch strings.ToLower(CoerceString(s)) {
	case "occupied", "owner occupied", "tenant", "tenant occupied", "o":
		return string(domain.OccupancyOccupied)
	case "vacant", "v":
		return string(domain.OccupancyVacant)
	case "":
		return string(domain.OccupancyUnknown)
	default:
		return string(domain.OccupancyUnknown)
	}
}
