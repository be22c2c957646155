package etl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapTapeHeaders_Aliases(t *testing.T) {
	headers := []string{"Loan Number", "Curr UPB", "Note Rate", "Property Address", "Sq Ft", "ignored column"}
	mapping := MapTapeHeaders(headers)

	assert.Equal(t, FieldLoanNumber, mapping[0])
	assert.Equal(t, FieldCurrentBalance, mapping[1])
	assert.Equal(t, FieldInterestRate, mapping[2])
	assert.Equal(t, FieldStreet, mapping[3])
	assert.Equal(t, FieldSquareFeet, mapping[4])
	_, ok := mapping[5]
	assert.False(t, ok)
}

func TestMapTapeHeaders_DuplicateColumnFirstWins(t *testing.T) {
	mapping := MapTapeHeaders([]string{"UPB", "Current Balance"})
	assert.Equal(t, FieldCurrentBalance, mapping[0])
	_, ok := mapping[1]
	assert.False(t, ok)
}

func TestParseTape(t *testing.T) {
	rows := [][]string{
		{"Loan Number", "Curr UPB", "Note Rate", "State", "Sq Ft", "Next Due Date"},
		{"0001", "$125,000.50", "7.25%", "tx", "1,850", "03/05/2024"},
		{"", "50000", "6", "CA", "", ""}, // no loan number: skipped
		{"0002", "junk", "", "Florida", "n/a", "bad date"},
	}

	parsed, stats := ParseTape(rows)

	assert.Equal(t, 3, stats.Rows)
	assert.Equal(t, 2, stats.Parsed)
	assert.Equal(t, 1, stats.Skipped)
	require.Len(t, parsed, 2)

	first := parsed[0]
	assert.Equal(t, "0001", first.ServicerLoanNumber)
	require.NotNil(t, first.CurrentBalance)
	assert.Equal(t, "125000.5", first.CurrentBalance.String())
	require.NotNil(t, first.InterestRate)
	assert.Equal(t, "0.0725", first.InterestRate.String())
	assert.Equal(t, "TX", first.State)
	require.NotNil(t, first.SquareFeet)
	assert.Equal(t, 1850, *first.SquareFeet)
	require.NotNil(t, first.NextDueDate)

	// Bad cells null the field without dropping the row.
	second := parsed[1]
	assert.Equal(t, "0002", second.ServicerLoanNumber)
	assert.Nil(t, second.CurrentBalance)
	assert.Nil(t, second.SquareFeet)
	assert.Nil(t, second.NextDueDate)
	assert.Equal(t, "FL", second.State)
}

func TestParseTape_Empty(t *testing.T) {
	parsed, stats := ParseTape(nil)
	assert.Nil(t, parsed)
	assert.Equal(t, 0, stats.Rows)
}

func TestParseServicerFeed(t *testing.T) {
	rows := [][]string{
		{"Loan Number", "As Of Date", "UPB", "Escrow", "Loan Status"},
		{"0001", "2024-03-05", "124,500.00", "1,200.00", "FC"},
		{"0002", "", "90000", "", "PERF"}, // no as-of date: skipped
	}

	parsed, stats := ParseServicerFeed(rows)

	assert.Equal(t, 2, stats.Rows)
	assert.Equal(t, 1, stats.Parsed)
	assert.Equal(t, 1, stats.Skipped)
	require.Len(t, parsed, 1)

	r := parsed[0]
	assert.Equal(t, "0001", r.ServicerLoanNumber)
	assert.Equal(t, 2024, r.AsOfDate.Year())
	require.NotNil(t, r.UPB)
	assert.Equal(t, "124500", r.UPB.String())
	assert.Equal(t, "FC", r.StatusCode)
}
