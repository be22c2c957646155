package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNPV_ZeroRate(t *testing.T) {
	flows := []decimal.Decimal{dec("-100"), dec("110")}
	result := npv(flows, decimal.Zero)
	assert.Equal(t, "10", result.String())
}

func TestNPV_DiscountsFutureFlows(t *testing.T) {
	flows := []decimal.Decimal{dec("-100"), dec("0"), dec("0"), dec("120")}

	atZero := npv(flows, decimal.Zero)
	atTen := npv(flows, dec("0.10"))

	assert.True(t, atTen.LessThan(atZero))
	assert.True(t, atTen.GreaterThan(decimal.Zero))
}

func TestAnnualizedIRR_DoublingOverOneYear(t *testing.T) {
	// -100 at month 0, 200 at month 12: money doubles in a year.
	flows := make([]decimal.Decimal, 13)
	flows[0] = dec("-100")
	flows[12] = dec("200")

	result := annualizedIRR(flows, -0.99, 5.0)
	assert.Equal(t, "1", result.String())
}

func TestAnnualizedIRR_NearTotalLoss(t *testing.T) {
	// Recover 1 on 100 after a year: annual return of exactly -99%.
	flows := make([]decimal.Decimal, 13)
	flows[0] = dec("-100")
	flows[12] = dec("1")

	result := annualizedIRR(flows, -0.99, 5.0)
	assert.Equal(t, "-0.99", result.String())
}

func TestAnnualizedIRR_ClampedToCap(t *testing.T) {
	flows := make([]decimal.Decimal, 13)
	flows[0] = dec("-100")
	flows[12] = dec("100000")

	result := annualizedIRR(flows, -0.99, 5.0)
	assert.Equal(t, "5", result.String())
}

func TestAnnualizedIRR_DegenerateFlows(t *testing.T) {
	allPositive := []decimal.Decimal{dec("10"), dec("10")}
	assert.True(t, annualizedIRR(allPositive, -0.99, 5.0).IsZero())

	allNegative := []decimal.Decimal{dec("-10"), dec("-10")}
	assert.True(t, annualizedIRR(allNegative, -0.99, 5.0).IsZero())

	assert.True(t, annualizedIRR(nil, -0.99, 5.0).IsZero())
}

func TestMinDecimal(t *testing.T) {
	assert.Equal(t, "1", minDecimal(dec("1"), dec("2")).String())
	assert.Equal(t, "1", minDecimal(dec("2"), dec("1")).String())
}
