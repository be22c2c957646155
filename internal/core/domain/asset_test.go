package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func mustDec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestLoan_MonthsDelinquent(t *testing.T) {
	asOf := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	t.Run("no due date on file", func(t *testing.T) {
		loan := &Loan{}
		assert.Equal(t, 0, loan.MonthsDelinquent(asOf))
	})

	t.Run("due in the future", func(t *testing.T) {
		due := asOf.AddDate(0, 1, 0)
		loan := &Loan{NextDueDate: &due}
		assert.Equal(t, 0, loan.MonthsDelinquent(asOf))
	})

	t.Run("due today is current", func(t *testing.T) {
		due := asOf
		loan := &Loan{NextDueDate: &due}
		assert.Equal(t, 0, loan.MonthsDelinquent(asOf))
	})

	t.Run("one month past due", func(t *testing.T) {
		due := time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)
		loan := &Loan{NextDueDate: &due}
		assert.Equal(t, 1, loan.MonthsDelinquent(asOf))
	})

	t.Run("multi month gap", func(t *testing.T) {
		due := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
		loan := &Loan{NextDueDate: &due}
		assert.Equal(t, 7, loan.MonthsDelinquent(asOf))
	})
}

func TestLoan_TotalPayoff(t *testing.T) {
	loan := &Loan{CurrentBalance: mustDec("80000"), DeferredBalance: mustDec("12500")}
	assert.Equal(t, "92500", loan.TotalPayoff().String())
}
