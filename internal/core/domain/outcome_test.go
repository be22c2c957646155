package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeeLine_Amount(t *testing.T) {
	gross := mustDec("100000")

	t.Run("flat wins when larger", func(t *testing.T) {
		line := FeeLine{Name: "closing", Flat: mustDec("2500"), Pct: mustDec("0.02")}
		assert.Equal(t, "2500", line.Amount(gross).String())
	})

	t.Run("pct wins when larger", func(t *testing.T) {
		line := FeeLine{Name: "broker", Flat: mustDec("1000"), Pct: mustDec("0.05")}
		assert.Equal(t, "5000", line.Amount(gross).String())
	})
}

func TestLiquidationFees_SumsEveryLine(t *testing.T) {
	gross := mustDec("100000")
	lines := []FeeLine{
		{Name: "broker", Pct: mustDec("0.05")},
		{Name: "closing", Flat: mustDec("500")},
		{Name: "other", Flat: mustDec("250")},
	}
	assert.Equal(t, "5750", LiquidationFees(gross, lines).String())
}
