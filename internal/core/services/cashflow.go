package services

import (
	"math"

	"github.com/shopspring/decimal"
)

// Cash-flow math runs on float64 internally; results are rounded back to
// decimals before they leave this file.

func flowsToFloat(flows []decimal.Decimal) []float64 {
	out := make([]float64, len(flows))
	for i, f := range flows {
		out[i], _ = f.Float64()
	}
	return out
}

// npv discounts monthly flows (index = month) at an annual rate.
func npv(flows []decimal.Decimal, annualRate decimal.Decimal) decimal.Decimal {
	ff := flowsToFloat(flows)
	ar, _ := annualRate.Float64()
	monthly := math.Pow(1+ar, 1.0/12.0) - 1

	total := 0.0
	for t, cf := range ff {
		total += cf / math.Pow(1+monthly, float64(t))
	}
	return decimal.NewFromFloat(total).Round(2)
}

// irr solves for the monthly rate that zeroes the NPV of the flows, by
// bisection. Returns ok=false when the flows never change sign or the solver
// cannot bracket a root; callers report 0 in that case rather than guessing.
func irr(flows []decimal.Decimal) (float64, bool) {
	ff := flowsToFloat(flows)

	hasNeg, hasPos := false, false
	for _, cf := range ff {
		if cf < 0 {
			hasNeg = true
		}
		if cf > 0 {
			hasPos = true
		}
	}
	if !hasNeg || !hasPos {
		return 0, false
	}

	value := func(r float64) float64 {
		total := 0.0
		for t, cf := range ff {
			total += cf / math.Pow(1+r, float64(t))
		}
		return total
	}

	lo, hi := -0.9999, 10.0
	vLo, vHi := value(lo), value(hi)
	if vLo*vHi > 0 {
		return 0, false
	}

	for i := 0; i < 200; i++ {
		mid := (lo + hi) / 2
		vMid := value(mid)
		if math.Abs(vMid) < 1e-9 {
			return mid, true
		}
		if vLo*vMid < 0 {
			hi, vHi = mid, vMid
		} else {
			lo, vLo = mid, vMid
		}
	}
	return (lo + hi) / 2, true
}

// annualizedIRR converts a monthly rate to annual and clamps it to the
// configured bounds. Degenerate flow sets come through as 0.
func annualizedIRR(flows []decimal.Decimal, floor, cap float64) decimal.Decimal {
	monthly, ok := irr(flows)
	if !ok {
		return decimal.Zero
	}
	annual := math.Pow(1+monthly, 12) - 1
	if annual < floor {
		annual = floor
	}
	if annual > cap {
		annual = cap
	}
	return decimal.NewFromFloat(annual).Round(6)
}

func minDecimal(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}
