// Package etl holds the tape and servicer-feed ingestion pipeline: header
// alias mapping, cell type coercion, and row-level best-effort parsing.
package etl

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// blank cell markers seen across seller tapes.
var blankValues = map[string]bool{
	"":     true,
	"-":    true,
	"--":   true,
	"n/a":  true,
	"na":   true,
	"null": true,
	"none": true,
	"#n/a": true,
}

func isBlank(s string) bool {
	return blankValues[strings.ToLower(strings.TrimSpace(s))]
}

// CoerceDecimal parses a tape money cell. Accepts "$1,234.56", "1234.56",
// "(1,234.56)" for negatives, and currency-suffixed junk. Returns nil for
// blanks and unparseable values; it never errors.
func CoerceDecimal(s string) *decimal.Decimal {
	if isBlank(s) {
		return nil
	}
	v := strings.TrimSpace(s)

	negative := false
	if strings.HasPrefix(v, "(") && strings.HasSuffix(v, ")") {
		negative = true
		v = v[1 : len(v)-1]
	}

	v = strings.NewReplacer("$", "", ",", "", " ", "").Replace(v)
	if v == "" {
		return nil
	}

	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil
	}
	if negative {
		d = d.Neg()
	}
	return &d
}

// CoercePercent parses a rate cell into a fraction. "12.5%" and "12.5" both
// become 0.125; values already below 1 (e.g. "0.125") pass through unscaled.
func CoercePercent(s string) *decimal.Decimal {
	if isBlank(s) {
		return nil
	}
	v := strings.TrimSpace(s)

	explicit := strings.HasSuffix(v, "%")
	v = strings.TrimSuffix(v, "%")

	d := CoerceDecimal(v)
	if d == nil {
		return nil
	}

	hundred := decimal.NewFromInt(100)
	if explicit || d.Abs().GreaterThan(decimal.NewFromInt(1)) {
		scaled := d.Div(hundred)
		return &scaled
	}
	return d
}

var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
	"1/2/06",
	"01-02-2006",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
	"20060102",
}

// excelEpoch is day zero of the 1900 date system, shifted for Excel's
// fictitious 1900-02-29.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// CoerceDate parses a tape date cell. Tries the known layouts first, then
// falls back to interpreting the cell as an Excel serial day number.
func CoerceDate(s string) *time.Time {
	if isBlank(s) {
		return nil
	}
	v := strings.TrimSpace(s)

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			// Two-digit years far in the future are century mistakes.
			if t.Year() > time.Now().Year()+50 {
				t = t.AddDate(-100, 0, 0)
			}
			return &t
		}
	}

	// Excel serial: plausible window covers 1950..2100.
	if serial, err := strconv.ParseFloat(v, 64); err == nil && serial > 18264 && serial < 73415 {
		t := excelEpoch.AddDate(0, 0, int(serial))
		return &t
	}

	return nil
}

// CoerceBool parses Y/N style flags.
func CoerceBool(s string) *bool {
	if isBlank(s) {
		return nil
	}
	var b bool
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "true", "t", "1", "x":
		b = true
	case "n", "no", "false", "f", "0":
		b = false
	default:
		return nil
	}
	return &b
}

// CoerceInt parses whole-number cells, tolerating decimal formatting ("1,250"
// or "1250.0").
func CoerceInt(s string) *int {
	d := CoerceDecimal(s)
	if d == nil {
		return nil
	}
	n := int(d.IntPart())
	return &n
}

// CoerceString trims and blanks out marker values.
func CoerceString(s string) string {
	if isBlank(s) {
		return ""
	}
	return strings.TrimSpace(s)
}
