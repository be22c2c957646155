package etl

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceDecimal_Currency(t *testing.T) {
	d := CoerceDecimal("$1,234.56")
	require.NotNil(t, d)
	assert.Equal(t, "1234.56", d.String())
}

func TestCoerceDecimal_ParenNegative(t *testing.T) {
	d := CoerceDecimal("(1,234.00)")
	require.NotNil(t, d)
	assert.Equal(t, "-1234", d.String())
}

func TestCoerceDecimal_Blanks(t *testing.T) {
	assert.Nil(t, CoerceDecimal(""))
	assert.Nil(t, CoerceDecimal("  "))
	assert.Nil(t, CoerceDecimal("N/A"))
	assert.Nil(t, CoerceDecimal("-"))
	assert.Nil(t, CoerceDecimal("not a number"))
}

func TestCoercePercent_Suffix(t *testing.T) {
	d := CoercePercent("12.5%")
	require.NotNil(t, d)
	assert.Equal(t, "0.125", d.String())
}

func TestCoercePercent_WholeNumber(t *testing.T) {
	// Rates quoted in points get scaled down.
	d := CoercePercent("12.5")
	require.NotNil(t, d)
	assert.Equal(t, "0.125", d.String())
}

func TestCoercePercent_AlreadyFraction(t *testing.T) {
	d := CoercePercent("0.125")
	require.NotNil(t, d)
	assert.Equal(t, "0.125", d.String())
}

func TestCoerceDate_Layouts(t *testing.T) {
	want := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"2024-03-05", "03/05/2024", "3/5/2024", "3/5/24", "20240305"} {
		got := CoerceDate(in)
		require.NotNil(t, got, "input %q", in)
		assert.True(t, got.Equal(want), "input %q got %v", in, got)
	}
}

func TestCoerceDate_ExcelSerial(t *testing.T) {
	// 45356 is 2024-03-05 in the 1900 date system.
	got := CoerceDate("45356")
	require.NotNil(t, got)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 5, got.Day())
}

func TestCoerceDate_Junk(t *testing.T) {
	assert.Nil(t, CoerceDate("soon"))
	assert.Nil(t, CoerceDate(""))
	assert.Nil(t, CoerceDate("13/45/2024"))
}

func TestCoerceBool(t *testing.T) {
	for _, in := range []string{"Y", "yes", "TRUE", "1"} {
		b := CoerceBool(in)
		require.NotNil(t, b, "input %q", in)
		assert.True(t, *b)
	}
	for _, in := range []string{"N", "no", "FALSE", "0"} {
		b := CoerceBool(in)
		require.NotNil(t, b, "input %q", in)
		assert.False(t, *b)
	}
	assert.Nil(t, CoerceBool("maybe"))
	assert.Nil(t, CoerceBool(""))
}

func TestCoerceInt(t *testing.T) {
	n := CoerceInt("1,250")
	require.NotNil(t, n)
	assert.Equal(t, 1250, *n)

	assert.Nil(t, CoerceInt("n/a"))
}
