package report_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/onu-facilities/partstrack/internal/domain/report"
)

func nd(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func TestResolveUnitCost_OverrideWins(t *testing.T) {
	got := report.ResolveUnitCost(nd("7.25"), nd("10.00"))
	assert.True(t, got.Equal(decimal.RequireFromString("7.25")))
}

func TestResolveUnitCost_FallsBackToPartCost(t *testing.T) {
	got := report.ResolveUnitCost(decimal.NullDecimal{}, nd("10.00"))
	assert.True(t, got.Equal(decimal.RequireFromString("10.00")))
}

func TestResolveUnitCost_BothNull_Zero(t *testing.T) {
	got := report.ResolveUnitCost(decimal.NullDecimal{}, decimal.NullDecimal{})
	assert.True(t, got.Equal(decimal.Zero))
}

// A zero override is a real value, not a missing one. It must not fall
// through to the part's stored cost.
func TestResolveUnitCost_ZeroOverrideIsNotNull(t *testing.T) {
	got := report.ResolveUnitCost(nd("0"), nd("10.00"))
	assert.True(t, got.Equal(decimal.Zero))
}

func TestExtendedPrice(t *testing.T) {
	got := report.ExtendedPrice(3, decimal.RequireFromString("12.50"))
	assert.Equal(t, "37.50", got.StringFixed(2))

	got = report.ExtendedPrice(0, decimal.RequireFromString("12.50"))
	assert.Equal(t, "0.00", got.StringFixed(2))
}
