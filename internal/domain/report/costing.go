package report

import "github.com/shopspring/decimal"

// ResolveUnitCost applies the cost resolution rule for a movement line:
// movement-level override first, then the part's stored cost, then zero.
// A null never propagates into the arithmetic.
func ResolveUnitCost(override, partCost decimal.NullDecimal) decimal.Decimal {
	if override.Valid {
		return override.Decimal
	}
	if partCost.Valid {
		return partCost.Decimal
	}
	return decimal.Zero
}

// ExtendedPrice computes quantity × unit cost for one movement line.
func ExtendedPrice(quantity int64, unitCost decimal.Decimal) decimal.Decimal {
	return unitCost.Mul(decimal.NewFromInt(quantity))
}
