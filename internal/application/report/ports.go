package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// IssuanceRow is one charge-out row as fetched from the data layer, left-joined
// to its part, building and (through the building) cost center. Joined fields
// are pointers: a deleted part or missing building comes back nil, never drops
// the row.
type IssuanceRow struct {
	ID         int64
	IssuedAt   time.Time
	Quantity   *int64
	PartNumber *string
	PartName   *string
	PartCost   decimal.NullDecimal

	BuildingName *string

	// The two cost-center attribution paths, kept separate on purpose:
	// the code stored directly on the issuance row and the code of the
	// building's default cost center.
	DirectCostCenterCode   *string
	BuildingCostCenterCode *string
}

// DeliveryRow is one delivery row as fetched from the data layer, left-joined
// to part, building, cost center and staff recipient.
type DeliveryRow struct {
	ID           int64
	DeliveredAt  time.Time
	Quantity     *int64
	PartNumber   *string
	PartName     *string
	PartCost     decimal.NullDecimal
	UnitCost     decimal.NullDecimal // line-level override
	BuildingName *string
	CostCenter   *string
	StaffName    *string
}

// Source is the read-only data access port the aggregator consumes.
// Implementations must return empty slices, never nil, when nothing matches,
// and must use parameterized queries exclusively.
type Source interface {
	Issuances(ctx context.Context, from, to time.Time) ([]IssuanceRow, error)
	Deliveries(ctx context.Context, from, to time.Time) ([]DeliveryRow, error)
}
