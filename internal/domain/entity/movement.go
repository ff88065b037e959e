package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType tags the source of a movement record.
type MovementType string

const (
	MovementChargeOut MovementType = "CHARGE_OUT"
	MovementDelivery  MovementType = "DELIVERY"
)

// Label returns the human-readable form used in report output.
func (t MovementType) Label() string {
	switch t {
	case MovementChargeOut:
		return "Charge-Out"
	case MovementDelivery:
		return "Delivery"
	default:
		return string(t)
	}
}

// MovementRecord is the unified report line shape built from an issuance or a
// delivery row. It is constructed per report request and never persisted.
//
// ExtendedPrice = Quantity × resolved UnitCost. RunningTotal is the cumulative
// sum of extended prices up to and including this record, in report order.
type MovementRecord struct {
	Date           time.Time
	PartNumber     string
	PartName       string
	Quantity       int64
	UnitCost       decimal.Decimal
	ExtendedPrice  decimal.Decimal
	RunningTotal   decimal.Decimal
	BuildingName   string
	CostCenterCode string
	Type           MovementType

	// SourceID is the row id in the source table, kept as the final
	// sort tie-breaker so ordering is deterministic.
	SourceID int64
}
