package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Delivery is a part physically delivered to a staff member, usually at a building.
// UnitCost, when valid, overrides the part's stored cost for that line.
type Delivery struct {
	ID            int64
	TransactionID string // uuid grouping lines recorded in one submission
	DeliveredAt   time.Time
	PartID        int64
	Quantity      int64
	BuildingID    *int64
	CostCenterID  *int64
	UnitCost      decimal.NullDecimal // optional override of the part cost
	StaffMemberID int64
	RecordedBy    string // user id
	CreatedAt     time.Time
}
