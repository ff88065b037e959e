package entity

import "time"

// Issuance is a charge-out: a part consumed internally by a technician.
//
// Cost-center attribution can come from two places: CostCenterCode stored
// directly on the row, or the building's default cost center reached through
// BuildingID. Both are kept; resolution order is decided at report time.
type Issuance struct {
	ID             int64
	TransactionID  string // uuid grouping lines recorded in one submission
	IssuedAt       time.Time
	PartID         int64
	Quantity       int64
	BuildingID     *int64
	CostCenterCode string // optional direct code, may be empty
	WorkOrderID    *int64
	IssuedBy       string // user id
	CreatedAt      time.Time
}
