package entity

import "time"

// Work order statuses.
const (
	WorkOrderOpen   = "open"
	WorkOrderClosed = "closed"
)

// WorkOrder tracks a maintenance job parts can be charged against.
type WorkOrder struct {
	ID          int64
	Number      string // display number, unique
	Description string
	BuildingID  *int64
	Status      string
	OpenedAt    time.Time
	ClosedAt    *time.Time
}
