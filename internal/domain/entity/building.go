package entity

import "time"

// Building is a campus building parts can be issued or delivered to.
// A building may carry a default cost center for expenditures charged to it.
type Building struct {
	ID           int64
	Name         string
	CostCenterID *int64
	CreatedAt    time.Time
}
