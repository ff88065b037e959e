package entity

import "time"

// StaffMember is a named recipient for deliveries (not an API user).
type StaffMember struct {
	ID        int64
	Name      string
	Email     string
	Title     string
	Active    bool
	CreatedAt time.Time
}
