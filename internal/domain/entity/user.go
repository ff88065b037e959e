package entity

import "time"

// Application roles.
const (
	RoleAdmin       = "admin"
	RoleSupervisor  = "supervisor"
	RoleStorekeeper = "storekeeper"
)

// User is an API account (storeroom staff, not a delivery recipient).
type User struct {
	ID           string // uuid
	Email        string
	PasswordHash string // bcrypt hash, never plaintext past registration
	Name         string
	Role         string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
