package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePartRequest payload for adding a part to the storeroom catalog.
type CreatePartRequest struct {
	PartNumber  string          `json:"part_number"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	OnHand      int64           `json:"on_hand"`
}

// UpdatePartRequest payload for editing a part. PartNumber is immutable.
type UpdatePartRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
}

// PartResponse part data returned to clients.
type PartResponse struct {
	ID          int64           `json:"id"`
	PartNumber  string          `json:"part_number"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	OnHand      int64           `json:"on_hand"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
