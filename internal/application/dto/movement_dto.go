package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordIssuanceRequest payload for recording a charge-out.
// IssuedAt defaults to now when zero. CostCenterCode, BuildingID and
// WorkOrderID are all optional.
type RecordIssuanceRequest struct {
	PartID         int64     `json:"part_id"`
	Quantity       int64     `json:"quantity"`
	IssuedAt       time.Time `json:"issued_at"`
	BuildingID     *int64    `json:"building_id,omitempty"`
	CostCenterCode string    `json:"cost_center_code,omitempty"`
	WorkOrderID    *int64    `json:"work_order_id,omitempty"`
}

// RecordDeliveryRequest payload for recording a delivery to a staff member.
// UnitCost, when present, overrides the part's stored cost for this line.
type RecordDeliveryRequest struct {
	PartID        int64               `json:"part_id"`
	Quantity      int64               `json:"quantity"`
	DeliveredAt   time.Time           `json:"delivered_at"`
	StaffMemberID int64               `json:"staff_member_id"`
	BuildingID    *int64              `json:"building_id,omitempty"`
	CostCenterID  *int64              `json:"cost_center_id,omitempty"`
	UnitCost      decimal.NullDecimal `json:"unit_cost,omitempty"`
}

// MovementResponse confirmation returned after recording a movement.
type MovementResponse struct {
	ID            int64           `json:"id"`
	TransactionID string          `json:"transaction_id"`
	PartID        int64           `json:"part_id"`
	Quantity      int64           `json:"quantity"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	ExtendedPrice decimal.Decimal `json:"extended_price"`
	Date          time.Time       `json:"date"`
}
