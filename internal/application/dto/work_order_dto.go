package dto

import "time"

// CreateWorkOrderRequest payload for opening a maintenance work order.
type CreateWorkOrderRequest struct {
	Number      string `json:"number"`
	Description string `json:"description"`
	BuildingID  *int64 `json:"building_id,omitempty"`
}

// WorkOrderResponse work order data returned to clients.
type WorkOrderResponse struct {
	ID          int64      `json:"id"`
	Number      string     `json:"number"`
	Description string     `json:"description"`
	BuildingID  *int64     `json:"building_id,omitempty"`
	Status      string     `json:"status"`
	OpenedAt    time.Time  `json:"opened_at"`
	ClosedAt    *time.Time `json:"closed_at,omitempty"`
}
