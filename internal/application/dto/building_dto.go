package dto

// CreateBuildingRequest payload for registering a campus building.
type CreateBuildingRequest struct {
	Name         string `json:"name"`
	CostCenterID *int64 `json:"cost_center_id,omitempty"`
}

// BuildingResponse building data returned to clients.
type BuildingResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	CostCenterID   *int64 `json:"cost_center_id,omitempty"`
	CostCenterCode string `json:"cost_center_code,omitempty"`
}

// CreateCostCenterRequest payload for registering a cost center.
type CreateCostCenterRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CreateStaffRequest payload for registering a delivery recipient.
type CreateStaffRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Title string `json:"title"`
}
