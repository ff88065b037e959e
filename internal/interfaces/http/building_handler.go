package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/onu-facilities/partstrack/internal/application/dto"
	"github.com/onu-facilities/partstrack/internal/application/usecase"
	"github.com/onu-facilities/partstrack/internal/domain"
)

// BuildingHandler handles buildings and cost centers (protected).
type BuildingHandler struct {
	uc *usecase.BuildingUseCase
}

// NewBuildingHandler builds the handler.
func NewBuildingHandler(uc *usecase.BuildingUseCase) *BuildingHandler {
	return &BuildingHandler{uc: uc}
}

// CreateBuilding godoc
// @Summary      Create a building
// @Tags         buildings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBuildingRequest  true  "name, cost_center_id (optional)"
// @Success      201   {object}  dto.BuildingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/buildings [post]
func (h *BuildingHandler) CreateBuilding(c *fiber.Ctx) error {
	var in dto.CreateBuildingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.CreateBuilding(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name is required"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "COST_CENTER_NOT_FOUND", Message: "cost center does not exist"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetBuilding godoc
// @Summary      Get a building by ID
// @Tags         buildings
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "Building ID"
// @Success      200  {object}  dto.BuildingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/buildings/{id} [get]
func (h *BuildingHandler) GetBuilding(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "numeric id is required"})
	}
	out, err := h.uc.GetBuilding(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "building not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListBuildings godoc
// @Summary      List buildings
// @Tags         buildings
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limit"   default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.BuildingResponse
// @Router       /api/buildings [get]
func (h *BuildingHandler) ListBuildings(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "invalid query parameters"})
	}
	page.DefaultPage()
	out, err := h.uc.ListBuildings(c.Context(), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CreateCostCenter godoc
// @Summary      Create a cost center
// @Tags         buildings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCostCenterRequest  true  "code, name"
// @Success      201   {object}  entity.CostCenter
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cost-centers [post]
func (h *BuildingHandler) CreateCostCenter(c *fiber.Ctx) error {
	var in dto.CreateCostCenterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.CreateCostCenter(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code and name are required"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "cost center code already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListCostCenters godoc
// @Summary      List cost centers
// @Tags         buildings
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.CostCenter
// @Router       /api/cost-centers [get]
func (h *BuildingHandler) ListCostCenters(c *fiber.Ctx) error {
	out, err := h.uc.ListCostCenters(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
