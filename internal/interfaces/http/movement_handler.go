package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/onu-facilities/partstrack/internal/application/dto"
	"github.com/onu-facilities/partstrack/internal/application/inventory"
	"github.com/onu-facilities/partstrack/internal/domain"
)

// MovementHandler handles charge-out and delivery registration (protected).
type MovementHandler struct {
	issuanceUC *inventory.RecordIssuanceUseCase
	deliveryUC *inventory.RecordDeliveryUseCase
}

// NewMovementHandler builds the handler.
func NewMovementHandler(issuanceUC *inventory.RecordIssuanceUseCase, deliveryUC *inventory.RecordDeliveryUseCase) *MovementHandler {
	return &MovementHandler{issuanceUC: issuanceUC, deliveryUC: deliveryUC}
}

// RecordIssuance godoc
// @Summary      Record a charge-out
// @Description  Issues parts against a building or work order and decrements
//               stock in the same transaction.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordIssuanceRequest  true  "part_id, quantity, building_id or work_order_id, cost_center_code (optional)"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements/charge-outs [post]
func (h *MovementHandler) RecordIssuance(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	var in dto.RecordIssuanceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.issuanceUC.Execute(c.Context(), userID, in)
	if err != nil {
		return movementError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RecordDelivery godoc
// @Summary      Record a delivery
// @Description  Issues parts to a staff member, with an optional unit-cost
//               override, and decrements stock in the same transaction.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordDeliveryRequest  true  "part_id, quantity, staff_member_id, unit_cost (optional override)"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements/deliveries [post]
func (h *MovementHandler) RecordDelivery(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	var in dto.RecordDeliveryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.deliveryUC.Execute(c.Context(), userID, in)
	if err != nil {
		return movementError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// movementError maps domain errors shared by both movement kinds.
func movementError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrWorkOrderClosed):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "WORK_ORDER_CLOSED", Message: "work order is closed"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "not enough stock on hand"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
