package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/onu-facilities/partstrack/internal/application/dto"
	"github.com/onu-facilities/partstrack/internal/application/report"
	"github.com/onu-facilities/partstrack/internal/domain"
	"github.com/onu-facilities/partstrack/internal/infrastructure/export"
)

// ReportHandler serves the monthly movement report as a downloadable file.
type ReportHandler struct {
	svc *report.Service
}

// NewReportHandler builds the report handler.
func NewReportHandler(svc *report.Service) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// Monthly godoc
// @Summary      Monthly movement report
// @Description  Aggregates charge-outs and deliveries for the requested month
//               and streams the result as a file attachment.
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Param        month   query  string  true   "Report month (MM/YYYY)"
// @Param        type    query  string  false  "all | chargeouts | deliveries (default all)"
// @Param        format  query  string  false  "csv | grid | pdf (default csv)"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/monthly [get]
func (h *ReportHandler) Monthly(c *fiber.Ctx) error {
	month := c.Query("month")
	filter := report.ParseFilter(c.Query("type"))

	renderer, err := export.ForFormat(c.Query("format"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_FORMAT", Message: err.Error()})
	}

	res, err := h.svc.Monthly(c.Context(), month, filter)
	if err != nil {
		if errors.Is(err, domain.ErrMissingParameter) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_PARAMETER", Message: "month is required (MM/YYYY)"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	art, err := renderer.Render(res)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "RENDER", Message: err.Error()})
	}

	c.Set(fiber.HeaderContentType, art.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", art.Filename))
	return c.Send(art.Bytes)
}
