package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onu-facilities/partstrack/internal/application/report"
	apphttp "github.com/onu-facilities/partstrack/internal/interfaces/http"
	"github.com/onu-facilities/partstrack/pkg/logger"
)

// stubSource feeds the report service one fixed charge-out row.
type stubSource struct {
	issuances []report.IssuanceRow
}

func (s *stubSource) Issuances(_ context.Context, _, _ time.Time) ([]report.IssuanceRow, error) {
	return s.issuances, nil
}

func (s *stubSource) Deliveries(_ context.Context, _, _ time.Time) ([]report.DeliveryRow, error) {
	return []report.DeliveryRow{}, nil
}

func buildReportApp() *fiber.App {
	name := "Air filter 20x20"
	number := "FLT-20x20"
	qty := int64(3)
	src := &stubSource{issuances: []report.IssuanceRow{{
		ID:         1,
		IssuedAt:   time.Date(2025, time.April, 9, 10, 0, 0, 0, time.UTC),
		Quantity:   &qty,
		PartNumber: &number,
		PartName:   &name,
		PartCost:   decimal.NewNullDecimal(decimal.RequireFromString("12.50")),
	}}}

	log := logger.New(logger.Config{Env: "test", Level: "error"})
	svc := report.NewService(
		report.NewAggregator(src),
		report.NewResultCache(4, time.Minute),
		log,
	)

	app := fiber.New()
	handler := apphttp.NewReportHandler(svc)
	app.Get("/api/reports/monthly", handler.Monthly)
	return app
}

func getReport(t *testing.T, app *fiber.App, query string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/reports/monthly"+query, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestReportMonthly_MissingMonth(t *testing.T) {
	app := buildReportApp()
	resp := getReport(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_PARAMETER")
}

func TestReportMonthly_MalformedMonth(t *testing.T) {
	app := buildReportApp()
	resp := getReport(t, app, "?month=2025-04")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "VALIDATION")
}

func TestReportMonthly_UnsupportedFormat(t *testing.T) {
	app := buildReportApp()
	resp := getReport(t, app, "?month=04/2025&format=docx")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "UNSUPPORTED_FORMAT")
}

// The default export is CSV, served as a named attachment.
func TestReportMonthly_CSVDownload(t *testing.T) {
	app := buildReportApp()
	resp := getReport(t, app, "?month=04/2025")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="ONU-Parts-Report-04-2025.csv"`,
		resp.Header.Get("Content-Disposition"))

	body, _ := io.ReadAll(resp.Body)
	text := string(body)
	assert.True(t, strings.HasPrefix(text, "ONU Facilities Parts Report - 04/2025"))
	assert.Contains(t, text, "FLT-20x20")
	assert.Contains(t, text, "$37.50")
	assert.Contains(t, text, "TOTAL")
}

// The type parameter drives the filename, even for an identical record set.
func TestReportMonthly_TypeDrivesFilename(t *testing.T) {
	app := buildReportApp()
	resp := getReport(t, app, "?month=04/2025&type=chargeouts")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "ONU-Charge-Outs-Report-04-2025.csv")
}

func TestReportMonthly_GridFormat(t *testing.T) {
	app := buildReportApp()
	resp := getReport(t, app, "?month=04/2025&format=grid")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/vnd.ms-excel", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".xls")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Excel.Sheet")
}

// Unknown type values fall back to the combined report instead of erroring.
func TestReportMonthly_UnknownTypeFallsBack(t *testing.T) {
	app := buildReportApp()
	resp := getReport(t, app, "?month=04/2025&type=bananas")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "ONU-Parts-Report")
}
