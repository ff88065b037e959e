// Package export serializes a computed monthly report into a downloadable
// artifact. One renderer per output format, all consuming the same record
// list and emitting the same column contract, so adding a format never
// touches the aggregation logic.
package export

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/onu-facilities/partstrack/internal/application/report"
	"github.com/onu-facilities/partstrack/internal/domain"
	"github.com/onu-facilities/partstrack/internal/domain/entity"
)

// Artifact is a rendered report ready to stream to the client.
type Artifact struct {
	Bytes       []byte
	Filename    string
	ContentType string
}

// Renderer turns a computed report into an artifact. Implementations must
// succeed on an empty record list and must never fail on field content.
type Renderer interface {
	Render(res *report.Result) (*Artifact, error)
}

// Formats accepted by ForFormat.
const (
	FormatCSV  = "csv"
	FormatGrid = "grid"
	FormatPDF  = "pdf"
)

// ForFormat selects the renderer for a format string. Empty defaults to CSV;
// anything unrecognized is domain.ErrUnsupportedFormat.
func ForFormat(format string) (Renderer, error) {
	switch format {
	case FormatCSV, "":
		return NewCSVRenderer(), nil
	case FormatGrid, "xls", "xlsx":
		return NewGridRenderer(), nil
	case FormatPDF:
		return NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
}

// Column contract shared by every format. Order matters: downstream
// spreadsheets and the finance office's import scripts parse by position.
var columns = []string{
	"Date",
	"Part Number",
	"Description",
	"Quantity",
	"Unit Cost",
	"Extended Price",
	"Building",
	"Cost Center",
	"Type",
}

const dateLayout = "01/02/2006"

// filename derives the download name from the filter and period only,
// never from record content: ONU-<ReportType>-Report-<MM>-<YYYY>.<ext>
func filename(res *report.Result, ext string) string {
	return fmt.Sprintf("ONU-%s-Report-%02d-%04d.%s",
		res.Filter.ReportTypeName(), int(res.Period.Month), res.Period.Year, ext)
}

// title is the human-readable first line of every artifact.
func title(res *report.Result) string {
	return fmt.Sprintf("ONU Facilities %s Report - %s",
		res.Filter.ReportTypeName(), res.Period)
}

// money formats a decimal as a fixed two-place currency string.
func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// recordCells maps one movement record onto the column contract.
func recordCells(r entity.MovementRecord) []string {
	return []string{
		r.Date.Format(dateLayout),
		r.PartNumber,
		r.PartName,
		strconv.FormatInt(r.Quantity, 10),
		money(r.UnitCost),
		money(r.ExtendedPrice),
		r.BuildingName,
		r.CostCenterCode,
		r.Type.Label(),
	}
}

// totalCells builds the trailing TOTAL row: label in the first column, grand
// total in the Extended Price column, everything else blank.
func totalCells(total decimal.Decimal) []string {
	cells := make([]string, len(columns))
	cells[0] = "TOTAL"
	cells[5] = money(total)
	return cells
}
