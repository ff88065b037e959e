package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/onu-facilities/partstrack/internal/application/report"
)

// CSVRenderer writes the report as RFC 4180 CSV. Field quoting is delegated
// to encoding/csv so names like `Hall, "East" Wing` survive a round trip
// through any standard spreadsheet importer.
type CSVRenderer struct{}

// NewCSVRenderer builds the renderer.
func NewCSVRenderer() *CSVRenderer { return &CSVRenderer{} }

// Render emits: title line, blank line, header, one row per record, blank
// line, TOTAL row. Succeeds on an empty record list.
func (r *CSVRenderer) Render(res *report.Result) (*Artifact, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{title(res)},
		{""},
		columns,
	}
	for _, rec := range res.Records {
		rows = append(rows, recordCells(rec))
	}
	rows = append(rows, []string{""}, totalCells(res.TotalCost))

	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("csv render: %w", err)
	}

	return &Artifact{
		Bytes:       buf.Bytes(),
		Filename:    filename(res, "csv"),
		ContentType: "text/csv",
	}, nil
}
