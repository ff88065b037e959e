package export

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/onu-facilities/partstrack/internal/application/report"
)

var (
	pdfColorPrimary = &props.Color{Red: 244, Green: 121, Blue: 32} // ONU orange
	pdfColorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Column widths on maroto's 12-column grid, matching the shared contract.
var pdfColWidths = []int{1, 2, 2, 1, 1, 2, 1, 1, 1}

// PDFRenderer writes the report as a letter-size PDF via Maroto.
type PDFRenderer struct{}

// NewPDFRenderer builds the renderer.
func NewPDFRenderer() *PDFRenderer { return &PDFRenderer{} }

// Render lays out the report as a table with the shared column contract:
// title, header, one row per record, rule, TOTAL row.
func (r *PDFRenderer) Render(res *report.Result) (*Artifact, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.Letter).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(title(res), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(res))
	m.AddRows(line.NewRow(1, props.Line{Color: pdfColorPrimary, Thickness: 0.5}))
	m.AddRows(headerRow())
	for _, rec := range res.Records {
		m.AddRows(cellsRow(recordCells(rec), false))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: pdfColorGray, Thickness: 0.3}))
	m.AddRows(cellsRow(totalCells(res.TotalCost), true))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf render: %w", err)
	}

	return &Artifact{
		Bytes:       doc.GetBytes(),
		Filename:    filename(res, "pdf"),
		ContentType: "application/pdf",
	}, nil
}

func titleRow(res *report.Result) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(title(res), props.Text{
				Style: fontstyle.Bold, Size: 12, Color: pdfColorPrimary, Top: 1,
			}),
		),
	)
}

func headerRow() core.Row {
	cols := make([]core.Col, 0, len(columns))
	for i, name := range columns {
		cols = append(cols, col.New(pdfColWidths[i]).Add(
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 8, Top: 1}),
		))
	}
	return row.New(6).Add(cols...)
}

func cellsRow(cells []string, bold bool) core.Row {
	style := fontstyle.Normal
	if bold {
		style = fontstyle.Bold
	}
	cols := make([]core.Col, 0, len(cells))
	for i, cell := range cells {
		textAlign := align.Left
		if i == 3 || i == 4 || i == 5 {
			textAlign = align.Right
		}
		cols = append(cols, col.New(pdfColWidths[i]).Add(
			text.New(cell, props.Text{Size: 8, Style: style, Align: textAlign, Top: 1}),
		))
	}
	return row.New(5).Add(cols...)
}
