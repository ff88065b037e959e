package export

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/onu-facilities/partstrack/internal/application/report"
	"github.com/onu-facilities/partstrack/internal/domain/entity"
)

const ssNamespace = "urn:schemas-microsoft-com:office:spreadsheet"

// GridRenderer writes the report as an Excel 2003 SpreadsheetML workbook
// (.xls). Finance still opens these straight in Excel; XML escaping comes
// free from etree, so embedded quotes and commas need no special handling.
type GridRenderer struct{}

// NewGridRenderer builds the renderer.
func NewGridRenderer() *GridRenderer { return &GridRenderer{} }

// Render builds the single-worksheet workbook with the same row structure as
// the CSV output: title, blank, header, records, blank, TOTAL.
func (r *GridRenderer) Render(res *report.Result) (*Artifact, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateProcInst("mso-application", `progid="Excel.Sheet"`)

	workbook := doc.CreateElement("Workbook")
	workbook.CreateAttr("xmlns", ssNamespace)
	workbook.CreateAttr("xmlns:ss", ssNamespace)

	worksheet := workbook.CreateElement("Worksheet")
	worksheet.CreateAttr("ss:Name", res.Period.Label())
	table := worksheet.CreateElement("Table")

	addStringRow(table, title(res))
	table.CreateElement("Row") // blank separator
	addStringRow(table, columns...)
	for _, rec := range res.Records {
		addRecordRow(table, rec)
	}
	table.CreateElement("Row") // blank separator
	addStringRow(table, totalCells(res.TotalCost)...)

	doc.Indent(1)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("grid render: %w", err)
	}

	return &Artifact{
		Bytes:       out,
		Filename:    filename(res, "xls"),
		ContentType: "application/vnd.ms-excel",
	}, nil
}

// addRecordRow emits a record with the quantity typed as a Number so Excel
// can sum it; monetary columns stay formatted strings per the column contract.
func addRecordRow(table *etree.Element, rec entity.MovementRecord) {
	row := table.CreateElement("Row")
	cells := recordCells(rec)
	for i, cell := range cells {
		cellType := "String"
		if i == 3 {
			cellType = "Number"
			cell = strconv.FormatInt(rec.Quantity, 10)
		}
		addCell(row, cellType, cell)
	}
}

func addStringRow(table *etree.Element, cells ...string) {
	row := table.CreateElement("Row")
	for _, cell := range cells {
		addCell(row, "String", cell)
	}
}

func addCell(row *etree.Element, cellType, value string) {
	data := row.CreateElement("Cell").CreateElement("Data")
	data.CreateAttr("ss:Type", cellType)
	data.SetText(value)
}
