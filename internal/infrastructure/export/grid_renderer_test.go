package export_test

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onu-facilities/partstrack/internal/application/report"
	"github.com/onu-facilities/partstrack/internal/infrastructure/export"
)

// cellTexts flattens one Row element into its Data values.
func cellTexts(row *etree.Element) []string {
	var out []string
	for _, cell := range row.SelectElements("Cell") {
		if data := cell.SelectElement("Data"); data != nil {
			out = append(out, data.Text())
		}
	}
	return out
}

func TestGridRender_WorkbookStructure(t *testing.T) {
	renderer := export.NewGridRenderer()
	art, err := renderer.Render(sampleResult(report.FilterAll, sampleRecord()))
	require.NoError(t, err)

	assert.Equal(t, "ONU-Parts-Report-04-2025.xls", art.Filename)
	assert.Equal(t, "application/vnd.ms-excel", art.ContentType)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(art.Bytes))

	workbook := doc.SelectElement("Workbook")
	require.NotNil(t, workbook)
	worksheet := workbook.SelectElement("Worksheet")
	require.NotNil(t, worksheet)
	assert.Equal(t, "April 2025", worksheet.SelectAttrValue("ss:Name", ""))

	table := worksheet.SelectElement("Table")
	require.NotNil(t, table)
	rows := table.SelectElements("Row")
	require.Len(t, rows, 6, "title, blank, header, record, blank, total")

	assert.Equal(t, []string{"ONU Facilities Parts Report - 04/2025"}, cellTexts(rows[0]))
	assert.Equal(t, []string{
		"Date", "Part Number", "Description", "Quantity",
		"Unit Cost", "Extended Price", "Building", "Cost Center", "Type",
	}, cellTexts(rows[2]))
	assert.Equal(t, []string{
		"04/09/2025", "FLT-20x20", "Air filter 20x20", "3",
		"$12.50", "$37.50", "Science Hall", "CC-400", "Charge-Out",
	}, cellTexts(rows[3]))

	totalRow := cellTexts(rows[5])
	assert.Equal(t, "TOTAL", totalRow[0])
	assert.Equal(t, "$37.50", totalRow[5])
}

// Quantity is the only numeric cell; everything else stays a string so the
// formatted money values are untouched.
func TestGridRender_QuantityTypedAsNumber(t *testing.T) {
	renderer := export.NewGridRenderer()
	art, err := renderer.Render(sampleResult(report.FilterAll, sampleRecord()))
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(art.Bytes))

	recordRow := doc.FindElement("//Table/Row[4]")
	require.NotNil(t, recordRow)
	cells := recordRow.SelectElements("Cell")
	require.Len(t, cells, 9)
	for i, cell := range cells {
		data := cell.SelectElement("Data")
		require.NotNil(t, data)
		want := "String"
		if i == 3 {
			want = "Number"
		}
		assert.Equal(t, want, data.SelectAttrValue("ss:Type", ""), "column %d", i)
	}
}

// Markup-hostile content must be escaped by the writer and parse back intact.
func TestGridRender_EscapesMarkup(t *testing.T) {
	rec := sampleRecord()
	rec.BuildingName = `<Annex> & "Lab"`

	renderer := export.NewGridRenderer()
	art, err := renderer.Render(sampleResult(report.FilterAll, rec))
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(art.Bytes))
	recordRow := doc.FindElement("//Table/Row[4]")
	require.NotNil(t, recordRow)
	assert.Equal(t, `<Annex> & "Lab"`, cellTexts(recordRow)[6])
}

func TestGridRender_EmptyReport(t *testing.T) {
	renderer := export.NewGridRenderer()
	art, err := renderer.Render(sampleResult(report.FilterDeliveries))
	require.NoError(t, err)

	assert.Equal(t, "ONU-Deliveries-Report-04-2025.xls", art.Filename)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(art.Bytes))
	rows := doc.FindElements("//Table/Row")
	require.Len(t, rows, 5)
	totalRow := cellTexts(rows[4])
	assert.Equal(t, "TOTAL", totalRow[0])
	assert.Equal(t, "$0.00", totalRow[5])
}
