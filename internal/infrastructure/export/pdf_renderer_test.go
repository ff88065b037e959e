package export_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onu-facilities/partstrack/internal/application/report"
	"github.com/onu-facilities/partstrack/internal/infrastructure/export"
)

func TestPDFRender_ProducesDocument(t *testing.T) {
	renderer := export.NewPDFRenderer()
	art, err := renderer.Render(sampleResult(report.FilterChargeOuts, sampleRecord()))
	require.NoError(t, err)

	assert.Equal(t, "ONU-Charge-Outs-Report-04-2025.pdf", art.Filename)
	assert.Equal(t, "application/pdf", art.ContentType)
	require.NotEmpty(t, art.Bytes)
	assert.Equal(t, "%PDF", string(art.Bytes[:4]))
}

func TestPDFRender_EmptyReport(t *testing.T) {
	renderer := export.NewPDFRenderer()
	art, err := renderer.Render(sampleResult(report.FilterAll))
	require.NoError(t, err)
	assert.NotEmpty(t, art.Bytes)
}
