package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onu-facilities/partstrack/internal/application/report"
	"github.com/onu-facilities/partstrack/internal/domain"
	"github.com/onu-facilities/partstrack/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test fixtures
// ──────────────────────────────────────────────────────────────────────────────

// fakeSource serves canned rows and records the window it was asked for.
type fakeSource struct {
	issuances  []report.IssuanceRow
	deliveries []report.DeliveryRow

	issuanceErr error
	deliveryErr error

	lastFrom time.Time
	lastTo   time.Time
}

func (f *fakeSource) Issuances(_ context.Context, from, to time.Time) ([]report.IssuanceRow, error) {
	f.lastFrom, f.lastTo = from, to
	if f.issuanceErr != nil {
		return nil, f.issuanceErr
	}
	return f.issuances, nil
}

func (f *fakeSource) Deliveries(_ context.Context, from, to time.Time) ([]report.DeliveryRow, error) {
	f.lastFrom, f.lastTo = from, to
	if f.deliveryErr != nil {
		return nil, f.deliveryErr
	}
	return f.deliveries, nil
}

func strPtr(s string) *string { return &s }
func i64Ptr(n int64) *int64   { return &n }

func nd(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func april(day int) time.Time {
	return time.Date(2025, time.April, day, 10, 0, 0, 0, time.UTC)
}

func issuanceRow(id int64, day int, qty int64, partCost string) report.IssuanceRow {
	return report.IssuanceRow{
		ID:                     id,
		IssuedAt:               april(day),
		Quantity:               i64Ptr(qty),
		PartNumber:             strPtr("FLT-20x20"),
		PartName:               strPtr("Air filter 20x20"),
		PartCost:               nd(partCost),
		BuildingName:           strPtr("Science Hall"),
		BuildingCostCenterCode: strPtr("CC-400"),
	}
}

func deliveryRow(id int64, day int, qty int64, partCost string) report.DeliveryRow {
	return report.DeliveryRow{
		ID:          id,
		DeliveredAt: april(day),
		Quantity:    i64Ptr(qty),
		PartNumber:  strPtr("BAT-AA"),
		PartName:    strPtr("AA battery"),
		PartCost:    nd(partCost),
		StaffName:   strPtr("J. Ramos"),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Aggregate
// ──────────────────────────────────────────────────────────────────────────────

// Three charge-outs at $12.50 each in April 2025 must total $37.50 with a
// monotone running total.
func TestAggregate_ChargeOutsOnly(t *testing.T) {
	src := &fakeSource{
		issuances: []report.IssuanceRow{
			issuanceRow(1, 3, 1, "12.50"),
			issuanceRow(2, 10, 1, "12.50"),
			issuanceRow(3, 21, 1, "12.50"),
		},
	}
	agg := report.NewAggregator(src)

	res, err := agg.Aggregate(context.Background(), "04/2025", report.FilterChargeOuts)
	require.NoError(t, err)
	require.Len(t, res.Records, 3)

	assert.Equal(t, "37.50", res.TotalCost.StringFixed(2))
	assert.Equal(t, "12.50", res.Records[0].RunningTotal.StringFixed(2))
	assert.Equal(t, "25.00", res.Records[1].RunningTotal.StringFixed(2))
	assert.Equal(t, "37.50", res.Records[2].RunningTotal.StringFixed(2))
	for _, rec := range res.Records {
		assert.Equal(t, entity.MovementChargeOut, rec.Type)
	}
}

// A combined report mixes both movement kinds and sums across them.
func TestAggregate_AllMovements(t *testing.T) {
	src := &fakeSource{
		issuances:  []report.IssuanceRow{issuanceRow(1, 5, 2, "10.00")},
		deliveries: []report.DeliveryRow{deliveryRow(1, 9, 1, "5.00")},
	}
	agg := report.NewAggregator(src)

	res, err := agg.Aggregate(context.Background(), "04/2025", report.FilterAll)
	require.NoError(t, err)
	require.Len(t, res.Records, 2)

	assert.Equal(t, "25.00", res.TotalCost.StringFixed(2))
	assert.Equal(t, entity.MovementChargeOut, res.Records[0].Type)
	assert.Equal(t, entity.MovementDelivery, res.Records[1].Type)
	assert.Equal(t, report.FilterAll, res.Filter)
}

func TestAggregate_MissingMonth(t *testing.T) {
	agg := report.NewAggregator(&fakeSource{})

	_, err := agg.Aggregate(context.Background(), "", report.FilterAll)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMissingParameter))
}

func TestAggregate_MalformedMonth(t *testing.T) {
	agg := report.NewAggregator(&fakeSource{})

	_, err := agg.Aggregate(context.Background(), "13/2025", report.FilterAll)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

// An empty month is a valid report, not an error.
func TestAggregate_EmptyMonth(t *testing.T) {
	agg := report.NewAggregator(&fakeSource{})

	res, err := agg.Aggregate(context.Background(), "06/2025", report.FilterAll)
	require.NoError(t, err)
	assert.Empty(t, res.Records)
	assert.Equal(t, "0.00", res.TotalCost.StringFixed(2))
}

// The window handed to the source must cover the whole calendar month.
func TestAggregate_QueriesFullMonthWindow(t *testing.T) {
	src := &fakeSource{}
	agg := report.NewAggregator(src)

	_, err := agg.Aggregate(context.Background(), "02/2024", report.FilterAll)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), src.lastFrom)
	assert.Equal(t, 29, src.lastTo.Day(), "leap February runs through the 29th")
	assert.Equal(t, 23, src.lastTo.Hour())
}

// The delivery filter must not touch the issuance query at all, and
// vice versa.
func TestAggregate_FilterSelectsSources(t *testing.T) {
	src := &fakeSource{
		issuances:   []report.IssuanceRow{issuanceRow(1, 5, 1, "10.00")},
		deliveries:  []report.DeliveryRow{deliveryRow(1, 9, 1, "5.00")},
		issuanceErr: nil,
	}
	agg := report.NewAggregator(src)

	res, err := agg.Aggregate(context.Background(), "04/2025", report.FilterDeliveries)
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, entity.MovementDelivery, res.Records[0].Type)
	assert.Equal(t, "5.00", res.TotalCost.StringFixed(2))

	src.deliveryErr = errors.New("boom")
	res, err = agg.Aggregate(context.Background(), "04/2025", report.FilterChargeOuts)
	require.NoError(t, err, "charge-out reports must not hit the delivery source")
	require.Len(t, res.Records, 1)
	assert.Equal(t, entity.MovementChargeOut, res.Records[0].Type)
}

func TestAggregate_SourceErrorPropagates(t *testing.T) {
	src := &fakeSource{issuanceErr: errors.New("connection reset")}
	agg := report.NewAggregator(src)

	_, err := agg.Aggregate(context.Background(), "04/2025", report.FilterAll)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

// Same-date ordering: charge-outs come before deliveries, and within a kind
// rows keep ascending source id.
func TestAggregate_DeterministicOrdering(t *testing.T) {
	src := &fakeSource{
		issuances: []report.IssuanceRow{
			issuanceRow(7, 15, 1, "1.00"),
			issuanceRow(2, 15, 1, "1.00"),
			issuanceRow(4, 2, 1, "1.00"),
		},
		deliveries: []report.DeliveryRow{
			deliveryRow(1, 15, 1, "1.00"),
			deliveryRow(3, 2, 1, "1.00"),
		},
	}
	agg := report.NewAggregator(src)

	res, err := agg.Aggregate(context.Background(), "04/2025", report.FilterAll)
	require.NoError(t, err)
	require.Len(t, res.Records, 5)

	type key struct {
		day int
		typ entity.MovementType
		id  int64
	}
	var got []key
	for _, rec := range res.Records {
		got = append(got, key{rec.Date.Day(), rec.Type, rec.SourceID})
	}
	want := []key{
		{2, entity.MovementChargeOut, 4},
		{2, entity.MovementDelivery, 3},
		{15, entity.MovementChargeOut, 2},
		{15, entity.MovementChargeOut, 7},
		{15, entity.MovementDelivery, 1},
	}
	assert.Equal(t, want, got)
}

// Aggregating the same inputs twice yields identical output.
func TestAggregate_Idempotent(t *testing.T) {
	src := &fakeSource{
		issuances:  []report.IssuanceRow{issuanceRow(1, 5, 2, "10.00"), issuanceRow(2, 8, 1, "3.20")},
		deliveries: []report.DeliveryRow{deliveryRow(1, 9, 4, "5.00")},
	}
	agg := report.NewAggregator(src)

	first, err := agg.Aggregate(context.Background(), "04/2025", report.FilterAll)
	require.NoError(t, err)
	second, err := agg.Aggregate(context.Background(), "04/2025", report.FilterAll)
	require.NoError(t, err)

	assert.Equal(t, first.Records, second.Records)
	assert.True(t, first.TotalCost.Equal(second.TotalCost))
}

// ──────────────────────────────────────────────────────────────────────────────
// Normalization edge cases
// ──────────────────────────────────────────────────────────────────────────────

// A delivery's line-level cost override beats the part's stored cost; the
// extended price follows the resolved cost.
func TestAggregate_DeliveryCostOverride(t *testing.T) {
	row := deliveryRow(1, 12, 3, "5.00")
	row.UnitCost = nd("4.25")
	src := &fakeSource{deliveries: []report.DeliveryRow{row}}
	agg := report.NewAggregator(src)

	res, err := agg.Aggregate(context.Background(), "04/2025", report.FilterDeliveries)
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "4.25", res.Records[0].UnitCost.StringFixed(2))
	assert.Equal(t, "12.75", res.Records[0].ExtendedPrice.StringFixed(2))
}

// Cost-center attribution prefers the code stored on the issuance row and
// falls back to the building's default cost center.
func TestAggregate_CostCenterAttribution(t *testing.T) {
	direct := issuanceRow(1, 3, 1, "1.00")
	direct.DirectCostCenterCode = strPtr("CC-OVERRIDE")
	fallback := issuanceRow(2, 4, 1, "1.00")
	src := &fakeSource{issuances: []report.IssuanceRow{direct, fallback}}
	agg := report.NewAggregator(src)

	res, err := agg.Aggregate(context.Background(), "04/2025", report.FilterChargeOuts)
	require.NoError(t, err)
	require.Len(t, res.Records, 2)
	assert.Equal(t, "CC-OVERRIDE", res.Records[0].CostCenterCode)
	assert.Equal(t, "CC-400", res.Records[1].CostCenterCode)
}

// Rows whose joined part or building disappeared still report, with blank
// descriptive fields and a zero cost.
func TestAggregate_NullJoinedFields(t *testing.T) {
	src := &fakeSource{
		issuances: []report.IssuanceRow{{
			ID:       9,
			IssuedAt: april(7),
			Quantity: i64Ptr(2),
			// every joined column nil
		}},
	}
	agg := report.NewAggregator(src)

	res, err := agg.Aggregate(context.Background(), "04/2025", report.FilterChargeOuts)
	require.NoError(t, err)
	require.Len(t, res.Records, 1)

	rec := res.Records[0]
	assert.Equal(t, "", rec.PartNumber)
	assert.Equal(t, "", rec.BuildingName)
	assert.Equal(t, "", rec.CostCenterCode)
	assert.Equal(t, int64(2), rec.Quantity)
	assert.Equal(t, "0.00", rec.UnitCost.StringFixed(2))
	assert.Equal(t, "0.00", rec.ExtendedPrice.StringFixed(2))
	assert.Equal(t, "0.00", res.TotalCost.StringFixed(2))
}
