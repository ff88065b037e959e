// Package report builds the unified monthly cost report: it pulls charge-out
// and delivery rows for a calendar month, normalizes them into movement
// records, and computes per-line extended prices, running totals and the
// grand total. One aggregator feeds every export format.
package report

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/onu-facilities/partstrack/internal/domain"
	"github.com/onu-facilities/partstrack/internal/domain/entity"
	domreport "github.com/onu-facilities/partstrack/internal/domain/report"
)

// Result is a fully computed monthly report.
type Result struct {
	Period    domreport.Period
	Filter    Filter
	Records   []entity.MovementRecord
	TotalCost decimal.Decimal
}

// Aggregator computes monthly reports from a read-only Source.
// It holds no per-request state; one instance serves concurrent requests.
type Aggregator struct {
	src Source
}

// NewAggregator builds the aggregator.
func NewAggregator(src Source) *Aggregator {
	return &Aggregator{src: src}
}

// Aggregate computes the report for month ("MM/YYYY") and filter.
//
// Ordering is deterministic: date ascending, charge-outs before deliveries on
// equal dates, then source row id ascending. Running totals follow that order;
// the grand total is order-independent.
func (a *Aggregator) Aggregate(ctx context.Context, month string, f Filter) (*Result, error) {
	if month == "" {
		return nil, fmt.Errorf("%w: month", domain.ErrMissingParameter)
	}
	period, err := domreport.ParsePeriod(month)
	if err != nil {
		return nil, err
	}
	start, end := period.Bounds()

	records := make([]entity.MovementRecord, 0)

	if f.IncludesChargeOuts() {
		rows, err := a.src.Issuances(ctx, start, end)
		if err != nil {
			return nil, fmt.Errorf("fetch charge-outs %s: %w", period, err)
		}
		for _, row := range rows {
			records = append(records, normalizeIssuance(row))
		}
	}
	if f.IncludesDeliveries() {
		rows, err := a.src.Deliveries(ctx, start, end)
		if err != nil {
			return nil, fmt.Errorf("fetch deliveries %s: %w", period, err)
		}
		for _, row := range rows {
			records = append(records, normalizeDelivery(row))
		}
	}

	sortRecords(records)

	total := decimal.Zero
	for i := range records {
		total = total.Add(records[i].ExtendedPrice)
		records[i].RunningTotal = total
	}

	return &Result{
		Period:    period,
		Filter:    f,
		Records:   records,
		TotalCost: total,
	}, nil
}

// normalizeIssuance maps a charge-out row to the unified record shape.
// Cost-center attribution prefers the code stored on the row itself and falls
// back to the building's default cost center.
func normalizeIssuance(row IssuanceRow) entity.MovementRecord {
	unitCost := domreport.ResolveUnitCost(decimal.NullDecimal{}, row.PartCost)
	qty := int64Value(row.Quantity)

	costCenter := stringValue(row.DirectCostCenterCode)
	if costCenter == "" {
		costCenter = stringValue(row.BuildingCostCenterCode)
	}

	return entity.MovementRecord{
		Date:           row.IssuedAt,
		PartNumber:     stringValue(row.PartNumber),
		PartName:       stringValue(row.PartName),
		Quantity:       qty,
		UnitCost:       unitCost,
		ExtendedPrice:  domreport.ExtendedPrice(qty, unitCost),
		BuildingName:   stringValue(row.BuildingName),
		CostCenterCode: costCenter,
		Type:           entity.MovementChargeOut,
		SourceID:       row.ID,
	}
}

// normalizeDelivery maps a delivery row to the unified record shape,
// preferring the line-level cost override over the part's stored cost.
func normalizeDelivery(row DeliveryRow) entity.MovementRecord {
	unitCost := domreport.ResolveUnitCost(row.UnitCost, row.PartCost)
	qty := int64Value(row.Quantity)

	return entity.MovementRecord{
		Date:           row.DeliveredAt,
		PartNumber:     stringValue(row.PartNumber),
		PartName:       stringValue(row.PartName),
		Quantity:       qty,
		UnitCost:       unitCost,
		ExtendedPrice:  domreport.ExtendedPrice(qty, unitCost),
		BuildingName:   stringValue(row.BuildingName),
		CostCenterCode: stringValue(row.CostCenter),
		Type:           entity.MovementDelivery,
		SourceID:       row.ID,
	}
}

// sortRecords orders by date, then charge-outs before deliveries, then id.
func sortRecords(records []entity.MovementRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.Type != b.Type {
			return a.Type == entity.MovementChargeOut
		}
		return a.SourceID < b.SourceID
	})
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func int64Value(n *int64) int64 {
	if n == nil {
		return 0
	}
	return *n
}
