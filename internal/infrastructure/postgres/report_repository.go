package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/onu-facilities/partstrack/internal/application/report"
)

var _ report.Source = (*ReportRepo)(nil)

// ReportRepo read-only queries feeding the monthly report aggregator.
//
// Everything is LEFT-joined: a deleted part, missing building or absent cost
// center still yields the row, with nil for the joined fields. Dropping a row
// here would silently drop money from the report.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository builds the adapter.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// Issuances fetches charge-out rows in the inclusive range, joined to part,
// building and the building's cost center. The row's own cost_center_code and
// the building's code come back as separate columns; which one wins is the
// aggregator's call.
func (r *ReportRepo) Issuances(ctx context.Context, from, to time.Time) ([]report.IssuanceRow, error) {
	const query = `
	SELECT
	    i.id,
	    i.issued_at,
	    i.quantity,
	    p.part_number,
	    p.name          AS part_name,
	    p.unit_cost     AS part_cost,
	    b.name          AS building_name,
	    i.cost_center_code,
	    cc.code         AS building_cost_center_code
	FROM issuances i
	LEFT JOIN parts        p  ON p.id  = i.part_id
	LEFT JOIN buildings    b  ON b.id  = i.building_id
	LEFT JOIN cost_centers cc ON cc.id = b.cost_center_id
	WHERE i.issued_at BETWEEN $1 AND $2
	ORDER BY i.issued_at, i.id`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("report.Issuances: %w", err)
	}
	defer rows.Close()

	results := make([]report.IssuanceRow, 0)
	for rows.Next() {
		var row report.IssuanceRow
		if err := rows.Scan(
			&row.ID,
			&row.IssuedAt,
			&row.Quantity,
			&row.PartNumber,
			&row.PartName,
			&row.PartCost,
			&row.BuildingName,
			&row.DirectCostCenterCode,
			&row.BuildingCostCenterCode,
		); err != nil {
			return nil, fmt.Errorf("report.Issuances scan: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("report.Issuances rows: %w", err)
	}
	return results, nil
}

// Deliveries fetches delivery rows in the inclusive range, joined to part,
// building, cost center and the receiving staff member.
func (r *ReportRepo) Deliveries(ctx context.Context, from, to time.Time) ([]report.DeliveryRow, error) {
	const query = `
	SELECT
	    d.id,
	    d.delivered_at,
	    d.quantity,
	    p.part_number,
	    p.name      AS part_name,
	    p.unit_cost AS part_cost,
	    d.unit_cost AS cost_override,
	    b.name      AS building_name,
	    cc.code     AS cost_center_code,
	    s.name      AS staff_name
	FROM deliveries d
	LEFT JOIN parts         p  ON p.id  = d.part_id
	LEFT JOIN buildings     b  ON b.id  = d.building_id
	LEFT JOIN cost_centers  cc ON cc.id = d.cost_center_id
	LEFT JOIN staff_members s  ON s.id  = d.staff_member_id
	WHERE d.delivered_at BETWEEN $1 AND $2
	ORDER BY d.delivered_at, d.id`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("report.Deliveries: %w", err)
	}
	defer rows.Close()

	results := make([]report.DeliveryRow, 0)
	for rows.Next() {
		var row report.DeliveryRow
		if err := rows.Scan(
			&row.ID,
			&row.DeliveredAt,
			&row.Quantity,
			&row.PartNumber,
			&row.PartName,
			&row.PartCost,
			&row.UnitCost,
			&row.BuildingName,
			&row.CostCenter,
			&row.StaffName,
		); err != nil {
			return nil, fmt.Errorf("report.Deliveries scan: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("report.Deliveries rows: %w", err)
	}
	return results, nil
}
