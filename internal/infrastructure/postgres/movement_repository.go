package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/onu-facilities/partstrack/internal/domain/entity"
	"github.com/onu-facilities/partstrack/internal/domain/repository"
)

var _ repository.IssuanceRepository = (*IssuanceRepo)(nil)
var _ repository.DeliveryRepository = (*DeliveryRepo)(nil)

// IssuanceRepo PostgreSQL adapter for charge-outs (usable with pool or tx).
type IssuanceRepo struct {
	q Querier
}

// NewIssuanceRepository builds the adapter. Pass a pool or a tx (Querier).
func NewIssuanceRepository(q Querier) *IssuanceRepo {
	return &IssuanceRepo{q: q}
}

const issuanceColumns = `id, transaction_id, issued_at, part_id, quantity, building_id, cost_center_code, work_order_id, issued_by, created_at`

// Create persists a charge-out.
func (r *IssuanceRepo) Create(ctx context.Context, i *entity.Issuance) error {
	query := `
		INSERT INTO issuances (transaction_id, issued_at, part_id, quantity, building_id, cost_center_code, work_order_id, issued_by, created_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		i.TransactionID, i.IssuedAt, i.PartID, i.Quantity,
		i.BuildingID, i.CostCenterCode, i.WorkOrderID, i.IssuedBy, i.CreatedAt,
	).Scan(&i.ID)
	if err != nil {
		return fmt.Errorf("insert issuance: %w", err)
	}
	return nil
}

// ListByWorkOrder lists charge-outs against one work order, oldest first.
func (r *IssuanceRepo) ListByWorkOrder(ctx context.Context, workOrderID int64) ([]*entity.Issuance, error) {
	query := `SELECT ` + issuanceColumns + ` FROM issuances WHERE work_order_id = $1 ORDER BY issued_at, id`
	rows, err := r.q.Query(ctx, query, workOrderID)
	if err != nil {
		return nil, fmt.Errorf("list issuances by work order: %w", err)
	}
	defer rows.Close()
	return scanIssuances(rows)
}

// ListByPeriod lists charge-outs in an inclusive date range, oldest first.
func (r *IssuanceRepo) ListByPeriod(ctx context.Context, from, to time.Time, limit, offset int) ([]*entity.Issuance, error) {
	query := `
		SELECT ` + issuanceColumns + `
		FROM issuances
		WHERE issued_at BETWEEN $1 AND $2
		ORDER BY issued_at, id LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list issuances by period: %w", err)
	}
	defer rows.Close()
	return scanIssuances(rows)
}

func scanIssuances(rows pgx.Rows) ([]*entity.Issuance, error) {
	var list []*entity.Issuance
	for rows.Next() {
		var i entity.Issuance
		var costCenterCode *string
		if err := rows.Scan(&i.ID, &i.TransactionID, &i.IssuedAt, &i.PartID, &i.Quantity,
			&i.BuildingID, &costCenterCode, &i.WorkOrderID, &i.IssuedBy, &i.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan issuance: %w", err)
		}
		if costCenterCode != nil {
			i.CostCenterCode = *costCenterCode
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// DeliveryRepo PostgreSQL adapter for deliveries (usable with pool or tx).
type DeliveryRepo struct {
	q Querier
}

// NewDeliveryRepository builds the adapter. Pass a pool or a tx (Querier).
func NewDeliveryRepository(q Querier) *DeliveryRepo {
	return &DeliveryRepo{q: q}
}

const deliveryColumns = `id, transaction_id, delivered_at, part_id, quantity, building_id, cost_center_id, unit_cost, staff_member_id, recorded_by, created_at`

// Create persists a delivery.
func (r *DeliveryRepo) Create(ctx context.Context, d *entity.Delivery) error {
	query := `
		INSERT INTO deliveries (transaction_id, delivered_at, part_id, quantity, building_id, cost_center_id, unit_cost, staff_member_id, recorded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		d.TransactionID, d.DeliveredAt, d.PartID, d.Quantity,
		d.BuildingID, d.CostCenterID, d.UnitCost, d.StaffMemberID, d.RecordedBy, d.CreatedAt,
	).Scan(&d.ID)
	if err != nil {
		return fmt.Errorf("insert delivery: %w", err)
	}
	return nil
}

// ListByPeriod lists deliveries in an inclusive date range, oldest first.
func (r *DeliveryRepo) ListByPeriod(ctx context.Context, from, to time.Time, limit, offset int) ([]*entity.Delivery, error) {
	query := `
		SELECT ` + deliveryColumns + `
		FROM deliveries
		WHERE delivered_at BETWEEN $1 AND $2
		ORDER BY delivered_at, id LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list deliveries by period: %w", err)
	}
	defer rows.Close()

	var list []*entity.Delivery
	for rows.Next() {
		var d entity.Delivery
		if err := rows.Scan(&d.ID, &d.TransactionID, &d.DeliveredAt, &d.PartID, &d.Quantity,
			&d.BuildingID, &d.CostCenterID, &d.UnitCost, &d.StaffMemberID, &d.RecordedBy, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan delivery: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
