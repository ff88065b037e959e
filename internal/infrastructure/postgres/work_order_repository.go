package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/onu-facilities/partstrack/internal/domain"
	"github.com/onu-facilities/partstrack/internal/domain/entity"
	"github.com/onu-facilities/partstrack/internal/domain/repository"
)

var _ repository.WorkOrderRepository = (*WorkOrderRepo)(nil)

// WorkOrderRepo PostgreSQL adapter for maintenance work orders.
type WorkOrderRepo struct {
	q Querier
}

// NewWorkOrderRepository builds the adapter.
func NewWorkOrderRepository(q Querier) *WorkOrderRepo {
	return &WorkOrderRepo{q: q}
}

const workOrderColumns = `id, number, description, building_id, status, opened_at, closed_at`

// Create persists a work order.
func (r *WorkOrderRepo) Create(ctx context.Context, wo *entity.WorkOrder) error {
	query := `
		INSERT INTO work_orders (number, description, building_id, status, opened_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		wo.Number, wo.Description, wo.BuildingID, wo.Status, wo.OpenedAt).Scan(&wo.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert work order: %w", err)
	}
	return nil
}

// GetByID fetches a work order. Returns (nil, nil) when absent.
func (r *WorkOrderRepo) GetByID(ctx context.Context, id int64) (*entity.WorkOrder, error) {
	query := `SELECT ` + workOrderColumns + ` FROM work_orders WHERE id = $1`
	var wo entity.WorkOrder
	err := r.q.QueryRow(ctx, query, id).Scan(
		&wo.ID, &wo.Number, &wo.Description, &wo.BuildingID, &wo.Status, &wo.OpenedAt, &wo.ClosedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get work order: %w", err)
	}
	return &wo, nil
}

// List returns a page of work orders, newest first, optionally by status.
func (r *WorkOrderRepo) List(ctx context.Context, status string, limit, offset int) ([]*entity.WorkOrder, error) {
	query := `SELECT ` + workOrderColumns + ` FROM work_orders`
	args := []any{}
	pos := 1
	if status != "" {
		query += fmt.Sprintf(" WHERE status = $%d", pos)
		args = append(args, status)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY opened_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list work orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.WorkOrder
	for rows.Next() {
		var wo entity.WorkOrder
		if err := rows.Scan(&wo.ID, &wo.Number, &wo.Description, &wo.BuildingID,
			&wo.Status, &wo.OpenedAt, &wo.ClosedAt); err != nil {
			return nil, fmt.Errorf("scan work order: %w", err)
		}
		list = append(list, &wo)
	}
	return list, rows.Err()
}

// Close marks a work order closed with the current timestamp.
func (r *WorkOrderRepo) Close(ctx context.Context, id int64) error {
	query := `UPDATE work_orders SET status = $2, closed_at = now() WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, entity.WorkOrderClosed)
	if err != nil {
		return fmt.Errorf("close work order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
