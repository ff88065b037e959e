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

var _ repository.PartRepository = (*PartRepo)(nil)

// PartRepo PostgreSQL adapter for parts (usable with pool or tx).
type PartRepo struct {
	q Querier
}

// NewPartRepository builds the adapter. Pass a pool or a tx (Querier).
func NewPartRepository(q Querier) *PartRepo {
	return &PartRepo{q: q}
}

const partColumns = `id, part_number, name, description, unit_cost, on_hand, created_at, updated_at`

// Create persists a new part.
func (r *PartRepo) Create(ctx context.Context, part *entity.Part) error {
	query := `
		INSERT INTO parts (part_number, name, description, unit_cost, on_hand, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		part.PartNumber, part.Name, part.Description, part.UnitCost, part.OnHand,
		part.CreatedAt, part.UpdatedAt,
	).Scan(&part.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert part: %w", err)
	}
	return nil
}

// GetByID fetches a part by id. Returns (nil, nil) when absent.
func (r *PartRepo) GetByID(ctx context.Context, id int64) (*entity.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get part")
}

// GetByNumber fetches a part by its display code. Returns (nil, nil) when absent.
func (r *PartRepo) GetByNumber(ctx context.Context, partNumber string) (*entity.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts WHERE part_number = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, partNumber), "get part by number")
}

// List returns a page of parts ordered by part number.
func (r *PartRepo) List(ctx context.Context, limit, offset int) ([]*entity.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts ORDER BY part_number LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}
	defer rows.Close()

	var list []*entity.Part
	for rows.Next() {
		var p entity.Part
		if err := rows.Scan(&p.ID, &p.PartNumber, &p.Name, &p.Description,
			&p.UnitCost, &p.OnHand, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan part: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update persists editable fields of a part.
func (r *PartRepo) Update(ctx context.Context, part *entity.Part) error {
	query := `
		UPDATE parts SET name = $2, description = $3, unit_cost = $4, updated_at = $5
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		part.ID, part.Name, part.Description, part.UnitCost, part.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update part: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AdjustOnHand applies a signed stock delta. The CHECK constraint on on_hand
// turns an over-issue into ErrInsufficientStock.
func (r *PartRepo) AdjustOnHand(ctx context.Context, id int64, delta int64) error {
	query := `UPDATE parts SET on_hand = on_hand + $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, delta)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInsufficientStock
		}
		return fmt.Errorf("adjust on-hand: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PartRepo) scanOne(row pgx.Row, op string) (*entity.Part, error) {
	var p entity.Part
	err := row.Scan(&p.ID, &p.PartNumber, &p.Name, &p.Description,
		&p.UnitCost, &p.OnHand, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}
