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

var _ repository.BuildingRepository = (*BuildingRepo)(nil)
var _ repository.CostCenterRepository = (*CostCenterRepo)(nil)

// BuildingRepo PostgreSQL adapter for campus buildings.
type BuildingRepo struct {
	q Querier
}

// NewBuildingRepository builds the adapter.
func NewBuildingRepository(q Querier) *BuildingRepo {
	return &BuildingRepo{q: q}
}

// Create persists a building.
func (r *BuildingRepo) Create(ctx context.Context, b *entity.Building) error {
	query := `
		INSERT INTO buildings (name, cost_center_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id`
	if err := r.q.QueryRow(ctx, query, b.Name, b.CostCenterID, b.CreatedAt).Scan(&b.ID); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert building: %w", err)
	}
	return nil
}

// GetByID fetches a building. Returns (nil, nil) when absent.
func (r *BuildingRepo) GetByID(ctx context.Context, id int64) (*entity.Building, error) {
	query := `SELECT id, name, cost_center_id, created_at FROM buildings WHERE id = $1`
	var b entity.Building
	err := r.q.QueryRow(ctx, query, id).Scan(&b.ID, &b.Name, &b.CostCenterID, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get building: %w", err)
	}
	return &b, nil
}

// List returns a page of buildings ordered by name.
func (r *BuildingRepo) List(ctx context.Context, limit, offset int) ([]*entity.Building, error) {
	query := `SELECT id, name, cost_center_id, created_at FROM buildings ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list buildings: %w", err)
	}
	defer rows.Close()

	var list []*entity.Building
	for rows.Next() {
		var b entity.Building
		if err := rows.Scan(&b.ID, &b.Name, &b.CostCenterID, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan building: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// CostCenterRepo PostgreSQL adapter for cost centers.
type CostCenterRepo struct {
	q Querier
}

// NewCostCenterRepository builds the adapter.
func NewCostCenterRepository(q Querier) *CostCenterRepo {
	return &CostCenterRepo{q: q}
}

// Create persists a cost center. Code is unique.
func (r *CostCenterRepo) Create(ctx context.Context, cc *entity.CostCenter) error {
	query := `INSERT INTO cost_centers (code, name) VALUES ($1, $2) RETURNING id`
	if err := r.q.QueryRow(ctx, query, cc.Code, cc.Name).Scan(&cc.ID); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cost center: %w", err)
	}
	return nil
}

// GetByID fetches a cost center. Returns (nil, nil) when absent.
func (r *CostCenterRepo) GetByID(ctx context.Context, id int64) (*entity.CostCenter, error) {
	query := `SELECT id, code, name FROM cost_centers WHERE id = $1`
	var cc entity.CostCenter
	err := r.q.QueryRow(ctx, query, id).Scan(&cc.ID, &cc.Code, &cc.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cost center: %w", err)
	}
	return &cc, nil
}

// GetByCode fetches a cost center by code. Returns (nil, nil) when absent.
func (r *CostCenterRepo) GetByCode(ctx context.Context, code string) (*entity.CostCenter, error) {
	query := `SELECT id, code, name FROM cost_centers WHERE code = $1`
	var cc entity.CostCenter
	err := r.q.QueryRow(ctx, query, code).Scan(&cc.ID, &cc.Code, &cc.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cost center by code: %w", err)
	}
	return &cc, nil
}

// List returns every cost center ordered by code.
func (r *CostCenterRepo) List(ctx context.Context) ([]*entity.CostCenter, error) {
	rows, err := r.q.Query(ctx, `SELECT id, code, name FROM cost_centers ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("list cost centers: %w", err)
	}
	defer rows.Close()

	var list []*entity.CostCenter
	for rows.Next() {
		var cc entity.CostCenter
		if err := rows.Scan(&cc.ID, &cc.Code, &cc.Name); err != nil {
			return nil, fmt.Errorf("scan cost center: %w", err)
		}
		list = append(list, &cc)
	}
	return list, rows.Err()
}
