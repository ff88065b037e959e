package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/onu-facilities/partstrack/internal/domain/entity"
	"github.com/onu-facilities/partstrack/internal/domain/repository"
)

var _ repository.StaffRepository = (*StaffRepo)(nil)

// StaffRepo PostgreSQL adapter for delivery recipients.
type StaffRepo struct {
	q Querier
}

// NewStaffRepository builds the adapter.
func NewStaffRepository(q Querier) *StaffRepo {
	return &StaffRepo{q: q}
}

// Create persists a staff member.
func (r *StaffRepo) Create(ctx context.Context, s *entity.StaffMember) error {
	query := `
		INSERT INTO staff_members (name, email, title, active, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	if err := r.q.QueryRow(ctx, query, s.Name, s.Email, s.Title, s.Active, s.CreatedAt).Scan(&s.ID); err != nil {
		return fmt.Errorf("insert staff member: %w", err)
	}
	return nil
}

// GetByID fetches a staff member. Returns (nil, nil) when absent.
func (r *StaffRepo) GetByID(ctx context.Context, id int64) (*entity.StaffMember, error) {
	query := `SELECT id, name, email, title, active, created_at FROM staff_members WHERE id = $1`
	var s entity.StaffMember
	err := r.q.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.Email, &s.Title, &s.Active, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get staff member: %w", err)
	}
	return &s, nil
}

// List returns a page of staff members ordered by name.
func (r *StaffRepo) List(ctx context.Context, limit, offset int) ([]*entity.StaffMember, error) {
	query := `SELECT id, name, email, title, active, created_at FROM staff_members ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list staff members: %w", err)
	}
	defer rows.Close()

	var list []*entity.StaffMember
	for rows.Next() {
		var s entity.StaffMember
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Title, &s.Active, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan staff member: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
