package repository

import (
	"context"

	"github.com/onu-facilities/partstrack/internal/domain/entity"
)

// StaffRepository is the persistence port for delivery recipients.
type StaffRepository interface {
	Create(ctx context.Context, s *entity.StaffMember) error
	GetByID(ctx context.Context, id int64) (*entity.StaffMember, error)
	List(ctx context.Context, limit, offset int) ([]*entity.StaffMember, error)
}
