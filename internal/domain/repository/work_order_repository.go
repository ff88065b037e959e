package repository

import (
	"context"

	"github.com/onu-facilities/partstrack/internal/domain/entity"
)

// WorkOrderRepository is the persistence port for maintenance work orders.
type WorkOrderRepository interface {
	Create(ctx context.Context, wo *entity.WorkOrder) error
	GetByID(ctx context.Context, id int64) (*entity.WorkOrder, error)
	// List filters by status when status is non-empty.
	List(ctx context.Context, status string, limit, offset int) ([]*entity.WorkOrder, error)
	Close(ctx context.Context, id int64) error
}
