package repository

import (
	"context"

	"github.com/onu-facilities/partstrack/internal/domain/entity"
)

// BuildingRepository is the persistence port for campus buildings.
type BuildingRepository interface {
	Create(ctx context.Context, b *entity.Building) error
	GetByID(ctx context.Context, id int64) (*entity.Building, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Building, error)
}

// CostCenterRepository is the persistence port for accounting cost centers.
type CostCenterRepository interface {
	Create(ctx context.Context, cc *entity.CostCenter) error
	GetByID(ctx context.Context, id int64) (*entity.CostCenter, error)
	GetByCode(ctx context.Context, code string) (*entity.CostCenter, error)
	List(ctx context.Context) ([]*entity.CostCenter, error)
}
