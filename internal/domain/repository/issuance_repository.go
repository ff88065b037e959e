package repository

import (
	"context"
	"time"

	"github.com/onu-facilities/partstrack/internal/domain/entity"
)

// IssuanceRepository is the persistence port for charge-outs.
type IssuanceRepository interface {
	Create(ctx context.Context, i *entity.Issuance) error
	ListByWorkOrder(ctx context.Context, workOrderID int64) ([]*entity.Issuance, error)
	ListByPeriod(ctx context.Context, from, to time.Time, limit, offset int) ([]*entity.Issuance, error)
}

// DeliveryRepository is the persistence port for deliveries.
type DeliveryRepository interface {
	Create(ctx context.Context, d *entity.Delivery) error
	ListByPeriod(ctx context.Context, from, to time.Time, limit, offset int) ([]*entity.Delivery, error)
}
