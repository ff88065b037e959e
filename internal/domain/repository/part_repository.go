package repository

import (
	"context"

	"github.com/onu-facilities/partstrack/internal/domain/entity"
)

// PartRepository is the persistence port for storeroom parts.
type PartRepository interface {
	Create(ctx context.Context, part *entity.Part) error
	GetByID(ctx context.Context, id int64) (*entity.Part, error)
	GetByNumber(ctx context.Context, partNumber string) (*entity.Part, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Part, error)
	Update(ctx context.Context, part *entity.Part) error
	// AdjustOnHand applies a signed stock delta and fails with
	// domain.ErrInsufficientStock if the result would go negative.
	AdjustOnHand(ctx context.Context, id int64, delta int64) error
}
