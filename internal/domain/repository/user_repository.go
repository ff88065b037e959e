package repository

import (
	"context"

	"github.com/onu-facilities/partstrack/internal/domain/entity"
)

// UserRepository is the persistence port for API accounts.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
