package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/onu-facilities/partstrack/internal/application/dto"
	"github.com/onu-facilities/partstrack/internal/domain"
	"github.com/onu-facilities/partstrack/internal/domain/entity"
	"github.com/onu-facilities/partstrack/internal/domain/repository"
)

// PartUseCase catalog management for storeroom parts.
type PartUseCase struct {
	partRepo repository.PartRepository
}

// NewPartUseCase builds the use case.
func NewPartUseCase(partRepo repository.PartRepository) *PartUseCase {
	return &PartUseCase{partRepo: partRepo}
}

// Create adds a part. Part number must be unique; unit cost must not be negative.
func (uc *PartUseCase) Create(ctx context.Context, in dto.CreatePartRequest) (*dto.PartResponse, error) {
	if in.PartNumber == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitCost.LessThan(decimal.Zero) || in.OnHand < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	part := &entity.Part{
		PartNumber:  in.PartNumber,
		Name:        in.Name,
		Description: in.Description,
		UnitCost:    in.UnitCost,
		OnHand:      in.OnHand,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.partRepo.Create(ctx, part); err != nil {
		return nil, err
	}
	return toPartResponse(part), nil
}

// GetByID fetches one part.
func (uc *PartUseCase) GetByID(ctx context.Context, id int64) (*dto.PartResponse, error) {
	part, err := uc.partRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, domain.ErrNotFound
	}
	return toPartResponse(part), nil
}

// List returns a page of parts.
func (uc *PartUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.PartResponse, error) {
	page.DefaultPage()
	parts, err := uc.partRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PartResponse, 0, len(parts))
	for _, p := range parts {
		out = append(out, toPartResponse(p))
	}
	return out, nil
}

// Update edits name, description and unit cost. Part number stays fixed.
func (uc *PartUseCase) Update(ctx context.Context, id int64, in dto.UpdatePartRequest) (*dto.PartResponse, error) {
	if in.Name == "" || in.UnitCost.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	part, err := uc.partRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, domain.ErrNotFound
	}
	part.Name = in.Name
	part.Description = in.Description
	part.UnitCost = in.UnitCost
	part.UpdatedAt = time.Now()
	if err := uc.partRepo.Update(ctx, part); err != nil {
		return nil, err
	}
	return toPartResponse(part), nil
}

func toPartResponse(p *entity.Part) *dto.PartResponse {
	return &dto.PartResponse{
		ID:          p.ID,
		PartNumber:  p.PartNumber,
		Name:        p.Name,
		Description: p.Description,
		UnitCost:    p.UnitCost,
		OnHand:      p.OnHand,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
