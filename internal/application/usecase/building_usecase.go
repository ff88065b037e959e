package usecase

import (
	"context"
	"time"

	"github.com/onu-facilities/partstrack/internal/application/dto"
	"github.com/onu-facilities/partstrack/internal/domain"
	"github.com/onu-facilities/partstrack/internal/domain/entity"
	"github.com/onu-facilities/partstrack/internal/domain/repository"
)

// BuildingUseCase management of campus buildings and cost centers.
type BuildingUseCase struct {
	buildingRepo   repository.BuildingRepository
	costCenterRepo repository.CostCenterRepository
}

// NewBuildingUseCase builds the use case.
func NewBuildingUseCase(buildingRepo repository.BuildingRepository, costCenterRepo repository.CostCenterRepository) *BuildingUseCase {
	return &BuildingUseCase{buildingRepo: buildingRepo, costCenterRepo: costCenterRepo}
}

// CreateBuilding registers a building; the default cost center is optional
// but must exist when given.
func (uc *BuildingUseCase) CreateBuilding(ctx context.Context, in dto.CreateBuildingRequest) (*dto.BuildingResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CostCenterID != nil {
		cc, err := uc.costCenterRepo.GetByID(ctx, *in.CostCenterID)
		if err != nil {
			return nil, err
		}
		if cc == nil {
			return nil, domain.ErrNotFound
		}
	}
	b := &entity.Building{
		Name:         in.Name,
		CostCenterID: in.CostCenterID,
		CreatedAt:    time.Now(),
	}
	if err := uc.buildingRepo.Create(ctx, b); err != nil {
		return nil, err
	}
	return uc.toBuildingResponse(ctx, b), nil
}

// GetBuilding fetches one building.
func (uc *BuildingUseCase) GetBuilding(ctx context.Context, id int64) (*dto.BuildingResponse, error) {
	b, err := uc.buildingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toBuildingResponse(ctx, b), nil
}

// ListBuildings returns a page of buildings.
func (uc *BuildingUseCase) ListBuildings(ctx context.Context, page dto.PageRequest) ([]*dto.BuildingResponse, error) {
	page.DefaultPage()
	buildings, err := uc.buildingRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BuildingResponse, 0, len(buildings))
	for _, b := range buildings {
		out = append(out, uc.toBuildingResponse(ctx, b))
	}
	return out, nil
}

// CreateCostCenter registers a cost center. Code is unique.
func (uc *BuildingUseCase) CreateCostCenter(ctx context.Context, in dto.CreateCostCenterRequest) (*entity.CostCenter, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	cc := &entity.CostCenter{Code: in.Code, Name: in.Name}
	if err := uc.costCenterRepo.Create(ctx, cc); err != nil {
		return nil, err
	}
	return cc, nil
}

// ListCostCenters returns every cost center.
func (uc *BuildingUseCase) ListCostCenters(ctx context.Context) ([]*entity.CostCenter, error) {
	return uc.costCenterRepo.List(ctx)
}

func (uc *BuildingUseCase) toBuildingResponse(ctx context.Context, b *entity.Building) *dto.BuildingResponse {
	resp := &dto.BuildingResponse{
		ID:           b.ID,
		Name:         b.Name,
		CostCenterID: b.CostCenterID,
	}
	if b.CostCenterID != nil {
		if cc, err := uc.costCenterRepo.GetByID(ctx, *b.CostCenterID); err == nil && cc != nil {
			resp.CostCenterCode = cc.Code
		}
	}
	return resp
}
