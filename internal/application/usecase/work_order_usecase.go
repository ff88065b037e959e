package usecase

import (
	"context"
	"time"

	"github.com/onu-facilities/partstrack/internal/application/dto"
	"github.com/onu-facilities/partstrack/internal/domain"
	"github.com/onu-facilities/partstrack/internal/domain/entity"
	"github.com/onu-facilities/partstrack/internal/domain/repository"
)

// WorkOrderUseCase lifecycle of maintenance work orders.
type WorkOrderUseCase struct {
	workOrderRepo repository.WorkOrderRepository
	buildingRepo  repository.BuildingRepository
}

// NewWorkOrderUseCase builds the use case.
func NewWorkOrderUseCase(workOrderRepo repository.WorkOrderRepository, buildingRepo repository.BuildingRepository) *WorkOrderUseCase {
	return &WorkOrderUseCase{workOrderRepo: workOrderRepo, buildingRepo: buildingRepo}
}

// Create opens a work order. Number is the unique display number.
func (uc *WorkOrderUseCase) Create(ctx context.Context, in dto.CreateWorkOrderRequest) (*dto.WorkOrderResponse, error) {
	if in.Number == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.BuildingID != nil {
		b, err := uc.buildingRepo.GetByID(ctx, *in.BuildingID)
		if err != nil {
			return nil, err
		}
		if b == nil {
			return nil, domain.ErrNotFound
		}
	}
	wo := &entity.WorkOrder{
		Number:      in.Number,
		Description: in.Description,
		BuildingID:  in.BuildingID,
		Status:      entity.WorkOrderOpen,
		OpenedAt:    time.Now(),
	}
	if err := uc.workOrderRepo.Create(ctx, wo); err != nil {
		return nil, err
	}
	return toWorkOrderResponse(wo), nil
}

// GetByID fetches one work order.
func (uc *WorkOrderUseCase) GetByID(ctx context.Context, id int64) (*dto.WorkOrderResponse, error) {
	wo, err := uc.workOrderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if wo == nil {
		return nil, domain.ErrNotFound
	}
	return toWorkOrderResponse(wo), nil
}

// List returns a page of work orders, optionally filtered by status.
func (uc *WorkOrderUseCase) List(ctx context.Context, status string, page dto.PageRequest) ([]*dto.WorkOrderResponse, error) {
	if status != "" && status != entity.WorkOrderOpen && status != entity.WorkOrderClosed {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()
	orders, err := uc.workOrderRepo.List(ctx, status, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.WorkOrderResponse, 0, len(orders))
	for _, wo := range orders {
		out = append(out, toWorkOrderResponse(wo))
	}
	return out, nil
}

// Close marks a work order closed. Closing an already-closed order conflicts.
func (uc *WorkOrderUseCase) Close(ctx context.Context, id int64) error {
	wo, err := uc.workOrderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if wo == nil {
		return domain.ErrNotFound
	}
	if wo.Status == entity.WorkOrderClosed {
		return domain.ErrConflict
	}
	return uc.workOrderRepo.Close(ctx, id)
}

func toWorkOrderResponse(wo *entity.WorkOrder) *dto.WorkOrderResponse {
	return &dto.WorkOrderResponse{
		ID:          wo.ID,
		Number:      wo.Number,
		Description: wo.Description,
		BuildingID:  wo.BuildingID,
		Status:      wo.Status,
		OpenedAt:    wo.OpenedAt,
		ClosedAt:    wo.ClosedAt,
	}
}
