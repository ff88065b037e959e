// Package inventory holds the transactional use cases that mutate stock:
// recording charge-outs and deliveries. Reporting never goes through here;
// it reads its own snapshot via the report source.
package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/onu-facilities/partstrack/internal/application/dto"
	"github.com/onu-facilities/partstrack/internal/domain"
	"github.com/onu-facilities/partstrack/internal/domain/entity"
	domreport "github.com/onu-facilities/partstrack/internal/domain/report"
	"github.com/onu-facilities/partstrack/internal/domain/repository"
)

// RecordIssuanceUseCase records a charge-out transactionally: the issuance row
// and the stock decrement land together or not at all.
type RecordIssuanceUseCase struct {
	txRunner      TxRunner
	partRepo      repository.PartRepository
	buildingRepo  repository.BuildingRepository
	workOrderRepo repository.WorkOrderRepository
}

// NewRecordIssuanceUseCase builds the use case.
func NewRecordIssuanceUseCase(
	txRunner TxRunner,
	partRepo repository.PartRepository,
	buildingRepo repository.BuildingRepository,
	workOrderRepo repository.WorkOrderRepository,
) *RecordIssuanceUseCase {
	return &RecordIssuanceUseCase{
		txRunner:      txRunner,
		partRepo:      partRepo,
		buildingRepo:  buildingRepo,
		workOrderRepo: workOrderRepo,
	}
}

// Execute validates the request, then inserts the issuance and decrements the
// part's on-hand count in one transaction.
func (uc *RecordIssuanceUseCase) Execute(ctx context.Context, userID string, in dto.RecordIssuanceRequest) (*dto.MovementResponse, error) {
	if in.PartID == 0 || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	part, err := uc.partRepo.GetByID(ctx, in.PartID)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, domain.ErrNotFound
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
	if in.WorkOrderID != nil {
		wo, err := uc.workOrderRepo.GetByID(ctx, *in.WorkOrderID)
		if err != nil {
			return nil, err
		}
		if wo == nil {
			return nil, domain.ErrNotFound
		}
		if wo.Status == entity.WorkOrderClosed {
			return nil, domain.ErrWorkOrderClosed
		}
	}

	issuedAt := in.IssuedAt
	if issuedAt.IsZero() {
		issuedAt = time.Now()
	}

	issuance := &entity.Issuance{
		TransactionID:  uuid.New().String(),
		IssuedAt:       issuedAt,
		PartID:         in.PartID,
		Quantity:       in.Quantity,
		BuildingID:     in.BuildingID,
		CostCenterCode: in.CostCenterCode,
		WorkOrderID:    in.WorkOrderID,
		IssuedBy:       userID,
		CreatedAt:      time.Now(),
	}

	err = uc.txRunner.Run(ctx, func(
		issuanceRepo repository.IssuanceRepository,
		_ repository.DeliveryRepository,
		partRepo repository.PartRepository,
	) error {
		if err := partRepo.AdjustOnHand(ctx, in.PartID, -in.Quantity); err != nil {
			return err
		}
		return issuanceRepo.Create(ctx, issuance)
	})
	if err != nil {
		return nil, err
	}

	return &dto.MovementResponse{
		ID:            issuance.ID,
		TransactionID: issuance.TransactionID,
		PartID:        issuance.PartID,
		Quantity:      issuance.Quantity,
		UnitCost:      part.UnitCost,
		ExtendedPrice: domreport.ExtendedPrice(issuance.Quantity, part.UnitCost),
		Date:          issuance.IssuedAt,
	}, nil
}
