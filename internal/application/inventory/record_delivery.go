package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/onu-facilities/partstrack/internal/application/dto"
	"github.com/onu-facilities/partstrack/internal/domain"
	"github.com/onu-facilities/partstrack/internal/domain/entity"
	domreport "github.com/onu-facilities/partstrack/internal/domain/report"
	"github.com/onu-facilities/partstrack/internal/domain/repository"
)

// RecordDeliveryUseCase records a delivery to a staff member transactionally.
type RecordDeliveryUseCase struct {
	txRunner     TxRunner
	partRepo     repository.PartRepository
	staffRepo    repository.StaffRepository
	buildingRepo repository.BuildingRepository
}

// NewRecordDeliveryUseCase builds the use case.
func NewRecordDeliveryUseCase(
	txRunner TxRunner,
	partRepo repository.PartRepository,
	staffRepo repository.StaffRepository,
	buildingRepo repository.BuildingRepository,
) *RecordDeliveryUseCase {
	return &RecordDeliveryUseCase{
		txRunner:     txRunner,
		partRepo:     partRepo,
		staffRepo:    staffRepo,
		buildingRepo: buildingRepo,
	}
}

// Execute validates the request, then inserts the delivery and decrements the
// part's on-hand count in one transaction. A negative cost override is
// rejected; a missing one means the part's stored cost applies at report time.
func (uc *RecordDeliveryUseCase) Execute(ctx context.Context, userID string, in dto.RecordDeliveryRequest) (*dto.MovementResponse, error) {
	if in.PartID == 0 || in.StaffMemberID == 0 || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitCost.Valid && in.UnitCost.Decimal.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	part, err := uc.partRepo.GetByID(ctx, in.PartID)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, domain.ErrNotFound
	}

	staff, err := uc.staffRepo.GetByID(ctx, in.StaffMemberID)
	if err != nil {
		return nil, err
	}
	if staff == nil {
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

	deliveredAt := in.DeliveredAt
	if deliveredAt.IsZero() {
		deliveredAt = time.Now()
	}

	delivery := &entity.Delivery{
		TransactionID: uuid.New().String(),
		DeliveredAt:   deliveredAt,
		PartID:        in.PartID,
		Quantity:      in.Quantity,
		BuildingID:    in.BuildingID,
		CostCenterID:  in.CostCenterID,
		UnitCost:      in.UnitCost,
		StaffMemberID: in.StaffMemberID,
		RecordedBy:    userID,
		CreatedAt:     time.Now(),
	}

	err = uc.txRunner.Run(ctx, func(
		_ repository.IssuanceRepository,
		deliveryRepo repository.DeliveryRepository,
		partRepo repository.PartRepository,
	) error {
		if err := partRepo.AdjustOnHand(ctx, in.PartID, -in.Quantity); err != nil {
			return err
		}
		return deliveryRepo.Create(ctx, delivery)
	})
	if err != nil {
		return nil, err
	}

	unitCost := domreport.ResolveUnitCost(delivery.UnitCost, decimal.NewNullDecimal(part.UnitCost))
	return &dto.MovementResponse{
		ID:            delivery.ID,
		TransactionID: delivery.TransactionID,
		PartID:        delivery.PartID,
		Quantity:      delivery.Quantity,
		UnitCost:      unitCost,
		ExtendedPrice: domreport.ExtendedPrice(delivery.Quantity, unitCost),
		Date:          delivery.DeliveredAt,
	}, nil
}
