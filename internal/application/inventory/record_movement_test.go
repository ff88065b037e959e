package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onu-facilities/partstrack/internal/application/dto"
	"github.com/onu-facilities/partstrack/internal/application/inventory"
	"github.com/onu-facilities/partstrack/internal/domain"
	"github.com/onu-facilities/partstrack/internal/domain/entity"
	"github.com/onu-facilities/partstrack/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// In-memory fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakePartRepo struct {
	parts map[int64]*entity.Part
}

func (f *fakePartRepo) Create(_ context.Context, p *entity.Part) error { f.parts[p.ID] = p; return nil }
func (f *fakePartRepo) GetByID(_ context.Context, id int64) (*entity.Part, error) {
	return f.parts[id], nil
}
func (f *fakePartRepo) GetByNumber(_ context.Context, _ string) (*entity.Part, error) {
	return nil, nil
}
func (f *fakePartRepo) List(_ context.Context, _, _ int) ([]*entity.Part, error) { return nil, nil }
func (f *fakePartRepo) Update(_ context.Context, _ *entity.Part) error           { return nil }
func (f *fakePartRepo) AdjustOnHand(_ context.Context, id, delta int64) error {
	p, ok := f.parts[id]
	if !ok {
		return domain.ErrNotFound
	}
	if p.OnHand+delta < 0 {
		return domain.ErrInsufficientStock
	}
	p.OnHand += delta
	return nil
}

type fakeBuildingRepo struct {
	buildings map[int64]*entity.Building
}

func (f *fakeBuildingRepo) Create(_ context.Context, _ *entity.Building) error { return nil }
func (f *fakeBuildingRepo) GetByID(_ context.Context, id int64) (*entity.Building, error) {
	return f.buildings[id], nil
}
func (f *fakeBuildingRepo) List(_ context.Context, _, _ int) ([]*entity.Building, error) {
	return nil, nil
}

type fakeWorkOrderRepo struct {
	orders map[int64]*entity.WorkOrder
}

func (f *fakeWorkOrderRepo) Create(_ context.Context, _ *entity.WorkOrder) error { return nil }
func (f *fakeWorkOrderRepo) GetByID(_ context.Context, id int64) (*entity.WorkOrder, error) {
	return f.orders[id], nil
}
func (f *fakeWorkOrderRepo) List(_ context.Context, _ string, _, _ int) ([]*entity.WorkOrder, error) {
	return nil, nil
}
func (f *fakeWorkOrderRepo) Close(_ context.Context, _ int64) error { return nil }

type fakeStaffRepo struct {
	staff map[int64]*entity.StaffMember
}

func (f *fakeStaffRepo) Create(_ context.Context, _ *entity.StaffMember) error { return nil }
func (f *fakeStaffRepo) GetByID(_ context.Context, id int64) (*entity.StaffMember, error) {
	return f.staff[id], nil
}
func (f *fakeStaffRepo) List(_ context.Context, _, _ int) ([]*entity.StaffMember, error) {
	return nil, nil
}

type fakeIssuanceRepo struct {
	created []*entity.Issuance
}

func (f *fakeIssuanceRepo) Create(_ context.Context, i *entity.Issuance) error {
	i.ID = int64(len(f.created) + 1)
	f.created = append(f.created, i)
	return nil
}
func (f *fakeIssuanceRepo) ListByWorkOrder(_ context.Context, _ int64) ([]*entity.Issuance, error) {
	return nil, nil
}
func (f *fakeIssuanceRepo) ListByPeriod(_ context.Context, _, _ time.Time, _, _ int) ([]*entity.Issuance, error) {
	return nil, nil
}

type fakeDeliveryRepo struct {
	created []*entity.Delivery
}

func (f *fakeDeliveryRepo) Create(_ context.Context, d *entity.Delivery) error {
	d.ID = int64(len(f.created) + 1)
	f.created = append(f.created, d)
	return nil
}
func (f *fakeDeliveryRepo) ListByPeriod(_ context.Context, _, _ time.Time, _, _ int) ([]*entity.Delivery, error) {
	return nil, nil
}

// fakeTxRunner hands the fakes straight through. No real transaction, but it
// lets the use case exercise the same commit-or-fail path.
type fakeTxRunner struct {
	issuanceRepo *fakeIssuanceRepo
	deliveryRepo *fakeDeliveryRepo
	partRepo     *fakePartRepo
	runErr       error
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	repository.IssuanceRepository,
	repository.DeliveryRepository,
	repository.PartRepository,
) error) error {
	if f.runErr != nil {
		return f.runErr
	}
	return fn(f.issuanceRepo, f.deliveryRepo, f.partRepo)
}

type fixtures struct {
	parts      *fakePartRepo
	buildings  *fakeBuildingRepo
	workOrders *fakeWorkOrderRepo
	staff      *fakeStaffRepo
	issuances  *fakeIssuanceRepo
	deliveries *fakeDeliveryRepo
	tx         *fakeTxRunner
}

func newFixtures() *fixtures {
	parts := &fakePartRepo{parts: map[int64]*entity.Part{
		1: {ID: 1, PartNumber: "FLT-20x20", Name: "Air filter", UnitCost: decimal.RequireFromString("12.50"), OnHand: 10},
	}}
	issuances := &fakeIssuanceRepo{}
	deliveries := &fakeDeliveryRepo{}
	return &fixtures{
		parts: parts,
		buildings: &fakeBuildingRepo{buildings: map[int64]*entity.Building{
			3: {ID: 3, Name: "Science Hall"},
		}},
		workOrders: &fakeWorkOrderRepo{orders: map[int64]*entity.WorkOrder{
			5: {ID: 5, Number: "WO-100", Status: entity.WorkOrderOpen},
			6: {ID: 6, Number: "WO-101", Status: entity.WorkOrderClosed},
		}},
		staff: &fakeStaffRepo{staff: map[int64]*entity.StaffMember{
			7: {ID: 7, Name: "J. Ramos", Active: true},
		}},
		issuances:  issuances,
		deliveries: deliveries,
		tx:         &fakeTxRunner{issuanceRepo: issuances, deliveryRepo: deliveries, partRepo: parts},
	}
}

func i64(n int64) *int64 { return &n }

// ──────────────────────────────────────────────────────────────────────────────
// RecordIssuanceUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordIssuance_HappyPath(t *testing.T) {
	fx := newFixtures()
	uc := inventory.NewRecordIssuanceUseCase(fx.tx, fx.parts, fx.buildings, fx.workOrders)

	out, err := uc.Execute(context.Background(), "user-1", dto.RecordIssuanceRequest{
		PartID:     1,
		Quantity:   3,
		BuildingID: i64(3),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.TransactionID)
	assert.Equal(t, int64(3), out.Quantity)
	assert.Equal(t, "12.50", out.UnitCost.StringFixed(2))
	assert.Equal(t, "37.50", out.ExtendedPrice.StringFixed(2))
	assert.Equal(t, int64(7), fx.parts.parts[1].OnHand, "stock decremented")
	require.Len(t, fx.issuances.created, 1)
	assert.Equal(t, "user-1", fx.issuances.created[0].IssuedBy)
}

func TestRecordIssuance_Validation(t *testing.T) {
	fx := newFixtures()
	uc := inventory.NewRecordIssuanceUseCase(fx.tx, fx.parts, fx.buildings, fx.workOrders)

	cases := []dto.RecordIssuanceRequest{
		{PartID: 0, Quantity: 1},
		{PartID: 1, Quantity: 0},
		{PartID: 1, Quantity: -2},
	}
	for _, in := range cases {
		_, err := uc.Execute(context.Background(), "user-1", in)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput), "input %+v", in)
	}
}

func TestRecordIssuance_UnknownReferences(t *testing.T) {
	fx := newFixtures()
	uc := inventory.NewRecordIssuanceUseCase(fx.tx, fx.parts, fx.buildings, fx.workOrders)

	_, err := uc.Execute(context.Background(), "user-1", dto.RecordIssuanceRequest{PartID: 99, Quantity: 1})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = uc.Execute(context.Background(), "user-1", dto.RecordIssuanceRequest{
		PartID: 1, Quantity: 1, BuildingID: i64(99),
	})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = uc.Execute(context.Background(), "user-1", dto.RecordIssuanceRequest{
		PartID: 1, Quantity: 1, WorkOrderID: i64(99),
	})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestRecordIssuance_ClosedWorkOrder(t *testing.T) {
	fx := newFixtures()
	uc := inventory.NewRecordIssuanceUseCase(fx.tx, fx.parts, fx.buildings, fx.workOrders)

	_, err := uc.Execute(context.Background(), "user-1", dto.RecordIssuanceRequest{
		PartID: 1, Quantity: 1, WorkOrderID: i64(6),
	})
	assert.True(t, errors.Is(err, domain.ErrWorkOrderClosed))
	assert.Empty(t, fx.issuances.created)
	assert.Equal(t, int64(10), fx.parts.parts[1].OnHand, "stock untouched")
}

func TestRecordIssuance_InsufficientStock(t *testing.T) {
	fx := newFixtures()
	uc := inventory.NewRecordIssuanceUseCase(fx.tx, fx.parts, fx.buildings, fx.workOrders)

	_, err := uc.Execute(context.Background(), "user-1", dto.RecordIssuanceRequest{
		PartID: 1, Quantity: 11,
	})
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
	assert.Empty(t, fx.issuances.created)
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordDeliveryUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordDelivery_HappyPath(t *testing.T) {
	fx := newFixtures()
	uc := inventory.NewRecordDeliveryUseCase(fx.tx, fx.parts, fx.staff, fx.buildings)

	out, err := uc.Execute(context.Background(), "user-2", dto.RecordDeliveryRequest{
		PartID:        1,
		Quantity:      2,
		StaffMemberID: 7,
	})
	require.NoError(t, err)

	assert.Equal(t, "12.50", out.UnitCost.StringFixed(2), "falls back to the part's stored cost")
	assert.Equal(t, "25.00", out.ExtendedPrice.StringFixed(2))
	assert.Equal(t, int64(8), fx.parts.parts[1].OnHand)
	require.Len(t, fx.deliveries.created, 1)
	assert.Equal(t, "user-2", fx.deliveries.created[0].RecordedBy)
}

func TestRecordDelivery_CostOverride(t *testing.T) {
	fx := newFixtures()
	uc := inventory.NewRecordDeliveryUseCase(fx.tx, fx.parts, fx.staff, fx.buildings)

	out, err := uc.Execute(context.Background(), "user-2", dto.RecordDeliveryRequest{
		PartID:        1,
		Quantity:      4,
		StaffMemberID: 7,
		UnitCost:      decimal.NewNullDecimal(decimal.RequireFromString("3.75")),
	})
	require.NoError(t, err)
	assert.Equal(t, "3.75", out.UnitCost.StringFixed(2))
	assert.Equal(t, "15.00", out.ExtendedPrice.StringFixed(2))
}

func TestRecordDelivery_NegativeOverrideRejected(t *testing.T) {
	fx := newFixtures()
	uc := inventory.NewRecordDeliveryUseCase(fx.tx, fx.parts, fx.staff, fx.buildings)

	_, err := uc.Execute(context.Background(), "user-2", dto.RecordDeliveryRequest{
		PartID:        1,
		Quantity:      1,
		StaffMemberID: 7,
		UnitCost:      decimal.NewNullDecimal(decimal.RequireFromString("-1")),
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestRecordDelivery_UnknownStaff(t *testing.T) {
	fx := newFixtures()
	uc := inventory.NewRecordDeliveryUseCase(fx.tx, fx.parts, fx.staff, fx.buildings)

	_, err := uc.Execute(context.Background(), "user-2", dto.RecordDeliveryRequest{
		PartID:        1,
		Quantity:      1,
		StaffMemberID: 99,
	})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestRecordDelivery_TxFailureSurfaces(t *testing.T) {
	fx := newFixtures()
	fx.tx.runErr = errors.New("deadlock detected")
	uc := inventory.NewRecordDeliveryUseCase(fx.tx, fx.parts, fx.staff, fx.buildings)

	_, err := uc.Execute(context.Background(), "user-2", dto.RecordDeliveryRequest{
		PartID:        1,
		Quantity:      1,
		StaffMemberID: 7,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deadlock")
}
