package usecase

import (
	"context"
	"time"

	"github.com/onu-facilities/partstrack/internal/application/dto"
	"github.com/onu-facilities/partstrack/internal/domain"
	"github.com/onu-facilities/partstrack/internal/domain/entity"
	"github.com/onu-facilities/partstrack/internal/domain/repository"
)

// StaffUseCase management of delivery recipients.
type StaffUseCase struct {
	staffRepo repository.StaffRepository
}

// NewStaffUseCase builds the use case.
func NewStaffUseCase(staffRepo repository.StaffRepository) *StaffUseCase {
	return &StaffUseCase{staffRepo: staffRepo}
}

// Create registers a staff member.
func (uc *StaffUseCase) Create(ctx context.Context, in dto.CreateStaffRequest) (*entity.StaffMember, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	s := &entity.StaffMember{
		Name:      in.Name,
		Email:     in.Email,
		Title:     in.Title,
		Active:    true,
		CreatedAt: time.Now(),
	}
	if err := uc.staffRepo.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// List returns a page of staff members.
func (uc *StaffUseCase) List(ctx context.Context, page dto.PageRequest) ([]*entity.StaffMember, error) {
	page.DefaultPage()
	return uc.staffRepo.List(ctx, page.Limit, page.Offset)
}
