package timetable

import (
	"context"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
)

type Service interface {
	CreateSlot(ctx context.Context, payload *model.TimetableSlotPayload) (int64, error)
	GetSlot(ctx context.Context, id int64) (*model.TimetableSlot, error)
	UpdateSlot(ctx context.Context, id int64, payload *model.TimetableSlotPayload) error
	DeleteSlot(ctx context.Context, id int64) error
}

type service struct {
	repo repository.TimetableRepository
}

func NewService(repo repository.TimetableRepository) Service {
	return &service{repo: repo}
}

// CreateSlot inserts a new availability window. Slots for the same doctor
// and date may overlap; no conflict check happens here.
func (s *service) CreateSlot(ctx context.Context, payload *model.TimetableSlotPayload) (int64, error) {
	return s.repo.Create(ctx, payload.ToSlot(0))
}

func (s *service) GetSlot(ctx context.Context, id int64) (*model.TimetableSlot, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) UpdateSlot(ctx context.Context, id int64, payload *model.TimetableSlotPayload) error {
	return s.repo.Update(ctx, payload.ToSlot(id))
}

func (s *service) DeleteSlot(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
