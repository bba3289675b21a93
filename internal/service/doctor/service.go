package doctor

import (
	"context"

	"github.com/google/uuid"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
)

type Service interface {
	CreateDoctor(ctx context.Context, payload *model.DoctorPayload) (string, error)
	GetDoctor(ctx context.Context, id string) (*model.Doctor, error)
	UpdateDoctor(ctx context.Context, id string, payload *model.DoctorPayload) error
	DeleteDoctor(ctx context.Context, id string) error
	ListDoctors(ctx context.Context) ([]*model.Doctor, error)
}

type service struct {
	repo repository.DoctorRepository
}

func NewService(repo repository.DoctorRepository) Service {
	return &service{repo: repo}
}

// CreateDoctor assigns a fresh identifier and inserts the row. The id is
// generated here, not by the store, so no round trip is needed before the
// insert.
func (s *service) CreateDoctor(ctx context.Context, payload *model.DoctorPayload) (string, error) {
	id := uuid.New().String()
	if err := s.repo.Create(ctx, payload.ToDoctor(id)); err != nil {
		return "", err
	}
	return id, nil
}

func (s *service) GetDoctor(ctx context.Context, id string) (*model.Doctor, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) UpdateDoctor(ctx context.Context, id string, payload *model.DoctorPayload) error {
	return s.repo.Update(ctx, payload.ToDoctor(id))
}

func (s *service) DeleteDoctor(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) ListDoctors(ctx context.Context) ([]*model.Doctor, error) {
	return s.repo.List(ctx)
}
