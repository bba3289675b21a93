package patient

import (
	"context"

	"github.com/google/uuid"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
)

type Service interface {
	CreatePatient(ctx context.Context, payload *model.PatientPayload) (string, error)
	GetPatient(ctx context.Context, id string) (*model.Patient, error)
	UpdatePatient(ctx context.Context, id string, payload *model.PatientPayload) error
	DeletePatient(ctx context.Context, id string) error
	ListPatients(ctx context.Context) ([]*model.Patient, error)
}

type service struct {
	repo repository.PatientRepository
}

func NewService(repo repository.PatientRepository) Service {
	return &service{repo: repo}
}

func (s *service) CreatePatient(ctx context.Context, payload *model.PatientPayload) (string, error) {
	id := uuid.New().String()
	if err := s.repo.Create(ctx, payload.ToPatient(id)); err != nil {
		return "", err
	}
	return id, nil
}

func (s *service) GetPatient(ctx context.Context, id string) (*model.Patient, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) UpdatePatient(ctx context.Context, id string, payload *model.PatientPayload) error {
	return s.repo.Update(ctx, payload.ToPatient(id))
}

func (s *service) DeletePatient(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) ListPatients(ctx context.Context) ([]*model.Patient, error) {
	return s.repo.List(ctx)
}
