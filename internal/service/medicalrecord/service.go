package medicalrecord

import (
	"context"

	apperrors "github.com/jwalitptl/clinic-api/pkg/errors"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
)

type Service interface {
	CreateRecord(ctx context.Context, req *model.CreateMedicalRecordRequest) error
	UpdateRecord(ctx context.Context, recordID int64, req *model.UpdateMedicalRecordRequest) error
	ListRecordsByPatient(ctx context.Context, patientID string) ([]*model.MedicalRecord, error)
	DeleteRecord(ctx context.Context, recordID int64) error
}

type service struct {
	repo repository.MedicalRecordRepository
}

func NewService(repo repository.MedicalRecordRepository) Service {
	return &service{repo: repo}
}

func (s *service) CreateRecord(ctx context.Context, req *model.CreateMedicalRecordRequest) error {
	record := &model.MedicalRecord{
		PatientID:    req.PatientID,
		RecordDate:   req.RecordDate,
		Diagnosis:    req.Diagnosis,
		Treatment:    req.Treatment,
		Prescription: req.Prescription,
		DoctorNotes:  req.DoctorNotes,
	}
	return s.repo.Create(ctx, record)
}

func (s *service) UpdateRecord(ctx context.Context, recordID int64, req *model.UpdateMedicalRecordRequest) error {
	record := &model.MedicalRecord{
		RecordID:     recordID,
		Diagnosis:    req.Diagnosis,
		Treatment:    req.Treatment,
		Prescription: req.Prescription,
		DoctorNotes:  req.DoctorNotes,
	}
	return s.repo.Update(ctx, record)
}

// ListRecordsByPatient treats an empty result as not-found. This differs
// from the doctor/patient list endpoints on purpose; callers rely on the
// 404 to distinguish "no history" from "empty page".
func (s *service) ListRecordsByPatient(ctx context.Context, patientID string) ([]*model.MedicalRecord, error) {
	records, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, apperrors.NotFound("no medical records found for this patient", nil)
	}
	return records, nil
}

func (s *service) DeleteRecord(ctx context.Context, recordID int64) error {
	return s.repo.Delete(ctx, recordID)
}
