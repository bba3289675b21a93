package repository

import (
	"context"

	"github.com/jwalitptl/clinic-api/internal/model"
)

type DoctorRepository interface {
	Create(ctx context.Context, doctor *model.Doctor) error
	Get(ctx context.Context, id string) (*model.Doctor, error)
	Update(ctx context.Context, doctor *model.Doctor) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*model.Doctor, error)
}

type PatientRepository interface {
	Create(ctx context.Context, patient *model.Patient) error
	Get(ctx context.Context, id string) (*model.Patient, error)
	Update(ctx context.Context, patient *model.Patient) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*model.Patient, error)
}

type MedicalRecordRepository interface {
	Create(ctx context.Context, record *model.MedicalRecord) error
	Update(ctx context.Context, record *model.MedicalRecord) error
	ListByPatient(ctx context.Context, patientID string) ([]*model.MedicalRecord, error)
	Delete(ctx context.Context, recordID int64) error
}

type TimetableRepository interface {
	Create(ctx context.Context, slot *model.TimetableSlot) (int64, error)
	Get(ctx context.Context, id int64) (*model.TimetableSlot, error)
	Update(ctx context.Context, slot *model.TimetableSlot) error
	Delete(ctx context.Context, id int64) error
}
