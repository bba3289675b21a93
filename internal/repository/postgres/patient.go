package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	apperrors "github.com/jwalitptl/clinic-api/pkg/errors"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
)

type patientRepository struct {
	BaseRepository
}

func NewPatientRepository(db *sqlx.DB) repository.PatientRepository {
	return &patientRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	query := `
		INSERT INTO patients (
			patient_id, full_name, phone_number, email, address,
			date_of_birth, gender, emergency_contact, medical_history
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, query,
			patient.PatientID,
			patient.FullName,
			patient.PhoneNumber,
			patient.Email,
			patient.Address,
			patient.DateOfBirth,
			patient.Gender,
			patient.EmergencyContact,
			patient.MedicalHistory,
		)
		if err != nil {
			return apperrors.Internal("failed to add patient", err)
		}
		return nil
	})
}

func (r *patientRepository) Get(ctx context.Context, id string) (*model.Patient, error) {
	query := `SELECT * FROM patients WHERE patient_id = $1`
	var patient model.Patient
	if err := r.GetDB().GetContext(ctx, &patient, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("patient not found", nil)
		}
		return nil, apperrors.Internal("failed to fetch patient", err)
	}
	return &patient, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *model.Patient) error {
	query := `
		UPDATE patients
		SET full_name = $1, phone_number = $2, email = $3, address = $4,
			date_of_birth = $5, gender = $6, emergency_contact = $7, medical_history = $8
		WHERE patient_id = $9
	`
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, query,
			patient.FullName,
			patient.PhoneNumber,
			patient.Email,
			patient.Address,
			patient.DateOfBirth,
			patient.Gender,
			patient.EmergencyContact,
			patient.MedicalHistory,
			patient.PatientID,
		)
		if err != nil {
			return apperrors.Internal("failed to update patient", err)
		}
		return requireRowsAffected(res, "patient not found")
	})
}

func (r *patientRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM patients WHERE patient_id = $1`
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, query, id)
		if err != nil {
			return apperrors.Internal("failed to delete patient", err)
		}
		return requireRowsAffected(res, "patient not found")
	})
}

func (r *patientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	query := `SELECT * FROM patients`
	var patients []*model.Patient
	if err := r.GetDB().SelectContext(ctx, &patients, query); err != nil {
		return nil, apperrors.Internal("failed to fetch patients", err)
	}
	return patients, nil
}
