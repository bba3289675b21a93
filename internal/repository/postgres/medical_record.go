package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	apperrors "github.com/jwalitptl/clinic-api/pkg/errors"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
)

type medicalRecordRepository struct {
	BaseRepository
}

func NewMedicalRecordRepository(db *sqlx.DB) repository.MedicalRecordRepository {
	return &medicalRecordRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *medicalRecordRepository) Create(ctx context.Context, record *model.MedicalRecord) error {
	query := `
		INSERT INTO medical_records (
			patient_id, record_date, diagnosis, treatment, prescription, doctor_notes
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING record_id
	`
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.QueryRowContext(ctx, query,
			record.PatientID,
			record.RecordDate,
			record.Diagnosis,
			record.Treatment,
			record.Prescription,
			record.DoctorNotes,
		).Scan(&record.RecordID)
		if err != nil {
			return apperrors.Internal("failed to add medical record", err)
		}
		return nil
	})
}

func (r *medicalRecordRepository) Update(ctx context.Context, record *model.MedicalRecord) error {
	query := `
		UPDATE medical_records
		SET diagnosis = $1, treatment = $2, prescription = $3, doctor_notes = $4,
			updated_at = NOW()
		WHERE record_id = $5
	`
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, query,
			record.Diagnosis,
			record.Treatment,
			record.Prescription,
			record.DoctorNotes,
			record.RecordID,
		)
		if err != nil {
			return apperrors.Internal("failed to update medical record", err)
		}
		return requireRowsAffected(res, "medical record not found")
	})
}

func (r *medicalRecordRepository) ListByPatient(ctx context.Context, patientID string) ([]*model.MedicalRecord, error) {
	query := `SELECT * FROM medical_records WHERE patient_id = $1`
	var records []*model.MedicalRecord
	if err := r.GetDB().SelectContext(ctx, &records, query, patientID); err != nil {
		return nil, apperrors.Internal("failed to fetch medical records", err)
	}
	return records, nil
}

func (r *medicalRecordRepository) Delete(ctx context.Context, recordID int64) error {
	query := `DELETE FROM medical_records WHERE record_id = $1`
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, query, recordID)
		if err != nil {
			return apperrors.Internal("failed to delete medical record", err)
		}
		return requireRowsAffected(res, "medical record not found")
	})
}
