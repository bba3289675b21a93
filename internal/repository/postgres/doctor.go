package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	apperrors "github.com/jwalitptl/clinic-api/pkg/errors"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
)

type doctorRepository struct {
	BaseRepository
}

func NewDoctorRepository(db *sqlx.DB) repository.DoctorRepository {
	return &doctorRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	query := `
		INSERT INTO doctors (
			doctor_id, full_name, specialization, phone_number, email,
			date_of_birth, gender, years_of_experience, clinic_address, description
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, query,
			doctor.DoctorID,
			doctor.FullName,
			doctor.Specialization,
			doctor.PhoneNumber,
			doctor.Email,
			doctor.DateOfBirth,
			doctor.Gender,
			doctor.YearsOfExperience,
			doctor.ClinicAddress,
			doctor.Description,
		)
		if err != nil {
			return apperrors.Internal("failed to add doctor", err)
		}
		return nil
	})
}

func (r *doctorRepository) Get(ctx context.Context, id string) (*model.Doctor, error) {
	query := `SELECT * FROM doctors WHERE doctor_id = $1`
	var doctor model.Doctor
	if err := r.GetDB().GetContext(ctx, &doctor, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("doctor not found", nil)
		}
		return nil, apperrors.Internal("failed to fetch doctor", err)
	}
	return &doctor, nil
}

func (r *doctorRepository) Update(ctx context.Context, doctor *model.Doctor) error {
	query := `
		UPDATE doctors
		SET full_name = $1, specialization = $2, phone_number = $3, email = $4,
			date_of_birth = $5, gender = $6, years_of_experience = $7,
			clinic_address = $8, description = $9
		WHERE doctor_id = $10
	`
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, query,
			doctor.FullName,
			doctor.Specialization,
			doctor.PhoneNumber,
			doctor.Email,
			doctor.DateOfBirth,
			doctor.Gender,
			doctor.YearsOfExperience,
			doctor.ClinicAddress,
			doctor.Description,
			doctor.DoctorID,
		)
		if err != nil {
			return apperrors.Internal("failed to update doctor", err)
		}
		return requireRowsAffected(res, "doctor not found")
	})
}

func (r *doctorRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM doctors WHERE doctor_id = $1`
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, query, id)
		if err != nil {
			return apperrors.Internal("failed to delete doctor", err)
		}
		return requireRowsAffected(res, "doctor not found")
	})
}

func (r *doctorRepository) List(ctx context.Context) ([]*model.Doctor, error) {
	query := `SELECT * FROM doctors`
	var doctors []*model.Doctor
	if err := r.GetDB().SelectContext(ctx, &doctors, query); err != nil {
		return nil, apperrors.Internal("failed to fetch doctors", err)
	}
	return doctors, nil
}

// requireRowsAffected turns a zero-row mutation into a not-found error so
// the surrounding transaction rolls back.
func requireRowsAffected(res sql.Result, message string) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound(message, nil)
	}
	return nil
}
