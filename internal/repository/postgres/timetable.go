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

type timetableRepository struct {
	BaseRepository
}

func NewTimetableRepository(db *sqlx.DB) repository.TimetableRepository {
	return &timetableRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *timetableRepository) Create(ctx context.Context, slot *model.TimetableSlot) (int64, error) {
	query := `
		INSERT INTO timetable (doctor_id, date, start_time, end_time, is_available, note)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING timetable_id
	`
	var id int64
	err := r.WithTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.QueryRowContext(ctx, query,
			slot.DoctorID,
			slot.Date,
			slot.StartTime,
			slot.EndTime,
			slot.IsAvailable,
			slot.Note,
		).Scan(&id)
		if err != nil {
			return apperrors.Internal("failed to add timetable record", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *timetableRepository) Get(ctx context.Context, id int64) (*model.TimetableSlot, error) {
	query := `SELECT * FROM timetable WHERE timetable_id = $1`
	var slot model.TimetableSlot
	if err := r.GetDB().GetContext(ctx, &slot, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("timetable record not found", nil)
		}
		return nil, apperrors.Internal("failed to fetch timetable record", err)
	}
	return &slot, nil
}

func (r *timetableRepository) Update(ctx context.Context, slot *model.TimetableSlot) error {
	query := `
		UPDATE timetable
		SET doctor_id = $1, date = $2, start_time = $3, end_time = $4,
			is_available = $5, note = $6
		WHERE timetable_id = $7
	`
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, query,
			slot.DoctorID,
			slot.Date,
			slot.StartTime,
			slot.EndTime,
			slot.IsAvailable,
			slot.Note,
			slot.TimetableID,
		)
		if err != nil {
			return apperrors.Internal("failed to update timetable record", err)
		}
		return requireRowsAffected(res, "timetable record not found")
	})
}

func (r *timetableRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM timetable WHERE timetable_id = $1`
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, query, id)
		if err != nil {
			return apperrors.Internal("failed to delete timetable record", err)
		}
		return requireRowsAffected(res, "timetable record not found")
	})
}
