package model

// TimetableSlot is one availability window for one doctor on one date.
// Overlapping slots for the same doctor/date are allowed; no conflict
// detection happens at this layer.
type TimetableSlot struct {
	TimetableID int64   `db:"timetable_id" json:"timetable_id"`
	DoctorID    string  `db:"doctor_id" json:"doctor_id"`
	Date        string  `db:"date" json:"date"`
	StartTime   string  `db:"start_time" json:"start_time"`
	EndTime     string  `db:"end_time" json:"end_time"`
	IsAvailable int     `db:"is_available" json:"is_available"`
	Note        *string `db:"note" json:"note"`
}

// TimetableSlotPayload carries slot fields for create and update.
// IsAvailable binds through a pointer so the 0 flag passes required.
type TimetableSlotPayload struct {
	DoctorID    string  `json:"doctor_id" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	StartTime   string  `json:"start_time" binding:"required"`
	EndTime     string  `json:"end_time" binding:"required"`
	IsAvailable *int    `json:"is_available" binding:"required"`
	Note        *string `json:"note"`
}

func (p *TimetableSlotPayload) ToSlot(id int64) *TimetableSlot {
	return &TimetableSlot{
		TimetableID: id,
		DoctorID:    p.DoctorID,
		Date:        p.Date,
		StartTime:   p.StartTime,
		EndTime:     p.EndTime,
		IsAvailable: *p.IsAvailable,
		Note:        p.Note,
	}
}
