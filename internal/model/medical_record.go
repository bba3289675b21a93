package model

import "time"

// MedicalRecord is a row in the medical_records table. The identifier is
// store-assigned; created_at/updated_at are store-managed and only present
// on retrieval.
type MedicalRecord struct {
	RecordID     int64     `db:"record_id" json:"record_id"`
	PatientID    string    `db:"patient_id" json:"patient_id"`
	RecordDate   string    `db:"record_date" json:"record_date"`
	Diagnosis    string    `db:"diagnosis" json:"diagnosis"`
	Treatment    string    `db:"treatment" json:"treatment"`
	Prescription string    `db:"prescription" json:"prescription"`
	DoctorNotes  string    `db:"doctor_notes" json:"doctor_notes"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// CreateMedicalRecordRequest is the create payload. The response echoes
// these fields back; the assigned record_id is not returned on create.
type CreateMedicalRecordRequest struct {
	PatientID    string `json:"patient_id" binding:"required"`
	RecordDate   string `json:"record_date" binding:"required"`
	Diagnosis    string `json:"diagnosis" binding:"required"`
	Treatment    string `json:"treatment" binding:"required"`
	Prescription string `json:"prescription" binding:"required"`
	DoctorNotes  string `json:"doctor_notes" binding:"required"`
}

// UpdateMedicalRecordRequest updates the clinical fields only; patient_id
// and record_date are immutable after creation.
type UpdateMedicalRecordRequest struct {
	Diagnosis    string `json:"diagnosis" binding:"required"`
	Treatment    string `json:"treatment" binding:"required"`
	Prescription string `json:"prescription" binding:"required"`
	DoctorNotes  string `json:"doctor_notes" binding:"required"`
}
