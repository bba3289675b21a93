package model

// Patient is a row in the patients table. Everything except the name is
// optional; a patient may be registered with only a full_name.
type Patient struct {
	PatientID        string  `db:"patient_id" json:"patient_id"`
	FullName         string  `db:"full_name" json:"full_name"`
	PhoneNumber      *string `db:"phone_number" json:"phone_number"`
	Email            *string `db:"email" json:"email"`
	Address          *string `db:"address" json:"address"`
	DateOfBirth      *string `db:"date_of_birth" json:"date_of_birth"`
	Gender           *string `db:"gender" json:"gender"`
	EmergencyContact *string `db:"emergency_contact" json:"emergency_contact"`
	MedicalHistory   *string `db:"medical_history" json:"medical_history"`
}

// PatientPayload carries the mutable patient fields for create and update.
type PatientPayload struct {
	FullName         string  `json:"full_name" binding:"required"`
	PhoneNumber      *string `json:"phone_number"`
	Email            *string `json:"email"`
	Address          *string `json:"address"`
	DateOfBirth      *string `json:"date_of_birth"`
	Gender           *string `json:"gender"`
	EmergencyContact *string `json:"emergency_contact"`
	MedicalHistory   *string `json:"medical_history"`
}

func (p *PatientPayload) ToPatient(id string) *Patient {
	return &Patient{
		PatientID:        id,
		FullName:         p.FullName,
		PhoneNumber:      p.PhoneNumber,
		Email:            p.Email,
		Address:          p.Address,
		DateOfBirth:      p.DateOfBirth,
		Gender:           p.Gender,
		EmergencyContact: p.EmergencyContact,
		MedicalHistory:   p.MedicalHistory,
	}
}
