package model

// Doctor is a row in the doctors table. The identifier is generated
// server-side on create and never changes afterwards.
type Doctor struct {
	DoctorID          string  `db:"doctor_id" json:"doctor_id"`
	FullName          string  `db:"full_name" json:"full_name"`
	Specialization    string  `db:"specialization" json:"specialization"`
	PhoneNumber       string  `db:"phone_number" json:"phone_number"`
	Email             string  `db:"email" json:"email"`
	DateOfBirth       string  `db:"date_of_birth" json:"date_of_birth"`
	Gender            string  `db:"gender" json:"gender"`
	YearsOfExperience int     `db:"years_of_experience" json:"years_of_experience"`
	ClinicAddress     string  `db:"clinic_address" json:"clinic_address"`
	Description       *string `db:"description" json:"description"`
}

// DoctorPayload carries the mutable doctor fields for create and update.
// YearsOfExperience binds through a pointer so zero passes required.
type DoctorPayload struct {
	FullName          string  `json:"full_name" binding:"required"`
	Specialization    string  `json:"specialization" binding:"required"`
	PhoneNumber       string  `json:"phone_number" binding:"required"`
	Email             string  `json:"email" binding:"required"`
	DateOfBirth       string  `json:"date_of_birth" binding:"required"`
	Gender            string  `json:"gender" binding:"required"`
	YearsOfExperience *int    `json:"years_of_experience" binding:"required"`
	ClinicAddress     string  `json:"clinic_address" binding:"required"`
	Description       *string `json:"description"`
}

// ToDoctor materializes the payload under the given identifier.
func (p *DoctorPayload) ToDoctor(id string) *Doctor {
	return &Doctor{
		DoctorID:          id,
		FullName:          p.FullName,
		Specialization:    p.Specialization,
		PhoneNumber:       p.PhoneNumber,
		Email:             p.Email,
		DateOfBirth:       p.DateOfBirth,
		Gender:            p.Gender,
		YearsOfExperience: *p.YearsOfExperience,
		ClinicAddress:     p.ClinicAddress,
		Description:       p.Description,
	}
}
