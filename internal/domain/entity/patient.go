package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents a registry entry created at reception. Patients are not
// system users; they are looked up by medical record number when a token is
// issued.
type Patient struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	MedicalRecordNumber string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"medical_record_number"`
	FullName            string    `gorm:"type:varchar(255);not null;index" json:"full_name"`
	PhoneNumber         string    `gorm:"type:varchar(20);index" json:"phone_number,omitempty"`
	DateOfBirth         time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	Gender              string    `gorm:"type:char(1);not null" json:"gender"`
	Address             string    `gorm:"type:text" json:"address,omitempty"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// Gender constants
const (
	GenderMale   = "M"
	GenderFemale = "F"
)
