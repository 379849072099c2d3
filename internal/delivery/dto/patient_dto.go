package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePatientRequest struct {
	MedicalRecordNumber string `json:"medical_record_number" validate:"required"`
	FullName            string `json:"full_name" validate:"required"`
	PhoneNumber         string `json:"phone_number" validate:"omitempty"`
	DateOfBirth         string `json:"date_of_birth" validate:"required,caldate"` // Format: YYYY-MM-DD
	Gender              string `json:"gender" validate:"required,oneof=M F"`
	Address             string `json:"address" validate:"omitempty"`
}

// Response DTOs

type PatientResponse struct {
	ID                  uuid.UUID `json:"id"`
	MedicalRecordNumber string    `json:"medical_record_number"`
	FullName            string    `json:"full_name"`
	PhoneNumber         string    `json:"phone_number,omitempty"`
	DateOfBirth         string    `json:"date_of_birth"`
	Gender              string    `json:"gender"`
	Address             string    `json:"address,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
