package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// CreateAppointmentRequest creates one reception token. In dynamic room mode
// the time must fall inside one of the doctor's schedule slots for that
// weekday; the resolved schedule and its room assignment are attached
// server-side.
type CreateAppointmentRequest struct {
	PatientID       uuid.UUID `json:"patient_id" validate:"required"`
	DoctorID        uuid.UUID `json:"doctor_id" validate:"required"`
	AppointmentDate string    `json:"appointment_date" validate:"required,caldate"` // Format: YYYY-MM-DD
	AppointmentTime string    `json:"appointment_time" validate:"required,clocktime"`
	Notes           string    `json:"notes" validate:"omitempty"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=in_progress completed cancelled"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID          `json:"id"`
	PatientID       uuid.UUID          `json:"patient_id"`
	Patient         *PatientResponse   `json:"patient,omitempty"`
	DoctorID        uuid.UUID          `json:"doctor_id"`
	Doctor          *DoctorResponse    `json:"doctor,omitempty"`
	ScheduleID      *uint              `json:"schedule_id,omitempty"`
	AppointmentDate string             `json:"appointment_date"`
	AppointmentTime string             `json:"appointment_time"`
	TokenNumber     int                `json:"token_number"`
	Status          string             `json:"status"`
	Room            *RoomResponse      `json:"room,omitempty"`
	Reception       *ReceptionResponse `json:"reception,omitempty"`
	Notes           string             `json:"notes,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
