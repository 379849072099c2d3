package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusWaiting    AppointmentStatus = "waiting"
	AppointmentStatusInProgress AppointmentStatus = "in_progress"
	AppointmentStatusCompleted  AppointmentStatus = "completed"
	AppointmentStatusCancelled  AppointmentStatus = "cancelled"
)

// Appointment represents one reception token: a patient booked onto a doctor at
// a concrete date and wall-clock time. ScheduleID links back to the weekly slot
// the time fell within (dynamic room mode only); RoomID/ReceptionID carry the
// resolved room assignment for the confirmation view. Dates and times are
// facility-local, with no timezone component.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID        uuid.UUID         `gorm:"type:uuid;not null;index:idx_appointment_doctor_date" json:"doctor_id"`
	ScheduleID      *uint             `gorm:"index" json:"schedule_id,omitempty"`
	AppointmentDate time.Time         `gorm:"type:date;not null;index:idx_appointment_doctor_date" json:"appointment_date"`
	AppointmentTime string            `gorm:"type:time;not null" json:"appointment_time"`
	TokenNumber     int               `gorm:"not null" json:"token_number"`
	Status          AppointmentStatus `gorm:"type:appointment_status;not null;default:'waiting';index" json:"status"`
	RoomID          *uint             `gorm:"index" json:"room_id,omitempty"`
	ReceptionID     *uint             `gorm:"index" json:"reception_id,omitempty"`
	Notes           string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient   Patient         `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor    DoctorProfile   `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Schedule  *DoctorSchedule `gorm:"foreignKey:ScheduleID" json:"schedule,omitempty"`
	Room      *Room           `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Reception *Reception      `gorm:"foreignKey:ReceptionID" json:"reception,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsCancelled checks if the appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// ValidStatusTransition reports whether moving from the current status to next
// is allowed. Cancelled and completed are terminal.
func (a *Appointment) ValidStatusTransition(next AppointmentStatus) bool {
	switch a.Status {
	case AppointmentStatusWaiting:
		return next == AppointmentStatusInProgress || next == AppointmentStatusCancelled
	case AppointmentStatusInProgress:
		return next == AppointmentStatusCompleted || next == AppointmentStatusCancelled
	default:
		return false
	}
}

// AppointmentFilter is a domain-level filter for querying appointments.
type AppointmentFilter struct {
	DoctorID  *uuid.UUID
	PatientID *uuid.UUID
	Date      string // Format: YYYY-MM-DD
	Status    AppointmentStatus
}
