package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// ScheduleSlotRequest is one slot row in a week replace. ID is zero for rows
// that were never persisted (drafts created in the editor).
type ScheduleSlotRequest struct {
	ID                     uint    `json:"id" validate:"omitempty"`
	DayOfWeek              string  `json:"day_of_week" validate:"required,dayofweek"`
	StartTime              string  `json:"start_time" validate:"required,clocktime"`
	EndTime                string  `json:"end_time" validate:"required,clocktime"`
	IsAvailable            *bool   `json:"is_available" validate:"omitempty"`
	SlotOrder              int     `json:"slot_order" validate:"required,min=1"`
	SlotName               *string `json:"slot_name" validate:"omitempty"`
	MaxAppointmentsPerSlot int     `json:"max_appointments_per_slot" validate:"omitempty,min=1"`
	AppointmentDuration    int     `json:"appointment_duration" validate:"omitempty,min=5"`
	BreakStart             *string `json:"break_start" validate:"omitempty,clocktime"`
	BreakEnd               *string `json:"break_end" validate:"omitempty,clocktime"`
	Notes                  *string `json:"notes" validate:"omitempty"`
}

// ReplaceWeekRequest carries the doctor's entire week. The server replaces all
// existing slots with this list; it does not merge.
type ReplaceWeekRequest struct {
	Slots []ScheduleSlotRequest `json:"slots" validate:"required,dive"`
}

// AddSlotRequest appends a draft slot to one day of the doctor's week.
type AddSlotRequest struct {
	DayOfWeek string `json:"day_of_week" validate:"required,dayofweek"`
}

// UpdateSlotRequest patches single fields of one slot, addressed like
// RemoveSlotRequest. Nil fields stay unchanged; an empty string clears an
// optional field.
type UpdateSlotRequest struct {
	ID                     uint    `json:"id" validate:"omitempty"`
	DayOfWeek              string  `json:"day_of_week" validate:"omitempty,dayofweek"`
	SlotOrder              int     `json:"slot_order" validate:"omitempty,min=1"`
	StartTime              *string `json:"start_time" validate:"omitempty,clocktime"`
	EndTime                *string `json:"end_time" validate:"omitempty,clocktime"`
	IsAvailable            *bool   `json:"is_available" validate:"omitempty"`
	SlotName               *string `json:"slot_name" validate:"omitempty"`
	MaxAppointmentsPerSlot *int    `json:"max_appointments_per_slot" validate:"omitempty,min=1"`
	AppointmentDuration    *int    `json:"appointment_duration" validate:"omitempty,min=5"`
	BreakStart             *string `json:"break_start" validate:"omitempty"`
	BreakEnd               *string `json:"break_end" validate:"omitempty"`
	Notes                  *string `json:"notes" validate:"omitempty"`
}

// RemoveSlotRequest addresses a slot by persisted id, or by (day_of_week,
// slot_order) for drafts that have no id yet.
type RemoveSlotRequest struct {
	ID        uint   `json:"id" validate:"omitempty"`
	DayOfWeek string `json:"day_of_week" validate:"omitempty,dayofweek"`
	SlotOrder int    `json:"slot_order" validate:"omitempty,min=1"`
}

// Response DTOs

type ScheduleSlotResponse struct {
	ID                     uint      `json:"id"`
	DoctorID               uuid.UUID `json:"doctor_id"`
	DayOfWeek              string    `json:"day_of_week"`
	StartTime              string    `json:"start_time"`
	EndTime                string    `json:"end_time"`
	IsAvailable            bool      `json:"is_available"`
	SlotOrder              int       `json:"slot_order"`
	SlotName               *string   `json:"slot_name,omitempty"`
	MaxAppointmentsPerSlot int       `json:"max_appointments_per_slot"`
	AppointmentDuration    int       `json:"appointment_duration"`
	BreakStart             *string   `json:"break_start,omitempty"`
	BreakEnd               *string   `json:"break_end,omitempty"`
	Notes                  *string   `json:"notes,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// WeekScheduleResponse groups the doctor's slots by weekday in calendar order.
type WeekScheduleResponse struct {
	DoctorID uuid.UUID                         `json:"doctor_id"`
	Days     map[string][]ScheduleSlotResponse `json:"days"`
	Total    int                               `json:"total"`
}
