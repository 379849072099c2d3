package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateSlotRoomRequest struct {
	DoctorID       uuid.UUID `json:"doctor_id" validate:"required"`
	ScheduleID     uint      `json:"schedule_id" validate:"required"`
	RoomID         uint      `json:"room_id" validate:"required"`
	ReceptionID    *uint     `json:"reception_id" validate:"omitempty"`
	AssignmentDate string    `json:"assignment_date" validate:"required,caldate"` // Format: YYYY-MM-DD
}

// BulkCreateSlotRoomRequest fans one assignment out across an inclusive date
// range. DateFrom must not be after DateTo.
type BulkCreateSlotRoomRequest struct {
	DoctorID    uuid.UUID `json:"doctor_id" validate:"required"`
	ScheduleID  uint      `json:"schedule_id" validate:"required"`
	RoomID      uint      `json:"room_id" validate:"required"`
	ReceptionID *uint     `json:"reception_id" validate:"omitempty"`
	DateFrom    string    `json:"date_from" validate:"required,caldate"`
	DateTo      string    `json:"date_to" validate:"required,caldate"`
}

type UpdateSlotRoomRequest struct {
	RoomID         *uint  `json:"room_id" validate:"omitempty"`
	ReceptionID    *uint  `json:"reception_id" validate:"omitempty"`
	IsActive       *bool  `json:"is_active" validate:"omitempty"`
	AssignmentDate string `json:"assignment_date" validate:"omitempty,caldate"`
}

// Response DTOs

type SlotRoomResponse struct {
	ID             uint                  `json:"id"`
	DoctorID       uuid.UUID             `json:"doctor_id"`
	ScheduleID     uint                  `json:"schedule_id"`
	Schedule       *ScheduleSlotResponse `json:"schedule,omitempty"`
	Room           *RoomResponse         `json:"room,omitempty"`
	Reception      *ReceptionResponse    `json:"reception,omitempty"`
	AssignmentDate string                `json:"assignment_date"`
	IsActive       bool                  `json:"is_active"`
	CreatedAt      time.Time             `json:"created_at"`
}

type SlotRoomListResponse struct {
	Assignments []SlotRoomResponse `json:"assignments"`
	Total       int                `json:"total"`
}

// BulkCreateSlotRoomResponse reports how many assignment rows were inserted.
type BulkCreateSlotRoomResponse struct {
	Inserted int `json:"inserted"`
}
