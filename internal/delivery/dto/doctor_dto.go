package dto

import "github.com/google/uuid"

// Request DTOs

type CreateDoctorRequest struct {
	Email          string  `json:"email" validate:"required,email"`
	Password       string  `json:"password" validate:"required,min=8"`
	FullName       string  `json:"full_name" validate:"required"`
	LicenseNumber  string  `json:"license_number" validate:"required"`
	Specialization string  `json:"specialization" validate:"required"`
	ScheduleStart  *string `json:"schedule_start" validate:"omitempty,clocktime"`
	ScheduleEnd    *string `json:"schedule_end" validate:"omitempty,clocktime"`
	RoomID         *uint   `json:"room_id" validate:"omitempty"`
	Biography      string  `json:"biography" validate:"omitempty"`
}

type UpdateDoctorRequest struct {
	FullName       string  `json:"full_name" validate:"omitempty"`
	Specialization string  `json:"specialization" validate:"omitempty"`
	ScheduleStart  *string `json:"schedule_start" validate:"omitempty,clocktime"`
	ScheduleEnd    *string `json:"schedule_end" validate:"omitempty,clocktime"`
	RoomID         *uint   `json:"room_id" validate:"omitempty"`
	Biography      *string `json:"biography" validate:"omitempty"`
}

// Response DTOs

type DoctorResponse struct {
	ID             uuid.UUID     `json:"id"`
	Email          string        `json:"email"`
	FullName       string        `json:"full_name"`
	LicenseNumber  string        `json:"license_number"`
	Specialization string        `json:"specialization"`
	ScheduleStart  *string       `json:"schedule_start,omitempty"`
	ScheduleEnd    *string       `json:"schedule_end,omitempty"`
	Biography      string        `json:"biography,omitempty"`
	IsActive       bool          `json:"is_active"`
	Room           *RoomResponse `json:"room,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

// DoctorRoomResponse is the fixed-mode room lookup: the doctor's single static
// room with its floor and that floor's reception desk.
type DoctorRoomResponse struct {
	RoomID        uint   `json:"room_id"`
	RoomNumber    string `json:"room_number"`
	RoomName      string `json:"room_name,omitempty"`
	FloorNumber   int    `json:"floor_number"`
	ReceptionID   *uint  `json:"reception_id,omitempty"`
	ReceptionName string `json:"reception_name,omitempty"`
}
