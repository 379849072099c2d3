package entity

import (
	"time"

	"github.com/google/uuid"
)

// DoctorSlotRoom assigns a room (and optionally a reception desk) to one
// (doctor, schedule slot, calendar date) combination. Used in dynamic room
// mode; rows are created singly or fanned out across a date range. Uniqueness
// of the triple is enforced by the database, not checked here.
type DoctorSlotRoom struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID       uuid.UUID `gorm:"type:uuid;not null;index:idx_slot_room_lookup" json:"doctor_id"`
	ScheduleID     uint      `gorm:"not null;index:idx_slot_room_lookup" json:"schedule_id"`
	RoomID         uint      `gorm:"not null;index" json:"room_id"`
	ReceptionID    *uint     `gorm:"index" json:"reception_id,omitempty"`
	AssignmentDate time.Time `gorm:"type:date;not null;index:idx_slot_room_lookup" json:"assignment_date"`
	IsActive       *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor    DoctorProfile  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Schedule  DoctorSchedule `gorm:"foreignKey:ScheduleID" json:"schedule,omitempty"`
	Room      Room           `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Reception *Reception     `gorm:"foreignKey:ReceptionID" json:"reception,omitempty"`
}

func (DoctorSlotRoom) TableName() string {
	return "doctor_slot_rooms"
}

// SlotRoomFilter is a domain-level filter for querying slot room assignments.
// Used by the repository layer to avoid coupling with delivery DTOs.
type SlotRoomFilter struct {
	DoctorID       *uuid.UUID
	ScheduleID     *uint
	AssignmentDate string // Format: YYYY-MM-DD
	ActiveOnly     bool
}
