package entity

import "github.com/google/uuid"

// DoctorProfile represents doctor-specific profile data.
// ScheduleStart/ScheduleEnd hold the doctor's overall working hours and seed the
// defaults when a new schedule slot is added to a day. RoomID is the doctor's
// static room, used only while the facility runs in fixed room mode.
type DoctorProfile struct {
	UserID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	LicenseNumber  string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number"`
	Specialization string    `gorm:"type:varchar(100);not null;index" json:"specialization"`
	ScheduleStart  *string   `gorm:"type:time" json:"schedule_start,omitempty"`
	ScheduleEnd    *string   `gorm:"type:time" json:"schedule_end,omitempty"`
	RoomID         *uint     `gorm:"index" json:"room_id,omitempty"`
	Biography      string    `gorm:"type:text" json:"biography,omitempty"`

	// Relationships
	User      User             `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Room      *Room            `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Schedules []DoctorSchedule `gorm:"foreignKey:DoctorID" json:"schedules,omitempty"`
	SlotRooms []DoctorSlotRoom `gorm:"foreignKey:DoctorID" json:"slot_rooms,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}

// Editor defaults when the doctor has no overall working hours configured.
const (
	DefaultScheduleStart = "09:00"
	DefaultScheduleEnd   = "17:00"
)

// SlotDefaults returns the start/end times a newly added slot should carry.
func (d *DoctorProfile) SlotDefaults() (string, string) {
	start, end := DefaultScheduleStart, DefaultScheduleEnd
	if d.ScheduleStart != nil && *d.ScheduleStart != "" {
		start = TruncateClock(*d.ScheduleStart)
	}
	if d.ScheduleEnd != nil && *d.ScheduleEnd != "" {
		end = TruncateClock(*d.ScheduleEnd)
	}
	return start, end
}
