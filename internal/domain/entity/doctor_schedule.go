package entity

import (
	"time"

	"github.com/google/uuid"
)

// Weekday names as stored in day_of_week. Matches time.Weekday.String().
const (
	DaySunday    = "Sunday"
	DayMonday    = "Monday"
	DayTuesday   = "Tuesday"
	DayWednesday = "Wednesday"
	DayThursday  = "Thursday"
	DayFriday    = "Friday"
	DaySaturday  = "Saturday"
)

// DayNames lists the seven weekday names in calendar order.
var DayNames = []string{
	DaySunday, DayMonday, DayTuesday, DayWednesday, DayThursday, DayFriday, DaySaturday,
}

// IsValidDayOfWeek reports whether name is one of the seven weekday names.
func IsValidDayOfWeek(name string) bool {
	for _, d := range DayNames {
		if d == name {
			return true
		}
	}
	return false
}

// DoctorSchedule represents one recurring time slot in a doctor's weekly schedule.
// A doctor may have several slots on the same weekday (e.g. Morning and Afternoon),
// ordered by SlotOrder. Rows with ID == 0 are drafts that have not been persisted
// yet and are addressed by (DayOfWeek, SlotOrder) instead.
type DoctorSchedule struct {
	ID                     uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID               uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	DayOfWeek              string    `gorm:"type:varchar(10);not null;index" json:"day_of_week"`
	StartTime              string    `gorm:"type:time;not null" json:"start_time"`
	EndTime                string    `gorm:"type:time;not null" json:"end_time"`
	IsAvailable            *bool     `gorm:"not null;default:true" json:"is_available"`
	SlotOrder              int       `gorm:"not null;default:1" json:"slot_order"`
	SlotName               *string   `gorm:"type:varchar(50)" json:"slot_name,omitempty"`
	MaxAppointmentsPerSlot int       `gorm:"not null;default:1" json:"max_appointments_per_slot"`
	AppointmentDuration    int       `gorm:"not null;default:30" json:"appointment_duration"`
	BreakStart             *string   `gorm:"type:time" json:"break_start,omitempty"`
	BreakEnd               *string   `gorm:"type:time" json:"break_end,omitempty"`
	Notes                  *string   `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt              time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor       DoctorProfile    `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	SlotRooms    []DoctorSlotRoom `gorm:"foreignKey:ScheduleID" json:"slot_rooms,omitempty"`
	Appointments []Appointment    `gorm:"foreignKey:ScheduleID" json:"appointments,omitempty"`
}

func (DoctorSchedule) TableName() string {
	return "doctor_schedules"
}

// Available reports whether the slot is open for booking at all.
func (s *DoctorSchedule) Available() bool {
	return s.IsAvailable == nil || *s.IsAvailable
}

// Contains reports whether clock time t (HH:MM) falls inside [StartTime, EndTime).
// Comparison is lexical, which is correct for zero-padded 24-hour times.
func (s *DoctorSchedule) Contains(t string) bool {
	return t >= TruncateClock(s.StartTime) && t < TruncateClock(s.EndTime)
}

// TruncateClock reduces HH:MM:SS to HH:MM. Shorter values pass through unchanged.
func TruncateClock(t string) string {
	if len(t) > 5 {
		return t[:5]
	}
	return t
}
