package entity

import "time"

// RoomMode is the facility-wide room assignment policy.
type RoomMode string

const (
	// RoomModeFixed gives each doctor one static room regardless of time slot.
	RoomModeFixed RoomMode = "Fixed"
	// RoomModeDynamic varies the room per (doctor, slot, date) assignment.
	RoomModeDynamic RoomMode = "Dynamic"
)

// IsValid reports whether m is a known room mode.
func (m RoomMode) IsValid() bool {
	return m == RoomModeFixed || m == RoomModeDynamic
}

// Setting is a key/value configuration row.
type Setting struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Key       string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}

// Setting keys
const (
	SettingKeyRoomMode = "room_mode"
)
