package dto

import "github.com/google/uuid"

// AvailableSlotResponse is one discrete bookable time point.
type AvailableSlotResponse struct {
	Time        string `json:"time"`
	SlotName    string `json:"slot_name,omitempty"`
	ScheduleID  uint   `json:"schedule_id"`
	Total       int    `json:"total"`
	Available   int    `json:"available"`
	Status      string `json:"status"`
	IsAvailable bool   `json:"is_available"`
}

// AvailabilityResponse is the resolver output for one doctor and date.
// IsPast flags dates before today (day granularity, facility timezone); such
// dates still carry computed slots but must not be booked.
type AvailabilityResponse struct {
	DoctorID  uuid.UUID               `json:"doctor_id"`
	Date      string                  `json:"date"`
	DayOfWeek string                  `json:"day_of_week"`
	IsPast    bool                    `json:"is_past"`
	Slots     []AvailableSlotResponse `json:"slots"`
	Total     int                     `json:"total"`
}
