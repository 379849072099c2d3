package converter

import (
	"testing"

	"hms-scheduling/internal/delivery/dto"
	"hms-scheduling/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekToResponse(t *testing.T) {
	doctorID := uuid.New()
	available := true
	slots := []entity.DoctorSchedule{
		{ID: 1, DoctorID: doctorID, DayOfWeek: "Monday", StartTime: "09:00", EndTime: "12:00", IsAvailable: &available, SlotOrder: 1},
		{ID: 2, DoctorID: doctorID, DayOfWeek: "Monday", StartTime: "14:00", EndTime: "17:00", IsAvailable: &available, SlotOrder: 2},
		{ID: 3, DoctorID: doctorID, DayOfWeek: "Friday", StartTime: "09:00", EndTime: "12:00", IsAvailable: &available, SlotOrder: 1},
	}

	resp := WeekToResponse(doctorID, slots)

	assert.Equal(t, doctorID, resp.DoctorID)
	assert.Equal(t, 3, resp.Total)

	// Every weekday is present, empty days as empty lists.
	require.Len(t, resp.Days, 7)
	for _, day := range entity.DayNames {
		assert.Contains(t, resp.Days, day)
	}
	assert.Len(t, resp.Days["Monday"], 2)
	assert.Len(t, resp.Days["Friday"], 1)
	assert.Empty(t, resp.Days["Sunday"])
}

func TestScheduleSlotToResponseTruncatesClocks(t *testing.T) {
	s := &entity.DoctorSchedule{
		ID:        1,
		DayOfWeek: "Monday",
		StartTime: "09:00:00",
		EndTime:   "12:00:00",
	}

	resp := ScheduleSlotToResponse(s)
	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, "12:00", resp.EndTime)
}

func TestSlotRequestToEntity(t *testing.T) {
	doctorID := uuid.New()
	name := "Morning Clinic"
	req := &dto.ScheduleSlotRequest{
		DayOfWeek:              "Monday",
		StartTime:              "09:00",
		EndTime:                "12:00",
		SlotOrder:              1,
		SlotName:               &name,
		MaxAppointmentsPerSlot: 3,
		AppointmentDuration:    20,
	}

	e := SlotRequestToEntity(doctorID, req)
	assert.Equal(t, doctorID, e.DoctorID)
	assert.Equal(t, "Monday", e.DayOfWeek)
	assert.Equal(t, &name, e.SlotName)
	assert.Equal(t, 3, e.MaxAppointmentsPerSlot)
	assert.Equal(t, 20, e.AppointmentDuration)
}
