package service

import (
	"testing"

	"hms-scheduling/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func morningSlot() entity.DoctorSchedule {
	return entity.DoctorSchedule{
		ID:                     1,
		DayOfWeek:              "Monday",
		StartTime:              "09:00",
		EndTime:                "12:00",
		IsAvailable:            boolPtr(true),
		SlotOrder:              1,
		MaxAppointmentsPerSlot: 3,
		AppointmentDuration:    30,
	}
}

func TestExpandSlotTimes(t *testing.T) {
	t.Run("walks start to end in duration steps", func(t *testing.T) {
		s := morningSlot()
		s.EndTime = "10:30"

		times, err := ExpandSlotTimes(&s)
		require.NoError(t, err)
		assert.Equal(t, []string{"09:00", "09:30", "10:00"}, times)
	})

	t.Run("end time is exclusive", func(t *testing.T) {
		s := morningSlot()
		s.EndTime = "10:00"

		times, err := ExpandSlotTimes(&s)
		require.NoError(t, err)
		assert.NotContains(t, times, "10:00")
	})

	t.Run("excludes candidates fully inside the break", func(t *testing.T) {
		s := morningSlot()
		s.BreakStart = strPtr("09:30")
		s.BreakEnd = strPtr("10:00")

		times, err := ExpandSlotTimes(&s)
		require.NoError(t, err)
		assert.NotContains(t, times, "09:30")
		assert.Contains(t, times, "09:00")
		assert.Contains(t, times, "10:00")
	})

	t.Run("keeps candidate that only overlaps the break partially", func(t *testing.T) {
		s := morningSlot()
		s.BreakStart = strPtr("09:45")
		s.BreakEnd = strPtr("10:15")

		times, err := ExpandSlotTimes(&s)
		require.NoError(t, err)
		// 09:30-10:00 and 10:00-10:30 each stick out of the break window.
		assert.Contains(t, times, "09:30")
		assert.Contains(t, times, "10:00")
	})

	t.Run("zero duration falls back to thirty minutes", func(t *testing.T) {
		s := morningSlot()
		s.EndTime = "10:00"
		s.AppointmentDuration = 0

		times, err := ExpandSlotTimes(&s)
		require.NoError(t, err)
		assert.Equal(t, []string{"09:00", "09:30"}, times)
	})
}

func TestResolveAvailableSlots(t *testing.T) {
	t.Run("computes remaining capacity per time", func(t *testing.T) {
		schedules := []entity.DoctorSchedule{morningSlot()}
		booked := map[string]int{"09:00": 1, "09:30": 3}

		slots, err := ResolveAvailableSlots(schedules, "Monday", booked)
		require.NoError(t, err)
		require.NotEmpty(t, slots)

		byTime := make(map[string]AvailableSlot, len(slots))
		for _, s := range slots {
			byTime[s.Time] = s
		}

		assert.Equal(t, 2, byTime["09:00"].Available)
		assert.True(t, byTime["09:00"].IsAvailable)
		assert.Equal(t, 0, byTime["09:30"].Available)
		assert.Equal(t, SlotStatusFull, byTime["09:30"].Status)
		assert.False(t, byTime["09:30"].IsAvailable)
		assert.Equal(t, 3, byTime["10:00"].Available)
	})

	t.Run("overbooked time clamps to zero", func(t *testing.T) {
		schedules := []entity.DoctorSchedule{morningSlot()}
		booked := map[string]int{"09:00": 5}

		slots, err := ResolveAvailableSlots(schedules, "Monday", booked)
		require.NoError(t, err)
		assert.Equal(t, 0, slots[0].Available)
		assert.Equal(t, SlotStatusFull, slots[0].Status)
	})

	t.Run("skips other weekdays and unavailable slots", func(t *testing.T) {
		off := morningSlot()
		off.ID = 2
		off.IsAvailable = boolPtr(false)
		tuesday := morningSlot()
		tuesday.ID = 3
		tuesday.DayOfWeek = "Tuesday"

		slots, err := ResolveAvailableSlots([]entity.DoctorSchedule{off, tuesday}, "Monday", nil)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("orders by slot order then time", func(t *testing.T) {
		afternoon := morningSlot()
		afternoon.ID = 2
		afternoon.SlotOrder = 2
		afternoon.StartTime = "14:00"
		afternoon.EndTime = "15:00"
		morning := morningSlot()
		morning.EndTime = "10:00"

		// Deliberately out of order.
		slots, err := ResolveAvailableSlots([]entity.DoctorSchedule{afternoon, morning}, "Monday", nil)
		require.NoError(t, err)
		require.Len(t, slots, 4)
		assert.Equal(t, "09:00", slots[0].Time)
		assert.Equal(t, "09:30", slots[1].Time)
		assert.Equal(t, "14:00", slots[2].Time)
		assert.Equal(t, "14:30", slots[3].Time)
	})

	t.Run("carries the slot name and schedule id", func(t *testing.T) {
		s := morningSlot()
		s.SlotName = strPtr("Morning Clinic")
		s.EndTime = "09:30"

		slots, err := ResolveAvailableSlots([]entity.DoctorSchedule{s}, "Monday", nil)
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, "Morning Clinic", slots[0].SlotName)
		assert.Equal(t, uint(1), slots[0].ScheduleID)
	})
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, SlotStatusFull, StatusFor(0, 4))
	assert.Equal(t, SlotStatusFull, StatusFor(-1, 4))
	assert.Equal(t, SlotStatusLimited, StatusFor(1, 4))
	assert.Equal(t, SlotStatusLimited, StatusFor(2, 4))
	assert.Equal(t, SlotStatusAvailable, StatusFor(3, 4))
	assert.Equal(t, SlotStatusAvailable, StatusFor(4, 4))
	// Capacity one is available until booked.
	assert.Equal(t, SlotStatusAvailable, StatusFor(1, 1))
	assert.Equal(t, SlotStatusLimited, StatusFor(1, 2))
}

func TestScheduleForTime(t *testing.T) {
	schedules := []entity.DoctorSchedule{morningSlot()}

	t.Run("finds the containing slot", func(t *testing.T) {
		s := ScheduleForTime(schedules, "Monday", "09:45")
		require.NotNil(t, s)
		assert.Equal(t, uint(1), s.ID)
	})

	t.Run("start is inclusive and end exclusive", func(t *testing.T) {
		assert.NotNil(t, ScheduleForTime(schedules, "Monday", "09:00"))
		assert.Nil(t, ScheduleForTime(schedules, "Monday", "12:00"))
	})

	t.Run("nil outside every slot", func(t *testing.T) {
		assert.Nil(t, ScheduleForTime(schedules, "Monday", "13:00"))
		assert.Nil(t, ScheduleForTime(schedules, "Tuesday", "09:30"))
	})

	t.Run("normalizes seconds before matching", func(t *testing.T) {
		assert.NotNil(t, ScheduleForTime(schedules, "Monday", "09:30:00"))
	})
}
