package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestWeekScheduleAddSlot(t *testing.T) {
	t.Run("first slot of a day gets order one", func(t *testing.T) {
		week := WeekSchedule{}
		slot := week.AddSlot("Monday", "09:00", "17:00")

		assert.Equal(t, 1, slot.SlotOrder)
		assert.Equal(t, "09:00", slot.StartTime)
		assert.Equal(t, "17:00", slot.EndTime)
		assert.True(t, slot.Available())
	})

	t.Run("order continues past the day's maximum", func(t *testing.T) {
		week := WeekSchedule{Slots: []DoctorSchedule{
			{ID: 10, DayOfWeek: "Monday", SlotOrder: 1},
			{ID: 11, DayOfWeek: "Monday", SlotOrder: 5},
			{ID: 12, DayOfWeek: "Tuesday", SlotOrder: 9},
		}}

		slot := week.AddSlot("Monday", "09:00", "17:00")
		assert.Equal(t, 6, slot.SlotOrder)
	})

	t.Run("days number independently", func(t *testing.T) {
		week := WeekSchedule{}
		week.AddSlot("Monday", "09:00", "17:00")
		slot := week.AddSlot("Friday", "09:00", "17:00")

		assert.Equal(t, 1, slot.SlotOrder)
	})
}

func TestWeekScheduleRemoveSlot(t *testing.T) {
	week := func() WeekSchedule {
		return WeekSchedule{Slots: []DoctorSchedule{
			{ID: 10, DayOfWeek: "Monday", SlotOrder: 1},
			{ID: 0, DayOfWeek: "Monday", SlotOrder: 2},
			{ID: 12, DayOfWeek: "Tuesday", SlotOrder: 1},
		}}
	}

	t.Run("removes persisted slot by id", func(t *testing.T) {
		w := week()
		ok := w.RemoveSlot(SlotRef{ID: 10})

		assert.True(t, ok)
		require.Len(t, w.Slots, 2)
		for _, s := range w.Slots {
			assert.NotEqual(t, uint(10), s.ID)
		}
	})

	t.Run("removes draft slot by day and order", func(t *testing.T) {
		w := week()
		ok := w.RemoveSlot(SlotRef{DayOfWeek: "Monday", SlotOrder: 2})

		assert.True(t, ok)
		assert.Len(t, w.Slots, 2)
	})

	t.Run("day and order never matches a persisted slot", func(t *testing.T) {
		w := week()
		ok := w.RemoveSlot(SlotRef{DayOfWeek: "Tuesday", SlotOrder: 1})

		assert.False(t, ok)
		assert.Len(t, w.Slots, 3)
	})

	t.Run("leaves other slots' order untouched", func(t *testing.T) {
		w := week()
		w.RemoveSlot(SlotRef{ID: 10})

		monday := w.SlotsForDay("Monday")
		require.Len(t, monday, 1)
		assert.Equal(t, 2, monday[0].SlotOrder)
	})

	t.Run("unknown ref reports false", func(t *testing.T) {
		w := week()
		assert.False(t, w.RemoveSlot(SlotRef{ID: 99}))
	})
}

func TestWeekScheduleUpdateSlot(t *testing.T) {
	w := WeekSchedule{Slots: []DoctorSchedule{
		{ID: 10, DayOfWeek: "Monday", SlotOrder: 1, StartTime: "09:00"},
		{ID: 0, DayOfWeek: "Monday", SlotOrder: 2, StartTime: "13:00"},
	}}

	ok := w.UpdateSlot(SlotRef{DayOfWeek: "Monday", SlotOrder: 2}, func(s *DoctorSchedule) {
		s.StartTime = "14:00"
	})

	assert.True(t, ok)
	assert.Equal(t, "09:00", w.Slots[0].StartTime)
	assert.Equal(t, "14:00", w.Slots[1].StartTime)
}

func TestWeekScheduleNormalize(t *testing.T) {
	w := WeekSchedule{Slots: []DoctorSchedule{{
		DayOfWeek:  "Monday",
		StartTime:  "09:00:00",
		EndTime:    "17:00:00",
		SlotOrder:  1,
		SlotName:   strPtr(""),
		BreakStart: strPtr("12:00:00"),
		BreakEnd:   strPtr("13:00:00"),
	}}}

	w.Normalize()

	s := w.Slots[0]
	assert.Equal(t, "09:00", s.StartTime)
	assert.Equal(t, "17:00", s.EndTime)
	assert.Nil(t, s.SlotName)
	require.NotNil(t, s.BreakStart)
	assert.Equal(t, "12:00", *s.BreakStart)
	assert.Equal(t, "13:00", *s.BreakEnd)
	assert.Equal(t, 1, s.MaxAppointmentsPerSlot)
	assert.Equal(t, 30, s.AppointmentDuration)
}

func TestDoctorScheduleContains(t *testing.T) {
	s := DoctorSchedule{StartTime: "09:00", EndTime: "12:00"}

	assert.True(t, s.Contains("09:00"))
	assert.True(t, s.Contains("11:59"))
	assert.False(t, s.Contains("12:00"))
	assert.False(t, s.Contains("08:59"))
}
