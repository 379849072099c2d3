package usecase

import (
	"context"
	"testing"

	"hms-scheduling/internal/delivery/dto"
	"hms-scheduling/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func validSlot() entity.DoctorSchedule {
	return entity.DoctorSchedule{
		DayOfWeek:              "Monday",
		StartTime:              "09:00",
		EndTime:                "12:00",
		SlotOrder:              1,
		MaxAppointmentsPerSlot: 2,
		AppointmentDuration:    30,
	}
}

func TestValidateWeek(t *testing.T) {
	t.Run("accepts a well formed week", func(t *testing.T) {
		s := validSlot()
		s.BreakStart = strPtr("10:00")
		s.BreakEnd = strPtr("10:30")

		assert.NoError(t, validateWeek([]entity.DoctorSchedule{s}))
	})

	t.Run("rejects end before start", func(t *testing.T) {
		s := validSlot()
		s.EndTime = "08:00"

		assert.ErrorIs(t, validateWeek([]entity.DoctorSchedule{s}), ErrInvalidSlotTimes)
	})

	t.Run("rejects zero length slot", func(t *testing.T) {
		s := validSlot()
		s.EndTime = s.StartTime

		assert.ErrorIs(t, validateWeek([]entity.DoctorSchedule{s}), ErrInvalidSlotTimes)
	})

	t.Run("rejects half specified break", func(t *testing.T) {
		s := validSlot()
		s.BreakStart = strPtr("10:00")

		assert.ErrorIs(t, validateWeek([]entity.DoctorSchedule{s}), ErrInvalidBreak)
	})

	t.Run("rejects break outside the slot", func(t *testing.T) {
		s := validSlot()
		s.BreakStart = strPtr("08:00")
		s.BreakEnd = strPtr("08:30")

		assert.ErrorIs(t, validateWeek([]entity.DoctorSchedule{s}), ErrInvalidBreak)
	})

	t.Run("rejects inverted break", func(t *testing.T) {
		s := validSlot()
		s.BreakStart = strPtr("11:00")
		s.BreakEnd = strPtr("10:00")

		assert.ErrorIs(t, validateWeek([]entity.DoctorSchedule{s}), ErrInvalidBreak)
	})

	t.Run("rejects malformed clock times", func(t *testing.T) {
		s := validSlot()
		s.StartTime = "nine"

		assert.Error(t, validateWeek([]entity.DoctorSchedule{s}))
	})

	t.Run("rejects duplicate slot order on one day", func(t *testing.T) {
		a := validSlot()
		b := validSlot()
		a.SlotOrder = 2
		b.SlotOrder = 2
		b.StartTime = "13:00"
		b.EndTime = "17:00"

		assert.ErrorIs(t, validateWeek([]entity.DoctorSchedule{a, b}), ErrDuplicateSlotOrder)
	})

	t.Run("accepts the same slot order on different days", func(t *testing.T) {
		a := validSlot()
		b := validSlot()
		b.DayOfWeek = "Tuesday"

		assert.NoError(t, validateWeek([]entity.DoctorSchedule{a, b}))
	})
}

func newScheduleUsecase(doctorID uuid.UUID, persisted []entity.DoctorSchedule) DoctorScheduleUsecase {
	return NewDoctorScheduleUsecase(
		testDB(),
		logrus.New(),
		&fakeScheduleRepo{slots: persisted},
		&fakeDoctorRepo{doctors: map[uuid.UUID]*entity.DoctorProfile{doctorID: {UserID: doctorID}}},
		nil,
	)
}

// A week save must not be able to claim a slot id the doctor does not own.
func TestReplaceWeekRejectsUnknownSlotID(t *testing.T) {
	doctorID := uuid.New()
	persisted := validSlot()
	persisted.ID = 4
	u := newScheduleUsecase(doctorID, []entity.DoctorSchedule{persisted})

	_, err := u.ReplaceWeek(context.Background(), nil, doctorID, &dto.ReplaceWeekRequest{
		Slots: []dto.ScheduleSlotRequest{{
			ID:        99,
			DayOfWeek: "Monday",
			StartTime: "09:00",
			EndTime:   "12:00",
			SlotOrder: 1,
		}},
	})

	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestReplaceWeekRejectsDuplicateSlotOrder(t *testing.T) {
	doctorID := uuid.New()
	u := newScheduleUsecase(doctorID, nil)

	_, err := u.ReplaceWeek(context.Background(), nil, doctorID, &dto.ReplaceWeekRequest{
		Slots: []dto.ScheduleSlotRequest{
			{DayOfWeek: "Monday", StartTime: "09:00", EndTime: "12:00", SlotOrder: 2},
			{DayOfWeek: "Monday", StartTime: "13:00", EndTime: "17:00", SlotOrder: 2},
		},
	})

	assert.ErrorIs(t, err, ErrDuplicateSlotOrder)
}

func TestUpdateSlotUnknownRef(t *testing.T) {
	doctorID := uuid.New()
	persisted := validSlot()
	persisted.ID = 4
	u := newScheduleUsecase(doctorID, []entity.DoctorSchedule{persisted})

	_, err := u.UpdateSlot(context.Background(), nil, doctorID, &dto.UpdateSlotRequest{ID: 99})

	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestUpdateSlotValidatesPatchedTimes(t *testing.T) {
	doctorID := uuid.New()
	persisted := validSlot()
	persisted.ID = 4
	u := newScheduleUsecase(doctorID, []entity.DoctorSchedule{persisted})

	_, err := u.UpdateSlot(context.Background(), nil, doctorID, &dto.UpdateSlotRequest{
		ID:      4,
		EndTime: strPtr("08:00"),
	})

	assert.ErrorIs(t, err, ErrInvalidSlotTimes)
}
