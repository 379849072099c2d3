package usecase

import (
	"context"
	"testing"
	"time"

	"hms-scheduling/internal/delivery/dto"
	"hms-scheduling/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newCreateUsecase() AppointmentUsecase {
	log := logrus.New()
	return NewAppointmentUsecase(nil, log, time.UTC, nil, nil, nil, nil, nil, nil, nil, nil)
}

func TestCreateRejectsPastDate(t *testing.T) {
	u := newCreateUsecase()

	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
	_, err := u.Create(context.Background(), nil, &dto.CreateAppointmentRequest{
		PatientID:       uuid.New(),
		DoctorID:        uuid.New(),
		AppointmentDate: yesterday,
		AppointmentTime: "09:00",
	})

	assert.ErrorIs(t, err, ErrPastDate)
}

func TestCreateRejectsMalformedDate(t *testing.T) {
	u := newCreateUsecase()

	_, err := u.Create(context.Background(), nil, &dto.CreateAppointmentRequest{
		PatientID:       uuid.New(),
		DoctorID:        uuid.New(),
		AppointmentDate: "03/17/2025",
		AppointmentTime: "09:00",
	})

	assert.ErrorIs(t, err, ErrInvalidDate)
}

// In dynamic room mode a time that falls inside no schedule slot must be
// rejected before anything is written.
func TestCreateDynamicModeRequiresScheduleSlot(t *testing.T) {
	patientID := uuid.New()
	doctorID := uuid.New()

	appointments := &fakeAppointmentRepo{}
	u := NewAppointmentUsecase(
		testDB(),
		logrus.New(),
		time.UTC,
		appointments,
		&fakePatientRepo{patients: map[uuid.UUID]*entity.Patient{patientID: {ID: patientID}}},
		&fakeDoctorRepo{doctors: map[uuid.UUID]*entity.DoctorProfile{doctorID: {UserID: doctorID}}},
		&fakeScheduleRepo{},
		&fakeSlotRoomRepo{},
		&fakeSettingRepo{values: map[string]string{entity.SettingKeyRoomMode: string(entity.RoomModeDynamic)}},
		nil,
		nil,
	)

	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
	_, err := u.Create(context.Background(), nil, &dto.CreateAppointmentRequest{
		PatientID:       patientID,
		DoctorID:        doctorID,
		AppointmentDate: tomorrow,
		AppointmentTime: "09:00",
	})

	assert.ErrorIs(t, err, ErrTimeOutsideSchedule)
	assert.Empty(t, appointments.created)
}
