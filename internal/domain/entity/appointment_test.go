package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStatusTransition(t *testing.T) {
	cases := []struct {
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{AppointmentStatusWaiting, AppointmentStatusInProgress, true},
		{AppointmentStatusWaiting, AppointmentStatusCancelled, true},
		{AppointmentStatusWaiting, AppointmentStatusCompleted, false},
		{AppointmentStatusInProgress, AppointmentStatusCompleted, true},
		{AppointmentStatusInProgress, AppointmentStatusCancelled, true},
		{AppointmentStatusInProgress, AppointmentStatusWaiting, false},
		{AppointmentStatusCompleted, AppointmentStatusInProgress, false},
		{AppointmentStatusCompleted, AppointmentStatusCancelled, false},
		{AppointmentStatusCancelled, AppointmentStatusWaiting, false},
		{AppointmentStatusCancelled, AppointmentStatusCancelled, false},
	}

	for _, tc := range cases {
		a := Appointment{Status: tc.from}
		assert.Equalf(t, tc.allowed, a.ValidStatusTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestIsCancelled(t *testing.T) {
	a := Appointment{Status: AppointmentStatusWaiting}
	assert.False(t, a.IsCancelled())

	a.Status = AppointmentStatusCancelled
	assert.True(t, a.IsCancelled())
}
