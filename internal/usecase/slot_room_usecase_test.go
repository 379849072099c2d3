package usecase

import (
	"context"
	"testing"
	"time"

	"hms-scheduling/internal/delivery/dto"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// Range validation happens before any persistence, so these paths are testable
// without a database.

func newBulkUsecase() SlotRoomUsecase {
	log := logrus.New()
	return NewSlotRoomUsecase(nil, log, time.UTC, nil, nil, nil, nil)
}

func TestBulkCreateRejectsReversedRange(t *testing.T) {
	u := newBulkUsecase()

	_, err := u.BulkCreate(context.Background(), nil, &dto.BulkCreateSlotRoomRequest{
		DoctorID:   uuid.New(),
		ScheduleID: 1,
		RoomID:     1,
		DateFrom:   "2025-03-10",
		DateTo:     "2025-03-01",
	})

	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestBulkCreateRejectsMalformedDates(t *testing.T) {
	u := newBulkUsecase()

	_, err := u.BulkCreate(context.Background(), nil, &dto.BulkCreateSlotRoomRequest{
		DoctorID:   uuid.New(),
		ScheduleID: 1,
		RoomID:     1,
		DateFrom:   "10-03-2025",
		DateTo:     "2025-03-12",
	})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = u.BulkCreate(context.Background(), nil, &dto.BulkCreateSlotRoomRequest{
		DoctorID:   uuid.New(),
		ScheduleID: 1,
		RoomID:     1,
		DateFrom:   "2025-03-10",
		DateTo:     "bad",
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}
