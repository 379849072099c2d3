package repository

import (
	"testing"

	"hms-scheduling/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A week save with unchanged persisted rows must keep their IDs, so room
// assignments and appointments keyed on schedule_id stay resolvable afterwards.
func TestSplitWeekSlotsKeepsPersistedIdentity(t *testing.T) {
	doctorID := uuid.New()
	slots := []entity.DoctorSchedule{
		{ID: 3, DayOfWeek: "Monday", StartTime: "09:00", EndTime: "12:00", SlotOrder: 1},
		{ID: 7, DayOfWeek: "Monday", StartTime: "13:00", EndTime: "17:00", SlotOrder: 2},
		{DayOfWeek: "Tuesday", StartTime: "09:00", EndTime: "12:00", SlotOrder: 1},
	}

	keepIDs, updates, inserts := splitWeekSlots(doctorID, slots)

	assert.Equal(t, []uint{3, 7}, keepIDs)

	require.Len(t, updates, 2)
	assert.Equal(t, uint(3), updates[0].ID)
	assert.Equal(t, uint(7), updates[1].ID)

	require.Len(t, inserts, 1)
	assert.Zero(t, inserts[0].ID)
	assert.Equal(t, "Tuesday", inserts[0].DayOfWeek)

	for _, s := range append(updates, inserts...) {
		assert.Equal(t, doctorID, s.DoctorID)
	}
}

func TestSplitWeekSlotsAllDrafts(t *testing.T) {
	doctorID := uuid.New()
	slots := []entity.DoctorSchedule{
		{DayOfWeek: "Monday", StartTime: "09:00", EndTime: "12:00", SlotOrder: 1},
	}

	keepIDs, updates, inserts := splitWeekSlots(doctorID, slots)

	assert.Empty(t, keepIDs)
	assert.Empty(t, updates)
	assert.Len(t, inserts, 1)
}

func TestSplitWeekSlotsEmptyWeek(t *testing.T) {
	keepIDs, updates, inserts := splitWeekSlots(uuid.New(), nil)

	assert.Empty(t, keepIDs)
	assert.Empty(t, updates)
	assert.Empty(t, inserts)
}
