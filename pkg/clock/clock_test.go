package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinutesOfDay(t *testing.T) {
	m, err := MinutesOfDay("09:30")
	require.NoError(t, err)
	assert.Equal(t, 570, m)

	m, err = MinutesOfDay("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, m)

	m, err = MinutesOfDay("23:59")
	require.NoError(t, err)
	assert.Equal(t, 1439, m)

	// Database TIME columns come back with seconds.
	m, err = MinutesOfDay("09:30:00")
	require.NoError(t, err)
	assert.Equal(t, 570, m)

	_, err = MinutesOfDay("930")
	assert.ErrorIs(t, err, ErrInvalidClockTime)

	_, err = MinutesOfDay("25:00")
	assert.ErrorIs(t, err, ErrInvalidClockTime)
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "09:30", FormatMinutes(570))
	assert.Equal(t, "00:00", FormatMinutes(0))
	assert.Equal(t, "23:59", FormatMinutes(1439))
}

func TestParseAndFormatDate(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	d, err := ParseDate("2025-03-17", loc)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-17", FormatDate(d))
	assert.Equal(t, "Monday", WeekdayName(d))

	_, err = ParseDate("17-03-2025", loc)
	assert.Error(t, err)
}

func TestDatesInRange(t *testing.T) {
	loc := time.UTC
	day := func(s string) time.Time {
		d, err := ParseDate(s, loc)
		require.NoError(t, err)
		return d
	}

	t.Run("inclusive on both ends", func(t *testing.T) {
		dates := DatesInRange(day("2025-03-01"), day("2025-03-03"))
		require.Len(t, dates, 3)
		assert.Equal(t, "2025-03-01", FormatDate(dates[0]))
		assert.Equal(t, "2025-03-03", FormatDate(dates[2]))
	})

	t.Run("single day range", func(t *testing.T) {
		dates := DatesInRange(day("2025-03-01"), day("2025-03-01"))
		assert.Len(t, dates, 1)
	})

	t.Run("reversed range yields nothing", func(t *testing.T) {
		assert.Nil(t, DatesInRange(day("2025-03-03"), day("2025-03-01")))
	})

	t.Run("crosses month boundary", func(t *testing.T) {
		dates := DatesInRange(day("2025-02-27"), day("2025-03-02"))
		require.Len(t, dates, 4)
		assert.Equal(t, "2025-02-28", FormatDate(dates[1]))
		assert.Equal(t, "2025-03-01", FormatDate(dates[2]))
	})
}

func TestIsPastDate(t *testing.T) {
	loc := time.UTC

	yesterday := Today(loc).AddDate(0, 0, -1)
	assert.True(t, IsPastDate(yesterday, loc))

	assert.False(t, IsPastDate(Today(loc), loc))

	tomorrow := Today(loc).AddDate(0, 0, 1)
	assert.False(t, IsPastDate(tomorrow, loc))
}
