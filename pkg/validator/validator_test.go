package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Time string `validate:"omitempty,clocktime"`
	Date string `validate:"omitempty,caldate"`
	Day  string `validate:"omitempty,dayofweek"`
}

func TestClockTimeTag(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(&sample{Time: "09:30"}))
	assert.NoError(t, v.Validate(&sample{Time: "00:00"}))
	assert.NoError(t, v.Validate(&sample{Time: "23:59"}))

	assert.Error(t, v.Validate(&sample{Time: "24:00"}))
	assert.Error(t, v.Validate(&sample{Time: "9:30"}))
	assert.Error(t, v.Validate(&sample{Time: "09:60"}))
	assert.Error(t, v.Validate(&sample{Time: "09:30:00"}))
}

func TestCalDateTag(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(&sample{Date: "2025-03-17"}))

	assert.Error(t, v.Validate(&sample{Date: "17-03-2025"}))
	assert.Error(t, v.Validate(&sample{Date: "2025/03/17"}))
	assert.Error(t, v.Validate(&sample{Date: "2025-3-17"}))
}

func TestDayOfWeekTag(t *testing.T) {
	v := NewValidator()

	for _, day := range []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"} {
		assert.NoErrorf(t, v.Validate(&sample{Day: day}), "day %s", day)
	}

	assert.Error(t, v.Validate(&sample{Day: "monday"}))
	assert.Error(t, v.Validate(&sample{Day: "Funday"}))
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()

	type form struct {
		Email string `validate:"required,email"`
		Time  string `validate:"required,clocktime"`
	}

	err := v.Validate(&form{Email: "not-an-email", Time: "nope"})
	assert.Error(t, err)

	formatted := v.FormatValidationErrors(err)
	assert.Contains(t, formatted["Email"], "valid email")
	assert.Contains(t, formatted["Time"], "HH:MM")
}
