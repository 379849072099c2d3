// Package clock handles the facility-local date and time conventions used
// throughout the scheduling system: calendar dates are YYYY-MM-DD strings and
// clock times are HH:MM 24-hour strings, both wall-clock values with no
// timezone component.
package clock

import (
	"errors"
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var ErrInvalidClockTime = errors.New("invalid clock time, use HH:MM")

// ParseDate parses a YYYY-MM-DD string in the given location.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, loc)
}

// FormatDate renders a date as YYYY-MM-DD using its own local calendar fields.
// Deliberately not UTC-based: converting to UTC first can shift the calendar
// day near midnight.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// MinutesOfDay converts an HH:MM (or HH:MM:SS) string to minutes since
// midnight.
func MinutesOfDay(s string) (int, error) {
	if len(s) > 5 {
		s = s[:5]
	}
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return 0, ErrInvalidClockTime
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatMinutes renders minutes since midnight as zero-padded HH:MM.
func FormatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// WeekdayName returns the locale-independent English weekday name for a date
// ("Sunday".."Saturday").
func WeekdayName(t time.Time) string {
	return t.Weekday().String()
}

// Today returns midnight of the current day in loc.
func Today(loc *time.Location) time.Time {
	now := time.Now().In(loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
}

// IsPastDate reports whether date falls before today at day granularity,
// ignoring time of day.
func IsPastDate(date time.Time, loc *time.Location) bool {
	return FormatDate(date) < FormatDate(Today(loc))
}

// DatesInRange expands an inclusive [from, to] date range into one entry per
// calendar day. Returns nil when from is after to.
func DatesInRange(from, to time.Time) []time.Time {
	if from.After(to) {
		return nil
	}
	var dates []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}
