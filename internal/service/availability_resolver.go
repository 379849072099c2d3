package service

import (
	"sort"

	"hms-scheduling/internal/domain/entity"
	"hms-scheduling/pkg/clock"
)

// SlotStatus classifies how full a bookable time point is. The limited
// threshold is a display policy, not a business rule.
type SlotStatus string

const (
	SlotStatusAvailable SlotStatus = "available"
	SlotStatusLimited   SlotStatus = "limited"
	SlotStatusFull      SlotStatus = "full"
)

// AvailableSlot is one discrete bookable time point computed from a weekly
// schedule slot. Never persisted.
type AvailableSlot struct {
	Time        string     `json:"time"`
	SlotName    string     `json:"slot_name,omitempty"`
	ScheduleID  uint       `json:"schedule_id"`
	Total       int        `json:"total"`
	Available   int        `json:"available"`
	Status      SlotStatus `json:"status"`
	IsAvailable bool       `json:"is_available"`
}

// ResolveAvailableSlots computes the ordered bookable time points for one
// doctor on one weekday. schedules is the doctor's full week; only rows
// matching dayOfWeek with is_available set are considered. booked maps HH:MM
// to the number of existing appointments at that exact time. An empty result
// means the doctor is not available on that day.
//
// Candidates are emitted in slot order then chronological order within each
// slot; no re-sorting happens downstream.
func ResolveAvailableSlots(schedules []entity.DoctorSchedule, dayOfWeek string, booked map[string]int) ([]AvailableSlot, error) {
	matching := make([]entity.DoctorSchedule, 0, len(schedules))
	for _, s := range schedules {
		if s.DayOfWeek == dayOfWeek && s.Available() {
			matching = append(matching, s)
		}
	}
	sort.SliceStable(matching, func(i, j int) bool { return matching[i].SlotOrder < matching[j].SlotOrder })

	var out []AvailableSlot
	for i := range matching {
		s := &matching[i]
		times, err := ExpandSlotTimes(s)
		if err != nil {
			return nil, err
		}
		name := ""
		if s.SlotName != nil {
			name = *s.SlotName
		}
		for _, t := range times {
			total := s.MaxAppointmentsPerSlot
			available := total - booked[t]
			if available < 0 {
				available = 0
			}
			out = append(out, AvailableSlot{
				Time:        t,
				SlotName:    name,
				ScheduleID:  s.ID,
				Total:       total,
				Available:   available,
				Status:      StatusFor(available, total),
				IsAvailable: available > 0,
			})
		}
	}
	return out, nil
}

// ExpandSlotTimes walks [start_time, end_time) in appointment_duration steps
// and returns the candidate HH:MM times. A candidate whose whole increment
// falls inside [break_start, break_end) is excluded.
func ExpandSlotTimes(s *entity.DoctorSchedule) ([]string, error) {
	start, err := clock.MinutesOfDay(s.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := clock.MinutesOfDay(s.EndTime)
	if err != nil {
		return nil, err
	}
	step := s.AppointmentDuration
	if step <= 0 {
		step = 30
	}

	breakStart, breakEnd := -1, -1
	if s.BreakStart != nil && s.BreakEnd != nil {
		if breakStart, err = clock.MinutesOfDay(*s.BreakStart); err != nil {
			return nil, err
		}
		if breakEnd, err = clock.MinutesOfDay(*s.BreakEnd); err != nil {
			return nil, err
		}
	}

	var times []string
	for t := start; t < end; t += step {
		if breakStart >= 0 && t >= breakStart && t+step <= breakEnd {
			continue
		}
		times = append(times, clock.FormatMinutes(t))
	}
	return times, nil
}

// StatusFor derives the display status from remaining capacity. Full when
// nothing is left; limited when half or less of the capacity remains.
func StatusFor(available, total int) SlotStatus {
	switch {
	case available <= 0:
		return SlotStatusFull
	case available*2 <= total:
		return SlotStatusLimited
	default:
		return SlotStatusAvailable
	}
}

// ScheduleForTime finds the schedule row a chosen time falls within
// (start_time <= t < end_time) on the given weekday. Returns nil when the time
// is outside every slot.
func ScheduleForTime(schedules []entity.DoctorSchedule, dayOfWeek, t string) *entity.DoctorSchedule {
	t = entity.TruncateClock(t)
	for i := range schedules {
		s := &schedules[i]
		if s.DayOfWeek == dayOfWeek && s.Available() && s.Contains(t) {
			return s
		}
	}
	return nil
}
