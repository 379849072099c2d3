package entity

import "sort"

// SlotRef addresses a single slot inside a week.
// Persisted slots are matched by ID; draft slots (ID == 0) have no stable identity
// until saved and are matched by (DayOfWeek, SlotOrder) instead.
type SlotRef struct {
	ID        uint   `json:"id,omitempty"`
	DayOfWeek string `json:"day_of_week,omitempty"`
	SlotOrder int    `json:"slot_order,omitempty"`
}

// Matches reports whether the reference points at slot s.
func (r SlotRef) Matches(s *DoctorSchedule) bool {
	if r.ID != 0 {
		return s.ID == r.ID
	}
	return s.ID == 0 && s.DayOfWeek == r.DayOfWeek && s.SlotOrder == r.SlotOrder
}

// WeekSchedule is the editable in-memory form of a doctor's full week of slots.
// It supports adding, removing and updating individual slots before the whole week
// is saved in one bulk replace.
type WeekSchedule struct {
	Slots []DoctorSchedule
}

// SlotsForDay returns the slots for one weekday ordered by SlotOrder.
func (w *WeekSchedule) SlotsForDay(day string) []DoctorSchedule {
	var out []DoctorSchedule
	for _, s := range w.Slots {
		if s.DayOfWeek == day {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SlotOrder < out[j].SlotOrder })
	return out
}

// AddSlot appends a draft slot for the given day with SlotOrder one past the
// current maximum for that day. Start and end default to defStart/defEnd.
func (w *WeekSchedule) AddSlot(day, defStart, defEnd string) *DoctorSchedule {
	maxOrder := 0
	for _, s := range w.Slots {
		if s.DayOfWeek == day && s.SlotOrder > maxOrder {
			maxOrder = s.SlotOrder
		}
	}

	available := true
	slot := DoctorSchedule{
		DayOfWeek:              day,
		StartTime:              defStart,
		EndTime:                defEnd,
		IsAvailable:            &available,
		SlotOrder:              maxOrder + 1,
		MaxAppointmentsPerSlot: 1,
		AppointmentDuration:    30,
	}
	w.Slots = append(w.Slots, slot)
	return &w.Slots[len(w.Slots)-1]
}

// RemoveSlot deletes the slot addressed by ref, leaving every other slot
// untouched. Returns false when no slot matches.
func (w *WeekSchedule) RemoveSlot(ref SlotRef) bool {
	for i := range w.Slots {
		if ref.Matches(&w.Slots[i]) {
			w.Slots = append(w.Slots[:i], w.Slots[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateSlot applies fn to the slot addressed by ref. Returns false when no
// slot matches.
func (w *WeekSchedule) UpdateSlot(ref SlotRef, fn func(*DoctorSchedule)) bool {
	for i := range w.Slots {
		if ref.Matches(&w.Slots[i]) {
			fn(&w.Slots[i])
			return true
		}
	}
	return false
}

// Normalize prepares the week for a bulk save: clock times are truncated to
// HH:MM, empty optional strings become NULL, and zero capacity/duration fall
// back to their defaults.
func (w *WeekSchedule) Normalize() {
	for i := range w.Slots {
		s := &w.Slots[i]
		s.StartTime = TruncateClock(s.StartTime)
		s.EndTime = TruncateClock(s.EndTime)
		s.SlotName = normalizeOptional(s.SlotName)
		s.Notes = normalizeOptional(s.Notes)
		s.BreakStart = normalizeClockOptional(s.BreakStart)
		s.BreakEnd = normalizeClockOptional(s.BreakEnd)
		if s.MaxAppointmentsPerSlot <= 0 {
			s.MaxAppointmentsPerSlot = 1
		}
		if s.AppointmentDuration <= 0 {
			s.AppointmentDuration = 30
		}
	}
}

func normalizeOptional(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	return v
}

func normalizeClockOptional(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	t := TruncateClock(*v)
	return &t
}
