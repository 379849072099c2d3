package converter

import (
	"hms-scheduling/internal/delivery/dto"
	"hms-scheduling/internal/domain/entity"

	"github.com/google/uuid"
)

// ScheduleSlotToResponse converts a DoctorSchedule entity to its DTO
func ScheduleSlotToResponse(s *entity.DoctorSchedule) *dto.ScheduleSlotResponse {
	if s == nil {
		return nil
	}
	return &dto.ScheduleSlotResponse{
		ID:                     s.ID,
		DoctorID:               s.DoctorID,
		DayOfWeek:              s.DayOfWeek,
		StartTime:              entity.TruncateClock(s.StartTime),
		EndTime:                entity.TruncateClock(s.EndTime),
		IsAvailable:            s.Available(),
		SlotOrder:              s.SlotOrder,
		SlotName:               s.SlotName,
		MaxAppointmentsPerSlot: s.MaxAppointmentsPerSlot,
		AppointmentDuration:    s.AppointmentDuration,
		BreakStart:             s.BreakStart,
		BreakEnd:               s.BreakEnd,
		Notes:                  s.Notes,
		CreatedAt:              s.CreatedAt,
		UpdatedAt:              s.UpdatedAt,
	}
}

// WeekToResponse groups a doctor's slots by weekday. Every day appears in the
// map, empty days included, so clients can render the full week.
func WeekToResponse(doctorID uuid.UUID, slots []entity.DoctorSchedule) *dto.WeekScheduleResponse {
	days := make(map[string][]dto.ScheduleSlotResponse, len(entity.DayNames))
	for _, day := range entity.DayNames {
		days[day] = []dto.ScheduleSlotResponse{}
	}
	for i := range slots {
		resp := ScheduleSlotToResponse(&slots[i])
		days[slots[i].DayOfWeek] = append(days[slots[i].DayOfWeek], *resp)
	}
	return &dto.WeekScheduleResponse{
		DoctorID: doctorID,
		Days:     days,
		Total:    len(slots),
	}
}

// SlotRequestToEntity converts one week-replace row to its entity form.
func SlotRequestToEntity(doctorID uuid.UUID, req *dto.ScheduleSlotRequest) entity.DoctorSchedule {
	return entity.DoctorSchedule{
		ID:                     req.ID,
		DoctorID:               doctorID,
		DayOfWeek:              req.DayOfWeek,
		StartTime:              req.StartTime,
		EndTime:                req.EndTime,
		IsAvailable:            req.IsAvailable,
		SlotOrder:              req.SlotOrder,
		SlotName:               req.SlotName,
		MaxAppointmentsPerSlot: req.MaxAppointmentsPerSlot,
		AppointmentDuration:    req.AppointmentDuration,
		BreakStart:             req.BreakStart,
		BreakEnd:               req.BreakEnd,
		Notes:                  req.Notes,
	}
}
