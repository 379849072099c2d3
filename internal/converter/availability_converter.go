package converter

import (
	"hms-scheduling/internal/delivery/dto"
	"hms-scheduling/internal/service"
)

// AvailableSlotsToResponses converts resolver output to DTOs
func AvailableSlotsToResponses(slots []service.AvailableSlot) []dto.AvailableSlotResponse {
	responses := make([]dto.AvailableSlotResponse, len(slots))
	for i, s := range slots {
		responses[i] = dto.AvailableSlotResponse{
			Time:        s.Time,
			SlotName:    s.SlotName,
			ScheduleID:  s.ScheduleID,
			Total:       s.Total,
			Available:   s.Available,
			Status:      string(s.Status),
			IsAvailable: s.IsAvailable,
		}
	}
	return responses
}
