package converter

import (
	"hms-scheduling/internal/delivery/dto"
	"hms-scheduling/internal/domain/entity"
	"hms-scheduling/pkg/clock"
)

// SlotRoomToResponse converts a DoctorSlotRoom entity to its DTO
func SlotRoomToResponse(a *entity.DoctorSlotRoom) *dto.SlotRoomResponse {
	if a == nil {
		return nil
	}
	resp := &dto.SlotRoomResponse{
		ID:             a.ID,
		DoctorID:       a.DoctorID,
		ScheduleID:     a.ScheduleID,
		AssignmentDate: clock.FormatDate(a.AssignmentDate),
		IsActive:       a.IsActive == nil || *a.IsActive,
		CreatedAt:      a.CreatedAt,
	}
	if a.Schedule.ID != 0 {
		resp.Schedule = ScheduleSlotToResponse(&a.Schedule)
	}
	if a.Room.ID != 0 {
		resp.Room = RoomToResponse(&a.Room)
	}
	if a.Reception != nil {
		resp.Reception = ReceptionToResponse(a.Reception)
	}
	return resp
}

// SlotRoomsToResponses converts a slice of DoctorSlotRoom entities
func SlotRoomsToResponses(assignments []entity.DoctorSlotRoom) []dto.SlotRoomResponse {
	responses := make([]dto.SlotRoomResponse, len(assignments))
	for i := range assignments {
		responses[i] = *SlotRoomToResponse(&assignments[i])
	}
	return responses
}
