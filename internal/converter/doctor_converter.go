package converter

import (
	"hms-scheduling/internal/delivery/dto"
	"hms-scheduling/internal/domain/entity"
)

// DoctorToResponse converts a DoctorProfile entity to its DTO
func DoctorToResponse(d *entity.DoctorProfile) *dto.DoctorResponse {
	if d == nil {
		return nil
	}
	resp := &dto.DoctorResponse{
		ID:             d.UserID,
		Email:          d.User.Email,
		FullName:       d.User.FullName,
		LicenseNumber:  d.LicenseNumber,
		Specialization: d.Specialization,
		ScheduleStart:  d.ScheduleStart,
		ScheduleEnd:    d.ScheduleEnd,
		Biography:      d.Biography,
		IsActive:       d.User.IsActive == nil || *d.User.IsActive,
	}
	if d.Room != nil {
		resp.Room = RoomToResponse(d.Room)
	}
	return resp
}

// DoctorsToResponses converts a slice of DoctorProfile entities
func DoctorsToResponses(doctors []entity.DoctorProfile) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}
