package converter

import (
	"hms-scheduling/internal/delivery/dto"
	"hms-scheduling/internal/domain/entity"
	"hms-scheduling/pkg/clock"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to its DTO
func AppointmentToResponse(a *entity.Appointment) *dto.AppointmentResponse {
	if a == nil {
		return nil
	}
	resp := &dto.AppointmentResponse{
		ID:              a.ID,
		PatientID:       a.PatientID,
		DoctorID:        a.DoctorID,
		ScheduleID:      a.ScheduleID,
		AppointmentDate: clock.FormatDate(a.AppointmentDate),
		AppointmentTime: entity.TruncateClock(a.AppointmentTime),
		TokenNumber:     a.TokenNumber,
		Status:          string(a.Status),
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
	if a.Patient.ID != uuid.Nil {
		resp.Patient = PatientToResponse(&a.Patient)
	}
	if a.Doctor.UserID != uuid.Nil {
		resp.Doctor = DoctorToResponse(&a.Doctor)
	}
	if a.Room != nil {
		resp.Room = RoomToResponse(a.Room)
	}
	if a.Reception != nil {
		resp.Reception = ReceptionToResponse(a.Reception)
	}
	return resp
}

// AppointmentsToResponses converts a slice of Appointment entities
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
