package converter

import (
	"hms-scheduling/internal/delivery/dto"
	"hms-scheduling/internal/domain/entity"
	"hms-scheduling/pkg/clock"
)

// PatientToResponse converts a Patient entity to its DTO
func PatientToResponse(p *entity.Patient) *dto.PatientResponse {
	if p == nil {
		return nil
	}
	return &dto.PatientResponse{
		ID:                  p.ID,
		MedicalRecordNumber: p.MedicalRecordNumber,
		FullName:            p.FullName,
		PhoneNumber:         p.PhoneNumber,
		DateOfBirth:         clock.FormatDate(p.DateOfBirth),
		Gender:              p.Gender,
		Address:             p.Address,
		CreatedAt:           p.CreatedAt,
	}
}

// PatientsToResponses converts a slice of Patient entities
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}
