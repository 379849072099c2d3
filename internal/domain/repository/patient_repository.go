package repository

import (
	"hms-scheduling/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error)
	FindByMedicalRecordNumber(db *gorm.DB, mrn string) (*entity.Patient, error)
	Search(db *gorm.DB, query string) ([]entity.Patient, error)
}
