package repository

import (
	"errors"

	"hms-scheduling/internal/domain/entity"
	domainRepo "hms-scheduling/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Create(patient).Error
}

func (r *patientRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindByMedicalRecordNumber(db *gorm.DB, mrn string) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("medical_record_number = ?", mrn).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

// Search matches by name or medical record number. Empty query lists everyone.
func (r *patientRepository) Search(db *gorm.DB, query string) ([]entity.Patient, error) {
	var patients []entity.Patient
	q := db.Order("full_name ASC")
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("full_name ILIKE ? OR medical_record_number ILIKE ?", like, like)
	}
	err := q.Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}
