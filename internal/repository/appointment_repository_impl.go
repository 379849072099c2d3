package repository

import (
	"errors"

	"hms-scheduling/internal/domain/entity"
	domainRepo "hms-scheduling/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.
		Preload("Patient").
		Preload("Doctor.User").
		Preload("Schedule").
		Preload("Room.Floor").
		Preload("Reception").
		Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByFilter(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	query := db.Preload("Patient").Preload("Doctor.User").Preload("Room")

	if filter != nil {
		if filter.DoctorID != nil {
			query = query.Where("doctor_id = ?", *filter.DoctorID)
		}
		if filter.PatientID != nil {
			query = query.Where("patient_id = ?", *filter.PatientID)
		}
		if filter.Date != "" {
			query = query.Where("appointment_date = ?", filter.Date)
		}
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
	}

	var appointments []entity.Appointment
	err := query.Order("appointment_date ASC, appointment_time ASC, token_number ASC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// CountsByDoctorAndDate truncates stored times to HH:MM so HH:MM:SS rows group
// with their minute.
func (r *appointmentRepository) CountsByDoctorAndDate(db *gorm.DB, doctorID uuid.UUID, date string) ([]domainRepo.TimeCount, error) {
	var counts []domainRepo.TimeCount
	err := db.Model(&entity.Appointment{}).
		Select("to_char(appointment_time, 'HH24:MI') as appointment_time, COUNT(*) as count").
		Where("doctor_id = ? AND appointment_date = ? AND status != ?", doctorID, date, entity.AppointmentStatusCancelled).
		Group("to_char(appointment_time, 'HH24:MI')").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *appointmentRepository) MaxTokenNumber(db *gorm.DB, doctorID uuid.UUID, date string) (int, error) {
	var max int
	err := db.Model(&entity.Appointment{}).
		Select("COALESCE(MAX(token_number), 0)").
		Where("doctor_id = ? AND appointment_date = ?", doctorID, date).
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max, nil
}

func (r *appointmentRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) error {
	return db.Model(&entity.Appointment{}).Where("id = ?", id).Update("status", status).Error
}
