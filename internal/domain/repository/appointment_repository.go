package repository

import (
	"hms-scheduling/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimeCount is the number of non-cancelled appointments at one HH:MM time.
type TimeCount struct {
	AppointmentTime string
	Count           int
}

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByFilter(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	// CountsByDoctorAndDate groups non-cancelled appointments of one doctor on
	// one calendar date by their HH:MM time.
	CountsByDoctorAndDate(db *gorm.DB, doctorID uuid.UUID, date string) ([]TimeCount, error)
	// MaxTokenNumber returns the highest token number issued for the doctor on
	// the date, 0 when none.
	MaxTokenNumber(db *gorm.DB, doctorID uuid.UUID, date string) (int, error)
	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) error
}
