package repository

import (
	"hms-scheduling/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorScheduleRepository interface {
	FindByID(db *gorm.DB, id uint) (*entity.DoctorSchedule, error)
	// FindByDoctorID returns the doctor's full week ordered by day then slot_order.
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.DoctorSchedule, error)
	// ReplaceWeek saves the given list as the doctor's full week: rows with a
	// nonzero ID are updated in place, rows without one are inserted, and every
	// other slot of the doctor is deleted. Callers are expected to run it
	// inside a transaction.
	ReplaceWeek(db *gorm.DB, doctorID uuid.UUID, slots []entity.DoctorSchedule) error
}
