package repository

import (
	"time"

	"hms-scheduling/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SlotRoomRepository interface {
	Create(db *gorm.DB, assignment *entity.DoctorSlotRoom) error
	// CreateBatch inserts all assignments in one statement.
	CreateBatch(db *gorm.DB, assignments []entity.DoctorSlotRoom) error
	FindByID(db *gorm.DB, id uint) (*entity.DoctorSlotRoom, error)
	FindByFilter(db *gorm.DB, filter *entity.SlotRoomFilter) ([]entity.DoctorSlotRoom, error)
	// FindForSlot returns the active assignment for one (doctor, schedule, date)
	// triple, nil when none exists.
	FindForSlot(db *gorm.DB, doctorID uuid.UUID, scheduleID uint, date time.Time) (*entity.DoctorSlotRoom, error)
	Update(db *gorm.DB, assignment *entity.DoctorSlotRoom) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
