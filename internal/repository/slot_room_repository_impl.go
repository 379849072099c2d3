package repository

import (
	"errors"
	"time"

	"hms-scheduling/internal/domain/entity"
	domainRepo "hms-scheduling/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type slotRoomRepository struct{}

func NewSlotRoomRepository() domainRepo.SlotRoomRepository {
	return &slotRoomRepository{}
}

func (r *slotRoomRepository) Create(db *gorm.DB, assignment *entity.DoctorSlotRoom) error {
	return db.Create(assignment).Error
}

func (r *slotRoomRepository) CreateBatch(db *gorm.DB, assignments []entity.DoctorSlotRoom) error {
	if len(assignments) == 0 {
		return nil
	}
	return db.Create(&assignments).Error
}

func (r *slotRoomRepository) FindByID(db *gorm.DB, id uint) (*entity.DoctorSlotRoom, error) {
	var assignment entity.DoctorSlotRoom
	err := db.
		Preload("Schedule").
		Preload("Room.Floor").
		Preload("Reception").
		Where("id = ?", id).First(&assignment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &assignment, nil
}

func (r *slotRoomRepository) FindByFilter(db *gorm.DB, filter *entity.SlotRoomFilter) ([]entity.DoctorSlotRoom, error) {
	query := db.
		Preload("Doctor.User").
		Preload("Schedule").
		Preload("Room.Floor").
		Preload("Reception")

	if filter != nil {
		if filter.DoctorID != nil {
			query = query.Where("doctor_id = ?", *filter.DoctorID)
		}
		if filter.ScheduleID != nil {
			query = query.Where("schedule_id = ?", *filter.ScheduleID)
		}
		if filter.AssignmentDate != "" {
			query = query.Where("assignment_date = ?", filter.AssignmentDate)
		}
		if filter.ActiveOnly {
			query = query.Where("is_active = ?", true)
		}
	}

	var assignments []entity.DoctorSlotRoom
	err := query.Order("assignment_date ASC, schedule_id ASC").Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *slotRoomRepository) FindForSlot(db *gorm.DB, doctorID uuid.UUID, scheduleID uint, date time.Time) (*entity.DoctorSlotRoom, error) {
	var assignment entity.DoctorSlotRoom
	err := db.
		Preload("Room.Floor").
		Preload("Reception").
		Where("doctor_id = ? AND schedule_id = ? AND assignment_date = ? AND is_active = ?",
			doctorID, scheduleID, date.Format("2006-01-02"), true).
		First(&assignment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &assignment, nil
}

func (r *slotRoomRepository) Update(db *gorm.DB, assignment *entity.DoctorSlotRoom) error {
	return db.Omit("Doctor", "Schedule", "Room", "Reception").Save(assignment).Error
}

func (r *slotRoomRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.DoctorSlotRoom{})
	return result.RowsAffected, result.Error
}
