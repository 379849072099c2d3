package repository

import (
	"errors"

	"hms-scheduling/internal/domain/entity"
	domainRepo "hms-scheduling/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorScheduleRepository struct{}

func NewDoctorScheduleRepository() domainRepo.DoctorScheduleRepository {
	return &doctorScheduleRepository{}
}

func (r *doctorScheduleRepository) FindByID(db *gorm.DB, id uint) (*entity.DoctorSchedule, error) {
	var schedule entity.DoctorSchedule
	err := db.Where("id = ?", id).First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *doctorScheduleRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.DoctorSchedule, error) {
	var schedules []entity.DoctorSchedule
	err := db.Where("doctor_id = ?", doctorID).
		Order("array_position(ARRAY['Sunday','Monday','Tuesday','Wednesday','Thursday','Friday','Saturday'], day_of_week), slot_order ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

// ReplaceWeek implements the replace-not-merge save: the given list is the
// full desired week, slots the caller omitted are deleted. Rows that carry an
// ID are updated in place so they keep their identity; room assignments and
// appointments referencing them survive the save. Run inside a transaction.
func (r *doctorScheduleRepository) ReplaceWeek(db *gorm.DB, doctorID uuid.UUID, slots []entity.DoctorSchedule) error {
	keepIDs, updates, inserts := splitWeekSlots(doctorID, slots)

	del := db.Where("doctor_id = ?", doctorID)
	if len(keepIDs) > 0 {
		del = del.Where("id NOT IN ?", keepIDs)
	}
	if err := del.Delete(&entity.DoctorSchedule{}).Error; err != nil {
		return err
	}

	for i := range updates {
		err := db.Omit("Doctor", "SlotRooms", "Appointments", "CreatedAt").Save(&updates[i]).Error
		if err != nil {
			return err
		}
	}
	if len(inserts) == 0 {
		return nil
	}
	return db.Omit("Doctor", "SlotRooms", "Appointments").Create(&inserts).Error
}

// splitWeekSlots partitions a submitted week into rows to update (nonzero ID)
// and rows to insert fresh, stamping DoctorID on every row. keepIDs lists the
// surviving row IDs; everything else belonging to the doctor gets deleted.
func splitWeekSlots(doctorID uuid.UUID, slots []entity.DoctorSchedule) (keepIDs []uint, updates, inserts []entity.DoctorSchedule) {
	for _, s := range slots {
		s.DoctorID = doctorID
		if s.ID != 0 {
			keepIDs = append(keepIDs, s.ID)
			updates = append(updates, s)
		} else {
			inserts = append(inserts, s)
		}
	}
	return keepIDs, updates, inserts
}
