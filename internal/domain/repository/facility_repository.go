package repository

import (
	"hms-scheduling/internal/domain/entity"

	"gorm.io/gorm"
)

type FacilityRepository interface {
	FindAllFloors(db *gorm.DB) ([]entity.Floor, error)
	FindAllRooms(db *gorm.DB) ([]entity.Room, error)
	FindRoomByID(db *gorm.DB, id uint) (*entity.Room, error)
	FindAllReceptions(db *gorm.DB) ([]entity.Reception, error)
	// FindReceptionsByFloor returns the floor's active receptions in list order.
	FindReceptionsByFloor(db *gorm.DB, floorID uint) ([]entity.Reception, error)
}
