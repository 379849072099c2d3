package repository

import (
	"errors"

	"hms-scheduling/internal/domain/entity"
	domainRepo "hms-scheduling/internal/domain/repository"

	"gorm.io/gorm"
)

type facilityRepository struct{}

func NewFacilityRepository() domainRepo.FacilityRepository {
	return &facilityRepository{}
}

func (r *facilityRepository) FindAllFloors(db *gorm.DB) ([]entity.Floor, error) {
	var floors []entity.Floor
	err := db.Order("floor_number ASC").Find(&floors).Error
	if err != nil {
		return nil, err
	}
	return floors, nil
}

func (r *facilityRepository) FindAllRooms(db *gorm.DB) ([]entity.Room, error) {
	var rooms []entity.Room
	err := db.Preload("Floor").Order("room_number ASC").Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *facilityRepository) FindRoomByID(db *gorm.DB, id uint) (*entity.Room, error) {
	var room entity.Room
	err := db.Preload("Floor").Where("id = ?", id).First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

func (r *facilityRepository) FindAllReceptions(db *gorm.DB) ([]entity.Reception, error) {
	var receptions []entity.Reception
	err := db.Preload("Floor").Order("id ASC").Find(&receptions).Error
	if err != nil {
		return nil, err
	}
	return receptions, nil
}

func (r *facilityRepository) FindReceptionsByFloor(db *gorm.DB, floorID uint) ([]entity.Reception, error) {
	var receptions []entity.Reception
	err := db.Where("floor_id = ? AND is_active = ?", floorID, true).Order("id ASC").Find(&receptions).Error
	if err != nil {
		return nil, err
	}
	return receptions, nil
}
