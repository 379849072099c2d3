package usecase

import (
	"context"
	"errors"

	"hms-scheduling/internal/converter"
	"hms-scheduling/internal/delivery/dto"
	"hms-scheduling/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrNoReceptionOnFloor = errors.New("no reception desk on the room's floor")

type FacilityUsecase interface {
	ListFloors(ctx context.Context) (*dto.FloorListResponse, error)
	ListRooms(ctx context.Context) (*dto.RoomListResponse, error)
	ListReceptions(ctx context.Context) (*dto.ReceptionListResponse, error)
	// SuggestReception picks the reception desk for a room: the first active
	// desk on the room's floor.
	SuggestReception(ctx context.Context, roomID uint) (*dto.ReceptionResponse, error)
}

type facilityUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	facilityRepo repository.FacilityRepository
}

func NewFacilityUsecase(db *gorm.DB, log *logrus.Logger, facilityRepo repository.FacilityRepository) FacilityUsecase {
	return &facilityUsecase{
		db:           db,
		log:          log,
		facilityRepo: facilityRepo,
	}
}

func (u *facilityUsecase) ListFloors(ctx context.Context) (*dto.FloorListResponse, error) {
	floors, err := u.facilityRepo.FindAllFloors(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list floors: %+v", err)
		return nil, err
	}

	responses := make([]dto.FloorResponse, len(floors))
	for i := range floors {
		responses[i] = *converter.FloorToResponse(&floors[i])
	}
	return &dto.FloorListResponse{Floors: responses, Total: len(responses)}, nil
}

func (u *facilityUsecase) ListRooms(ctx context.Context) (*dto.RoomListResponse, error) {
	rooms, err := u.facilityRepo.FindAllRooms(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list rooms: %+v", err)
		return nil, err
	}

	responses := make([]dto.RoomResponse, len(rooms))
	for i := range rooms {
		responses[i] = *converter.RoomToResponse(&rooms[i])
	}
	return &dto.RoomListResponse{Rooms: responses, Total: len(responses)}, nil
}

func (u *facilityUsecase) ListReceptions(ctx context.Context) (*dto.ReceptionListResponse, error) {
	receptions, err := u.facilityRepo.FindAllReceptions(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list receptions: %+v", err)
		return nil, err
	}

	responses := make([]dto.ReceptionResponse, len(receptions))
	for i := range receptions {
		responses[i] = *converter.ReceptionToResponse(&receptions[i])
	}
	return &dto.ReceptionListResponse{Receptions: responses, Total: len(responses)}, nil
}

func (u *facilityUsecase) SuggestReception(ctx context.Context, roomID uint) (*dto.ReceptionResponse, error) {
	room, err := u.facilityRepo.FindRoomByID(u.db.WithContext(ctx), roomID)
	if err != nil {
		u.log.Warnf("Failed to find room %d: %+v", roomID, err)
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	receptions, err := u.facilityRepo.FindReceptionsByFloor(u.db.WithContext(ctx), room.FloorID)
	if err != nil {
		u.log.Warnf("Failed to find receptions on floor %d: %+v", room.FloorID, err)
		return nil, err
	}
	if len(receptions) == 0 {
		return nil, ErrNoReceptionOnFloor
	}

	return converter.ReceptionToResponse(&receptions[0]), nil
}
