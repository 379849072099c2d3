package usecase

import (
	"context"
	"errors"
	"time"

	"hms-scheduling/internal/converter"
	"hms-scheduling/internal/delivery/dto"
	"hms-scheduling/internal/domain/entity"
	"hms-scheduling/internal/domain/repository"
	"hms-scheduling/internal/service"
	"hms-scheduling/pkg/clock"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSlotRoomNotFound     = errors.New("slot room assignment not found")
	ErrScheduleSlotNotFound = errors.New("schedule slot not found")
	ErrRoomNotFound         = errors.New("room not found")
	ErrScheduleNotOwned     = errors.New("schedule slot does not belong to the doctor")
	ErrInvalidDateRange     = errors.New("date_from must not be after date_to")
	ErrDuplicateAssignment  = errors.New("assignment already exists for this slot and date")
)

type SlotRoomUsecase interface {
	Create(ctx context.Context, actorID *uuid.UUID, req *dto.CreateSlotRoomRequest) (*dto.SlotRoomResponse, error)
	BulkCreate(ctx context.Context, actorID *uuid.UUID, req *dto.BulkCreateSlotRoomRequest) (*dto.BulkCreateSlotRoomResponse, error)
	List(ctx context.Context, filter *entity.SlotRoomFilter) (*dto.SlotRoomListResponse, error)
	Update(ctx context.Context, actorID *uuid.UUID, id uint, req *dto.UpdateSlotRoomRequest) (*dto.SlotRoomResponse, error)
	Delete(ctx context.Context, actorID *uuid.UUID, id uint) error
}

type slotRoomUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	loc          *time.Location
	slotRoomRepo repository.SlotRoomRepository
	scheduleRepo repository.DoctorScheduleRepository
	facilityRepo repository.FacilityRepository
	auditService service.AuditService
}

func NewSlotRoomUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	loc *time.Location,
	slotRoomRepo repository.SlotRoomRepository,
	scheduleRepo repository.DoctorScheduleRepository,
	facilityRepo repository.FacilityRepository,
	auditService service.AuditService,
) SlotRoomUsecase {
	return &slotRoomUsecase{
		db:           db,
		log:          log,
		loc:          loc,
		slotRoomRepo: slotRoomRepo,
		scheduleRepo: scheduleRepo,
		facilityRepo: facilityRepo,
		auditService: auditService,
	}
}

func (u *slotRoomUsecase) Create(ctx context.Context, actorID *uuid.UUID, req *dto.CreateSlotRoomRequest) (*dto.SlotRoomResponse, error) {
	date, err := clock.ParseDate(req.AssignmentDate, u.loc)
	if err != nil {
		return nil, ErrInvalidDate
	}

	if err := u.validateTarget(ctx, req.DoctorID, req.ScheduleID, req.RoomID); err != nil {
		return nil, err
	}

	active := true
	assignment := &entity.DoctorSlotRoom{
		DoctorID:       req.DoctorID,
		ScheduleID:     req.ScheduleID,
		RoomID:         req.RoomID,
		ReceptionID:    req.ReceptionID,
		AssignmentDate: date,
		IsActive:       &active,
	}

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := u.slotRoomRepo.Create(tx, assignment); err != nil {
			return err
		}
		if err := u.auditService.Log(tx, actorID, entity.AuditActionSlotRoomCreate, "doctor_slot_room", req.AssignmentDate, nil,
			map[string]interface{}{"doctor_id": req.DoctorID, "schedule_id": req.ScheduleID, "room_id": req.RoomID},
		); err != nil {
			u.log.Warnf("Failed to audit slot room create: %+v", err)
		}
		return nil
	})
	if err != nil {
		if isDuplicateKeyError(err, "slot_room") {
			return nil, ErrDuplicateAssignment
		}
		u.log.Warnf("Failed to create slot room assignment: %+v", err)
		return nil, err
	}

	return u.findResponse(ctx, assignment.ID)
}

// BulkCreate fans one assignment out over every date in [date_from, date_to],
// both ends inclusive. The range is validated before anything is written, so a
// reversed range inserts zero rows.
func (u *slotRoomUsecase) BulkCreate(ctx context.Context, actorID *uuid.UUID, req *dto.BulkCreateSlotRoomRequest) (*dto.BulkCreateSlotRoomResponse, error) {
	from, err := clock.ParseDate(req.DateFrom, u.loc)
	if err != nil {
		return nil, ErrInvalidDate
	}
	to, err := clock.ParseDate(req.DateTo, u.loc)
	if err != nil {
		return nil, ErrInvalidDate
	}
	dates := clock.DatesInRange(from, to)
	if dates == nil {
		return nil, ErrInvalidDateRange
	}

	if err := u.validateTarget(ctx, req.DoctorID, req.ScheduleID, req.RoomID); err != nil {
		return nil, err
	}

	active := true
	assignments := make([]entity.DoctorSlotRoom, 0, len(dates))
	for _, date := range dates {
		assignments = append(assignments, entity.DoctorSlotRoom{
			DoctorID:       req.DoctorID,
			ScheduleID:     req.ScheduleID,
			RoomID:         req.RoomID,
			ReceptionID:    req.ReceptionID,
			AssignmentDate: date,
			IsActive:       &active,
		})
	}

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := u.slotRoomRepo.CreateBatch(tx, assignments); err != nil {
			return err
		}
		if err := u.auditService.Log(tx, actorID, entity.AuditActionSlotRoomBulkCreate, "doctor_slot_room", req.DoctorID.String(), nil,
			map[string]interface{}{"schedule_id": req.ScheduleID, "room_id": req.RoomID, "date_from": req.DateFrom, "date_to": req.DateTo, "count": len(assignments)},
		); err != nil {
			u.log.Warnf("Failed to audit slot room bulk create: %+v", err)
		}
		return nil
	})
	if err != nil {
		if isDuplicateKeyError(err, "slot_room") {
			return nil, ErrDuplicateAssignment
		}
		u.log.Warnf("Failed to bulk create slot room assignments: %+v", err)
		return nil, err
	}

	return &dto.BulkCreateSlotRoomResponse{Inserted: len(assignments)}, nil
}

func (u *slotRoomUsecase) List(ctx context.Context, filter *entity.SlotRoomFilter) (*dto.SlotRoomListResponse, error) {
	assignments, err := u.slotRoomRepo.FindByFilter(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list slot room assignments: %+v", err)
		return nil, err
	}

	return &dto.SlotRoomListResponse{
		Assignments: converter.SlotRoomsToResponses(assignments),
		Total:       len(assignments),
	}, nil
}

func (u *slotRoomUsecase) Update(ctx context.Context, actorID *uuid.UUID, id uint, req *dto.UpdateSlotRoomRequest) (*dto.SlotRoomResponse, error) {
	assignment, err := u.slotRoomRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find slot room assignment %d: %+v", id, err)
		return nil, err
	}
	if assignment == nil {
		return nil, ErrSlotRoomNotFound
	}

	old := map[string]interface{}{
		"room_id":      assignment.RoomID,
		"reception_id": assignment.ReceptionID,
		"is_active":    assignment.IsActive,
	}

	if req.RoomID != nil {
		room, err := u.facilityRepo.FindRoomByID(u.db.WithContext(ctx), *req.RoomID)
		if err != nil {
			return nil, err
		}
		if room == nil {
			return nil, ErrRoomNotFound
		}
		assignment.RoomID = *req.RoomID
	}
	if req.ReceptionID != nil {
		assignment.ReceptionID = req.ReceptionID
	}
	if req.IsActive != nil {
		assignment.IsActive = req.IsActive
	}
	if req.AssignmentDate != "" {
		date, err := clock.ParseDate(req.AssignmentDate, u.loc)
		if err != nil {
			return nil, ErrInvalidDate
		}
		assignment.AssignmentDate = date
	}

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := u.slotRoomRepo.Update(tx, assignment); err != nil {
			return err
		}
		if err := u.auditService.Log(tx, actorID, entity.AuditActionSlotRoomUpdate, "doctor_slot_room", "", old,
			map[string]interface{}{"room_id": assignment.RoomID, "reception_id": assignment.ReceptionID, "is_active": assignment.IsActive},
		); err != nil {
			u.log.Warnf("Failed to audit slot room update: %+v", err)
		}
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to update slot room assignment %d: %+v", id, err)
		return nil, err
	}

	return u.findResponse(ctx, assignment.ID)
}

func (u *slotRoomUsecase) Delete(ctx context.Context, actorID *uuid.UUID, id uint) error {
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		affected, err := u.slotRoomRepo.Delete(tx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrSlotRoomNotFound
		}
		if err := u.auditService.Log(tx, actorID, entity.AuditActionSlotRoomDelete, "doctor_slot_room", "", map[string]interface{}{"id": id}, nil); err != nil {
			u.log.Warnf("Failed to audit slot room delete: %+v", err)
		}
		return nil
	})
	if err != nil && !errors.Is(err, ErrSlotRoomNotFound) {
		u.log.Warnf("Failed to delete slot room assignment %d: %+v", id, err)
	}
	return err
}

func (u *slotRoomUsecase) findResponse(ctx context.Context, id uint) (*dto.SlotRoomResponse, error) {
	assignment, err := u.slotRoomRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to reload slot room assignment %d: %+v", id, err)
		return nil, err
	}
	if assignment == nil {
		return nil, ErrSlotRoomNotFound
	}
	return converter.SlotRoomToResponse(assignment), nil
}

// validateTarget checks the referenced schedule slot exists, belongs to the
// doctor, and the room exists.
func (u *slotRoomUsecase) validateTarget(ctx context.Context, doctorID uuid.UUID, scheduleID, roomID uint) error {
	schedule, err := u.scheduleRepo.FindByID(u.db.WithContext(ctx), scheduleID)
	if err != nil {
		u.log.Warnf("Failed to find schedule %d: %+v", scheduleID, err)
		return err
	}
	if schedule == nil {
		return ErrScheduleSlotNotFound
	}
	if schedule.DoctorID != doctorID {
		return ErrScheduleNotOwned
	}

	room, err := u.facilityRepo.FindRoomByID(u.db.WithContext(ctx), roomID)
	if err != nil {
		u.log.Warnf("Failed to find room %d: %+v", roomID, err)
		return err
	}
	if room == nil {
		return ErrRoomNotFound
	}
	return nil
}
