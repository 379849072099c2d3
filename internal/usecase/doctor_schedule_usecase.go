package usecase

import (
	"context"
	"errors"

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
	ErrDoctorNotFound     = errors.New("doctor not found")
	ErrSlotNotFound       = errors.New("schedule slot not found")
	ErrInvalidSlotTimes   = errors.New("slot end time must be after start time")
	ErrInvalidBreak       = errors.New("break must lie within the slot and end after it starts")
	ErrDuplicateSlotOrder = errors.New("slot_order must be unique within a day")
)

type DoctorScheduleUsecase interface {
	GetWeek(ctx context.Context, doctorID uuid.UUID) (*dto.WeekScheduleResponse, error)
	ReplaceWeek(ctx context.Context, actorID *uuid.UUID, doctorID uuid.UUID, req *dto.ReplaceWeekRequest) (*dto.WeekScheduleResponse, error)
	AddSlot(ctx context.Context, actorID *uuid.UUID, doctorID uuid.UUID, req *dto.AddSlotRequest) (*dto.WeekScheduleResponse, error)
	UpdateSlot(ctx context.Context, actorID *uuid.UUID, doctorID uuid.UUID, req *dto.UpdateSlotRequest) (*dto.WeekScheduleResponse, error)
	RemoveSlot(ctx context.Context, actorID *uuid.UUID, doctorID uuid.UUID, req *dto.RemoveSlotRequest) (*dto.WeekScheduleResponse, error)
}

type doctorScheduleUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	scheduleRepo repository.DoctorScheduleRepository
	doctorRepo   repository.DoctorProfileRepository
	auditService service.AuditService
}

func NewDoctorScheduleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	scheduleRepo repository.DoctorScheduleRepository,
	doctorRepo repository.DoctorProfileRepository,
	auditService service.AuditService,
) DoctorScheduleUsecase {
	return &doctorScheduleUsecase{
		db:           db,
		log:          log,
		scheduleRepo: scheduleRepo,
		doctorRepo:   doctorRepo,
		auditService: auditService,
	}
}

func (u *doctorScheduleUsecase) GetWeek(ctx context.Context, doctorID uuid.UUID) (*dto.WeekScheduleResponse, error) {
	if err := u.ensureDoctor(ctx, doctorID); err != nil {
		return nil, err
	}

	slots, err := u.scheduleRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to load week schedule for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return converter.WeekToResponse(doctorID, slots), nil
}

// ReplaceWeek saves the doctor's entire week in one shot. The request is the
// full desired state: submitted rows that carry an id update the persisted
// slot so it keeps its identity and its room assignments, rows without one are
// inserted, and slots the client omitted are gone afterwards.
func (u *doctorScheduleUsecase) ReplaceWeek(ctx context.Context, actorID *uuid.UUID, doctorID uuid.UUID, req *dto.ReplaceWeekRequest) (*dto.WeekScheduleResponse, error) {
	if err := u.ensureDoctor(ctx, doctorID); err != nil {
		return nil, err
	}

	week := entity.WeekSchedule{Slots: make([]entity.DoctorSchedule, 0, len(req.Slots))}
	for i := range req.Slots {
		week.Slots = append(week.Slots, converter.SlotRequestToEntity(doctorID, &req.Slots[i]))
	}
	week.Normalize()

	if err := validateWeek(week.Slots); err != nil {
		return nil, err
	}

	oldSlots, err := u.scheduleRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to load existing week for doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if err := ensureKnownSlotIDs(week.Slots, oldSlots); err != nil {
		return nil, err
	}

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := u.scheduleRepo.ReplaceWeek(tx, doctorID, week.Slots); err != nil {
			return err
		}
		if err := u.auditService.Log(tx, actorID, entity.AuditActionScheduleReplace, "doctor_schedule", doctorID.String(),
			map[string]interface{}{"slots": len(oldSlots)},
			map[string]interface{}{"slots": len(week.Slots)},
		); err != nil {
			u.log.Warnf("Failed to audit schedule replace: %+v", err)
		}
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to replace week for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return u.GetWeek(ctx, doctorID)
}

// AddSlot appends a draft slot to one day and saves the week. Start and end
// default to the doctor's overall working hours.
func (u *doctorScheduleUsecase) AddSlot(ctx context.Context, actorID *uuid.UUID, doctorID uuid.UUID, req *dto.AddSlotRequest) (*dto.WeekScheduleResponse, error) {
	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	slots, err := u.scheduleRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to load week for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	week := entity.WeekSchedule{Slots: slots}
	defStart, defEnd := doctor.SlotDefaults()
	week.AddSlot(req.DayOfWeek, defStart, defEnd)
	week.Normalize()

	if err := u.saveWeek(ctx, doctorID, week.Slots); err != nil {
		return nil, err
	}
	return u.GetWeek(ctx, doctorID)
}

// UpdateSlot patches single fields of one slot, addressed by id for persisted
// rows or by (day_of_week, slot_order) for drafts, and saves the week.
func (u *doctorScheduleUsecase) UpdateSlot(ctx context.Context, actorID *uuid.UUID, doctorID uuid.UUID, req *dto.UpdateSlotRequest) (*dto.WeekScheduleResponse, error) {
	if err := u.ensureDoctor(ctx, doctorID); err != nil {
		return nil, err
	}

	slots, err := u.scheduleRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to load week for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	week := entity.WeekSchedule{Slots: slots}
	ref := entity.SlotRef{ID: req.ID, DayOfWeek: req.DayOfWeek, SlotOrder: req.SlotOrder}
	if !week.UpdateSlot(ref, func(s *entity.DoctorSchedule) { applySlotPatch(s, req) }) {
		return nil, ErrSlotNotFound
	}
	week.Normalize()

	if err := validateWeek(week.Slots); err != nil {
		return nil, err
	}

	if err := u.saveWeek(ctx, doctorID, week.Slots); err != nil {
		return nil, err
	}
	return u.GetWeek(ctx, doctorID)
}

// RemoveSlot deletes one slot, addressed by id for persisted rows or by
// (day_of_week, slot_order) for drafts, and saves the week. Other slots keep
// their order numbers; removal leaves no renumbering behind.
func (u *doctorScheduleUsecase) RemoveSlot(ctx context.Context, actorID *uuid.UUID, doctorID uuid.UUID, req *dto.RemoveSlotRequest) (*dto.WeekScheduleResponse, error) {
	if err := u.ensureDoctor(ctx, doctorID); err != nil {
		return nil, err
	}

	slots, err := u.scheduleRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to load week for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	week := entity.WeekSchedule{Slots: slots}
	ref := entity.SlotRef{ID: req.ID, DayOfWeek: req.DayOfWeek, SlotOrder: req.SlotOrder}
	if !week.RemoveSlot(ref) {
		return nil, ErrSlotNotFound
	}

	if err := u.saveWeek(ctx, doctorID, week.Slots); err != nil {
		return nil, err
	}
	return u.GetWeek(ctx, doctorID)
}

func (u *doctorScheduleUsecase) saveWeek(ctx context.Context, doctorID uuid.UUID, slots []entity.DoctorSchedule) error {
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return u.scheduleRepo.ReplaceWeek(tx, doctorID, slots)
	})
	if err != nil {
		u.log.Warnf("Failed to save week for doctor %s: %+v", doctorID, err)
	}
	return err
}

func (u *doctorScheduleUsecase) ensureDoctor(ctx context.Context, doctorID uuid.UUID) error {
	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}
	return nil
}

// applySlotPatch copies the request's set fields onto the slot. Nil fields are
// left unchanged; an empty string clears an optional field.
func applySlotPatch(s *entity.DoctorSchedule, req *dto.UpdateSlotRequest) {
	if req.StartTime != nil {
		s.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		s.EndTime = *req.EndTime
	}
	if req.IsAvailable != nil {
		s.IsAvailable = req.IsAvailable
	}
	if req.SlotName != nil {
		s.SlotName = req.SlotName
	}
	if req.MaxAppointmentsPerSlot != nil {
		s.MaxAppointmentsPerSlot = *req.MaxAppointmentsPerSlot
	}
	if req.AppointmentDuration != nil {
		s.AppointmentDuration = *req.AppointmentDuration
	}
	if req.BreakStart != nil {
		s.BreakStart = req.BreakStart
	}
	if req.BreakEnd != nil {
		s.BreakEnd = req.BreakEnd
	}
	if req.Notes != nil {
		s.Notes = req.Notes
	}
}

// ensureKnownSlotIDs rejects submitted rows whose id matches none of the
// doctor's persisted slots, so a week save cannot claim another doctor's rows.
func ensureKnownSlotIDs(slots, oldSlots []entity.DoctorSchedule) error {
	known := make(map[uint]struct{}, len(oldSlots))
	for i := range oldSlots {
		known[oldSlots[i].ID] = struct{}{}
	}
	for i := range slots {
		if slots[i].ID == 0 {
			continue
		}
		if _, ok := known[slots[i].ID]; !ok {
			return ErrSlotNotFound
		}
	}
	return nil
}

// validateWeek checks per-slot time invariants the struct tags cannot express,
// including slot_order uniqueness per day.
func validateWeek(slots []entity.DoctorSchedule) error {
	type dayOrder struct {
		day   string
		order int
	}
	seen := make(map[dayOrder]struct{}, len(slots))
	for i := range slots {
		s := &slots[i]
		key := dayOrder{day: s.DayOfWeek, order: s.SlotOrder}
		if _, ok := seen[key]; ok {
			return ErrDuplicateSlotOrder
		}
		seen[key] = struct{}{}
		start, err := clock.MinutesOfDay(s.StartTime)
		if err != nil {
			return err
		}
		end, err := clock.MinutesOfDay(s.EndTime)
		if err != nil {
			return err
		}
		if end <= start {
			return ErrInvalidSlotTimes
		}
		if (s.BreakStart == nil) != (s.BreakEnd == nil) {
			return ErrInvalidBreak
		}
		if s.BreakStart != nil {
			bs, err := clock.MinutesOfDay(*s.BreakStart)
			if err != nil {
				return err
			}
			be, err := clock.MinutesOfDay(*s.BreakEnd)
			if err != nil {
				return err
			}
			if be <= bs || bs < start || be > end {
				return ErrInvalidBreak
			}
		}
	}
	return nil
}
