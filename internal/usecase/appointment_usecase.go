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
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrPatientNotFound      = errors.New("patient not found")
	ErrPastDate             = errors.New("cannot book an appointment on a past date")
	ErrTimeOutsideSchedule  = errors.New("appointment time does not fall inside any schedule slot")
	ErrSlotFullyBooked      = errors.New("time slot is fully booked")
	ErrDoctorHasNoRoom      = errors.New("doctor has no room assigned")
	ErrInvalidStatusChange  = errors.New("invalid status transition")
	ErrAppointmentCancelled = errors.New("appointment is already cancelled")
)

type AppointmentUsecase interface {
	Create(ctx context.Context, actorID *uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	List(ctx context.Context, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error)
	UpdateStatus(ctx context.Context, actorID *uuid.UUID, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, actorID *uuid.UUID, id uuid.UUID) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	loc             *time.Location
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorProfileRepository
	scheduleRepo    repository.DoctorScheduleRepository
	slotRoomRepo    repository.SlotRoomRepository
	settingRepo     repository.SettingRepository
	reservation     *service.ReservationService
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	loc *time.Location,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorProfileRepository,
	scheduleRepo repository.DoctorScheduleRepository,
	slotRoomRepo repository.SlotRoomRepository,
	settingRepo repository.SettingRepository,
	reservation *service.ReservationService,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		loc:             loc,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		scheduleRepo:    scheduleRepo,
		slotRoomRepo:    slotRoomRepo,
		settingRepo:     settingRepo,
		reservation:     reservation,
		auditService:    auditService,
	}
}

// Create issues a reception token. The token number is sequential per doctor
// per date and never reused, so a cancelled token leaves a visible gap. Room
// and reception are resolved at creation time from the facility's room mode:
// fixed mode uses the doctor's static room, dynamic mode looks up the
// (doctor, slot, date) assignment.
func (u *appointmentUsecase) Create(ctx context.Context, actorID *uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	date, err := clock.ParseDate(req.AppointmentDate, u.loc)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if clock.IsPastDate(date, u.loc) {
		return nil, ErrPastDate
	}
	appointmentTime := entity.TruncateClock(req.AppointmentTime)

	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	schedules, err := u.scheduleRepo.FindByDoctorID(u.db.WithContext(ctx), req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to load schedules for doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	dayName := clock.WeekdayName(date)
	schedule := service.ScheduleForTime(schedules, dayName, appointmentTime)

	mode, err := u.roomMode(ctx)
	if err != nil {
		return nil, err
	}

	appointment := &entity.Appointment{
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		AppointmentDate: date,
		AppointmentTime: appointmentTime,
		Status:          entity.AppointmentStatusWaiting,
		Notes:           req.Notes,
	}

	capacity := 0
	switch mode {
	case entity.RoomModeFixed:
		if doctor.RoomID == nil {
			return nil, ErrDoctorHasNoRoom
		}
		appointment.RoomID = doctor.RoomID
		if schedule != nil {
			appointment.ScheduleID = &schedule.ID
			capacity = schedule.MaxAppointmentsPerSlot
		}
	case entity.RoomModeDynamic:
		// Dynamic mode has no static room to fall back on, so the time must
		// resolve to a schedule slot.
		if schedule == nil {
			return nil, ErrTimeOutsideSchedule
		}
		appointment.ScheduleID = &schedule.ID
		capacity = schedule.MaxAppointmentsPerSlot

		assignment, err := u.slotRoomRepo.FindForSlot(u.db.WithContext(ctx), req.DoctorID, schedule.ID, date)
		if err != nil {
			u.log.Warnf("Failed to find slot room assignment: %+v", err)
			return nil, err
		}
		if assignment != nil {
			roomID := assignment.RoomID
			appointment.RoomID = &roomID
			appointment.ReceptionID = assignment.ReceptionID
		}
	}

	dateStr := clock.FormatDate(date)
	tokenNumber, reserved, err := u.reserveToken(ctx, req.DoctorID, dateStr, appointmentTime, capacity)
	if err != nil {
		return nil, err
	}
	appointment.TokenNumber = tokenNumber

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := u.appointmentRepo.Create(tx, appointment); err != nil {
			return err
		}
		if err := u.auditService.Log(tx, actorID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), nil,
			map[string]interface{}{"doctor_id": req.DoctorID, "patient_id": req.PatientID, "date": dateStr, "time": appointmentTime, "token_number": tokenNumber},
		); err != nil {
			u.log.Warnf("Failed to audit appointment create: %+v", err)
		}
		return nil
	})
	if err != nil {
		if reserved {
			if relErr := u.reservation.ReleaseSlot(ctx, req.DoctorID.String(), dateStr, appointmentTime); relErr != nil {
				u.log.Warnf("Failed to release reserved slot after create failure: %+v", relErr)
			}
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	return u.findResponse(ctx, appointment.ID)
}

// reserveToken obtains the next token number, guarding slot capacity in Redis
// when a capacity applies. The boolean reports whether a Redis reservation was
// taken and must be released if the database write fails. When Redis is
// unreachable the database max is the fallback; capacity is then enforced only
// by the availability view.
func (u *appointmentUsecase) reserveToken(ctx context.Context, doctorID uuid.UUID, date, t string, capacity int) (int, bool, error) {
	if capacity > 0 {
		tokenNumber, err := u.reservation.ReserveSlot(ctx, doctorID.String(), date, t, capacity)
		if err == nil {
			return tokenNumber, true, nil
		}
		if errors.Is(err, service.ErrSlotFull) {
			return 0, false, ErrSlotFullyBooked
		}
		u.log.Warnf("Redis reservation failed, falling back to database: %+v", err)
	}

	maxToken, err := u.appointmentRepo.MaxTokenNumber(u.db.WithContext(ctx), doctorID, date)
	if err != nil {
		u.log.Warnf("Failed to read max token number: %+v", err)
		return 0, false, err
	}
	return maxToken + 1, false, nil
}

func (u *appointmentUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	return u.findResponse(ctx, id)
}

func (u *appointmentUsecase) List(ctx context.Context, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByFilter(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) UpdateStatus(ctx context.Context, actorID *uuid.UUID, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	next := entity.AppointmentStatus(req.Status)
	if next == entity.AppointmentStatusCancelled {
		return u.Cancel(ctx, actorID, id)
	}

	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if !appointment.ValidStatusTransition(next) {
		return nil, ErrInvalidStatusChange
	}

	if err := u.appointmentRepo.UpdateStatus(u.db.WithContext(ctx), id, next); err != nil {
		u.log.Warnf("Failed to update appointment %s status: %+v", id, err)
		return nil, err
	}

	return u.findResponse(ctx, id)
}

// Cancel frees the Redis capacity slot so the time becomes bookable again. The
// token counter is not decremented; the cancelled token's number stays burned.
func (u *appointmentUsecase) Cancel(ctx context.Context, actorID *uuid.UUID, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.IsCancelled() {
		return nil, ErrAppointmentCancelled
	}
	if !appointment.ValidStatusTransition(entity.AppointmentStatusCancelled) {
		return nil, ErrInvalidStatusChange
	}

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := u.appointmentRepo.UpdateStatus(tx, id, entity.AppointmentStatusCancelled); err != nil {
			return err
		}
		if err := u.auditService.Log(tx, actorID, entity.AuditActionAppointmentCancel, "appointment", id.String(),
			map[string]interface{}{"status": appointment.Status}, map[string]interface{}{"status": entity.AppointmentStatusCancelled},
		); err != nil {
			u.log.Warnf("Failed to audit appointment cancel: %+v", err)
		}
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to cancel appointment %s: %+v", id, err)
		return nil, err
	}

	dateStr := clock.FormatDate(appointment.AppointmentDate)
	if err := u.reservation.ReleaseSlot(ctx, appointment.DoctorID.String(), dateStr, entity.TruncateClock(appointment.AppointmentTime)); err != nil {
		u.log.Warnf("Failed to release slot on cancel: %+v", err)
	}

	return u.findResponse(ctx, id)
}

func (u *appointmentUsecase) findResponse(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to load appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) roomMode(ctx context.Context) (entity.RoomMode, error) {
	setting, err := u.settingRepo.Get(u.db.WithContext(ctx), entity.SettingKeyRoomMode)
	if err != nil {
		u.log.Warnf("Failed to read room mode setting: %+v", err)
		return "", err
	}
	if setting == nil {
		return entity.RoomModeFixed, nil
	}
	mode := entity.RoomMode(setting.Value)
	if !mode.IsValid() {
		return entity.RoomModeFixed, nil
	}
	return mode, nil
}
