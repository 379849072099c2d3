package usecase

import (
	"context"
	"errors"
	"time"

	"hms-scheduling/internal/converter"
	"hms-scheduling/internal/delivery/dto"
	"hms-scheduling/internal/domain/repository"
	"hms-scheduling/internal/service"
	"hms-scheduling/pkg/clock"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrInvalidDate = errors.New("invalid date, use YYYY-MM-DD")

type AvailabilityUsecase interface {
	GetAvailableSlots(ctx context.Context, doctorID uuid.UUID, date string) (*dto.AvailabilityResponse, error)
}

type availabilityUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	loc             *time.Location
	scheduleRepo    repository.DoctorScheduleRepository
	doctorRepo      repository.DoctorProfileRepository
	appointmentRepo repository.AppointmentRepository
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	loc *time.Location,
	scheduleRepo repository.DoctorScheduleRepository,
	doctorRepo repository.DoctorProfileRepository,
	appointmentRepo repository.AppointmentRepository,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:              db,
		log:             log,
		loc:             loc,
		scheduleRepo:    scheduleRepo,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
	}
}

// GetAvailableSlots expands the doctor's weekly slots for the requested date
// into discrete bookable times, with per-time remaining capacity. Booked counts
// come from the appointments table, so a slot freed by a cancellation shows up
// immediately. The date is interpreted on the facility's wall clock.
func (u *availabilityUsecase) GetAvailableSlots(ctx context.Context, doctorID uuid.UUID, date string) (*dto.AvailabilityResponse, error) {
	day, err := clock.ParseDate(date, u.loc)
	if err != nil {
		return nil, ErrInvalidDate
	}

	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	schedules, err := u.scheduleRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to load schedules for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	dayName := clock.WeekdayName(day)
	dateStr := clock.FormatDate(day)

	counts, err := u.appointmentRepo.CountsByDoctorAndDate(u.db.WithContext(ctx), doctorID, dateStr)
	if err != nil {
		u.log.Warnf("Failed to count appointments for doctor %s on %s: %+v", doctorID, dateStr, err)
		return nil, err
	}
	booked := make(map[string]int, len(counts))
	for _, c := range counts {
		booked[c.AppointmentTime] = c.Count
	}

	slots, err := service.ResolveAvailableSlots(schedules, dayName, booked)
	if err != nil {
		u.log.Warnf("Failed to resolve slots for doctor %s on %s: %+v", doctorID, dateStr, err)
		return nil, err
	}

	return &dto.AvailabilityResponse{
		DoctorID:  doctorID,
		Date:      dateStr,
		DayOfWeek: dayName,
		IsPast:    clock.IsPastDate(day, u.loc),
		Slots:     converter.AvailableSlotsToResponses(slots),
		Total:     len(slots),
	}, nil
}
