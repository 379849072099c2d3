package usecase

import (
	"context"
	"errors"

	"hms-scheduling/internal/converter"
	"hms-scheduling/internal/delivery/dto"
	"hms-scheduling/internal/domain/entity"
	"hms-scheduling/internal/domain/repository"
	"hms-scheduling/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrLicenseAlreadyExists = errors.New("license number already exists")

type DoctorUsecase interface {
	Create(ctx context.Context, actorID *uuid.UUID, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error)
	List(ctx context.Context) (*dto.DoctorListResponse, error)
	Update(ctx context.Context, actorID *uuid.UUID, id uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	Delete(ctx context.Context, actorID *uuid.UUID, id uuid.UUID) error
	// GetRoom resolves the doctor's room for the patient-facing "where do I go"
	// view, valid while the facility runs in fixed room mode.
	GetRoom(ctx context.Context, id uuid.UUID) (*dto.DoctorRoomResponse, error)
}

type doctorUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	doctorRepo   repository.DoctorProfileRepository
	userRepo     repository.UserRepository
	roleRepo     repository.RoleRepository
	facilityRepo repository.FacilityRepository
	auditService service.AuditService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorProfileRepository,
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	facilityRepo repository.FacilityRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		db:           db,
		log:          log,
		doctorRepo:   doctorRepo,
		userRepo:     userRepo,
		roleRepo:     roleRepo,
		facilityRepo: facilityRepo,
		auditService: auditService,
	}
}

// Create registers the doctor's user account and profile in one transaction.
func (u *doctorUsecase) Create(ctx context.Context, actorID *uuid.UUID, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	if req.RoomID != nil {
		room, err := u.facilityRepo.FindRoomByID(u.db.WithContext(ctx), *req.RoomID)
		if err != nil {
			return nil, err
		}
		if room == nil {
			return nil, ErrRoomNotFound
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	active := true
	user := &entity.User{
		Email:    req.Email,
		Password: string(hashedPassword),
		FullName: req.FullName,
		RoleID:   entity.RoleIDDoctor,
		IsActive: &active,
	}

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := u.userRepo.Create(tx, user); err != nil {
			return err
		}

		profile := &entity.DoctorProfile{
			UserID:         user.ID,
			LicenseNumber:  req.LicenseNumber,
			Specialization: req.Specialization,
			ScheduleStart:  req.ScheduleStart,
			ScheduleEnd:    req.ScheduleEnd,
			RoomID:         req.RoomID,
			Biography:      req.Biography,
		}
		if err := u.doctorRepo.Create(tx, profile); err != nil {
			return err
		}

		if err := u.auditService.Log(tx, actorID, entity.AuditActionDoctorCreate, "doctor", user.ID.String(), nil,
			map[string]interface{}{"email": req.Email, "license_number": req.LicenseNumber},
		); err != nil {
			u.log.Warnf("Failed to audit doctor create: %+v", err)
		}
		return nil
	})
	if err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		if isDuplicateKeyError(err, "license") {
			return nil, ErrLicenseAlreadyExists
		}
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	return u.findResponse(ctx, user.ID)
}

func (u *doctorUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error) {
	return u.findResponse(ctx, id)
}

func (u *doctorUsecase) List(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *doctorUsecase) Update(ctx context.Context, actorID *uuid.UUID, id uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", id, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if req.Specialization != "" {
		doctor.Specialization = req.Specialization
	}
	if req.ScheduleStart != nil {
		doctor.ScheduleStart = req.ScheduleStart
	}
	if req.ScheduleEnd != nil {
		doctor.ScheduleEnd = req.ScheduleEnd
	}
	if req.RoomID != nil {
		room, err := u.facilityRepo.FindRoomByID(u.db.WithContext(ctx), *req.RoomID)
		if err != nil {
			return nil, err
		}
		if room == nil {
			return nil, ErrRoomNotFound
		}
		doctor.RoomID = req.RoomID
	}
	if req.Biography != nil {
		doctor.Biography = *req.Biography
	}

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := u.doctorRepo.Update(tx, doctor); err != nil {
			return err
		}
		if req.FullName != "" {
			user, err := u.userRepo.FindByID(tx, id)
			if err != nil {
				return err
			}
			if user == nil {
				return ErrUserNotFound
			}
			user.FullName = req.FullName
			if err := u.userRepo.Update(tx, user); err != nil {
				return err
			}
		}
		if err := u.auditService.Log(tx, actorID, entity.AuditActionDoctorUpdate, "doctor", id.String(), nil, nil); err != nil {
			u.log.Warnf("Failed to audit doctor update: %+v", err)
		}
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to update doctor %s: %+v", id, err)
		return nil, err
	}

	return u.findResponse(ctx, id)
}

// Delete deactivates the doctor's account and removes the profile. The user row
// stays so historical appointments keep their doctor reference.
func (u *doctorUsecase) Delete(ctx context.Context, actorID *uuid.UUID, id uuid.UUID) error {
	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", id, err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := u.userRepo.FindByID(tx, id)
		if err != nil {
			return err
		}
		if user != nil {
			inactive := false
			user.IsActive = &inactive
			if err := u.userRepo.Update(tx, user); err != nil {
				return err
			}
		}
		if err := u.doctorRepo.Delete(tx, id); err != nil {
			return err
		}
		if err := u.auditService.Log(tx, actorID, entity.AuditActionDoctorDelete, "doctor", id.String(), nil, nil); err != nil {
			u.log.Warnf("Failed to audit doctor delete: %+v", err)
		}
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to delete doctor %s: %+v", id, err)
	}
	return err
}

// GetRoom returns the doctor's static room and the reception desk patients
// should report to. When the room itself has no desk configured, the first
// reception on the room's floor is suggested.
func (u *doctorUsecase) GetRoom(ctx context.Context, id uuid.UUID) (*dto.DoctorRoomResponse, error) {
	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", id, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	if doctor.RoomID == nil {
		return nil, ErrDoctorHasNoRoom
	}

	room, err := u.facilityRepo.FindRoomByID(u.db.WithContext(ctx), *doctor.RoomID)
	if err != nil {
		u.log.Warnf("Failed to find room %d: %+v", *doctor.RoomID, err)
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	resp := &dto.DoctorRoomResponse{
		RoomID:      room.ID,
		RoomNumber:  room.RoomNumber,
		RoomName:    room.Name,
		FloorNumber: room.Floor.FloorNumber,
	}

	receptions, err := u.facilityRepo.FindReceptionsByFloor(u.db.WithContext(ctx), room.FloorID)
	if err != nil {
		u.log.Warnf("Failed to find receptions on floor %d: %+v", room.FloorID, err)
		return nil, err
	}
	if len(receptions) > 0 {
		resp.ReceptionID = &receptions[0].ID
		resp.ReceptionName = receptions[0].Name
	}

	return resp, nil
}

func (u *doctorUsecase) findResponse(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to load doctor %s: %+v", id, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return converter.DoctorToResponse(doctor), nil
}
