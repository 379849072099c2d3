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

var ErrMRNAlreadyExists = errors.New("medical record number already exists")

type PatientUsecase interface {
	Create(ctx context.Context, actorID *uuid.UUID, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error)
	Search(ctx context.Context, query string) (*dto.PatientListResponse, error)
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	loc          *time.Location
	patientRepo  repository.PatientRepository
	auditService service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	loc *time.Location,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:           db,
		log:          log,
		loc:          loc,
		patientRepo:  patientRepo,
		auditService: auditService,
	}
}

func (u *patientUsecase) Create(ctx context.Context, actorID *uuid.UUID, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	dob, err := clock.ParseDate(req.DateOfBirth, u.loc)
	if err != nil {
		return nil, ErrInvalidDate
	}

	patient := &entity.Patient{
		MedicalRecordNumber: req.MedicalRecordNumber,
		FullName:            req.FullName,
		PhoneNumber:         req.PhoneNumber,
		DateOfBirth:         dob,
		Gender:              req.Gender,
		Address:             req.Address,
	}

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := u.patientRepo.Create(tx, patient); err != nil {
			return err
		}
		if err := u.auditService.Log(tx, actorID, entity.AuditActionPatientCreate, "patient", patient.ID.String(), nil,
			map[string]interface{}{"medical_record_number": req.MedicalRecordNumber},
		); err != nil {
			u.log.Warnf("Failed to audit patient create: %+v", err)
		}
		return nil
	})
	if err != nil {
		if isDuplicateKeyError(err, "medical_record_number") {
			return nil, ErrMRNAlreadyExists
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return converter.PatientToResponse(patient), nil
}

// Search matches by medical record number, name or phone. An exact MRN hit is
// returned alone; otherwise a fuzzy list.
func (u *patientUsecase) Search(ctx context.Context, query string) (*dto.PatientListResponse, error) {
	if patient, err := u.patientRepo.FindByMedicalRecordNumber(u.db.WithContext(ctx), query); err != nil {
		u.log.Warnf("Failed to search patient by MRN: %+v", err)
		return nil, err
	} else if patient != nil {
		return &dto.PatientListResponse{
			Patients: converter.PatientsToResponses([]entity.Patient{*patient}),
			Total:    1,
		}, nil
	}

	patients, err := u.patientRepo.Search(u.db.WithContext(ctx), query)
	if err != nil {
		u.log.Warnf("Failed to search patients: %+v", err)
		return nil, err
	}
	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}
