package usecase

import (
	"context"
	"errors"

	"hms-scheduling/internal/delivery/dto"
	"hms-scheduling/internal/domain/entity"
	"hms-scheduling/internal/domain/repository"
	"hms-scheduling/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrInvalidRoomMode = errors.New("room mode must be Fixed or Dynamic")

type SettingUsecase interface {
	GetRoomMode(ctx context.Context) (*dto.RoomModeResponse, error)
	UpdateRoomMode(ctx context.Context, actorID *uuid.UUID, req *dto.UpdateRoomModeRequest) (*dto.RoomModeResponse, error)
}

type settingUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	settingRepo  repository.SettingRepository
	auditService service.AuditService
}

func NewSettingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	settingRepo repository.SettingRepository,
	auditService service.AuditService,
) SettingUsecase {
	return &settingUsecase{
		db:           db,
		log:          log,
		settingRepo:  settingRepo,
		auditService: auditService,
	}
}

// GetRoomMode returns the facility's room assignment policy, defaulting to
// Fixed when the setting was never written.
func (u *settingUsecase) GetRoomMode(ctx context.Context) (*dto.RoomModeResponse, error) {
	setting, err := u.settingRepo.Get(u.db.WithContext(ctx), entity.SettingKeyRoomMode)
	if err != nil {
		u.log.Warnf("Failed to read room mode setting: %+v", err)
		return nil, err
	}

	mode := entity.RoomModeFixed
	if setting != nil {
		if m := entity.RoomMode(setting.Value); m.IsValid() {
			mode = m
		}
	}
	return &dto.RoomModeResponse{Mode: string(mode)}, nil
}

// UpdateRoomMode switches the facility-wide policy. Existing appointments keep
// the room they were assigned at creation time; only new tokens are affected.
func (u *settingUsecase) UpdateRoomMode(ctx context.Context, actorID *uuid.UUID, req *dto.UpdateRoomModeRequest) (*dto.RoomModeResponse, error) {
	mode := entity.RoomMode(req.Mode)
	if !mode.IsValid() {
		return nil, ErrInvalidRoomMode
	}

	current, err := u.GetRoomMode(ctx)
	if err != nil {
		return nil, err
	}

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := u.settingRepo.Upsert(tx, entity.SettingKeyRoomMode, string(mode)); err != nil {
			return err
		}
		if err := u.auditService.Log(tx, actorID, entity.AuditActionRoomModeUpdate, "setting", entity.SettingKeyRoomMode,
			map[string]interface{}{"mode": current.Mode}, map[string]interface{}{"mode": string(mode)},
		); err != nil {
			u.log.Warnf("Failed to audit room mode update: %+v", err)
		}
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to update room mode: %+v", err)
		return nil, err
	}

	return &dto.RoomModeResponse{Mode: string(mode)}, nil
}
