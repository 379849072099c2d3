package repository

import (
	"hms-scheduling/internal/domain/entity"

	"gorm.io/gorm"
)

type SettingRepository interface {
	// Get returns the setting for key, nil when unset.
	Get(db *gorm.DB, key string) (*entity.Setting, error)
	Upsert(db *gorm.DB, key, value string) error
}
