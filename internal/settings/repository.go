package settings

import (
	"context"
	"errors"

	"github.com/daonswim/swim-club-api/internal/model"
	"gorm.io/gorm"
)

// Default values applied when the settings row does not exist yet.
const (
	DefaultMaxCapacity         = 30
	DefaultWeeklyCapacity      = 40
	DefaultDormancyPeriodWeeks = 4
)

type SettingsRepository struct{}

func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{}
}

// Get returns the settings singleton, creating it with defaults on first use.
func (r *SettingsRepository) Get(ctx context.Context, db *gorm.DB) (*model.SystemSettings, error) {
	var settings model.SystemSettings
	err := db.WithContext(ctx).First(&settings, "id = ?", 1).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	settings = model.SystemSettings{
		ID:                        1,
		MaxCapacity:               DefaultMaxCapacity,
		WeeklyCapacity:            DefaultWeeklyCapacity,
		IncludeInactiveInCapacity: false,
		DormancyPeriodWeeks:       DefaultDormancyPeriodWeeks,
	}
	if err := db.WithContext(ctx).Create(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// Save persists the settings singleton.
func (r *SettingsRepository) Save(ctx context.Context, db *gorm.DB, settings *model.SystemSettings) error {
	return db.WithContext(ctx).Save(settings).Error
}
