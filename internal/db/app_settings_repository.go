package db

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/wicaksana/hadir/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AppSettingsRepository stores shared configuration as one JSON row per
// key, with typed accessors so callers never touch raw values.
type AppSettingsRepository struct {
	database *gorm.DB
}

func NewAppSettingsRepository(database *gorm.DB) *AppSettingsRepository {
	return &AppSettingsRepository{database: database}
}

func (repo *AppSettingsRepository) Departments() ([]string, error) {
	departments := make([]string, 0)
	found, err := repo.loadValue(models.SettingKeyDepartments, &departments)
	if err != nil {
		return nil, err
	}
	if !found {
		return []string{}, nil
	}
	return departments, nil
}

func (repo *AppSettingsRepository) SaveDepartments(departments []string) error {
	return repo.saveValue(models.SettingKeyDepartments, departments)
}

func (repo *AppSettingsRepository) EmailRecipients() (models.EmailRecipients, error) {
	recipients := models.EmailRecipients{
		Attendance:   []string{},
		LeaveRequest: []string{},
	}
	if _, err := repo.loadValue(models.SettingKeyEmailRecipients, &recipients); err != nil {
		return models.EmailRecipients{}, err
	}
	return recipients, nil
}

func (repo *AppSettingsRepository) SaveEmailRecipients(recipients models.EmailRecipients) error {
	return repo.saveValue(models.SettingKeyEmailRecipients, recipients)
}

func (repo *AppSettingsRepository) SMTPSettings() (models.SMTPSettings, bool, error) {
	settings := models.SMTPSettings{}
	found, err := repo.loadValue(models.SettingKeySMTP, &settings)
	if err != nil {
		return models.SMTPSettings{}, false, err
	}
	return settings, found, nil
}

func (repo *AppSettingsRepository) SaveSMTPSettings(settings models.SMTPSettings) error {
	return repo.saveValue(models.SettingKeySMTP, settings)
}

func (repo *AppSettingsRepository) loadValue(key string, target any) (bool, error) {
	row := models.AppSetting{}
	result := repo.database.
		Where("setting_key = ?", key).
		Limit(1).
		Find(&row)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}
	if err := json.Unmarshal([]byte(row.SettingValue), target); err != nil {
		return false, fmt.Errorf("decode app setting %s: %w", key, err)
	}
	return true, nil
}

func (repo *AppSettingsRepository) saveValue(key string, value any) error {
	serialized, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode app setting %s: %w", key, err)
	}

	row := models.AppSetting{
		SettingKey:   key,
		SettingValue: string(serialized),
		UpdatedAt:    time.Now(),
	}
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"setting_value", "updated_at"}),
	}).Create(&row).Error
}
