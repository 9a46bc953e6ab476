package db

import (
	"github.com/wicaksana/hadir/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserSettingsRepository struct {
	database *gorm.DB
}

func NewUserSettingsRepository(database *gorm.DB) *UserSettingsRepository {
	return &UserSettingsRepository{database: database}
}

// FindByUser returns the user's settings row, or defaults when the user
// has never saved settings.
func (repo *UserSettingsRepository) FindByUser(userID uint) (models.UserSettings, bool, error) {
	settings := models.UserSettings{}
	result := repo.database.
		Where("user_id = ?", userID).
		Limit(1).
		Find(&settings)
	if result.Error != nil {
		return models.UserSettings{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return defaultUserSettings(userID), false, nil
	}
	return settings, true, nil
}

func (repo *UserSettingsRepository) Upsert(settings *models.UserSettings) error {
	return repo.database.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"language",
			"notifications_enabled",
			"email_notifications",
			"location_tracking",
			"dark_mode",
			"timezone",
			"auto_checkout",
			"updated_at",
		}),
	}).Create(settings).Error
}

func defaultUserSettings(userID uint) models.UserSettings {
	return models.UserSettings{
		UserID:               userID,
		Language:             models.LanguageEnglish,
		NotificationsEnabled: true,
		EmailNotifications:   true,
		LocationTracking:     true,
		Timezone:             "UTC",
	}
}
