package services

import (
	"errors"
	"time"

	"github.com/wicaksana/hadir/internal/models"
)

var ErrLanguageUnsupported = errors.New("language unsupported")

type UserSettingsRepositoryAPI interface {
	FindByUser(userID uint) (models.UserSettings, bool, error)
	Upsert(settings *models.UserSettings) error
}

type AppSettingsRepositoryAPI interface {
	Departments() ([]string, error)
	SaveDepartments(departments []string) error
	EmailRecipients() (models.EmailRecipients, error)
	SaveEmailRecipients(recipients models.EmailRecipients) error
	SMTPSettings() (models.SMTPSettings, bool, error)
	SaveSMTPSettings(settings models.SMTPSettings) error
}

type SettingsService struct {
	userSettings UserSettingsRepositoryAPI
	appSettings  AppSettingsRepositoryAPI
}

func NewSettingsService(userSettings UserSettingsRepositoryAPI, appSettings AppSettingsRepositoryAPI) *SettingsService {
	return &SettingsService{
		userSettings: userSettings,
		appSettings:  appSettings,
	}
}

func (service *SettingsService) LoadUserSettings(userID uint) (models.UserSettings, error) {
	settings, _, err := service.userSettings.FindByUser(userID)
	return settings, err
}

func (service *SettingsService) SaveUserSettings(settings models.UserSettings) error {
	switch settings.Language {
	case models.LanguageEnglish, models.LanguageIndonesian:
	default:
		return ErrLanguageUnsupported
	}
	settings.UpdatedAt = time.Now()
	return service.userSettings.Upsert(&settings)
}

// PreferredLanguage returns the user's stored language, empty when the
// user never saved one.
func (service *SettingsService) PreferredLanguage(userID uint) (string, error) {
	settings, found, err := service.userSettings.FindByUser(userID)
	if err != nil {
		return "", err
	}
	if !found {
		return "", nil
	}
	return settings.Language, nil
}

func (service *SettingsService) Departments() ([]string, error) {
	return service.appSettings.Departments()
}

func (service *SettingsService) SaveDepartments(raw []string) ([]string, error) {
	departments, err := ValidateDepartments(raw)
	if err != nil {
		return nil, err
	}
	if err := service.appSettings.SaveDepartments(departments); err != nil {
		return nil, err
	}
	return departments, nil
}

func (service *SettingsService) EmailRecipients() (models.EmailRecipients, error) {
	return service.appSettings.EmailRecipients()
}

func (service *SettingsService) SaveEmailRecipients(raw models.EmailRecipients) (models.EmailRecipients, error) {
	recipients, err := ValidateEmailRecipients(raw)
	if err != nil {
		return models.EmailRecipients{}, err
	}
	if err := service.appSettings.SaveEmailRecipients(recipients); err != nil {
		return models.EmailRecipients{}, err
	}
	return recipients, nil
}

func (service *SettingsService) SMTPSettings() (models.SMTPSettings, bool, error) {
	return service.appSettings.SMTPSettings()
}

func (service *SettingsService) SaveSMTPSettings(raw models.SMTPSettings) (models.SMTPSettings, error) {
	settings, err := ValidateSMTPSettings(raw)
	if err != nil {
		return models.SMTPSettings{}, err
	}
	if err := service.appSettings.SaveSMTPSettings(settings); err != nil {
		return models.SMTPSettings{}, err
	}
	return settings, nil
}
