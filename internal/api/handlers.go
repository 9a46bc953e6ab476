package api

import (
	"errors"
	"time"

	"github.com/wicaksana/hadir/internal/db"
	"github.com/wicaksana/hadir/internal/i18n"
	"github.com/wicaksana/hadir/internal/services"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, i18nManager *i18n.Manager, config Config) (*Handler, error) {
	if database == nil {
		return nil, errors.New("api: database is required")
	}
	if i18nManager == nil {
		return nil, errors.New("api: i18n manager is required")
	}
	if config.SecretKey == "" {
		return nil, errors.New("api: secret key is required")
	}
	location := config.Location
	if location == nil {
		location = time.Local
	}

	repositories := db.NewRepositories(database)
	settingsService := services.NewSettingsService(repositories.UserSettings, repositories.AppSettings)
	notifier := services.NewLeaveNotifier(repositories.AppSettings, config.SMTP)

	handler := &Handler{
		database:     database,
		secretKey:    []byte(config.SecretKey),
		serviceKey:   config.ServiceKey,
		cookieSecure: config.CookieSecure,
		baseURL:      config.BaseURL,
		location:     location,
		i18n:         i18nManager,

		repositories: repositories,

		authService:       services.NewAuthService(repositories.Users),
		profileService:    services.NewProfileService(repositories.Users, settingsService),
		leaveService:      services.NewLeaveService(repositories.LeaveRequests, location),
		attendanceService: services.NewAttendanceService(repositories.Attendance, repositories.LeaveRequests, location),
		settingsService:   settingsService,

		notifyLeave: notifier.Dispatch,
		resetMailer: services.NewResetMailer(config.SMTP),
	}
	return handler, nil
}
