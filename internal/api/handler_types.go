package api

import (
	"time"

	"github.com/wicaksana/hadir/internal/db"
	"github.com/wicaksana/hadir/internal/i18n"
	"github.com/wicaksana/hadir/internal/services"
	"gorm.io/gorm"
)

const (
	sessionTTL         = 7 * 24 * time.Hour
	sessionTTLRemember = 30 * 24 * time.Hour
	resetTokenTTL      = 30 * time.Minute
)

// Config carries the environment-derived knobs the handler needs.
type Config struct {
	SecretKey    string
	ServiceKey   string
	CookieSecure bool
	BaseURL      string
	Location     *time.Location
	SMTP         services.SMTPConfig
}

type Handler struct {
	database     *gorm.DB
	secretKey    []byte
	serviceKey   string
	cookieSecure bool
	baseURL      string
	location     *time.Location
	i18n         *i18n.Manager

	repositories *db.Repositories

	authService       *services.AuthService
	profileService    *services.ProfileService
	leaveService      *services.LeaveService
	attendanceService *services.AttendanceService
	settingsService   *services.SettingsService

	// notifyLeave performs the actual delivery; swapped out in tests.
	notifyLeave func(services.LeaveNoticePayload) (string, error)
	resetMailer *services.ResetMailer
}
