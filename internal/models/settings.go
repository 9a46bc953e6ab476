package models

import "time"

const (
	LanguageEnglish    = "en"
	LanguageIndonesian = "id"
)

// UserSettings is a singleton row per user.
type UserSettings struct {
	ID                   uint   `gorm:"primaryKey"`
	UserID               uint   `gorm:"not null;uniqueIndex"`
	Language             string `gorm:"not null;default:en"`
	NotificationsEnabled bool   `gorm:"not null;default:true"`
	EmailNotifications   bool   `gorm:"not null;default:true"`
	LocationTracking     bool   `gorm:"not null;default:true"`
	DarkMode             bool   `gorm:"not null;default:false"`
	Timezone             string `gorm:"not null;default:UTC"`
	AutoCheckout         bool   `gorm:"not null;default:false"`
	UpdatedAt            time.Time
}

// AppSetting is a shared, admin-editable configuration row keyed by name.
// Values are JSON documents validated against the typed structures below
// before they are written.
type AppSetting struct {
	SettingKey   string `gorm:"primaryKey;column:setting_key"`
	SettingValue string `gorm:"column:setting_value;not null"`
	UpdatedAt    time.Time
}

const (
	SettingKeyDepartments     = "departments"
	SettingKeyEmailRecipients = "email_recipients"
	SettingKeySMTP            = "smtp_settings"
)

// MaxRecipientsPerCategory caps each notification recipient list.
const MaxRecipientsPerCategory = 5

type EmailRecipients struct {
	Attendance   []string `json:"attendance"`
	LeaveRequest []string `json:"leave_request"`
}

type SMTPSettings struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Secure   bool   `json:"secure"`
	Username string `json:"username"`
	Password string `json:"password"`
}
