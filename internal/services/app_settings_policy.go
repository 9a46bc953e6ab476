package services

import (
	"errors"
	"strings"

	"github.com/wicaksana/hadir/internal/models"
)

var (
	ErrDepartmentEmpty     = errors.New("department name empty")
	ErrDepartmentDuplicate = errors.New("department name duplicate")
	ErrSMTPHostMissing     = errors.New("smtp host missing")
	ErrSMTPPortInvalid     = errors.New("smtp port invalid")
)

// ValidateDepartments trims names and rejects blank or duplicate
// entries, preserving the admin's ordering.
func ValidateDepartments(raw []string) ([]string, error) {
	cleaned := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, entry := range raw {
		name := strings.TrimSpace(entry)
		if name == "" {
			return nil, ErrDepartmentEmpty
		}
		folded := strings.ToLower(name)
		if _, exists := seen[folded]; exists {
			return nil, ErrDepartmentDuplicate
		}
		seen[folded] = struct{}{}
		cleaned = append(cleaned, name)
	}
	return cleaned, nil
}

func ValidateSMTPSettings(settings models.SMTPSettings) (models.SMTPSettings, error) {
	settings.Host = strings.TrimSpace(settings.Host)
	settings.Username = strings.TrimSpace(settings.Username)
	if settings.Host == "" {
		return models.SMTPSettings{}, ErrSMTPHostMissing
	}
	if settings.Port < 1 || settings.Port > 65535 {
		return models.SMTPSettings{}, ErrSMTPPortInvalid
	}
	return settings, nil
}
