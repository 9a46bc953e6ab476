package services

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrHandleInvalid     = errors.New("handle invalid")
	ErrNIKInvalid        = errors.New("nik invalid")
	ErrHandleTaken       = errors.New("handle taken")
	ErrNIKTaken          = errors.New("nik taken")
	ErrGenderInvalid     = errors.New("gender invalid")
	ErrUnknownDepartment = errors.New("unknown department")
	ErrBirthDateInvalid  = errors.New("birth date invalid")
)

type ProfileUpdate struct {
	FullName   string
	Handle     string
	NIK        string
	Phone      string
	Department string
	Position   string
	Location   string
	Gender     string
	BirthDate  *time.Time
	Language   string
}

// NormalizeProfileUpdate trims free-text fields and lowercases the
// handle the way the profile form does before any validation runs.
func NormalizeProfileUpdate(update ProfileUpdate) ProfileUpdate {
	update.FullName = strings.TrimSpace(update.FullName)
	update.Handle = NormalizeHandle(update.Handle)
	update.NIK = strings.TrimSpace(update.NIK)
	update.Phone = strings.TrimSpace(update.Phone)
	update.Department = strings.TrimSpace(update.Department)
	update.Position = strings.TrimSpace(update.Position)
	update.Location = strings.TrimSpace(update.Location)
	update.Gender = strings.ToLower(strings.TrimSpace(update.Gender))
	update.Language = strings.ToLower(strings.TrimSpace(update.Language))
	return update
}

// ValidateProfileUpdate checks format constraints. Handle and NIK stay
// optional; when present they must match their fixed shapes. Department
// membership is checked against the configured list only when one is
// configured, so a freshly installed system does not lock profiles out.
func ValidateProfileUpdate(update ProfileUpdate, departments []string) error {
	if update.Handle != "" && !ValidHandle(update.Handle) {
		return ErrHandleInvalid
	}
	if update.NIK != "" && !ValidNIK(update.NIK) {
		return ErrNIKInvalid
	}
	switch update.Gender {
	case "", "male", "female":
	default:
		return ErrGenderInvalid
	}
	if update.Department != "" && len(departments) > 0 && !containsFold(departments, update.Department) {
		return ErrUnknownDepartment
	}
	if update.BirthDate != nil && update.BirthDate.After(time.Now()) {
		return ErrBirthDateInvalid
	}
	return nil
}

func containsFold(values []string, candidate string) bool {
	for _, value := range values {
		if strings.EqualFold(strings.TrimSpace(value), candidate) {
			return true
		}
	}
	return false
}
