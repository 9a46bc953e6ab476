package services

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/wicaksana/hadir/internal/models"
)

var (
	ErrRecipientInvalid  = errors.New("recipient invalid")
	ErrTooManyRecipients = errors.New("too many recipients")
)

// FilterRecipientAddresses trims every entry and drops the ones that are
// empty afterwards. Used at dispatch time, where a sloppy stored list
// must not block delivery to the remaining valid addresses.
func FilterRecipientAddresses(raw []string) []string {
	valid := make([]string, 0, len(raw))
	for _, entry := range raw {
		address := strings.TrimSpace(entry)
		if address == "" {
			continue
		}
		valid = append(valid, address)
	}
	return valid
}

// ValidateRecipientList is the write-time counterpart: every entry must
// parse as an address and the list is capped per notification category.
func ValidateRecipientList(raw []string) ([]string, error) {
	cleaned := FilterRecipientAddresses(raw)
	if len(cleaned) > models.MaxRecipientsPerCategory {
		return nil, ErrTooManyRecipients
	}
	for _, address := range cleaned {
		if _, err := mail.ParseAddress(address); err != nil {
			return nil, ErrRecipientInvalid
		}
	}
	return cleaned, nil
}

// ValidateEmailRecipients applies the write-time rules to both
// notification categories.
func ValidateEmailRecipients(recipients models.EmailRecipients) (models.EmailRecipients, error) {
	attendance, err := ValidateRecipientList(recipients.Attendance)
	if err != nil {
		return models.EmailRecipients{}, err
	}
	leave, err := ValidateRecipientList(recipients.LeaveRequest)
	if err != nil {
		return models.EmailRecipients{}, err
	}
	return models.EmailRecipients{Attendance: attendance, LeaveRequest: leave}, nil
}
