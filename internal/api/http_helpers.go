package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/wicaksana/hadir/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func apiErrorDetails(c *fiber.Ctx, status int, message string, details string) error {
	return c.Status(status).JSON(fiber.Map{"error": message, "details": details})
}

func translateMessage(messages map[string]string, key string) string {
	if messages != nil {
		if value, ok := messages[key]; ok {
			return value
		}
	}
	return key
}

// messageKeyForError maps domain sentinel errors onto locale keys so
// handlers answer in the request language.
func messageKeyForError(err error) (string, bool) {
	switch {
	case errors.Is(err, services.ErrLeaveMissingInformation):
		return "leave.error.missing_info", true
	case errors.Is(err, services.ErrLeaveUserMissing):
		return "leave.error.auth", true
	case errors.Is(err, services.ErrLeaveInvalidDate), errors.Is(err, services.ErrLeaveInvalidDateRange):
		return "leave.error.invalid_date_range", true
	case errors.Is(err, services.ErrLeaveUnknownType):
		return "leave.error.unknown_type", true
	case errors.Is(err, services.ErrLeaveUnknownReason):
		return "leave.error.unknown_reason", true
	case errors.Is(err, services.ErrPositionRequired):
		return "attendance.error.position_required", true
	case errors.Is(err, services.ErrHandleInvalid):
		return "profile.error.handle_format", true
	case errors.Is(err, services.ErrNIKInvalid):
		return "profile.error.nik_format", true
	case errors.Is(err, services.ErrHandleTaken):
		return "profile.error.handle_taken", true
	case errors.Is(err, services.ErrNIKTaken):
		return "profile.error.nik_taken", true
	case errors.Is(err, services.ErrGenderInvalid):
		return "profile.error.gender_invalid", true
	case errors.Is(err, services.ErrBirthDateInvalid):
		return "profile.error.birth_date_invalid", true
	case errors.Is(err, services.ErrUnknownDepartment):
		return "profile.error.unknown_department", true
	case errors.Is(err, services.ErrWeakPassword):
		return "auth.error.weak_password", true
	case errors.Is(err, services.ErrLanguageUnsupported):
		return "settings.error.language_unsupported", true
	case errors.Is(err, services.ErrDepartmentEmpty):
		return "settings.error.department_empty", true
	case errors.Is(err, services.ErrDepartmentDuplicate):
		return "settings.error.department_duplicate", true
	case errors.Is(err, services.ErrSMTPHostMissing):
		return "settings.error.smtp_host_missing", true
	case errors.Is(err, services.ErrSMTPPortInvalid):
		return "settings.error.smtp_port_invalid", true
	case errors.Is(err, services.ErrRecipientInvalid):
		return "settings.error.recipient_invalid", true
	case errors.Is(err, services.ErrTooManyRecipients):
		return "settings.error.too_many_recipients", true
	}
	return "", false
}

// domainError answers a 400 with the localized message when the error
// is a known policy violation, otherwise a generic 500.
func domainError(c *fiber.Ctx, err error) error {
	if key, ok := messageKeyForError(err); ok {
		return apiError(c, fiber.StatusBadRequest, translateMessage(currentMessages(c), key))
	}
	return apiError(c, fiber.StatusInternalServerError, translateMessage(currentMessages(c), "error.internal"))
}
