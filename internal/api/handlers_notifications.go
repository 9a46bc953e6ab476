package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/wicaksana/hadir/internal/services"
)

// DispatchLeaveNotification is the machine-to-machine delivery
// endpoint guarded by ServiceKeyRequired. It answers the fixed wire
// shapes {message, details} on success and {error, details} on failure
// regardless of the request language.
func (handler *Handler) DispatchLeaveNotification(c *fiber.Ctx) error {
	var input leaveNoticeInput
	if err := c.BodyParser(&input); err != nil {
		return apiErrorDetails(c, fiber.StatusBadRequest, "Invalid request payload.", err.Error())
	}
	if err := validate.Struct(input); err != nil {
		return apiErrorDetails(c, fiber.StatusBadRequest, "Invalid request payload.", "leaveType, startDate and endDate are required")
	}

	messageID, err := handler.notifyLeave(services.LeaveNoticePayload{
		ApplicantName:     input.ApplicantName,
		ApplicantEmail:    input.ApplicantEmail,
		Department:        input.Department,
		LeaveType:         input.LeaveType,
		StartDate:         input.StartDate,
		EndDate:           input.EndDate,
		Reason:            input.Reason,
		AdditionalDetails: input.AdditionalDetails,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSMTPNotConfigured):
			return apiErrorDetails(c, fiber.StatusInternalServerError, "SMTP configuration missing on server.", err.Error())
		case errors.Is(err, services.ErrNoValidRecipients):
			return apiErrorDetails(c, fiber.StatusInternalServerError, "No valid recipient emails configured.", err.Error())
		default:
			return apiErrorDetails(c, fiber.StatusInternalServerError, "Failed to send leave notification.", err.Error())
		}
	}

	return c.JSON(fiber.Map{
		"message": "Leave request notification sent successfully.",
		"details": messageID,
	})
}
