package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/wicaksana/hadir/internal/models"
	"github.com/wicaksana/hadir/internal/services"
)

func (handler *Handler) CheckIn(c *fiber.Ctx) error {
	return handler.recordAttendance(c, models.AttendanceCheckIn, "attendance.success.check_in")
}

func (handler *Handler) CheckOut(c *fiber.Ctx) error {
	return handler.recordAttendance(c, models.AttendanceCheckOut, "attendance.success.check_out")
}

// recordAttendance refuses to write anything without a resolved
// position. A failed geolocation read must never turn into a row.
func (handler *Handler) recordAttendance(c *fiber.Ctx, kind string, successKey string) error {
	messages := currentMessages(c)
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, translateMessage(messages, "auth.error.session_required"))
	}

	var input attendanceInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, translateMessage(messages, "auth.error.invalid_input"))
	}

	position, err := services.ValidatePosition(input.Latitude, input.Longitude)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, translateMessage(messages, "attendance.error.position_required"))
	}

	record, err := handler.attendanceService.RecordEvent(user.ID, kind, position)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": translateMessage(messages, successKey),
		"record":  attendanceSummary(record),
	})
}

func (handler *Handler) AttendanceStatus(c *fiber.Ctx) error {
	messages := currentMessages(c)
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, translateMessage(messages, "auth.error.session_required"))
	}

	checkedIn, err := handler.attendanceService.CurrentlyCheckedIn(user.ID, time.Now())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"checked_in": checkedIn})
}

func (handler *Handler) AttendanceOverview(c *fiber.Ctx) error {
	messages := currentMessages(c)
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, translateMessage(messages, "auth.error.session_required"))
	}

	records, leaves, err := handler.attendanceService.Overview(user.ID)
	if err != nil {
		return domainError(c, err)
	}

	recordViews := make([]fiber.Map, 0, len(records))
	for _, record := range records {
		recordViews = append(recordViews, attendanceSummary(record))
	}
	leaveViews := make([]fiber.Map, 0, len(leaves))
	for _, request := range leaves {
		leaveViews = append(leaveViews, leaveSummary(request))
	}
	return c.JSON(fiber.Map{
		"attendance_records": recordViews,
		"leave_requests":     leaveViews,
	})
}

func attendanceSummary(record models.AttendanceRecord) fiber.Map {
	return fiber.Map{
		"id":        record.ID,
		"type":      record.Kind,
		"timestamp": record.Timestamp.Format(time.RFC3339),
		"latitude":  record.Latitude,
		"longitude": record.Longitude,
		"location":  record.Location,
		"status":    record.Status,
	}
}
