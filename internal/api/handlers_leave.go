package api

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/wicaksana/hadir/internal/models"
	"github.com/wicaksana/hadir/internal/services"
)

const leaveHistoryLimit = 10

// LeaveFormDefaults backs the request composer: the department is
// copied from the profile and surfaced read-only, and the selectable
// type and reason codes come with labels in the request language.
func (handler *Handler) LeaveFormDefaults(c *fiber.Ctx) error {
	messages := currentMessages(c)
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, translateMessage(messages, "auth.error.session_required"))
	}

	response := fiber.Map{
		"department":    user.Department,
		"leave_types":   leaveOptionViews(messages, "leave.types.", models.LeaveTypeCodes()),
		"leave_reasons": leaveOptionViews(messages, "leave.reasons.", models.LeaveReasonCodes()),
	}
	if user.Department == "" {
		response["warning"] = translateMessage(messages, "leave.warning.department_unset")
	}
	return c.JSON(response)
}

func (handler *Handler) SubmitLeaveRequest(c *fiber.Ctx) error {
	messages := currentMessages(c)
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, translateMessage(messages, "leave.error.auth"))
	}

	var input leaveInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, translateMessage(messages, "leave.error.missing_info"))
	}

	department := input.Department
	if department == "" {
		department = user.Department
	}
	request, err := handler.leaveService.Submit(user, services.LeaveRequestInput{
		Department:        department,
		LeaveType:         input.LeaveType,
		Reason:            input.Reason,
		StartDate:         input.StartDate,
		EndDate:           input.EndDate,
		AdditionalDetails: input.AdditionalDetails,
	})
	if err != nil {
		return domainError(c, err)
	}

	// Fire and forget: the submission has already succeeded, a
	// notification failure only gets logged.
	payload := handler.leaveNoticePayload(user, request, messages)
	go func() {
		if _, err := handler.notifyLeave(payload); err != nil {
			log.Printf("leave notification for request %d failed: %v", request.ID, err)
		}
	}()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": translateMessage(messages, "leave.success.submitted"),
		"request": leaveSummary(request),
	})
}

func (handler *Handler) LeaveHistory(c *fiber.Ctx) error {
	messages := currentMessages(c)
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, translateMessage(messages, "auth.error.session_required"))
	}

	requests, err := handler.leaveService.RecentForUser(user.ID, leaveHistoryLimit)
	if err != nil {
		return domainError(c, err)
	}
	views := make([]fiber.Map, 0, len(requests))
	for _, request := range requests {
		views = append(views, leaveSummary(request))
	}
	return c.JSON(fiber.Map{"leave_requests": views})
}

// leaveNoticePayload carries localized labels, not codes: the email is
// read by people, the database keeps the codes.
func (handler *Handler) leaveNoticePayload(user *models.User, request models.LeaveRequest, messages map[string]string) services.LeaveNoticePayload {
	return services.LeaveNoticePayload{
		ApplicantName:     services.ApplicantDisplayName(user),
		ApplicantEmail:    user.Email,
		Department:        request.Department,
		LeaveType:         translateMessage(messages, "leave.types."+request.LeaveType),
		StartDate:         request.StartDate.Format("2006-01-02"),
		EndDate:           request.EndDate.Format("2006-01-02"),
		Reason:            translateMessage(messages, "leave.reasons."+request.Reason),
		AdditionalDetails: request.AdditionalDetails,
	}
}

func leaveOptionViews(messages map[string]string, prefix string, codes []string) []fiber.Map {
	views := make([]fiber.Map, 0, len(codes))
	for _, code := range codes {
		views = append(views, fiber.Map{
			"code":  code,
			"label": translateMessage(messages, prefix+code),
		})
	}
	return views
}

func leaveSummary(request models.LeaveRequest) fiber.Map {
	return fiber.Map{
		"id":                 request.ID,
		"department":         request.Department,
		"leave_type":         request.LeaveType,
		"reason":             request.Reason,
		"start_date":         request.StartDate.Format("2006-01-02"),
		"end_date":           request.EndDate.Format("2006-01-02"),
		"additional_details": request.AdditionalDetails,
		"status":             request.Status,
		"created_at":         request.CreatedAt.Format(time.RFC3339),
	}
}
