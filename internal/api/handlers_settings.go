package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wicaksana/hadir/internal/models"
)

func (handler *Handler) UserSettings(c *fiber.Ctx) error {
	messages := currentMessages(c)
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, translateMessage(messages, "auth.error.session_required"))
	}

	settings, err := handler.settingsService.LoadUserSettings(user.ID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"settings": userSettingsView(settings)})
}

func (handler *Handler) SaveUserSettings(c *fiber.Ctx) error {
	messages := currentMessages(c)
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, translateMessage(messages, "auth.error.session_required"))
	}

	var input userSettingsInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, translateMessage(messages, "settings.error.invalid_input"))
	}
	if err := validate.Struct(input); err != nil {
		return apiError(c, fiber.StatusBadRequest, translateMessage(messages, "settings.error.invalid_input"))
	}

	settings := models.UserSettings{
		UserID:               user.ID,
		Language:             input.Language,
		NotificationsEnabled: input.NotificationsEnabled,
		EmailNotifications:   input.EmailNotifications,
		LocationTracking:     input.LocationTracking,
		DarkMode:             input.DarkMode,
		Timezone:             input.Timezone,
		AutoCheckout:         input.AutoCheckout,
	}
	if err := handler.settingsService.SaveUserSettings(settings); err != nil {
		return domainError(c, err)
	}

	// A saved language preference takes effect immediately.
	language := handler.i18n.NormalizeLanguage(input.Language)
	if language != "" && language != currentLanguage(c) {
		handler.applyLanguage(c, language)
		handler.setLanguageCookie(c, language)
		messages = currentMessages(c)
	}

	return c.JSON(fiber.Map{
		"message":  translateMessage(messages, "settings.success.saved"),
		"settings": userSettingsView(settings),
	})
}

func (handler *Handler) AppSettings(c *fiber.Ctx) error {
	departments, err := handler.settingsService.Departments()
	if err != nil {
		return domainError(c, err)
	}
	recipients, err := handler.settingsService.EmailRecipients()
	if err != nil {
		return domainError(c, err)
	}
	smtp, configured, err := handler.settingsService.SMTPSettings()
	if err != nil {
		return domainError(c, err)
	}

	return c.JSON(fiber.Map{
		"departments":      departments,
		"email_recipients": recipients,
		"smtp_settings":    smtpSettingsView(smtp, configured),
	})
}

// SaveAppSettings updates only the sections present in the payload so
// the departments, recipients, and SMTP screens can save independently.
func (handler *Handler) SaveAppSettings(c *fiber.Ctx) error {
	messages := currentMessages(c)

	var input appSettingsInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, translateMessage(messages, "settings.error.invalid_input"))
	}

	response := fiber.Map{"message": translateMessage(messages, "settings.success.saved")}

	if input.Departments != nil {
		saved, err := handler.settingsService.SaveDepartments(*input.Departments)
		if err != nil {
			return domainError(c, err)
		}
		response["departments"] = saved
	}
	if input.EmailRecipients != nil {
		saved, err := handler.settingsService.SaveEmailRecipients(models.EmailRecipients{
			Attendance:   input.EmailRecipients.Attendance,
			LeaveRequest: input.EmailRecipients.LeaveRequest,
		})
		if err != nil {
			return domainError(c, err)
		}
		response["email_recipients"] = saved
	}
	if input.SMTPSettings != nil {
		saved, err := handler.settingsService.SaveSMTPSettings(models.SMTPSettings{
			Host:     input.SMTPSettings.Host,
			Port:     input.SMTPSettings.Port,
			Secure:   input.SMTPSettings.Secure,
			Username: input.SMTPSettings.Username,
			Password: input.SMTPSettings.Password,
		})
		if err != nil {
			return domainError(c, err)
		}
		response["smtp_settings"] = smtpSettingsView(saved, true)
	}

	return c.JSON(response)
}

func userSettingsView(settings models.UserSettings) fiber.Map {
	return fiber.Map{
		"language":              settings.Language,
		"notifications_enabled": settings.NotificationsEnabled,
		"email_notifications":   settings.EmailNotifications,
		"location_tracking":     settings.LocationTracking,
		"dark_mode":             settings.DarkMode,
		"timezone":              settings.Timezone,
		"auto_checkout":         settings.AutoCheckout,
	}
}

// smtpSettingsView never echoes the stored password back.
func smtpSettingsView(settings models.SMTPSettings, configured bool) fiber.Map {
	return fiber.Map{
		"host":       settings.Host,
		"port":       settings.Port,
		"secure":     settings.Secure,
		"username":   settings.Username,
		"configured": configured,
	}
}
