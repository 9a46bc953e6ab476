package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired gates every authenticated route. API calls get a JSON
// 401, anything else is sent back to the login page. Once the user is
// known their stored language preference wins over the cookie.
func (handler *Handler) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := handler.authenticateRequest(c)
		if err != nil {
			handler.clearAuthCookie(c)
			if strings.HasPrefix(c.Path(), "/api/") {
				return apiError(c, fiber.StatusUnauthorized, translateMessage(currentMessages(c), "auth.error.session_required"))
			}
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		c.Locals(contextUserKey, user)

		if stored, err := handler.settingsService.PreferredLanguage(user.ID); err == nil && stored != "" {
			preferred := handler.i18n.NormalizeLanguage(stored)
			if preferred != "" && preferred != currentLanguage(c) {
				handler.applyLanguage(c, preferred)
				handler.setLanguageCookie(c, preferred)
			}
		}
		return c.Next()
	}
}

// ServiceKeyRequired protects machine-to-machine endpoints. With no
// key configured the route stays closed.
func (handler *Handler) ServiceKeyRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if handler.serviceKey == "" || c.Get("X-Service-Key") != handler.serviceKey {
			return apiError(c, fiber.StatusUnauthorized, "invalid service key")
		}
		return c.Next()
	}
}
