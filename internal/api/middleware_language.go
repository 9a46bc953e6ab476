package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// LanguageMiddleware decides the request language: explicit cookie
// first, then the Accept-Language header, then the default locale.
func (handler *Handler) LanguageMiddleware(defaultLanguage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var language string
		if cookie := c.Cookies(languageCookieName); cookie != "" {
			language = handler.i18n.NormalizeLanguage(cookie)
		} else if header := c.Get(fiber.HeaderAcceptLanguage); header != "" {
			language = handler.i18n.DetectFromAcceptLanguage(header)
		} else {
			language = handler.i18n.NormalizeLanguage(defaultLanguage)
		}
		handler.applyLanguage(c, language)
		return c.Next()
	}
}

func (handler *Handler) applyLanguage(c *fiber.Ctx, language string) {
	c.Locals(contextLanguageKey, language)
	c.Locals(contextMessagesKey, handler.i18n.Messages(language))
}

func (handler *Handler) setLanguageCookie(c *fiber.Ctx, language string) {
	c.Cookie(&fiber.Cookie{
		Name:     languageCookieName,
		Value:    language,
		Path:     "/",
		Expires:  time.Now().Add(365 * 24 * time.Hour),
		HTTPOnly: false,
		Secure:   handler.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
