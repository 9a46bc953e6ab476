package api

import "github.com/gofiber/fiber/v2"

// RegisterRoutes wires the whole HTTP surface. Everything under
// /api/* past the auth group requires a valid session cookie.
func (handler *Handler) RegisterRoutes(app *fiber.App, defaultLanguage string) {
	app.Use(handler.LanguageMiddleware(defaultLanguage))

	app.Get("/healthz", handler.Health)

	auth := app.Group("/api/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.Logout)
	auth.Post("/forgot-password", handler.ForgotPassword)
	auth.Post("/reset-password", handler.ResetPassword)

	notifications := app.Group("/api/notifications", handler.ServiceKeyRequired())
	notifications.Post("/leave-request", handler.DispatchLeaveNotification)

	private := app.Group("/api", handler.AuthRequired())
	private.Get("/auth/me", handler.Me)
	private.Post("/auth/change-password", handler.ChangePassword)

	private.Get("/profile", handler.Profile)
	private.Put("/profile", handler.UpdateProfile)

	private.Post("/attendance/check-in", handler.CheckIn)
	private.Post("/attendance/check-out", handler.CheckOut)
	private.Get("/attendance/status", handler.AttendanceStatus)
	private.Get("/attendance/overview", handler.AttendanceOverview)

	private.Get("/leave/options", handler.LeaveFormDefaults)
	private.Post("/leave/requests", handler.SubmitLeaveRequest)
	private.Get("/leave/requests", handler.LeaveHistory)

	private.Get("/settings", handler.UserSettings)
	private.Put("/settings", handler.SaveUserSettings)
	private.Get("/settings/app", handler.AppSettings)
	private.Put("/settings/app", handler.SaveAppSettings)
}
