package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/wicaksana/hadir/internal/models"
	"github.com/wicaksana/hadir/internal/services"
	"golang.org/x/crypto/bcrypt"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	messages := currentMessages(c)

	var input registerInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, translateMessage(messages, "auth.error.invalid_input"))
	}
	if err := validate.Struct(input); err != nil {
		return apiError(c, fiber.StatusBadRequest, translateMessage(messages, "auth.error.invalid_input"))
	}

	email, password, err := services.NormalizeCredentialsInput(input.Email, input.Password)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, translateMessage(messages, "auth.error.invalid_input"))
	}
	if err := services.ValidatePasswordStrength(password); err != nil {
		return apiError(c, fiber.StatusBadRequest, translateMessage(messages, "auth.error.weak_password"))
	}

	exists, err := handler.authService.RegistrationEmailExists(email)
	if err != nil {
		return domainError(c, err)
	}
	if exists {
		return apiError(c, fiber.StatusConflict, translateMessage(messages, "auth.error.email_exists"))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domainError(c, err)
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(input.FullName),
	}
	if err := handler.authService.CreateUser(&user); err != nil {
		return domainError(c, err)
	}

	token, err := handler.signSessionToken(user.ID, sessionTTL)
	if err != nil {
		return domainError(c, err)
	}
	handler.setAuthCookie(c, token, sessionTTL)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": translateMessage(messages, "auth.success.registered"),
		"user":    userSummary(user),
	})
}

// Login accepts a single identifier field holding an email, a handle,
// or a 16-digit NIK. Resolution failures and wrong passwords share one
// response so the endpoint leaks nothing about which accounts exist.
func (handler *Handler) Login(c *fiber.Ctx) error {
	messages := currentMessages(c)

	var input loginInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, translateMessage(messages, "auth.error.invalid_input"))
	}
	if err := validate.Struct(input); err != nil {
		return apiError(c, fiber.StatusBadRequest, translateMessage(messages, "auth.error.invalid_input"))
	}

	password := strings.TrimSpace(input.Password)
	if password == "" {
		return apiError(c, fiber.StatusBadRequest, translateMessage(messages, "auth.error.invalid_input"))
	}

	user, err := handler.authService.ResolveLoginUser(input.Identifier)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, translateMessage(messages, "auth.error.invalid_credentials"))
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return apiError(c, fiber.StatusUnauthorized, translateMessage(messages, "auth.error.invalid_credentials"))
	}

	ttl := sessionTTL
	if input.Remember {
		ttl = sessionTTLRemember
	}
	token, err := handler.signSessionToken(user.ID, ttl)
	if err != nil {
		return domainError(c, err)
	}
	handler.setAuthCookie(c, token, ttl)

	return c.JSON(fiber.Map{"user": userSummary(user)})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"message": translateMessage(currentMessages(c), "auth.success.logged_out")})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, translateMessage(currentMessages(c), "auth.error.session_required"))
	}
	return c.JSON(fiber.Map{"user": userSummary(*user)})
}

func userSummary(user models.User) fiber.Map {
	var birthDate string
	if user.BirthDate != nil {
		birthDate = user.BirthDate.Format("2006-01-02")
	}
	return fiber.Map{
		"id":         user.ID,
		"email":      user.Email,
		"full_name":  user.FullName,
		"handle":     user.Handle,
		"nik":        user.NIK,
		"phone":      user.Phone,
		"department": user.Department,
		"position":   user.Position,
		"location":   user.Location,
		"gender":     user.Gender,
		"birth_date": birthDate,
		"created_at": user.CreatedAt.Format(time.RFC3339),
	}
}
