package api

import (
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/wicaksana/hadir/internal/services"
	"golang.org/x/crypto/bcrypt"
)

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	messages := currentMessages(c)
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, translateMessage(messages, "auth.error.session_required"))
	}

	var input changePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, translateMessage(messages, "auth.error.invalid_input"))
	}
	if err := validate.Struct(input); err != nil {
		return apiError(c, fiber.StatusBadRequest, translateMessage(messages, "auth.error.invalid_input"))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)); err != nil {
		return apiError(c, fiber.StatusUnauthorized, translateMessage(messages, "auth.error.invalid_credentials"))
	}
	if input.NewPassword != input.ConfirmPassword {
		return apiError(c, fiber.StatusBadRequest, translateMessage(messages, "auth.error.password_mismatch"))
	}
	if input.NewPassword == input.CurrentPassword {
		return apiError(c, fiber.StatusBadRequest, translateMessage(messages, "auth.error.same_password"))
	}
	if err := services.ValidatePasswordStrength(input.NewPassword); err != nil {
		return apiError(c, fiber.StatusBadRequest, translateMessage(messages, "auth.error.weak_password"))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return domainError(c, err)
	}
	if err := handler.authService.UpdatePassword(user.ID, string(hash)); err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"message": translateMessage(messages, "auth.success.password_changed")})
}

// ForgotPassword always answers with the same message so the endpoint
// cannot be used to probe which emails are registered.
func (handler *Handler) ForgotPassword(c *fiber.Ctx) error {
	messages := currentMessages(c)

	var input forgotPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, translateMessage(messages, "auth.error.invalid_input"))
	}
	if err := validate.Struct(input); err != nil {
		return apiError(c, fiber.StatusBadRequest, translateMessage(messages, "auth.error.invalid_input"))
	}

	response := c.JSON(fiber.Map{"message": translateMessage(messages, "auth.success.reset_requested")})

	email := services.NormalizeAuthEmail(input.Email)
	if email == "" || !handler.resetMailer.Configured() {
		return response
	}
	user, err := handler.authService.FindByNormalizedEmail(email)
	if err != nil {
		return response
	}
	token, err := handler.signResetToken(user.ID, resetTokenTTL)
	if err != nil {
		return response
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", strings.TrimRight(handler.baseURL, "/"), token)
	go func(recipient string, link string) {
		if err := handler.resetMailer.SendResetLink(recipient, link); err != nil {
			log.Printf("password reset mail to %s failed: %v", recipient, err)
		}
	}(user.Email, resetURL)

	return response
}

func (handler *Handler) ResetPassword(c *fiber.Ctx) error {
	messages := currentMessages(c)

	var input resetPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, translateMessage(messages, "auth.error.invalid_input"))
	}
	if err := validate.Struct(input); err != nil {
		return apiError(c, fiber.StatusBadRequest, translateMessage(messages, "auth.error.invalid_input"))
	}

	claims, err := handler.parseResetToken(input.Token)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, translateMessage(messages, "auth.error.reset_token_invalid"))
	}
	if input.NewPassword != input.ConfirmPassword {
		return apiError(c, fiber.StatusBadRequest, translateMessage(messages, "auth.error.password_mismatch"))
	}
	if err := services.ValidatePasswordStrength(input.NewPassword); err != nil {
		return apiError(c, fiber.StatusBadRequest, translateMessage(messages, "auth.error.weak_password"))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return domainError(c, err)
	}
	if err := handler.authService.UpdatePassword(claims.UserID, string(hash)); err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"message": translateMessage(messages, "auth.success.password_reset")})
}
