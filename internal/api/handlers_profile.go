package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/wicaksana/hadir/internal/services"
)

func (handler *Handler) Profile(c *fiber.Ctx) error {
	messages := currentMessages(c)
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, translateMessage(messages, "auth.error.session_required"))
	}
	return c.JSON(fiber.Map{"user": userSummary(*user)})
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	messages := currentMessages(c)
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, translateMessage(messages, "auth.error.session_required"))
	}

	var input profileInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, translateMessage(messages, "auth.error.invalid_input"))
	}
	if err := validate.Struct(input); err != nil {
		return apiError(c, fiber.StatusBadRequest, translateMessage(messages, "auth.error.invalid_input"))
	}

	update := services.ProfileUpdate{
		FullName:   input.FullName,
		Handle:     input.Handle,
		NIK:        input.NIK,
		Phone:      input.Phone,
		Department: input.Department,
		Position:   input.Position,
		Location:   input.Location,
		Gender:     input.Gender,
	}
	if input.BirthDate != "" {
		birthDate, err := time.ParseInLocation("2006-01-02", input.BirthDate, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, translateMessage(messages, "profile.error.birth_date_invalid"))
		}
		update.BirthDate = &birthDate
	}

	if err := handler.profileService.Update(user.ID, update); err != nil {
		return domainError(c, err)
	}

	updated, err := handler.profileService.Load(user.ID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": translateMessage(messages, "profile.success.updated"),
		"user":    userSummary(updated),
	})
}
