package api

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	sqlDB, err := handler.database.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "down"})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// Database exposes the underlying handle for the graceful shutdown path.
func (handler *Handler) Database() *gorm.DB {
	return handler.database
}
